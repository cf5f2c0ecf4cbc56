package productrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite provides integration tests for ProductRepository
// using PostgreSQL containers to verify database persistence behavior.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_ValidProduct_Success() {
	ctx := context.Background()

	testProduct := suite.createTestProduct()
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()

	err := suite.repository.Add(ctx, testProduct)
	suite.Require().NoError(err)

	suite.assertProductCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_InvalidProduct_BusinessRules() {
	testCases := []struct {
		name     string
		setup    func() (*product.Product, error)
		expected string
	}{
		{
			name: "negative cached amount",
			setup: func() (*product.Product, error) {
				id := kernel.NewUUID()
				return product.RestoreProduct(id, "Espresso machine", 10, -1, 0, 0, product.Ordered)
			},
			expected: "negative",
		},
		{
			name: "invalid status",
			setup: func() (*product.Product, error) {
				id := kernel.NewUUID()
				return product.RestoreProduct(id, "Espresso machine", 10, 0, 0, 0, product.Status(42))
			},
			expected: "status",
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			invalidProduct, err := tc.setup()
			if err != nil {
				// Constructor validation failed as expected
				suite.Contains(err.Error(), tc.expected)
				return
			}

			err = suite.repository.Add(ctx, invalidProduct)
			suite.Require().Error(err)
			suite.Contains(err.Error(), tc.expected)

			suite.assertProductCount(0)
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsError() {
	ctx := context.Background()

	id := kernel.NewUUID()
	first, err := product.NewProduct(id, "Espresso machine", 10)
	suite.Require().NoError(err)
	duplicate, err := product.NewProduct(id, "Grinder", 5)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.Contains(strings.ToLower(err.Error()), "duplicate")

	suite.assertProductCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_ExistingProduct_ReturnsProduct() {
	ctx := context.Background()

	id := kernel.NewUUID()
	originalProduct, err := product.NewProduct(id, "Espresso machine", 25)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalProduct).Once()
	err = suite.repository.Add(ctx, originalProduct)
	suite.Require().NoError(err)

	retrievedProduct, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.True(retrievedProduct.ID().IsEqual(id))
	suite.Equal("Espresso machine", retrievedProduct.Name())
	suite.Equal(25, retrievedProduct.AmountRequested())
	suite.Equal(0, retrievedProduct.AmountPurchased())
	suite.Equal(0, retrievedProduct.AmountReceived())
	suite.Equal(0, retrievedProduct.AmountDelivered())
	suite.Equal(product.Ordered, retrievedProduct.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrievedProduct, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedProduct)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_WritesOnlyDerivedFields() {
	ctx := context.Background()

	// Persist the initial product
	id := kernel.NewUUID()
	initialProduct, err := product.NewProduct(id, "Espresso machine", 10)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, initialProduct).Once()
	err = suite.repository.Add(ctx, initialProduct)
	suite.Require().NoError(err)

	// Reconciled state with a different name, which must not be written
	recountedProduct, err := product.RestoreProduct(id, "Renamed machine", 10, 10, 4, 0, product.Purchased)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, recountedProduct).Once()
	err = suite.repository.Update(ctx, recountedProduct)
	suite.Require().NoError(err)

	retrievedProduct, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Espresso machine", retrievedProduct.Name(), "Update should leave identity columns untouched")
	suite.Equal(10, retrievedProduct.AmountRequested())
	suite.Equal(10, retrievedProduct.AmountPurchased())
	suite.Equal(4, retrievedProduct.AmountReceived())
	suite.Equal(product.Purchased, retrievedProduct.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_RefreshesUpdatedAt() {
	ctx := context.Background()

	id := kernel.NewUUID()
	initialProduct, err := product.NewProduct(id, "Espresso machine", 10)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	err = suite.repository.Add(ctx, initialProduct)
	suite.Require().NoError(err)

	var createdAt time.Time
	err = suite.db.Model(&productrepo.ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Pluck("updated_at", &createdAt).Error
	suite.Require().NoError(err)

	recountedProduct, err := product.RestoreProduct(id, "Espresso machine", 10, 10, 0, 0, product.Purchased)
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, recountedProduct)
	suite.Require().NoError(err)

	var updatedAt time.Time
	err = suite.db.Model(&productrepo.ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Pluck("updated_at", &updatedAt).Error
	suite.Require().NoError(err)
	suite.False(updatedAt.Before(createdAt), "updated_at should move forward on reconciliation writes")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_NonExistentProduct_ReturnsError() {
	ctx := context.Background()

	nonExistentProduct := suite.createTestProduct()

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, nonExistentProduct)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetForUpdate_ExistingProduct_ReturnsProduct() {
	ctx := context.Background()

	id := kernel.NewUUID()
	originalProduct, err := product.NewProduct(id, "Espresso machine", 10)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalProduct).Once()
	err = suite.repository.Add(ctx, originalProduct)
	suite.Require().NoError(err)

	retrievedProduct, err := suite.repository.GetForUpdate(ctx, id)
	suite.Require().NoError(err)
	suite.True(retrievedProduct.ID().IsEqual(id))
	suite.Equal(product.Ordered, retrievedProduct.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetForUpdate_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedProduct, err := suite.repository.GetForUpdate(ctx, kernel.NewUUID())

	suite.Nil(retrievedProduct)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAllIDs_ReturnsAllPersistedProducts() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	expected := make(map[string]bool, 3)
	for _, name := range []string{"Espresso machine", "Grinder", "Tamper"} {
		testProduct, err := product.NewProduct(kernel.NewUUID(), name, 5)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, testProduct))
		expected[testProduct.ID().String()] = true
	}

	ids, err := suite.repository.GetAllIDs(ctx)
	suite.Require().NoError(err)
	suite.Len(ids, 3)
	for _, id := range ids {
		suite.True(expected[id.String()], "GetAllIDs should return only persisted products")
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAllIDs_EmptyTable_ReturnsEmptySlice() {
	ids, err := suite.repository.GetAllIDs(context.Background())
	suite.Require().NoError(err)
	suite.Empty(ids)
}

// TestProductRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *ProductRepositoryIntegrationTestSuite) TestProductRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent product",
			operation: func() error {
				nonExistentID := kernel.NewUUID()
				_, err := suite.repository.Get(context.Background(), nonExistentID)
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent product",
			operation: func() error {
				nonExistentProduct := suite.createTestProduct()
				return suite.repository.Update(context.Background(), nonExistentProduct)
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestProductRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *ProductRepositoryIntegrationTestSuite) TestProductRepository_Concurrency() {
	ctx := context.Background()

	initialProduct := suite.createTestProduct()
	suite.tracker.On("TrackAggregate", initialProduct.ID(), initialProduct).Once()
	err := suite.repository.Add(ctx, initialProduct)
	suite.Require().NoError(err)

	// Simulate concurrent reads
	results := make(chan *product.Product, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedProduct, readErr := suite.repository.Get(ctx, initialProduct.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrievedProduct
			}
		}()
	}

	// Collect results
	for range 3 {
		select {
		case result := <-results:
			suite.True(result.ID().IsEqual(initialProduct.ID()))
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createTestProduct creates a basic test product with default values.
func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct() *product.Product {
	id := kernel.NewUUID()
	testProduct, err := product.NewProduct(id, "Espresso machine", 10)
	suite.Require().NoError(err)
	return testProduct
}

// assertProductCount verifies the number of products in the database.
func (suite *ProductRepositoryIntegrationTestSuite) assertProductCount(expected int) {
	var count int64
	err := suite.db.Model(&productrepo.ProductDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
