package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/ledgerrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/jobs"
	"fulfillment/internal/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	registry := metrics.NewRegistry()

	jobManager := jobs.NewJobManager(
		app.CreateReconcileAllProductsCommandHandler(),
		configs.AuditCronSchedule,
		logger,
		registry,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, registry, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		DBLockTimeoutMs:   goDotEnvVariable("DB_LOCK_TIMEOUT_MS"),
		AuditCronSchedule: goDotEnvVariable("AUDIT_CRON_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustConnectDB opens the Postgres connection and migrates the schema.
// lock_timeout bounds how long a reconciliation waits on a contended product
// row before the repository reports the object busy.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s lock_timeout=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
		configs.DBLockTimeoutMs,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&ledgerrepo.PurchaseEventDTO{},
		&ledgerrepo.ReceiptEventDTO{},
		&ledgerrepo.DeliveryEventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, registry *metrics.Registry, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(registry.Handler()))

	server := httpadapter.NewServer(
		app.CreateCreateProductCommandHandler(),
		app.CreateRecordPurchaseCommandHandler(),
		app.CreateRefundPurchaseCommandHandler(),
		app.CreateRecordReceiptCommandHandler(),
		app.CreateRecordDeliveryCommandHandler(),
		app.CreateRemoveLedgerEntryCommandHandler(),
		app.CreateCancelProductCommandHandler(),
		app.CreateReconcileProductCommandHandler(),
		app.CreateReconcileAllProductsCommandHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateAuditProductQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
