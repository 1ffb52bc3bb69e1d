package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"ordertracker/cmd"
	"ordertracker/internal/adapters/out/postgres/logrepo"
	"ordertracker/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	location, err := time.LoadLocation(configs.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", configs.Timezone, err)
	}

	gormDB := mustConnectDB(configs)

	// The schema is a startup precondition: serving requests against
	// missing tables fails every operation anyway.
	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &logrepo.UpdateLogEntryDTO{}); err != nil {
		log.Fatalf("Migrating schema: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, location, logger)
	if err != nil {
		log.Fatalf("Building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:            envOrDefault("HTTP_PORT", "8080"),
		DBHost:              envOrDefault("DB_HOST", "localhost"),
		DBPort:              envOrDefault("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           envOrDefault("DB_SSLMODE", "disable"),
		SharedSecret:        os.Getenv("SHARED_SECRET"),
		TrackerBaseURL:      os.Getenv("TRACKER_BASE_URL"),
		Logo:                os.Getenv("TRACKER_LOGO"),
		LogoDark:            os.Getenv("TRACKER_LOGO_DARK"),
		LogoLight:           os.Getenv("TRACKER_LOGO_LIGHT"),
		Timezone:            envOrDefault("TIMEZONE", "Asia/Jerusalem"),
		AdvancementSchedule: envOrDefault("ADVANCEMENT_SCHEDULE", "0 7 * * *"),
		StaticHolidays:      os.Getenv("STATIC_HOLIDAYS"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
