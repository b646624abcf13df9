package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/cmd"
	httpadapter "github.com/Vaibhav-crux/delivery-management-system/internal/adapters/in/http"
	"github.com/Vaibhav-crux/delivery-management-system/internal/jobs"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/token"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := cmd.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	tokenMaker, err := token.NewMaker(configs.JWTSecret, configs.JWTExpiry)
	if err != nil {
		log.Fatalf("Failed to create token maker: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, tokenMaker)

	location, err := configs.Location()
	if err != nil {
		log.Fatalf("Invalid scheduler timezone: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateAllocateOrdersCommandHandler(), location, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := buildWebServer(&app, gormDB, configs)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil {
			logger.Info("Web server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	expiry, err := cmd.ParseExpiry(os.Getenv("JWT_EXPIRY_SECONDS"))
	if err != nil {
		log.Fatalf("%v", err)
	}

	rateLimit, err := cmd.ParseRateLimit(os.Getenv("RATE_LIMIT_PER_MINUTE"))
	if err != nil {
		log.Fatalf("%v", err)
	}

	return cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		DBHost:             envOrDefault("DB_HOST", "localhost"),
		DBPort:             envOrDefault("DB_PORT", "5432"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTExpiry:          expiry,
		SchedulerTimezone:  os.Getenv("SCHEDULER_TIMEZONE"),
		RateLimitPerMinute: rateLimit,
		AllowedOrigins:     cmd.ParseOrigins(os.Getenv("ALLOWED_ORIGINS")),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func buildWebServer(app *cmd.CompositionRoot, gormDB *gorm.DB, configs cmd.Config) *echo.Echo {
	server := httpadapter.NewServer(
		gormDB,
		app.CreateSignUpCommandHandler(),
		app.CreateLoginCommandHandler(),
		app.CreateDeactivateUserCommandHandler(),
		app.CreateCreateWarehouseCommandHandler(),
		app.CreateDeactivateWarehouseCommandHandler(),
		app.CreateCreateAgentCommandHandler(),
		app.CreateCheckInAgentCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAllocateOrdersCommandHandler(),
		app.CreateGetWarehousesQueryHandler(),
		app.CreateGetCheckedInAgentsQueryHandler(),
		app.CreateGetAssignmentsQueryHandler(),
	)

	auth := httpadapter.NewAuthMiddleware(app.TokenMaker(), app.CreateUserUoWFactory())

	e := httpadapter.NewRouter(configs.AllowedOrigins, configs.RateLimitPerMinute)
	server.RegisterRoutes(e, auth)
	return e
}
