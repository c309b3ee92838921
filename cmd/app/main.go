package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"careplan/cmd"
	careplanhttp "careplan/internal/adapters/in/http"
	"careplan/internal/adapters/out/postgres/assignmentrepo"
	"careplan/internal/adapters/out/postgres/outboxrepo"
	"careplan/internal/adapters/out/postgres/revisionrepo"
	"careplan/internal/adapters/out/postgres/routerepo"
	"careplan/internal/jobs"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateRelayOutboxEventsCommandHandler(),
		configs.OutboxBatchSize,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := buildWebServer(&app)
	go func() {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Web server stopped: %v", err)
		}
	}()

	// Block until a shutdown signal arrives, then stop the jobs before the
	// server so no relay pass runs against a closing process.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to shut down web server: %v", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		OutboxBatchSize: goDotEnvIntVariable("OUTBOX_BATCH_SIZE", 100),
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

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&routerepo.RouteDTO{},
		&routerepo.GoalDTO{},
		&routerepo.PhaseDTO{},
		&revisionrepo.RevisionDTO{},
		&outboxrepo.EntryDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func buildWebServer(app *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := careplanhttp.NewServer(
		app.CreateCreateRouteCommandHandler(),
		app.CreateUpdateRouteCommandHandler(),
		app.CreateActivateRouteCommandHandler(),
		app.CreateCompleteRouteCommandHandler(),
		app.CreatePauseRouteCommandHandler(),
		app.CreateResumeRouteCommandHandler(),
		app.CreateArchiveRouteCommandHandler(),
		app.CreateAddRouteGoalCommandHandler(),
		app.CreateAddRoutePhaseCommandHandler(),
		app.CreateGetRouteHistoryQueryHandler(),
		app.CreateGetRoutesByChildQueryHandler(),
	)
	server.RegisterRoutes(e)

	return e
}
