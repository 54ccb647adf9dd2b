package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-log-service/internal/config"
	"event-log-service/internal/httpx"
	"event-log-service/internal/logger"

	eventsHttp "event-log-service/internal/events/adapters/http/fiber"
	eventsRepoPg "event-log-service/internal/events/adapters/postgres"
	eventsUsecase "event-log-service/internal/events/core/usecase"

	summaryHttp "event-log-service/internal/summary/adapters/http/fiber"
	summaryRepoPg "event-log-service/internal/summary/adapters/postgres"
	summaryUsecase "event-log-service/internal/summary/core/usecase"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "event-log-service/docs"
)

func main() {
	// Config
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg := config.Load()
	if cfg.PostgresDSN == "" {
		log.Fatal("POSTGRES_DSN is not set")
	}

	slogger := logger.NewLogger(slog.LevelInfo)

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeMinutes) * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Adapter-level DB wrappers
	eventsDB := eventsRepoPg.NewSQLDB(db)
	summaryDB := summaryRepoPg.NewSQLDB(db)

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(eventsDB)
	summaryRepository := summaryRepoPg.NewSummaryRepository(summaryDB)

	// Usecases
	storeEventUC := eventsUsecase.NewStoreEventUseCase(eventRepository)
	listEventsUC := eventsUsecase.NewListEventsUseCase(eventRepository)
	clearEventsUC := eventsUsecase.NewClearEventsUseCase(eventRepository)
	getSummaryUC := summaryUsecase.NewGetSummaryUseCase(summaryRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(storeEventUC, listEventsUC, clearEventsUC, slogger)
	app.Post("/events", httpx.RequireBodyParams(slogger, "date", "user", "type"), eventsHandler.CreateEvent)
	app.Post("/events/clear", eventsHandler.ClearEvents)
	app.Get("/events", httpx.RequireQueryParams(slogger, "from", "to"), eventsHandler.ListEvents)

	// summary endpoint
	summaryHandler := summaryHttp.NewSummaryHandler(getSummaryUC, slogger)
	app.Get("/events/summary", httpx.RequireQueryParams(slogger, "from", "to", "by"), summaryHandler.GetSummary)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			slogger.Error("fiber stopped", "error", err)
		}
	}()

	slogger.Info("server started", "addr", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	slogger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		slogger.Error("fiber shutdown error", "error", err)
	}

	slogger.Info("server exiting")
}
