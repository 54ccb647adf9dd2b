package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"event-log-service/internal/config"
	eventsRepoPg "event-log-service/internal/events/adapters/postgres"
	"event-log-service/internal/events/core/usecase"

	_ "github.com/lib/pq"
)

func str(s string) *string { return &s }

func mustParse(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		log.Fatalf("bad seed date %q: %v", value, err)
	}
	return t
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	cfg := config.Load()
	if cfg.PostgresDSN == "" {
		log.Fatal("POSTGRES_DSN is not set")
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	repo := eventsRepoPg.NewEventRepository(eventsRepoPg.NewSQLDB(db))
	storeUC := usecase.NewStoreEventUseCase(repo)
	clearUC := usecase.NewClearEventsUseCase(repo)

	seeds := []usecase.StoreEventInput{
		{Date: mustParse("2019-10-31T09:00:55Z"), User: "Biff", Type: "leave"},
		{Date: mustParse("2019-10-31T09:00:40Z"), User: "Marty", Type: "enter"},
		{Date: mustParse("2019-10-31T09:00:30Z"), User: "Marty", Type: "enter"},
		{Date: mustParse("2019-10-31T09:01:00Z"), User: "Marty", Type: "leave"},
		{Date: mustParse("2019-10-31T09:02:00Z"), User: "Marty", Type: "highfive", OtherUser: str("Doc")},
		{Date: mustParse("2019-10-31T09:03:00Z"), User: "Doc", Type: "comment", Message: str("Sup marty??")},
		{Date: mustParse("2019-11-01T09:03:00Z"), User: "Doc", Type: "comment", Message: str("Sup marty??")},
	}

	ctx := context.Background()

	log.Println("creating events")

	if err := clearUC.Execute(ctx); err != nil {
		log.Fatalf("failed to clear events: %v", err)
	}

	for _, in := range seeds {
		if err := storeUC.Execute(ctx, in); err != nil {
			log.Fatalf("failed to seed event for %s: %v", in.User, err)
		}
	}

	log.Printf("seeded %d events", len(seeds))
}
