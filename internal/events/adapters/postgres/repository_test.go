package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"event-log-service/internal/events/core/domain"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, nil
}

// fakeRowScanner implements RowScanner for tests.
type fakeRow struct {
	values []any
}

type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			v, ok := row.values[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *time.Time:
			v, ok := row.values[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		case *sql.NullString:
			if row.values[i] == nil {
				*d = sql.NullString{}
				continue
			}
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = sql.NullString{String: v, Valid: true}
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface for tests.
type fakeDB struct {
	ExecFn      func(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryFn     func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery   string
	lastArgs    []any
	execCalled  bool
	queryCalled bool
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execCalled = true
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.queryCalled = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

// ------------------------------------------------------------
// INSERT
// ------------------------------------------------------------

func TestEventRepository_InsertEvent(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db)

	other := "Doc"
	e := &domain.Event{
		User:      "Marty",
		Type:      domain.TypeHighfive,
		Date:      time.Date(1985, 10, 26, 9, 3, 0, 0, time.UTC),
		OtherUser: &other,
	}

	if err := repo.InsertEvent(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !db.execCalled {
		t.Fatalf("expected ExecContext to be called")
	}
	if !strings.Contains(db.lastQuery, "INSERT INTO events") {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 5 {
		t.Fatalf("expected 5 args, got %d", len(db.lastArgs))
	}
	if db.lastArgs[2] != "HIGHFIVE" {
		t.Fatalf("expected type arg HIGHFIVE, got %v", db.lastArgs[2])
	}
	// message is nil for a highfive with no message value
	if db.lastArgs[3] != nil {
		t.Fatalf("expected nil message arg, got %v", db.lastArgs[3])
	}
	if db.lastArgs[4] != "Doc" {
		t.Fatalf("expected otheruser arg 'Doc', got %v", db.lastArgs[4])
	}
}

func TestEventRepository_InsertEvent_EnumRejection(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New(`pq: invalid input value for enum event_type: "UNKNOWN"`)
		},
	}
	repo := NewEventRepository(db)

	e := &domain.Event{
		User: "Marty",
		Type: "UNKNOWN",
		Date: time.Now().UTC(),
	}

	if err := repo.InsertEvent(context.Background(), e); err == nil {
		t.Fatalf("expected enum rejection error, got nil")
	}
}

// ------------------------------------------------------------
// LIST
// ------------------------------------------------------------

func TestEventRepository_ListEvents(t *testing.T) {
	date1 := time.Date(2019, 10, 31, 9, 0, 30, 0, time.UTC)
	date2 := time.Date(2019, 10, 31, 9, 3, 0, 0, time.UTC)

	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{
				rows: []fakeRow{
					{values: []any{int64(1), date1, "Marty", "ENTER", nil, nil}},
					{values: []any{int64(2), date2, "Doc", "COMMENT", "Sup marty??", nil}},
				},
			}, nil
		},
	}
	repo := NewEventRepository(db)

	from := time.Date(2019, 10, 31, 9, 0, 0, 0, time.UTC)
	to := time.Date(2019, 10, 31, 9, 3, 0, 0, time.UTC)

	events, err := repo.ListEvents(context.Background(), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "BETWEEN $1 AND $2") {
		t.Fatalf("expected inclusive BETWEEN range, got: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "ORDER BY date ASC") {
		t.Fatalf("expected ascending date order, got: %s", db.lastQuery)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != domain.TypeEnter || events[0].Message != nil {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].Type != domain.TypeComment {
		t.Fatalf("unexpected second event type: %s", events[1].Type)
	}
	if events[1].Message == nil || *events[1].Message != "Sup marty??" {
		t.Fatalf("expected message to survive the scan, got %v", events[1].Message)
	}
}

func TestEventRepository_ListEvents_QueryError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db error")
		},
	}
	repo := NewEventRepository(db)

	_, err := repo.ListEvents(context.Background(), time.Now(), time.Now())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// ------------------------------------------------------------
// DELETE ALL
// ------------------------------------------------------------

func TestEventRepository_DeleteAllEvents(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db)

	if err := repo.DeleteAllEvents(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.lastQuery, "DELETE FROM events") {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 0 {
		t.Fatalf("expected unconditional delete, got args: %v", db.lastArgs)
	}
}
