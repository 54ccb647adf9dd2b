package postgres

import (
	"context"
	"database/sql"
	"time"

	"event-log-service/internal/events/core/domain"
	"event-log-service/internal/events/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQL templates. "user" is quoted because it is a reserved word in Postgres.
const insertEventSQL = `
INSERT INTO events (
    date,
    "user",
    type,
    message,
    otheruser
) VALUES (
    $1, $2, $3, $4, $5
);
`

const listEventsSQL = `
SELECT id, date, "user", type, message, otheruser
FROM events
WHERE date BETWEEN $1 AND $2
ORDER BY date ASC;
`

const deleteAllEventsSQL = `DELETE FROM events;`

// InsertEvent relies on the event_type enum to reject unknown types; the
// driver error passes through as-is.
func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) error {
	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.Date,
		e.User,
		string(e.Type),
		nullableString(e.Message),
		nullableString(e.OtherUser),
	)
	return err
}

func (r *EventRepository) ListEvents(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listEventsSQL, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			e       domain.Event
			typ     string
			message sql.NullString
			other   sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Date, &e.User, &typ, &message, &other); err != nil {
			return nil, err
		}
		e.Type = domain.EventType(typ)
		if message.Valid {
			e.Message = &message.String
		}
		if other.Valid {
			e.OtherUser = &other.String
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) DeleteAllEvents(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, deleteAllEventsSQL)
	return err
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
