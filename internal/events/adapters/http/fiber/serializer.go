package fiber

import (
	"strings"
	"time"

	"event-log-service/internal/events/core/domain"
)

// Per-type field profiles. Each profile is a struct so the field set is
// closed: a LEAVE event with a stray message value never surfaces it.
type baseEventJSON struct {
	Date string `json:"date"`
	Type string `json:"type"`
	User string `json:"user"`
}

type commentEventJSON struct {
	baseEventJSON
	Message *string `json:"message"`
}

type highfiveEventJSON struct {
	baseEventJSON
	OtherUser *string `json:"otheruser"`
}

// serializeEvent picks the profile from the event type. Unknown types
// fall back to the base profile; they can only occur for rows that
// bypassed create-time normalization.
func serializeEvent(e domain.Event) any {
	base := baseEventJSON{
		Date: formatInstant(e.Date),
		Type: strings.ToLower(string(e.Type)),
		User: e.User,
	}

	switch e.Type {
	case domain.TypeComment:
		return commentEventJSON{baseEventJSON: base, Message: e.Message}
	case domain.TypeHighfive:
		return highfiveEventJSON{baseEventJSON: base, OtherUser: e.OtherUser}
	default:
		return base
	}
}

// formatInstant renders an ISO-8601 UTC instant with second precision
// and a Z suffix, e.g. 2019-10-31T09:00:30Z. Clients depend on this
// exact shape.
func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
