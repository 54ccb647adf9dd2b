package fiber

import (
	"encoding/json"
	"testing"
	"time"

	"event-log-service/internal/events/core/domain"
)

func toJSONMap(t *testing.T, v any) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return m
}

// ------------------------------------------------------------
// BASE PROFILE
// ------------------------------------------------------------
func TestSerializeEvent_BaseProfile(t *testing.T) {
	m := toJSONMap(t, serializeEvent(domain.Event{
		User: "Marty",
		Type: domain.TypeEnter,
		Date: time.Date(2019, 10, 31, 9, 0, 30, 0, time.UTC),
	}))

	if len(m) != 3 {
		t.Fatalf("expected exactly 3 fields, got %d: %v", len(m), m)
	}
	if m["date"] != "2019-10-31T09:00:30Z" {
		t.Fatalf("expected ISO instant with Z suffix, got %v", m["date"])
	}
	if m["type"] != "enter" {
		t.Fatalf("expected lower-cased type, got %v", m["type"])
	}
	if m["user"] != "Marty" {
		t.Fatalf("expected user 'Marty', got %v", m["user"])
	}
}

// ------------------------------------------------------------
// STRAY FIELDS NEVER SURFACE
// ------------------------------------------------------------
func TestSerializeEvent_LeaveDropsStrayMessage(t *testing.T) {
	stray := "should not appear"
	m := toJSONMap(t, serializeEvent(domain.Event{
		User:    "Biff",
		Type:    domain.TypeLeave,
		Date:    time.Date(2019, 10, 31, 9, 0, 55, 0, time.UTC),
		Message: &stray,
	}))

	if _, ok := m["message"]; ok {
		t.Fatalf("leave event must not surface message, got %v", m)
	}
	if len(m) != 3 {
		t.Fatalf("expected exactly 3 fields, got %v", m)
	}
}

// ------------------------------------------------------------
// COMMENT PROFILE
// ------------------------------------------------------------
func TestSerializeEvent_CommentProfile(t *testing.T) {
	msg := "I love plutonium."
	m := toJSONMap(t, serializeEvent(domain.Event{
		User:    "Doc",
		Type:    domain.TypeComment,
		Date:    time.Date(1985, 10, 26, 9, 3, 0, 0, time.UTC),
		Message: &msg,
	}))

	if len(m) != 4 {
		t.Fatalf("expected exactly 4 fields, got %v", m)
	}
	if m["message"] != "I love plutonium." {
		t.Fatalf("expected message, got %v", m["message"])
	}
	if _, ok := m["otheruser"]; ok {
		t.Fatalf("comment event must not surface otheruser")
	}
}

func TestSerializeEvent_CommentNullMessage(t *testing.T) {
	// A comment stored without a message still exposes the field, as null.
	m := toJSONMap(t, serializeEvent(domain.Event{
		User: "Doc",
		Type: domain.TypeComment,
		Date: time.Date(1985, 10, 26, 9, 3, 0, 0, time.UTC),
	}))

	v, ok := m["message"]
	if !ok {
		t.Fatalf("expected message field to be present")
	}
	if v != nil {
		t.Fatalf("expected null message, got %v", v)
	}
}

// ------------------------------------------------------------
// HIGHFIVE PROFILE
// ------------------------------------------------------------
func TestSerializeEvent_HighfiveProfile(t *testing.T) {
	other := "Doc"
	m := toJSONMap(t, serializeEvent(domain.Event{
		User:      "Marty",
		Type:      domain.TypeHighfive,
		Date:      time.Date(1985, 10, 26, 9, 3, 0, 0, time.UTC),
		OtherUser: &other,
	}))

	if len(m) != 4 {
		t.Fatalf("expected exactly 4 fields, got %v", m)
	}
	if m["otheruser"] != "Doc" {
		t.Fatalf("expected otheruser 'Doc', got %v", m["otheruser"])
	}
	if m["type"] != "highfive" {
		t.Fatalf("expected type 'highfive', got %v", m["type"])
	}
	if _, ok := m["message"]; ok {
		t.Fatalf("highfive event must not surface message")
	}
}

// ------------------------------------------------------------
// UNKNOWN TYPE FALLS BACK TO BASE
// ------------------------------------------------------------
func TestSerializeEvent_UnknownTypeFallsBack(t *testing.T) {
	m := toJSONMap(t, serializeEvent(domain.Event{
		User: "Einstein",
		Type: "TELEPORT",
		Date: time.Date(1985, 10, 26, 9, 3, 0, 0, time.UTC),
	}))

	if len(m) != 3 {
		t.Fatalf("expected base profile for unknown type, got %v", m)
	}
	if m["type"] != "teleport" {
		t.Fatalf("expected lower-cased raw type, got %v", m["type"])
	}
}

// ------------------------------------------------------------
// INSTANT FORMAT
// ------------------------------------------------------------
func TestFormatInstant_TruncatesToSecondsUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	got := formatInstant(time.Date(2019, 10, 31, 10, 0, 30, 500_000_000, loc))

	if got != "2019-10-31T09:00:30Z" {
		t.Fatalf("expected 2019-10-31T09:00:30Z, got %s", got)
	}
}
