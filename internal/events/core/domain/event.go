package domain

import (
	"strings"
	"time"
)

// EventType is the closed set of recorded actions. Values are stored
// upper-case; input is normalized with NormalizeType before persistence.
type EventType string

const (
	TypeEnter    EventType = "ENTER"
	TypeLeave    EventType = "LEAVE"
	TypeComment  EventType = "COMMENT"
	TypeHighfive EventType = "HIGHFIVE"
)

// NormalizeType upper-cases a raw type value. It does not reject unknown
// values; the events table enum does that at insert time.
func NormalizeType(raw string) EventType {
	return EventType(strings.ToUpper(raw))
}

type Event struct {
	ID        int64
	User      string
	Type      EventType
	Date      time.Time
	Message   *string // only meaningful for COMMENT
	OtherUser *string // only meaningful for HIGHFIVE
}
