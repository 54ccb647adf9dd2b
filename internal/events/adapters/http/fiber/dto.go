package fiber

// CreateEventRequest represents the event creation payload. Optional
// fields are pointers so that absent and null can be told apart from an
// empty string.
// @Description Event creation DTO
type CreateEventRequest struct {
	Date      *string `json:"date"`
	User      *string `json:"user"`
	Type      *string `json:"type"`
	Message   *string `json:"message"`
	OtherUser *string `json:"otheruser"`
}

// StatusResponse is the body of every write endpoint and every failure.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// EventsResponse wraps serialized events or summary rows.
type EventsResponse struct {
	Events []any `json:"events"`
}
