package models

// Event is the POST /events payload. All three fields must be present and
// correctly typed; validation happens during request binding, so the
// handler never sees an invalid Event. The identifier and type strings
// carry no format constraints, so empty strings are valid — pointer
// binding distinguishes an absent key from a present-but-empty value.
// event_data must be a JSON object. Events are request-scoped only and
// never persisted.
type Event struct {
	EventID   *string                `json:"event_id" binding:"required"`
	EventType *string                `json:"event_type" binding:"required"`
	EventData map[string]interface{} `json:"event_data" binding:"required"`
}

// Ack is returned by POST /events on successful intake.
type Ack struct {
	Message string `json:"message"`
}
