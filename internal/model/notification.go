package model

// Notification is an append-only log entry in the notification sink.
// Timestamp is the server's RFC3339 arrival time.
type Notification struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NotifyRequest is the inbound payload for the sink. Message is optional:
// an empty message is recorded with a placeholder rather than rejected.
type NotifyRequest struct {
	Message string `json:"message"`
}
