package events

// EventType identifies a domain event.
type EventType string

const (
	EventUserRegistered EventType = "user.registered"
	EventHomeCreated    EventType = "home.created"
	EventHomeDeleted    EventType = "home.deleted"
	EventInquiryCreated EventType = "home.inquiry_created"
)

// Event carries a domain event and its payload. Payload values must be safe
// to log; password material and proofs never go through the dispatcher.
type Event struct {
	Type    EventType
	HomeID  int64
	UserID  int64
	Payload map[string]any
}
