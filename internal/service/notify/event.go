package notify

import "time"

// EventRequestSubmitted is published once a request has been stored.
const EventRequestSubmitted = "request.submitted"

// Event is a single request lifecycle event
type Event struct {
	ID        string
	Type      string
	RequestID int64
	BloodType string
	Location  string
	Urgency   string
	CreatedAt time.Time
}
