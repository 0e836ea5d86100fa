package kafka

import (
	"errors"
	"strings"
	"time"

	"blood-donor-connector/internal/domain"
	"blood-donor-connector/internal/service/notify"
)

// EventDTO is the wire form of a request lifecycle event
type EventDTO struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	RequestID int64     `json:"request_id"`
	Hospital  string    `json:"hospital"`
	BloodType string    `json:"blood_type"`
	Units     int       `json:"units"`
	Urgency   string    `json:"urgency"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// FromRequest builds the submitted event for a stored request.
func FromRequest(id string, q domain.Request) EventDTO {
	return EventDTO{
		ID:        id,
		Type:      notify.EventRequestSubmitted,
		RequestID: q.ID,
		Hospital:  q.Hospital,
		BloodType: string(q.BloodType),
		Units:     q.Units,
		Urgency:   string(q.Urgency),
		Location:  q.Location,
		CreatedAt: q.CreatedAt,
	}
}

// Validate rejects events that can never be processed.
func (dto EventDTO) Validate() error {
	if strings.TrimSpace(dto.Type) == "" {
		return Permanent(errors.New("empty event type"))
	}
	if dto.RequestID <= 0 {
		return Permanent(errors.New("missing request_id"))
	}
	return nil
}

// ToDomain converts EventDTO to notify.Event
func ToDomain(dto EventDTO) notify.Event {
	return notify.Event{
		ID:        strings.TrimSpace(dto.ID),
		Type:      strings.TrimSpace(dto.Type),
		RequestID: dto.RequestID,
		BloodType: strings.TrimSpace(dto.BloodType),
		Location:  strings.TrimSpace(dto.Location),
		Urgency:   strings.TrimSpace(dto.Urgency),
		CreatedAt: dto.CreatedAt,
	}
}
