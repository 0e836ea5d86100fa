package domain

import "time"

type (
	// Urgency is a descriptive priority label of a blood request.
	Urgency string
	// RequestStatus is the lifecycle state of a blood request.
	RequestStatus string
)

// List of possible urgency levels
const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// List of possible request statuses
const (
	RequestPending   RequestStatus = "Pending"
	RequestFulfilled RequestStatus = "Fulfilled"
)

var allowedUrgencies = [...]Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh}

var allowedRequestStatuses = [...]RequestStatus{RequestPending, RequestFulfilled}

// Valid checks if the Urgency is valid
func (u Urgency) Valid() bool {
	for _, v := range allowedUrgencies {
		if u == v {
			return true
		}
	}
	return false
}

// Valid checks if the RequestStatus is valid
func (s RequestStatus) Valid() bool {
	for _, v := range allowedRequestStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether a request may move from s to next.
// Pending -> Fulfilled is the only transition; staying in place is allowed.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s == next {
		return s.Valid()
	}
	return s == RequestPending && next == RequestFulfilled
}

// Request is a blood request posted by a hospital.
type Request struct {
	ID        int64
	Hospital  string
	BloodType BloodType
	Units     int
	Urgency   Urgency
	Location  string
	Status    RequestStatus
	CreatedAt time.Time
}

// RequestFilter narrows request listings. Nil fields are not applied.
type RequestFilter struct {
	Status *RequestStatus
	Limit  *int
	Offset *int
}

// SubmitResult is returned after a request has been stored.
type SubmitResult struct {
	Request        Request
	MatchingDonors int
}

// Response records that a donor answered a request.
type Response struct {
	RequestID int64
	DonorID   int64
	CreatedAt time.Time
}

// ResponseResult is returned to a donor after answering a request.
type ResponseResult struct {
	Request  Request
	DonorID  int64
	Hospital *Hospital
}

// Notification records that a donor was told about a request.
type Notification struct {
	RequestID int64
	DonorID   int64
	CreatedAt time.Time
}
