package handlers

import "time"

const dateLayout = "2006-01-02"

type donorDTO struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	BloodType    string    `json:"blood_type"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	LastDonation *string   `json:"last_donation,omitempty"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
}

type registerDonorRequest struct {
	Name         string  `json:"name"`
	BloodType    string  `json:"blood_type"`
	Phone        string  `json:"phone"`
	Location     string  `json:"location"`
	LastDonation *string `json:"last_donation,omitempty"`
}

type setAvailabilityRequest struct {
	Available *bool `json:"available"`
}

type requestDTO struct {
	ID        int64     `json:"id"`
	Hospital  string    `json:"hospital"`
	BloodType string    `json:"blood_type"`
	Units     int       `json:"units"`
	Urgency   string    `json:"urgency"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type submitRequestRequest struct {
	Hospital  string `json:"hospital"`
	BloodType string `json:"blood_type"`
	Units     int    `json:"units"`
	Urgency   string `json:"urgency"`
	Location  string `json:"location"`
}

type submitRequestResponse struct {
	Request        requestDTO `json:"request"`
	MatchingDonors int        `json:"matching_donors"`
}

type respondRequest struct {
	DonorID int64 `json:"donor_id"`
}

type respondResponse struct {
	Request  requestDTO   `json:"request"`
	DonorID  int64        `json:"donor_id"`
	Hospital *hospitalDTO `json:"hospital,omitempty"`
}

type hospitalDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Location string `json:"location"`
}

type matchResponse struct {
	BloodType string     `json:"blood_type"`
	Location  string     `json:"location,omitempty"`
	Count     int        `json:"count"`
	Donors    []donorDTO `json:"donors"`
}

type statsDTO struct {
	Donors     int64 `json:"donors"`
	Requests   int64 `json:"requests"`
	Hospitals  int64 `json:"hospitals"`
	LivesSaved int64 `json:"lives_saved"`
}
