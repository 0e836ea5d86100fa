package domain

import (
	"regexp"
	"time"
)

// Donor represents a registered blood donor.
type Donor struct {
	ID           int64
	Name         string
	BloodType    BloodType
	Phone        string
	Location     string
	LastDonation *time.Time
	Available    bool
	CreatedAt    time.Time
}

// DonorFilter narrows donor listings. Nil fields are not applied.
type DonorFilter struct {
	BloodType *BloodType
	Available *bool
	Limit     *int
	Offset    *int
}

// rePhone accepts local and international formats such as "555-1234" or "+1 555 123 4567".
var rePhone = regexp.MustCompile(`^\+?[0-9][0-9 \-]{4,18}[0-9]$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
