package domain

// Hospital is static reference data about a requesting hospital.
type Hospital struct {
	ID       int64
	Name     string
	Code     string
	Location string
}

// Stats summarizes the stored data for the dashboard counters.
type Stats struct {
	Donors     int64
	Requests   int64
	Hospitals  int64
	LivesSaved int64
}

// Each donor is assumed to have donated twice, and one donation can save up to three lives.
const (
	donationsPerDonor = 2
	livesPerDonation  = 3
)

// EstimateLivesSaved returns the lives-saved estimate for the given number of donors.
func EstimateLivesSaved(donors int64) int64 {
	return donors * donationsPerDonor * livesPerDonation
}
