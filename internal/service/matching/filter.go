package matching

import (
	"slices"
	"strings"

	"blood-donor-connector/internal/domain"
)

// Filter returns the donors that may give blood to a recipient of the
// requested type: compatible type, available, and in the given location
// when one is set. The result is ordered by donor id and never nil.
func Filter(donors []domain.Donor, requested domain.BloodType, location string) []domain.Donor {
	out := make([]domain.Donor, 0)
	eligible := domain.EligibleDonorTypes(requested)
	if len(eligible) == 0 {
		return out
	}

	location = strings.TrimSpace(location)
	for _, d := range donors {
		if !d.Available || !slices.Contains(eligible, d.BloodType) {
			continue
		}
		if location != "" && !strings.EqualFold(strings.TrimSpace(d.Location), location) {
			continue
		}
		out = append(out, d)
	}

	slices.SortFunc(out, func(a, b domain.Donor) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}
