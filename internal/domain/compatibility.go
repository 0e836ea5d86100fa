package domain

// compatibility maps a recipient blood type to the donor types that may
// donate to it. Never mutated after init.
var compatibility = map[BloodType][]BloodType{
	BloodTypeOPos:  {BloodTypeOPos, BloodTypeONeg},
	BloodTypeONeg:  {BloodTypeONeg},
	BloodTypeAPos:  {BloodTypeAPos, BloodTypeANeg, BloodTypeOPos, BloodTypeONeg},
	BloodTypeANeg:  {BloodTypeANeg, BloodTypeONeg},
	BloodTypeBPos:  {BloodTypeBPos, BloodTypeBNeg, BloodTypeOPos, BloodTypeONeg},
	BloodTypeBNeg:  {BloodTypeBNeg, BloodTypeONeg},
	BloodTypeABPos: {BloodTypeAPos, BloodTypeANeg, BloodTypeBPos, BloodTypeBNeg, BloodTypeABPos, BloodTypeABNeg, BloodTypeOPos, BloodTypeONeg},
	BloodTypeABNeg: {BloodTypeANeg, BloodTypeBNeg, BloodTypeABNeg, BloodTypeONeg},
}

// EligibleDonorTypes returns the donor types that may donate to a recipient
// of the given type. Unknown types yield an empty slice.
func EligibleDonorTypes(recipient BloodType) []BloodType {
	types, ok := compatibility[recipient]
	if !ok {
		return []BloodType{}
	}
	out := make([]BloodType, len(types))
	copy(out, types)
	return out
}

// CanDonateTo reports whether a donor of type donor may give blood to a
// recipient of type recipient.
func CanDonateTo(donor, recipient BloodType) bool {
	for _, t := range compatibility[recipient] {
		if t == donor {
			return true
		}
	}
	return false
}

// RecipientTypes returns the recipient types a donor of the given type may
// donate to, in canonical order. Unknown types yield an empty slice.
func RecipientTypes(donor BloodType) []BloodType {
	out := make([]BloodType, 0, len(allBloodTypes))
	for _, recipient := range allBloodTypes {
		if CanDonateTo(donor, recipient) {
			out = append(out, recipient)
		}
	}
	return out
}
