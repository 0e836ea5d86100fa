package domain

import "strings"

// BloodType is an ABO/Rh blood type.
type BloodType string

// List of canonical blood types
const (
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
)

var allBloodTypes = [...]BloodType{
	BloodTypeOPos, BloodTypeONeg,
	BloodTypeAPos, BloodTypeANeg,
	BloodTypeBPos, BloodTypeBNeg,
	BloodTypeABPos, BloodTypeABNeg,
}

// BloodTypes returns the eight canonical blood types.
func BloodTypes() []BloodType {
	out := make([]BloodType, len(allBloodTypes))
	copy(out, allBloodTypes[:])
	return out
}

// Valid checks if the BloodType is one of the canonical types
func (t BloodType) Valid() bool {
	for _, v := range allBloodTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ParseBloodType normalizes user input ("ab+ " -> "AB+"). The second result
// reports whether the normalized value is a canonical type.
func ParseBloodType(raw string) (BloodType, bool) {
	t := BloodType(strings.ToUpper(strings.TrimSpace(raw)))
	return t, t.Valid()
}
