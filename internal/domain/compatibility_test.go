package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEligibleDonorTypes_Table(t *testing.T) {
	t.Parallel()

	cases := map[BloodType][]BloodType{
		BloodTypeOPos:  {"O+", "O-"},
		BloodTypeONeg:  {"O-"},
		BloodTypeAPos:  {"A+", "A-", "O+", "O-"},
		BloodTypeANeg:  {"A-", "O-"},
		BloodTypeBPos:  {"B+", "B-", "O+", "O-"},
		BloodTypeBNeg:  {"B-", "O-"},
		BloodTypeABPos: {"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"},
		BloodTypeABNeg: {"A-", "B-", "AB-", "O-"},
	}
	require.Len(t, cases, len(BloodTypes()))

	for recipient, want := range cases {
		require.ElementsMatch(t, want, EligibleDonorTypes(recipient), "recipient %s", recipient)
	}
}

func TestEligibleDonorTypes_UnknownIsEmpty(t *testing.T) {
	t.Parallel()

	for _, raw := range []BloodType{"XYZ", "", "o+", "AB"} {
		got := EligibleDonorTypes(raw)
		require.NotNil(t, got)
		require.Empty(t, got)
	}
}

func TestEligibleDonorTypes_ReturnsCopy(t *testing.T) {
	t.Parallel()

	got := EligibleDonorTypes(BloodTypeONeg)
	got[0] = BloodTypeABPos

	require.Equal(t, []BloodType{BloodTypeONeg}, EligibleDonorTypes(BloodTypeONeg))
}

func TestCanDonateTo(t *testing.T) {
	t.Parallel()

	require.True(t, CanDonateTo(BloodTypeONeg, BloodTypeABPos))
	require.True(t, CanDonateTo(BloodTypeONeg, BloodTypeONeg))
	require.True(t, CanDonateTo(BloodTypeAPos, BloodTypeABPos))
	require.False(t, CanDonateTo(BloodTypeABPos, BloodTypeOPos))
	require.False(t, CanDonateTo(BloodTypeOPos, BloodTypeANeg))
	require.False(t, CanDonateTo("XYZ", BloodTypeABPos))
	require.False(t, CanDonateTo(BloodTypeONeg, "XYZ"))
}

func TestCanDonateTo_AgreesWithEligibleTypes(t *testing.T) {
	t.Parallel()

	for _, recipient := range BloodTypes() {
		eligible := EligibleDonorTypes(recipient)
		for _, donor := range BloodTypes() {
			require.Equal(t, contains(eligible, donor), CanDonateTo(donor, recipient),
				"donor %s recipient %s", donor, recipient)
		}
	}
}

func TestRecipientTypes(t *testing.T) {
	t.Parallel()

	require.Equal(t, BloodTypes(), RecipientTypes(BloodTypeONeg))
	require.Equal(t, []BloodType{BloodTypeABPos}, RecipientTypes(BloodTypeABPos))
	require.Equal(t, []BloodType{BloodTypeAPos, BloodTypeABPos}, RecipientTypes(BloodTypeAPos))
	require.Empty(t, RecipientTypes("XYZ"))
}

func contains(list []BloodType, t BloodType) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}
