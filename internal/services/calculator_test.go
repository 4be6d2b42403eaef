package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCalculateBMI_Categories(t *testing.T) {
	cases := []struct {
		name     string
		weight   float64
		height   float64
		bmi      float64
		category string
	}{
		{"normal", 70, 175, 22.86, "Normal"},
		{"underweight", 50, 170, 17.3, "Underweight"},
		{"obese", 100, 170, 34.6, "Obese"},
		{"overweight", 80, 170, 27.68, "Overweight"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bmi, category := CalculateBMI(tc.weight, tc.height)
			require.InDelta(t, tc.bmi, bmi, 0.01)
			require.Equal(t, tc.category, category)
		})
	}
}

func TestCalculateBMI_Boundaries(t *testing.T) {
	// Exactly 18.5 is Normal; exactly 25 is Overweight; exactly 30 is Obese.
	// height 100cm makes BMI == weight.
	_, category := CalculateBMI(18.5, 100)
	require.Equal(t, "Normal", category)

	_, category = CalculateBMI(25, 100)
	require.Equal(t, "Overweight", category)

	_, category = CalculateBMI(30, 100)
	require.Equal(t, "Obese", category)
}

func TestCalculateBMR(t *testing.T) {
	male := CalculatorInput{Weight: 70, Height: 175, Age: intPtr(25), Gender: strPtr("male")}
	bmr, err := CalculateBMR(male)
	require.NoError(t, err)
	require.InDelta(t, 1773.75, bmr, 0.001)

	female := CalculatorInput{Weight: 70, Height: 175, Age: intPtr(25), Gender: strPtr("female")}
	bmr, err = CalculateBMR(female)
	require.NoError(t, err)
	require.InDelta(t, 1607.75, bmr, 0.001)
}

func TestCalculateBMR_MissingFields(t *testing.T) {
	_, err := CalculateBMR(CalculatorInput{Weight: 70, Height: 175, Gender: strPtr("male")})
	require.ErrorIs(t, err, ErrMissingField)

	_, err = CalculateBMR(CalculatorInput{Weight: 70, Height: 175, Age: intPtr(25)})
	require.ErrorIs(t, err, ErrMissingField)
}

func TestCalculateTDEE(t *testing.T) {
	in := CalculatorInput{
		Weight:        70,
		Height:        175,
		Age:           intPtr(25),
		Gender:        strPtr("male"),
		ActivityLevel: strPtr("active"),
	}

	tdee, bmr, err := CalculateTDEE(in)
	require.NoError(t, err)
	require.InDelta(t, 1773.75, bmr, 0.001)
	require.InDelta(t, 3059.72, tdee, 0.01)
}

func TestCalculateTDEE_UnknownActivityDefaultsToModerate(t *testing.T) {
	in := CalculatorInput{
		Weight:        70,
		Height:        175,
		Age:           intPtr(25),
		Gender:        strPtr("male"),
		ActivityLevel: strPtr("couch_surfing"),
	}

	tdee, _, err := CalculateTDEE(in)
	require.NoError(t, err)
	require.InDelta(t, 1773.75*1.55, tdee, 0.01)
}

func TestCalculateTDEE_MissingActivityLevel(t *testing.T) {
	in := CalculatorInput{Weight: 70, Height: 175, Age: intPtr(25), Gender: strPtr("male")}
	_, _, err := CalculateTDEE(in)
	require.ErrorIs(t, err, ErrMissingField)
}
