package services

import (
	"errors"
	"math"
	"strings"
)

var ErrMissingField = errors.New("missing required field")

// activityMultipliers maps activity level strings to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// defaultActivityMultiplier is used when the activity level is unrecognized.
const defaultActivityMultiplier = 1.55

// CalculatorInput carries the fields shared by the BMI/BMR/TDEE calculators.
// Weight in kg, height in cm.
type CalculatorInput struct {
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           *int    `json:"age"`
	Gender        *string `json:"gender"`
	ActivityLevel *string `json:"activity_level"`
}

// CalculateBMI returns weight(kg) / height(m)^2 and its category.
func CalculateBMI(weightKG, heightCM float64) (bmi float64, category string) {
	heightM := heightCM / 100
	bmi = weightKG / (heightM * heightM)

	category = "Normal"
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi >= 25 && bmi < 30:
		category = "Overweight"
	case bmi >= 30:
		category = "Obese"
	}
	return round2(bmi), category
}

// CalculateBMR computes the Mifflin-St Jeor basal metabolic rate. Returns
// ErrMissingField when age or gender is absent.
func CalculateBMR(in CalculatorInput) (float64, error) {
	if in.Age == nil || in.Gender == nil {
		return 0, ErrMissingField
	}

	bmr := 10*in.Weight + 6.25*in.Height - 5*float64(*in.Age)
	if strings.ToLower(*in.Gender) == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return round2(bmr), nil
}

// CalculateTDEE multiplies BMR by the activity multiplier. Unrecognized
// activity levels fall back to the moderate multiplier. Returns
// ErrMissingField when age, gender, or activity level is absent.
func CalculateTDEE(in CalculatorInput) (tdee, bmr float64, err error) {
	if in.Age == nil || in.Gender == nil || in.ActivityLevel == nil {
		return 0, 0, ErrMissingField
	}

	bmr, err = CalculateBMR(in)
	if err != nil {
		return 0, 0, err
	}

	mult, ok := activityMultipliers[strings.ToLower(*in.ActivityLevel)]
	if !ok {
		mult = defaultActivityMultiplier
	}
	return round2(bmr * mult), bmr, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
