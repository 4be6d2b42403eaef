package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fittrack/fittrack-backend/internal/services"
)

// CalculateBMI returns the body-mass index and its category.
func CalculateBMI(w http.ResponseWriter, r *http.Request) {
	var input services.CalculatorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Weight <= 0 || input.Height <= 0 {
		writeError(w, http.StatusBadRequest, "Weight and height must be positive")
		return
	}

	bmi, category := services.CalculateBMI(input.Weight, input.Height)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bmi":      bmi,
		"category": category,
	})
}

// CalculateBMR returns the Mifflin-St Jeor basal metabolic rate.
func CalculateBMR(w http.ResponseWriter, r *http.Request) {
	var input services.CalculatorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bmr, err := services.CalculateBMR(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Age and gender required for BMR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"bmr": bmr})
}

// CalculateTDEE returns total daily energy expenditure alongside the BMR.
func CalculateTDEE(w http.ResponseWriter, r *http.Request) {
	var input services.CalculatorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tdee, bmr, err := services.CalculateTDEE(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Age, gender, and activity level required for TDEE")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tdee": tdee,
		"bmr":  bmr,
	})
}
