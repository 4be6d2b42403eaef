package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/fittrack/fittrack-backend/internal/middleware"
	"github.com/fittrack/fittrack-backend/internal/models"
)

// GenerateDietPlan delegates plan generation to the diet model and relays
// the parsed result. One blocking round trip, no retry.
func GenerateDietPlan(w http.ResponseWriter, r *http.Request) {
	var req models.DietPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	plan, err := planner.GenerateDietPlan(r.Context(), req)
	if err != nil {
		log.Printf("[GenerateDietPlan] Generation failed for user %s: %v", middleware.UserID(r), err)
		writeError(w, http.StatusInternalServerError, "Plan generation failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, plan)
}
