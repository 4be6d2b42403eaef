package handlers

import "github.com/fittrack/fittrack-backend/internal/services"

var (
	tokenService *services.TokenService
	analyzer     services.NutritionAnalyzer
	planner      services.DietPlanner
)

// Configure wires the handlers' collaborators once at startup. The AI
// delegates are interfaces so the handlers can be exercised without a live
// model endpoint.
func Configure(tokens *services.TokenService, a services.NutritionAnalyzer, p services.DietPlanner) {
	tokenService = tokens
	analyzer = a
	planner = p
}
