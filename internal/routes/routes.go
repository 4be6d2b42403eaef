package routes

import (
	"github.com/fittrack/fittrack-backend/internal/handlers"
	"github.com/fittrack/fittrack-backend/internal/middleware"
	"github.com/fittrack/fittrack-backend/internal/services"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r *chi.Mux, tokens *services.TokenService) {
	r.Route("/api", func(api chi.Router) {
		// Public routes
		api.Post("/auth/register", handlers.Register)
		api.Post("/auth/login", handlers.Login)
		api.Get("/workout/library", handlers.GetWorkoutLibrary)
		api.Post("/calculator/bmi", handlers.CalculateBMI)
		api.Post("/calculator/bmr", handlers.CalculateBMR)
		api.Post("/calculator/tdee", handlers.CalculateTDEE)

		// Everything else requires a valid bearer token
		api.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAuth(tokens))

			protected.Post("/food/analyze", handlers.AnalyzeFood)
			protected.Post("/food/log", handlers.CreateFoodLog)
			protected.Get("/food/log", handlers.GetFoodLogs)
			protected.Delete("/food/log/{id}", handlers.DeleteFoodLog)

			protected.Post("/water/log", handlers.CreateWaterLog)
			protected.Get("/water/log", handlers.GetWaterLogs)

			protected.Post("/weight/log", handlers.CreateWeightLog)
			protected.Get("/weight/log", handlers.GetWeightLogs)

			protected.Post("/workout/log", handlers.CreateWorkoutLog)
			protected.Get("/workout/log", handlers.GetWorkoutLogs)
			protected.Delete("/workout/log/{id}", handlers.DeleteWorkoutLog)

			protected.Post("/diet/plan", handlers.GenerateDietPlan)

			protected.Get("/analytics/progress", handlers.GetProgress)
			protected.Get("/analytics/insights", handlers.GetInsights)

			protected.Get("/profile", handlers.GetProfile)
			protected.Put("/profile", handlers.UpdateProfile)
		})
	})
}
