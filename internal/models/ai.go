package models

import "time"

// FoodAnalysis is the nutrition estimate for an uploaded food photo.
type FoodAnalysis struct {
	FoodName   string    `json:"food_name"`
	Calories   float64   `json:"calories"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fat        float64   `json:"fat"`
	Fiber      float64   `json:"fiber"`
	Sugar      float64   `json:"sugar"`
	Confidence string    `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

type DietPlanRequest struct {
	Goal               string  `json:"goal"`
	CurrentWeight      float64 `json:"current_weight"`
	GoalWeight         float64 `json:"goal_weight"`
	ActivityLevel      string  `json:"activity_level"`
	DietaryPreferences string  `json:"dietary_preferences"`
}

type DietPlan struct {
	Plan            string             `json:"plan"`
	DailyCalories   int                `json:"daily_calories"`
	MacroSplit      map[string]float64 `json:"macro_split"`
	MealSuggestions []string           `json:"meal_suggestions"`
}
