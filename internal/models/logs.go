package models

import "time"

// Every log row is owned by exactly one user; reads and deletes must filter
// by the owning user_id.

type FoodLog struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	FoodName  string    `bson:"food_name" json:"food_name"`
	Calories  float64   `bson:"calories" json:"calories"`
	Protein   float64   `bson:"protein" json:"protein"`
	Carbs     float64   `bson:"carbs" json:"carbs"`
	Fat       float64   `bson:"fat" json:"fat"`
	Fiber     float64   `bson:"fiber" json:"fiber"`
	Sugar     float64   `bson:"sugar" json:"sugar"`
	MealType  string    `bson:"meal_type" json:"meal_type"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type FoodLogCreate struct {
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	MealType string  `json:"meal_type"`
}

type WaterLog struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	AmountML  float64   `bson:"amount_ml" json:"amount_ml"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type WaterLogCreate struct {
	AmountML float64 `json:"amount_ml"`
}

type WeightLog struct {
	ID                string    `bson:"id" json:"id"`
	UserID            string    `bson:"user_id" json:"user_id"`
	Weight            float64   `bson:"weight" json:"weight"`
	BodyFatPercentage *float64  `bson:"body_fat_percentage" json:"body_fat_percentage"`
	Timestamp         time.Time `bson:"timestamp" json:"timestamp"`
}

type WeightLogCreate struct {
	Weight            float64  `json:"weight"`
	BodyFatPercentage *float64 `json:"body_fat_percentage"`
}

type WorkoutLog struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	ExerciseName    string    `bson:"exercise_name" json:"exercise_name"`
	Sets            int       `bson:"sets" json:"sets"`
	Reps            int       `bson:"reps" json:"reps"`
	Weight          *float64  `bson:"weight" json:"weight"`
	DurationMinutes *int      `bson:"duration_minutes" json:"duration_minutes"`
	CaloriesBurned  *float64  `bson:"calories_burned" json:"calories_burned"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Timestamp       time.Time `bson:"timestamp" json:"timestamp"`
}

type WorkoutLogCreate struct {
	ExerciseName    string   `json:"exercise_name"`
	Sets            int      `json:"sets"`
	Reps            int      `json:"reps"`
	Weight          *float64 `json:"weight"`
	DurationMinutes *int     `json:"duration_minutes"`
	CaloriesBurned  *float64 `json:"calories_burned"`
	Notes           string   `json:"notes"`
}
