package models

import "time"

type User struct {
	ID        string    `bson:"id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`

	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"` // Don't return password hash in JSON
	Name     string `bson:"name" json:"name"`

	Age           *int     `bson:"age" json:"age"`
	Height        *float64 `bson:"height" json:"height"`
	CurrentWeight *float64 `bson:"current_weight" json:"current_weight"`
	GoalWeight    *float64 `bson:"goal_weight" json:"goal_weight"`
	ActivityLevel string   `bson:"activity_level" json:"activity_level"`
	Goal          string   `bson:"goal" json:"goal"`
}

// ProfileUpdate is a partial-update patch: only non-nil fields are applied.
type ProfileUpdate struct {
	Name          *string  `json:"name"`
	Age           *int     `json:"age"`
	Height        *float64 `json:"height"`
	CurrentWeight *float64 `json:"current_weight"`
	GoalWeight    *float64 `json:"goal_weight"`
	ActivityLevel *string  `json:"activity_level"`
	Goal          *string  `json:"goal"`
}
