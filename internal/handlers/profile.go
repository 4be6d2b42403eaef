package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/fittrack/fittrack-backend/internal/database"
	"github.com/fittrack/fittrack-backend/internal/middleware"
	"github.com/fittrack/fittrack-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetProfile returns the authenticated user's profile. The password hash
// never leaves the model (json:"-").
func GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	var user models.User
	err := database.DB.Collection(database.UsersCollection).FindOne(ctx, bson.M{
		"id": middleware.UserID(r),
	}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusNotFound, "User not found")
		} else {
			log.Printf("[GetProfile] Failed to fetch user: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch profile")
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile applies a partial update: only fields present in the body
// are changed.
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := bson.M{}
	if patch.Name != nil {
		update["name"] = *patch.Name
	}
	if patch.Age != nil {
		update["age"] = *patch.Age
	}
	if patch.Height != nil {
		update["height"] = *patch.Height
	}
	if patch.CurrentWeight != nil {
		update["current_weight"] = *patch.CurrentWeight
	}
	if patch.GoalWeight != nil {
		update["goal_weight"] = *patch.GoalWeight
	}
	if patch.ActivityLevel != nil {
		update["activity_level"] = *patch.ActivityLevel
	}
	if patch.Goal != nil {
		update["goal"] = *patch.Goal
	}

	if len(update) == 0 {
		writeError(w, http.StatusBadRequest, "No data to update")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	result, err := database.DB.Collection(database.UsersCollection).UpdateOne(ctx, bson.M{
		"id": middleware.UserID(r),
	}, bson.M{"$set": update})
	if err != nil {
		log.Printf("[UpdateProfile] Update failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if result.MatchedCount == 0 {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Profile updated successfully"})
}
