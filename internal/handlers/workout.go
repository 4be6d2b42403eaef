package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/fittrack/fittrack-backend/internal/database"
	"github.com/fittrack/fittrack-backend/internal/middleware"
	"github.com/fittrack/fittrack-backend/internal/models"
	"github.com/fittrack/fittrack-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateWorkoutLog stores a workout log owned by the authenticated caller.
func CreateWorkoutLog(w http.ResponseWriter, r *http.Request) {
	var req models.WorkoutLogCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ExerciseName == "" {
		writeError(w, http.StatusBadRequest, "Exercise name is required")
		return
	}

	logEntry := models.WorkoutLog{
		ID:              uuid.NewString(),
		UserID:          middleware.UserID(r),
		ExerciseName:    req.ExerciseName,
		Sets:            req.Sets,
		Reps:            req.Reps,
		Weight:          req.Weight,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		Notes:           req.Notes,
		Timestamp:       time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	if _, err := database.DB.Collection(database.WorkoutLogsCollection).InsertOne(ctx, logEntry); err != nil {
		log.Printf("[CreateWorkoutLog] Insert failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create workout log")
		return
	}

	writeJSON(w, http.StatusOK, logEntry)
}

// GetWorkoutLogs lists the caller's workout logs newest-first, optionally for
// a single calendar day (?date=YYYY-MM-DD).
func GetWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	filter, err := ownerFilter(middleware.UserID(r), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	cursor, err := database.DB.Collection(database.WorkoutLogsCollection).Find(ctx, filter, findOptions)
	if err != nil {
		log.Printf("[GetWorkoutLogs] Find failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch workout logs")
		return
	}
	defer cursor.Close(ctx)

	logs := []models.WorkoutLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		log.Printf("[GetWorkoutLogs] Decode failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch workout logs")
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

// DeleteWorkoutLog removes one of the caller's workout logs.
func DeleteWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	result, err := database.DB.Collection(database.WorkoutLogsCollection).DeleteOne(ctx, bson.M{
		"id":      chi.URLParam(r, "id"),
		"user_id": middleware.UserID(r),
	})
	if err != nil {
		log.Printf("[DeleteWorkoutLog] Delete failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete workout log")
		return
	}
	if result.DeletedCount == 0 {
		writeError(w, http.StatusNotFound, "Log not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Log deleted"})
}

// GetWorkoutLibrary returns the static video catalog, filtered by the
// optional muscle_group and difficulty query params. No auth.
func GetWorkoutLibrary(w http.ResponseWriter, r *http.Request) {
	videos := services.FilterWorkoutLibrary(
		r.URL.Query().Get("muscle_group"),
		r.URL.Query().Get("difficulty"),
	)
	writeJSON(w, http.StatusOK, videos)
}
