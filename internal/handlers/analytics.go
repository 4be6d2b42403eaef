package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/fittrack/fittrack-backend/internal/database"
	"github.com/fittrack/fittrack-backend/internal/middleware"
	"github.com/fittrack/fittrack-backend/internal/models"
	"github.com/fittrack/fittrack-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sinceFilter restricts a collection query to one user's logs with
// timestamp >= cutoff.
func sinceFilter(userID string, cutoff time.Time) bson.M {
	return bson.M{
		"user_id":   userID,
		"timestamp": bson.M{"$gte": cutoff},
	}
}

// GetProgress aggregates weight trend, daily nutrition, and workout counts
// over a rolling window (?days=, default 30).
func GetProgress(w http.ResponseWriter, r *http.Request) {
	days := 30
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "Invalid days parameter")
			return
		}
		days = parsed
	}

	userID := middleware.UserID(r)
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	// Weight trend is ascending so the chart reads oldest to newest.
	weightLogs := []models.WeightLog{}
	cursor, err := database.DB.Collection(database.WeightLogsCollection).Find(ctx,
		sinceFilter(userID, cutoff), options.Find().SetSort(bson.M{"timestamp": 1}))
	if err == nil {
		err = cursor.All(ctx, &weightLogs)
	}
	if err != nil {
		log.Printf("[GetProgress] Failed to fetch weight logs: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}

	foodLogs := []models.FoodLog{}
	cursor, err = database.DB.Collection(database.FoodLogsCollection).Find(ctx, sinceFilter(userID, cutoff))
	if err == nil {
		err = cursor.All(ctx, &foodLogs)
	}
	if err != nil {
		log.Printf("[GetProgress] Failed to fetch food logs: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}

	workoutLogs := []models.WorkoutLog{}
	cursor, err = database.DB.Collection(database.WorkoutLogsCollection).Find(ctx, sinceFilter(userID, cutoff))
	if err == nil {
		err = cursor.All(ctx, &workoutLogs)
	}
	if err != nil {
		log.Printf("[GetProgress] Failed to fetch workout logs: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}

	writeJSON(w, http.StatusOK, services.BuildProgress(weightLogs, foodLogs, workoutLogs))
}

// GetInsights classifies the last 7 days of protein and water intake.
func GetInsights(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	cutoff := time.Now().UTC().AddDate(0, 0, -7)

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	foodLogs := []models.FoodLog{}
	cursor, err := database.DB.Collection(database.FoodLogsCollection).Find(ctx, sinceFilter(userID, cutoff))
	if err == nil {
		err = cursor.All(ctx, &foodLogs)
	}
	if err != nil {
		log.Printf("[GetInsights] Failed to fetch food logs: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch insights")
		return
	}

	waterLogs := []models.WaterLog{}
	cursor, err = database.DB.Collection(database.WaterLogsCollection).Find(ctx, sinceFilter(userID, cutoff))
	if err == nil {
		err = cursor.All(ctx, &waterLogs)
	}
	if err != nil {
		log.Printf("[GetInsights] Failed to fetch water logs: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch insights")
		return
	}

	writeJSON(w, http.StatusOK, services.BuildInsights(foodLogs, waterLogs))
}
