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
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateWeightLog stores a weight log owned by the authenticated caller.
func CreateWeightLog(w http.ResponseWriter, r *http.Request) {
	var req models.WeightLogCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	logEntry := models.WeightLog{
		ID:                uuid.NewString(),
		UserID:            middleware.UserID(r),
		Weight:            req.Weight,
		BodyFatPercentage: req.BodyFatPercentage,
		Timestamp:         time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	if _, err := database.DB.Collection(database.WeightLogsCollection).InsertOne(ctx, logEntry); err != nil {
		log.Printf("[CreateWeightLog] Insert failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create weight log")
		return
	}

	writeJSON(w, http.StatusOK, logEntry)
}

// GetWeightLogs lists the caller's weight logs newest-first.
func GetWeightLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	cursor, err := database.DB.Collection(database.WeightLogsCollection).Find(ctx, bson.M{
		"user_id": middleware.UserID(r),
	}, findOptions)
	if err != nil {
		log.Printf("[GetWeightLogs] Find failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch weight logs")
		return
	}
	defer cursor.Close(ctx)

	logs := []models.WeightLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		log.Printf("[GetWeightLogs] Decode failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch weight logs")
		return
	}

	writeJSON(w, http.StatusOK, logs)
}
