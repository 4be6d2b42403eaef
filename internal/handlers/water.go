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

// GetWaterLogsResponse includes the running total for the selected window.
type GetWaterLogsResponse struct {
	Logs    []models.WaterLog `json:"logs"`
	TotalML float64           `json:"total_ml"`
}

// CreateWaterLog stores a water log owned by the authenticated caller.
func CreateWaterLog(w http.ResponseWriter, r *http.Request) {
	var req models.WaterLogCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	logEntry := models.WaterLog{
		ID:        uuid.NewString(),
		UserID:    middleware.UserID(r),
		AmountML:  req.AmountML,
		Timestamp: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	if _, err := database.DB.Collection(database.WaterLogsCollection).InsertOne(ctx, logEntry); err != nil {
		log.Printf("[CreateWaterLog] Insert failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create water log")
		return
	}

	writeJSON(w, http.StatusOK, logEntry)
}

// GetWaterLogs lists the caller's water logs newest-first with a running
// total, optionally for a single calendar day (?date=YYYY-MM-DD).
func GetWaterLogs(w http.ResponseWriter, r *http.Request) {
	filter, err := ownerFilter(middleware.UserID(r), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	cursor, err := database.DB.Collection(database.WaterLogsCollection).Find(ctx, filter, findOptions)
	if err != nil {
		log.Printf("[GetWaterLogs] Find failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch water logs")
		return
	}
	defer cursor.Close(ctx)

	logs := []models.WaterLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		log.Printf("[GetWaterLogs] Decode failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch water logs")
		return
	}

	var total float64
	for _, l := range logs {
		total += l.AmountML
	}

	writeJSON(w, http.StatusOK, GetWaterLogsResponse{Logs: logs, TotalML: total})
}
