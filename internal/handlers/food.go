package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/jpeg"
	"io"
	"log"
	"net/http"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/fittrack/fittrack-backend/internal/database"
	"github.com/fittrack/fittrack-backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fittrack/fittrack-backend/internal/middleware"
)

const maxUploadBytes = 10 << 20 // 10MB

// AnalyzeFood forwards an uploaded food photo to the nutrition model and
// relays the parsed estimate. One blocking round trip, no retry.
func AnalyzeFood(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "An image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	imageData, mimeType := normalizeImage(data, header.Header.Get("Content-Type"))

	analysis, err := analyzer.AnalyzeFoodImage(r.Context(), imageData, mimeType)
	if err != nil {
		log.Printf("[AnalyzeFood] Analysis failed for user %s: %v", middleware.UserID(r), err)
		writeError(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// normalizeImage re-encodes the upload as JPEG so the model always receives a
// format it accepts. Best effort: when decoding fails the raw upload is
// forwarded with its original content type.
func normalizeImage(data []byte, contentType string) ([]byte, string) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if contentType == "" {
			contentType = "image/jpeg"
		}
		return data, contentType
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return data, contentType
	}
	return buf.Bytes(), "image/jpeg"
}

// CreateFoodLog stores a food log owned by the authenticated caller.
func CreateFoodLog(w http.ResponseWriter, r *http.Request) {
	var req models.FoodLogCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	logEntry := models.FoodLog{
		ID:        uuid.NewString(),
		UserID:    middleware.UserID(r),
		FoodName:  req.FoodName,
		Calories:  req.Calories,
		Protein:   req.Protein,
		Carbs:     req.Carbs,
		Fat:       req.Fat,
		Fiber:     req.Fiber,
		Sugar:     req.Sugar,
		MealType:  req.MealType,
		Timestamp: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	if _, err := database.DB.Collection(database.FoodLogsCollection).InsertOne(ctx, logEntry); err != nil {
		log.Printf("[CreateFoodLog] Insert failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create food log")
		return
	}

	writeJSON(w, http.StatusOK, logEntry)
}

// GetFoodLogs lists the caller's food logs newest-first, optionally for a
// single calendar day (?date=YYYY-MM-DD).
func GetFoodLogs(w http.ResponseWriter, r *http.Request) {
	filter, err := ownerFilter(middleware.UserID(r), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	cursor, err := database.DB.Collection(database.FoodLogsCollection).Find(ctx, filter, findOptions)
	if err != nil {
		log.Printf("[GetFoodLogs] Find failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch food logs")
		return
	}
	defer cursor.Close(ctx)

	logs := []models.FoodLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		log.Printf("[GetFoodLogs] Decode failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch food logs")
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

// DeleteFoodLog removes one of the caller's food logs. Owner mismatch and
// unknown ids are indistinguishable: both are 404.
func DeleteFoodLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	result, err := database.DB.Collection(database.FoodLogsCollection).DeleteOne(ctx, bson.M{
		"id":      chi.URLParam(r, "id"),
		"user_id": middleware.UserID(r),
	})
	if err != nil {
		log.Printf("[DeleteFoodLog] Delete failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete food log")
		return
	}
	if result.DeletedCount == 0 {
		writeError(w, http.StatusNotFound, "Log not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Log deleted"})
}
