package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/fittrack/fittrack-backend/internal/database"
	"github.com/fittrack/fittrack-backend/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fittrack/fittrack-backend/pkg/utils"
)

type RegisterRequest struct {
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Name          string   `json:"name"`
	Age           *int     `json:"age"`
	Height        *float64 `json:"height"`
	CurrentWeight *float64 `json:"current_weight"`
	GoalWeight    *float64 `json:"goal_weight"`
	ActivityLevel string   `json:"activity_level"`
	Goal          string   `json:"goal"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by both register and login.
type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// Register creates a user and returns a fresh token.
func Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "A valid email is required")
		return
	}
	if req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Email, password, and name are required")
		return
	}
	if req.ActivityLevel == "" {
		req.ActivityLevel = "moderate"
	}
	if req.Goal == "" {
		req.Goal = "maintenance"
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	users := database.DB.Collection(database.UsersCollection)

	// Check if the email is already registered
	err := users.FindOne(ctx, bson.M{"email": req.Email}).Err()
	if err == nil {
		writeError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("[Register] Failed to check existing email: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Email:         req.Email,
		Password:      hashedPassword,
		Name:          req.Name,
		Age:           req.Age,
		Height:        req.Height,
		CurrentWeight: req.CurrentWeight,
		GoalWeight:    req.GoalWeight,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
	}

	if _, err := users.InsertOne(ctx, user); err != nil {
		// The unique email index can race a concurrent registration.
		if mongo.IsDuplicateKeyError(err) {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Printf("[Register] Failed to insert user: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := tokenService.IssueToken(user.ID)
	if err != nil {
		log.Printf("[Register] Failed to issue token: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
	})
}

// Login authenticates an existing user and returns a fresh token. Unknown
// email and wrong password produce the same error so neither check leaks.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	var user models.User
	err := database.DB.Collection(database.UsersCollection).FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
		} else {
			log.Printf("[Login] Failed to look up user: %v", err)
			writeError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := tokenService.IssueToken(user.ID)
	if err != nil {
		log.Printf("[Login] Failed to issue token: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
	})
}
