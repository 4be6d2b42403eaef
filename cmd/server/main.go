package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/fittrack/fittrack-backend/internal/config"
	"github.com/fittrack/fittrack-backend/internal/database"
	"github.com/fittrack/fittrack-backend/internal/handlers"
	"github.com/fittrack/fittrack-backend/internal/middleware"
	"github.com/fittrack/fittrack-backend/internal/routes"
	"github.com/fittrack/fittrack-backend/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if cfg.GeminiAPIKey == "" {
		log.Println("⚠️  WARNING: GEMINI_API_KEY not set. Food analysis and diet plans will fail.")
	}

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI, cfg.DBName); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	if err := database.EnsureIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure MongoDB indexes: %v", err)
	} else {
		log.Println("✅ MongoDB indexes ensured")
	}

	// Redis is only used for rate limiting; run without it if unavailable
	log.Printf("Connecting to Redis...")
	redisAvailable := true
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		redisAvailable = false
		log.Printf("⚠️  WARNING: Redis unavailable, rate limiting disabled: %v", err)
	} else {
		defer database.DisconnectRedis()
	}

	// Wire services
	tokens := services.NewTokenService(cfg.JWTSecret)
	gemini := services.NewGeminiClient(cfg.GeminiAPIKey)
	handlers.Configure(tokens, gemini, gemini)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if redisAvailable {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, tokens)

	log.Printf("🚀 FitTrack backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
