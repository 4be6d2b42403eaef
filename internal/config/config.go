package config

import (
	"os"
	"strings"
)

type Config struct {
	MongoURI       string
	DBName         string
	RedisURI       string
	JWTSecret      string
	GeminiAPIKey   string
	Port           string
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS (comma-separated)
	Environment    string   // ENV: production, development, etc.
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	return &Config{
		MongoURI:       getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/fittrack")),
		DBName:         getEnv("DB_NAME", "fittrack"),
		RedisURI:       getEnv("REDIS_URI", "redis://localhost:6379/0"),
		JWTSecret:      getEnv("JWT_SECRET", "fitness_tracker_secret_key_change_in_production"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: allowedOrigins,
		Environment:    env,
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
