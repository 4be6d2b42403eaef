package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// mongoTimeout bounds every single-document store operation.
const mongoTimeout = 5 * time.Second

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
