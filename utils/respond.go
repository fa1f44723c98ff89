package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError renders err as {"error": message}. Errors that are not an
// *AppError become a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, StatusCode(err), map[string]string{"error": PublicMessage(err)})
}

// WriteMessage renders {"error": message} with status.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}
