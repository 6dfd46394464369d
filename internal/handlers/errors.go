package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every error answer. The dashboard maps known
// message substrings to user-facing copy and otherwise shows the raw message.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: forbidden: not a member of this household
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}
