package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"expensetracker/backend/models"
	"expensetracker/backend/services"
)

// response is the envelope every endpoint answers with.
type response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Fields  []string    `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondData(w http.ResponseWriter, status int, data interface{}, message string) {
	writeJSON(w, status, response{Success: true, Message: message, Data: data})
}

func respondList(w http.ResponseWriter, data interface{}, count int) {
	writeJSON(w, http.StatusOK, response{Success: true, Count: &count, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Success: false, Message: message})
}

// respondServiceError maps service failures onto HTTP statuses. NotFound
// and Forbidden stay distinct (404 vs 403); anything unexpected is logged
// and answered with a generic 500 so store internals never leak.
func respondServiceError(w http.ResponseWriter, err error, resource string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: ve.Message, Fields: ve.Fields})
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, services.ErrForbidden):
		respondError(w, http.StatusForbidden, "Not authorized to access this "+strings.ToLower(resource))
	default:
		log.Printf("Error handling %s request: %v", resource, err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
