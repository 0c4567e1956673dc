package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ankitsahucodes/BookNest-Backend/internal/repository"
	"github.com/ankitsahucodes/BookNest-Backend/internal/service"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// handleServiceError maps the service/repository error taxonomy onto
// status codes. fallback is the endpoint's static message for failures
// that carry no kind of their own; the underlying error is logged, never
// sent to the client.
func handleServiceError(w http.ResponseWriter, err error, fallback string) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: ve.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, repository.ErrInvalidID):
		respondError(w, http.StatusBadRequest, "Invalid id.")
	case errors.Is(err, repository.ErrBookNotFound):
		respondError(w, http.StatusNotFound, "Book not found.")
	case errors.Is(err, repository.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, repository.ErrAddressNotFound):
		respondError(w, http.StatusNotFound, "Address not found")
	case errors.Is(err, repository.ErrDuplicateEmail):
		respondError(w, http.StatusConflict, "Email already registered")
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
