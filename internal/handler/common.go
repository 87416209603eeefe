package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/motorlot/internal/domain"
	"github.com/dangerclosesec/motorlot/internal/middleware"
	"github.com/dangerclosesec/motorlot/internal/model"
	"github.com/dangerclosesec/motorlot/internal/service"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// ListResponse is the envelope for paginated collections.
type ListResponse struct {
	Data  interface{} `json:"data"`
	Count int64       `json:"count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

const defaultPageLimit = 100

// pagination reads the skip/limit query parameters, falling back to 0/100.
func pagination(r *http.Request) (skip, limit int) {
	skip, limit = 0, defaultPageLimit
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}
	return skip, limit
}

// currentUser resolves the authenticated user stored in the request context by
// the auth middleware.
func currentUser(r *http.Request, users *service.UserService) (*model.User, error) {
	raw, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	return users.GetByID(r.Context(), id)
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
