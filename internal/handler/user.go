// internal/handler/user.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/motorlot/internal/domain"
	"github.com/dangerclosesec/motorlot/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Me returns the authenticated user's own record.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	respondWithJSON(w, http.StatusOK, caller)
}

// UpdateMe applies a sparse profile update for the caller.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	var input service.UserSelfUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.UpdateMe(r.Context(), caller, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// UpdateMyPassword verifies the current credential and stores a new one.
func (h *UserHandler) UpdateMyPassword(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	var input service.UpdatePasswordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.userService.UpdatePassword(r.Context(), caller, input); err != nil {
		if errors.Is(err, domain.ErrInvalidPassword) {
			respondWithError(w, http.StatusBadRequest, "Incorrect password")
			return
		}
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}

// List returns all users. Superuser only.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	skip, limit := pagination(r)
	users, count, err := h.userService.List(r.Context(), caller, skip, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{Data: users, Count: count})
}

// Create provisions a user account. Superuser only.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	var input service.UserCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.CreateUser(r.Context(), caller, input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			respondWithError(w, http.StatusConflict, "Email already exists")
			return
		}
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

// Get returns a user by ID. Superuser only.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(r.Context(), caller, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// Update applies a sparse update to a user. Superuser only.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var input service.UserAdminUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.UpdateUser(r.Context(), caller, id, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// Delete removes a user. Superuser only.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(r.Context(), caller, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}

func (h *UserHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "User request error", "error", err, "requestID", chmw.GetReqID(r.Context()))
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		respondWithError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrPermissionDenied):
		respondWithError(w, http.StatusBadRequest, "Not enough permissions")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
