// internal/handler/vehicle.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/motorlot/internal/domain"
	"github.com/dangerclosesec/motorlot/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	vehicleService *service.VehicleService
	userService    *service.UserService
}

func NewVehicleHandler(vehicleService *service.VehicleService, userService *service.UserService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		userService:    userService,
	}
}

// List returns the vehicles visible to the caller.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	skip, limit := pagination(r)
	vehicles, count, err := h.vehicleService.List(r.Context(), caller, skip, limit)
	if err != nil {
		slog.ErrorContext(r.Context(), "Listing vehicles", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{Data: vehicles, Count: count})
}

// Get returns a single vehicle by ID.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.Get(r.Context(), caller, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, vehicle)
}

// Create registers a new vehicle. Creation is refused when the VIN is already
// registered or when the referenced organization does not exist.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	var input service.VehicleCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	vehicle, err := h.vehicleService.Create(r.Context(), caller, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Creating vehicle", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondWithError(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, domain.ErrOrganizationNotFound):
			respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Organization with ID %s not found", input.OrganizationID))
		case errors.Is(err, domain.ErrDuplicateVIN):
			respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Vehicle with VIN %s already exists", input.VIN))
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, vehicle)
}

// Update applies a sparse update to a vehicle.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	var input service.VehicleUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	vehicle, err := h.vehicleService.Update(r.Context(), caller, id, input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateVIN) && input.VIN != nil {
			respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Vehicle with VIN %s already exists", *input.VIN))
			return
		}
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, vehicle)
}

// Delete removes a vehicle.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	if err := h.vehicleService.Delete(r.Context(), caller, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Vehicle deleted successfully"})
}

func (h *VehicleHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Vehicle request error", "error", err, "requestID", chmw.GetReqID(r.Context()))
	switch {
	case errors.Is(err, domain.ErrVehicleNotFound):
		respondWithError(w, http.StatusNotFound, "Vehicle not found")
	case errors.Is(err, domain.ErrPermissionDenied):
		// 400 rather than 403 is the contract clients already rely on
		respondWithError(w, http.StatusBadRequest, "Not enough permissions")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
