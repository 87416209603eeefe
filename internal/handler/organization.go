// internal/handler/organization.go
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

type OrganizationHandler struct {
	orgService     *service.OrganizationService
	contactService *service.ContactService
	userService    *service.UserService
}

func NewOrganizationHandler(orgService *service.OrganizationService, contactService *service.ContactService, userService *service.UserService) *OrganizationHandler {
	return &OrganizationHandler{
		orgService:     orgService,
		contactService: contactService,
		userService:    userService,
	}
}

// List returns the organizations visible to the caller.
func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	skip, limit := pagination(r)
	orgs, count, err := h.orgService.List(r.Context(), caller, skip, limit)
	if err != nil {
		slog.ErrorContext(r.Context(), "Listing organizations", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{Data: orgs, Count: count})
}

// Get returns a single organization by ID.
func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	org, err := h.orgService.Get(r.Context(), caller, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}

// Create persists a new organization owned by the caller.
func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	var input service.OrganizationCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	org, err := h.orgService.Create(r.Context(), caller, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, org)
}

// Update applies a sparse update to an organization.
func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var input service.OrganizationUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	org, err := h.orgService.Update(r.Context(), caller, id, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}

// Delete removes an organization and its contact records.
func (h *OrganizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	if err := h.orgService.Delete(r.Context(), caller, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Organization deleted successfully"})
}

// AddEmail attaches a contact email to an organization.
func (h *OrganizationHandler) AddEmail(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var input service.EmailCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	email, err := h.contactService.AddOrganizationEmail(r.Context(), caller, id, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, email)
}

// AddPhone attaches a contact phone to an organization.
func (h *OrganizationHandler) AddPhone(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, h.userService)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var input service.PhoneCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	phone, err := h.contactService.AddOrganizationPhone(r.Context(), caller, id, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, phone)
}

func (h *OrganizationHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Organization request error", "error", err, "requestID", chmw.GetReqID(r.Context()))
	switch {
	case errors.Is(err, domain.ErrOrganizationNotFound):
		respondWithError(w, http.StatusNotFound, "Organization not found")
	case errors.Is(err, domain.ErrPermissionDenied):
		// 400 rather than 403 is the contract clients already rely on
		respondWithError(w, http.StatusBadRequest, "Not enough permissions")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
