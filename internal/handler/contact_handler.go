package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/contactdesk/backend/internal/model"
	"github.com/contactdesk/backend/internal/repository"
	"github.com/contactdesk/backend/internal/service"
)

// ContactHandler handles the contact list/create/delete endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// createRequest is the expected JSON body for POST /api/contacts.
type createRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// List handles GET /api/contacts. Contacts come back newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("list contacts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}

	// Return [] not null for an empty table
	if contacts == nil {
		contacts = []*model.Contact{}
	}

	writeJSON(w, http.StatusOK, contacts)
}

// Create handles POST /api/contacts.
// name and phone are required; email and message are optional.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := h.contactService.Create(r.Context(), model.ContactInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) || errors.Is(err, service.ErrPhoneRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create contact failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

// Delete handles DELETE /api/contacts/{id}.
// A second delete of the same id reports 404, not success.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.contactService.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIDRequired):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "Contact not found")
		default:
			slog.Error("delete contact failed", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "Failed to delete contact")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Contact deleted successfully"})
}
