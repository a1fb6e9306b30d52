package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/secureauth/secure-auth-be/internal/services"
)

// ContactHandler handles contact-form submissions.
type ContactHandler struct {
	service services.ContactServiceProvider
	devMode bool
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service services.ContactServiceProvider, devMode bool) *ContactHandler {
	return &ContactHandler{service: service, devMode: devMode}
}

// ContactPayload defines the structure for contact-form requests.
type ContactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit stores a new contact inquiry.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload ContactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "Invalid request body"})
		return
	}

	if _, err := h.service.CreateContact(payload.Name, payload.Email, payload.Subject, payload.Message); err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Contact submission rejected")
		writeError(w, err, h.devMode, "Server error. Please try again later.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"msg":     "Thank you for contacting us! We'll get back to you soon.",
	})
}
