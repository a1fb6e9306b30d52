package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/secureauth/secure-auth-be/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors to HTTP statuses. Unexpected errors become
// a generic 500; the underlying message is echoed only in development mode.
func writeError(w http.ResponseWriter, err error, devMode bool, fallback string) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": vErr.Message})
	case errors.Is(err, models.ErrDuplicateEmail):
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "User already exists with this email"})
	case errors.Is(err, models.ErrInvalidCredentials):
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "Invalid credentials"})
	case errors.Is(err, models.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"msg": "User not found"})
	default:
		body := map[string]string{"msg": fallback}
		if devMode {
			body["error"] = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, body)
	}
}
