package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/secureauth/secure-auth-be/internal/auth"
	"github.com/secureauth/secure-auth-be/internal/models"
	"github.com/secureauth/secure-auth-be/internal/services"
)

// AuthHandler handles registration, login and current-user lookup.
type AuthHandler struct {
	users   services.UserServiceProvider
	tokens  *auth.TokenService
	devMode bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, tokens *auth.TokenService, devMode bool) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, devMode: devMode}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

// Register handles new user registration and issues the first token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "Invalid request body"})
		return
	}

	user, err := h.users.CreateUser(payload.Name, payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Registration rejected")
		writeError(w, err, h.devMode, "Server error during registration")
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to sign token")
		writeError(w, err, h.devMode, "Server error during registration")
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Success: true, Token: token, User: user})
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "Invalid request body"})
		return
	}

	user, err := h.users.AuthenticateUser(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed authentication attempt")
		writeError(w, err, h.devMode, "Server error during login")
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to sign token")
		writeError(w, err, h.devMode, "Server error during login")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Success: true, Token: token, User: user})
}

// GetMe returns the user identified by the verified token's claims. The
// account may have been deleted since the token was issued, so absence is a
// 404, not a server error.
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"msg": "Could not retrieve user from token"})
		return
	}

	user, err := h.users.GetUserByID(claims.UserID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Msg("User from token not found")
		writeError(w, err, h.devMode, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
