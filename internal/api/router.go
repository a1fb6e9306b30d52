package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/secureauth/secure-auth-be/internal/api/handlers"
	"github.com/secureauth/secure-auth-be/internal/auth"
	"github.com/secureauth/secure-auth-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(userService services.UserServiceProvider, contactService services.ContactServiceProvider, tokens *auth.TokenService, corsOrigin string, devMode bool) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for the SPA front-end
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens, devMode)
	contactHandler := handlers.NewContactHandler(contactService, devMode)

	r.Get("/", infoHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/contact", contactHandler.Submit)

		// Token-gated routes
		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware())
			r.Get("/user", authHandler.GetMe)
		})
	})

	return r
}

// infoHandler reports that the service is up and which endpoints exist.
func infoHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Secure Auth System API is running",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"register": "POST /auth/register",
			"login":    "POST /auth/login",
			"getUser":  "GET /auth/user",
			"contact":  "POST /auth/contact",
		},
	})
}
