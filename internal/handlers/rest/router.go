package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/KirkDiggler/buddyup/internal/services/auth"
	"github.com/KirkDiggler/buddyup/internal/services/event"
	"github.com/KirkDiggler/buddyup/internal/services/user"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

// Config holds the dependencies of the REST API
type Config struct {
	AuthService  auth.Service
	EventService event.Service
	UserService  user.Service
	Logger       *zap.Logger

	// HealthCheck is optional
	HealthCheck HealthCheck

	// CORSAllowedOrigins defaults to every origin
	CORSAllowedOrigins []string

	// RateLimiter is optional
	RateLimiter *RateLimiter
}

// Handler serves the BuddyUp REST API
type Handler struct {
	authService  auth.Service
	eventService event.Service
	userService  user.Service
	healthCheck  HealthCheck
	logger       *zap.Logger
}

// NewRouter builds the API router wrapped in CORS
func NewRouter(cfg *Config) (http.Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.AuthService == nil {
		return nil, errors.New("auth service cannot be nil")
	}

	if cfg.EventService == nil {
		return nil, errors.New("event service cannot be nil")
	}

	if cfg.UserService == nil {
		return nil, errors.New("user service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &Handler{
		authService:  cfg.AuthService,
		eventService: cfg.EventService,
		userService:  cfg.UserService,
		healthCheck:  cfg.HealthCheck,
		logger:       logger.Named("rest"),
	}

	r := mux.NewRouter()
	r.Use(recoveryMiddleware(h.logger))
	r.Use(loggingMiddleware(h.logger))
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Middleware)
	}
	r.Use(authMiddleware(h.authService))

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Auth
	api.HandleFunc("/auth/facebook/", h.loginFacebook).Methods(http.MethodPost)
	api.HandleFunc("/auth/google/", h.loginGoogle).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh/", h.refresh).Methods(http.MethodPost)

	// Events; fixed paths go before {id}
	api.HandleFunc("/events/search/", h.searchEvents).Methods(http.MethodGet)
	api.HandleFunc("/events/filter/", h.filterEvents).Methods(http.MethodGet)
	api.HandleFunc("/events/fetch/random/", h.randomEvents).Methods(http.MethodGet)
	api.HandleFunc("/events/created/", requireAuth(h.createdEvents)).Methods(http.MethodGet)
	api.HandleFunc("/events/joined/", requireAuth(h.joinedEvents)).Methods(http.MethodGet)
	api.HandleFunc("/events/new/", requireAuth(h.createEvent)).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}/", h.getEvent).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}/", requireAuth(h.updateEvent)).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/events/{id}/", requireAuth(h.deleteEvent)).Methods(http.MethodDelete)
	api.HandleFunc("/events/{id}/join/", requireAuth(h.joinEvent)).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}/leave/", requireAuth(h.leaveEvent)).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}/cancel/", requireAuth(h.cancelEvent)).Methods(http.MethodPost)

	// Users
	api.HandleFunc("/users/idtoname/", h.usernames).Methods(http.MethodGet)
	api.HandleFunc("/users/update/", requireAuth(h.updateProfile)).Methods(http.MethodPost, http.MethodPatch)
	api.HandleFunc("/users/upload-profile-image/", requireAuth(h.uploadProfileImage)).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}/", requireAuth(h.getUser)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/update/", requireAuth(h.updateProfile)).Methods(http.MethodPost, http.MethodPatch)
	api.HandleFunc("/users/{id}/profile-image/", h.getProfileImage).Methods(http.MethodGet)

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return c.Handler(r), nil
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.healthCheck != nil {
		if err := h.healthCheck(r.Context()); err != nil {
			h.logger.Warn("health check failed", zap.Error(err))
			RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
			})
			return
		}
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "buddyup",
	})
}
