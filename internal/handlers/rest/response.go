package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KirkDiggler/buddyup/internal/services/auth"
	"github.com/KirkDiggler/buddyup/internal/services/event"
	"github.com/KirkDiggler/buddyup/internal/services/user"
	"go.uber.org/zap"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithError sends a JSON error response with the given status code and message
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Error: message})
}

// RespondWithJSON sends a JSON response with the given status code and payload
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// parseJSONBody decodes a JSON request body into v
func parseJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// respondWithServiceError maps service errors onto HTTP status codes
func respondWithServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var (
		eventErr event.EventError
		userErr  user.UserError
		authErr  auth.AuthError
	)

	switch {
	case errors.As(err, &eventErr):
		switch eventErr {
		case event.ErrEventNotFound:
			RespondWithError(w, http.StatusNotFound, "Not found.")
		case event.ErrUnauthenticated:
			RespondWithError(w, http.StatusUnauthorized, eventErr.Error())
		case event.ErrNoEditPermission, event.ErrNoDeletePermission, event.ErrNoCancelPermission:
			RespondWithError(w, http.StatusForbidden, eventErr.Error())
		case event.ErrBusy:
			RespondWithError(w, http.StatusConflict, eventErr.Error())
		default:
			// Wrapped filter errors carry the offending value
			RespondWithError(w, http.StatusBadRequest, err.Error())
		}

	case errors.As(err, &userErr):
		switch userErr {
		case user.ErrUserNotFound, user.ErrProfileImageNotFound:
			RespondWithError(w, http.StatusNotFound, userErr.Error())
		case user.ErrUnauthenticated:
			RespondWithError(w, http.StatusUnauthorized, userErr.Error())
		case user.ErrForbidden:
			RespondWithError(w, http.StatusForbidden, userErr.Error())
		default:
			if field := user.Field(userErr); field != "" {
				RespondWithJSON(w, http.StatusBadRequest, map[string][]string{field: {userErr.Error()}})
				return
			}
			RespondWithError(w, http.StatusBadRequest, userErr.Error())
		}

	case errors.As(err, &authErr):
		if authErr == auth.ErrInvalidToken {
			RespondWithError(w, http.StatusUnauthorized, authErr.Error())
			return
		}
		RespondWithError(w, http.StatusBadRequest, authErr.Error())

	default:
		logger.Error("request failed", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
