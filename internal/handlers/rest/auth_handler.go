package rest

import (
	"net/http"

	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/KirkDiggler/buddyup/internal/services/auth"
)

type facebookLoginRequest struct {
	AccessToken string `json:"access_token"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

func (h *Handler) loginFacebook(w http.ResponseWriter, r *http.Request) {
	var req facebookLoginRequest
	if err := parseJSONBody(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.login(w, r, models.ProviderFacebook, req.AccessToken)
}

func (h *Handler) loginGoogle(w http.ResponseWriter, r *http.Request) {
	var req googleLoginRequest
	if err := parseJSONBody(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.login(w, r, models.ProviderGoogle, req.IDToken)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, provider models.Provider, credential string) {
	pair, err := h.authService.Login(r.Context(), &auth.LoginInput{
		Provider:   provider,
		Credential: credential,
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, pair)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := parseJSONBody(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pair, err := h.authService.Refresh(r.Context(), &auth.RefreshInput{RefreshToken: req.Refresh})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, pair)
}
