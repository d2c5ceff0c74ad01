package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"

	"whisp/internal/models"
	"whisp/internal/service"
)

type SessionResponse struct {
	AccessToken string       `json:"accessToken"`
	User        *models.User `json:"user"`
}

// CreateSession is the terminal step of the identity-provider sign-in:
// the provider callback posts the verified claims here, the user row is
// found or created, and a session token comes back. The call itself is
// authenticated by the shared provider secret, not by a user session.
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	secret := r.Header.Get("X-Provider-Secret")
	if h.Cfg.Session.ProviderSecret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(h.Cfg.Session.ProviderSecret)) != 1 {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"required"`
		Image string `json:"image"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid sign-in data", http.StatusBadRequest)
		return
	}

	user, err := h.SessionService.EnsureUser(r.Context(), service.SessionClaims{
		Email: req.Email,
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		log.Printf("Failed to ensure user: %v", err)
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	accessToken, err := h.SessionService.IssueToken(user)
	if err != nil {
		log.Printf("Failed to issue session token: %v", err)
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, SessionResponse{AccessToken: accessToken, User: user}, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	viewer := h.requireViewer(w, r)
	if viewer == nil {
		return
	}

	WriteJSON(w, viewer, http.StatusOK)
}
