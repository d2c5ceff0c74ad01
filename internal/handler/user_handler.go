package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"whisp/internal/models"
	"whisp/internal/repository"
)

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	id := r.URL.Query().Get("id")

	var profile *models.Profile
	var err error

	if username != "" {
		profile, err = h.UserService.GetProfileByName(r.Context(), username)
	} else if id != "" {
		profile, err = h.UserService.GetProfileByID(r.Context(), id)
	} else {
		WriteError(w, "Missing query parameter", http.StatusBadRequest)
		return
	}

	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			WriteError(w, "User not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	viewer := h.requireViewer(w, r)
	if viewer == nil {
		return
	}

	// Decode the whole body but write only the allow-listed fields;
	// anything else a client sends is dropped here.
	var req struct {
		DisplayName *string `json:"displayName"`
		Bio         *string `json:"bio"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	err := h.UserService.UpdateProfile(r.Context(), viewer, req.DisplayName, req.Bio)
	if err != nil {
		log.Printf("Failed to update profile: %v", err)
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Updated"))
}
