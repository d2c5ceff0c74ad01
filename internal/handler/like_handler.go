package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"whisp/internal/repository"
)

type likeRequest struct {
	PostID string `json:"postId" validate:"required"`
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	viewer := h.requireViewer(w, r)
	if viewer == nil {
		return
	}

	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Post ID required", http.StatusBadRequest)
		return
	}

	err := h.LikeService.LikePost(r.Context(), viewer, req.PostID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyLiked):
			// No-op for the caller: the pair already exists.
			WriteError(w, "Already liked", http.StatusConflict)
		case errors.Is(err, repository.ErrPostNotFound):
			WriteError(w, "Post not found", http.StatusNotFound)
		default:
			log.Printf("Failed to like post: %v", err)
			WriteError(w, "Failed to like post", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post liked"}, http.StatusOK)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	viewer := h.requireViewer(w, r)
	if viewer == nil {
		return
	}

	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Post ID required", http.StatusBadRequest)
		return
	}

	// Succeeds whether or not a like row existed.
	err := h.LikeService.UnlikePost(r.Context(), viewer, req.PostID)
	if err != nil {
		log.Printf("Failed to unlike post: %v", err)
		WriteError(w, "Failed to unlike post", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post unliked"}, http.StatusOK)
}

func (h *Handlers) GetLikes(w http.ResponseWriter, r *http.Request) {
	postID := r.URL.Query().Get("postId")
	if postID == "" {
		WriteError(w, "Post ID required", http.StatusBadRequest)
		return
	}

	viewerID := h.optionalViewerID(r)

	state, err := h.LikeService.GetLikeState(r.Context(), postID, viewerID)
	if err != nil {
		log.Printf("Failed to fetch like state: %v", err)
		WriteError(w, "Failed to fetch likes", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, state, http.StatusOK)
}
