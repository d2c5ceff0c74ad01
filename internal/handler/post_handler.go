package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"whisp/internal/repository"
	"whisp/internal/service"
)

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	authorID := r.URL.Query().Get("userId")
	viewerID := h.optionalViewerID(r)

	posts, err := h.PostService.ListPosts(r.Context(), authorID, viewerID)
	if err != nil {
		log.Printf("Failed to fetch posts: %v", err)
		WriteError(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := r.URL.Query().Get("id")
	if postID == "" {
		WriteError(w, "Missing post ID", http.StatusBadRequest)
		return
	}

	viewerID := h.optionalViewerID(r)

	post, err := h.PostService.GetPost(r.Context(), postID, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Printf("Error fetching post: %v", err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	viewer := h.requireViewer(w, r)
	if viewer == nil {
		return
	}

	var req struct {
		Content  string  `json:"content"`
		ImageURL *string `json:"imageUrl"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), viewer, req.Content, req.ImageURL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidContent) {
			WriteError(w, "Invalid content", http.StatusBadRequest)
			return
		}
		log.Printf("Failed to create post: %v", err)
		WriteError(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	viewer := h.requireViewer(w, r)
	if viewer == nil {
		return
	}

	postID := r.URL.Query().Get("id")
	if postID == "" {
		WriteError(w, "Post ID required", http.StatusBadRequest)
		return
	}

	err := h.PostService.DeletePost(r.Context(), viewer, postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			WriteError(w, "Post not found", http.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			WriteError(w, "Forbidden", http.StatusForbidden)
		default:
			log.Printf("Failed to delete post: %v", err)
			WriteError(w, "Failed to delete post", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post deleted"}, http.StatusOK)
}

// ModDeletePost is the moderation variant: any post, admins only.
func (h *Handlers) ModDeletePost(w http.ResponseWriter, r *http.Request) {
	viewer := h.requireViewer(w, r)
	if viewer == nil {
		return
	}

	postID := r.URL.Query().Get("id")
	if postID == "" {
		WriteError(w, "Post ID required", http.StatusBadRequest)
		return
	}

	err := h.PostService.ModeratorDeletePost(r.Context(), viewer, postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			WriteError(w, "Forbidden", http.StatusForbidden)
		case errors.Is(err, repository.ErrPostNotFound):
			WriteError(w, "Post not found", http.StatusNotFound)
		default:
			log.Printf("Failed to delete post: %v", err)
			WriteError(w, "Failed to delete post", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post deleted"}, http.StatusOK)
}
