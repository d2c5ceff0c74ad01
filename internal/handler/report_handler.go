package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"whisp/internal/repository"
	"whisp/internal/service"
)

func (h *Handlers) ReportPost(w http.ResponseWriter, r *http.Request) {
	viewer := h.requireViewer(w, r)
	if viewer == nil {
		return
	}

	// postContent is still accepted for older clients but never used:
	// the reported content is re-fetched from storage by id.
	var req struct {
		PostID      string `json:"postId" validate:"required"`
		PostContent string `json:"postContent"`
		Reason      string `json:"reason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Post ID required", http.StatusBadRequest)
		return
	}

	err := h.ReportService.ReportPost(r.Context(), viewer, req.PostID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			WriteError(w, "Post not found", http.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			WriteError(w, "Cannot report your own post", http.StatusForbidden)
		default:
			log.Printf("Failed to submit report: %v", err)
			WriteError(w, "Failed to submit report", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Report submitted"}, http.StatusOK)
}
