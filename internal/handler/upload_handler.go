package handlers

import (
	"fmt"
	"log"
	"net/http"
)

type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// UploadImage stores a post image and returns the URL to attach to a
// subsequent post creation.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	viewer := h.requireViewer(w, r)
	if viewer == nil {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("File too large (max %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Failed to process file", http.StatusBadRequest)
		}
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Unsupported file type. Allowed: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	imageURL, err := h.PostService.UploadImage(r.Context(), fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		log.Printf("Failed to upload image: %v", err)
		WriteError(w, "Failed to upload image", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, UploadResponse{ImageURL: imageURL}, http.StatusCreated)
}
