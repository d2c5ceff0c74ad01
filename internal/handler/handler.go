package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"whisp/internal/config"
	"whisp/internal/models"
	"whisp/internal/repository"
	"whisp/internal/service"
)

type Handlers struct {
	SessionService service.SessionService
	PostService    service.PostService
	LikeService    service.LikeService
	UserService    service.UserService
	ReportService  service.ReportService
	StatsService   service.StatsService
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		SessionService: services.Session,
		PostService:    services.Post,
		LikeService:    services.Like,
		UserService:    services.User,
		ReportService:  services.Report,
		StatsService:   services.Stats,
		Cfg:            config,
		Validate:       validator.New(),
	}
}

// requireViewer resolves the session identity or writes the failure and
// returns nil. No session is 401; a session without a user row is 404.
func (h *Handlers) requireViewer(w http.ResponseWriter, r *http.Request) *models.User {
	viewer, err := h.SessionService.ResolveViewer(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			WriteError(w, "Unauthorized", http.StatusUnauthorized)
		case errors.Is(err, repository.ErrUserNotFound):
			WriteError(w, "User not found", http.StatusNotFound)
		default:
			log.Printf("Failed to resolve viewer: %v", err)
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return nil
	}

	return viewer
}

// optionalViewerID resolves the viewer for read endpoints where
// anonymous is fine. Resolution problems degrade to anonymous.
func (h *Handlers) optionalViewerID(r *http.Request) string {
	viewer, err := h.SessionService.ResolveViewer(r.Context())
	if err != nil {
		return ""
	}
	return viewer.UserID
}
