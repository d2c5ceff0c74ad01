package service

import (
	"context"

	"whisp/internal/models"
	"whisp/internal/notifier"
	"whisp/internal/repository"
)

type ReportService interface {
	ReportPost(ctx context.Context, reporter *models.User, postID, reason string) error
}

type reportService struct {
	postRepo repository.PostRepository
	notify   notifier.Notifier
}

func NewReportService(postRepo repository.PostRepository, notify notifier.Notifier) ReportService {
	return &reportService{
		postRepo: postRepo,
		notify:   notify,
	}
}

// ReportPost forwards an abuse report to the moderation channel. The
// reported content is re-fetched from storage so a client cannot spoof
// what the moderators see. Authors cannot report their own posts.
// Unlike the post lifecycle notifications, delivery failure here fails
// the request: the notification IS the report.
func (s *reportService) ReportPost(ctx context.Context, reporter *models.User, postID, reason string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID == reporter.UserID {
		return ErrForbidden
	}

	return s.notify.AbuseReport(ctx, reporter, post, reason)
}
