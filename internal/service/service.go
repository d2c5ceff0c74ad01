package service

import (
	"errors"

	"whisp/internal/config"
	"whisp/internal/notifier"
	"whisp/internal/repository"
	"whisp/internal/storage"
)

var (
	ErrUnauthenticated = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidContent  = errors.New("invalid content")
)

type Service struct {
	Session SessionService
	Post    PostService
	Like    LikeService
	User    UserService
	Report  ReportService
	Stats   StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, notify notifier.Notifier) *Service {
	return &Service{
		Session: NewSessionService(rep.User, cfg),
		Post:    NewPostService(rep.Post, rep.Like, storage, notify, cfg),
		Like:    NewLikeService(rep.Like),
		User:    NewUserService(rep.User),
		Report:  NewReportService(rep.Post, notify),
		Stats:   NewStatsService(rep.Stats),
	}
}
