package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"whisp/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")
	// ErrAlreadyLiked maps the unique-pair violation on likes. The
	// constraint is the only duplicate guard, there is no pre-check.
	ErrAlreadyLiked = errors.New("already liked")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByName(ctx context.Context, name string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, displayName, bio *string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetProjection(ctx context.Context, postID, viewerID string) (*models.PostProjection, error)
	List(ctx context.Context, authorID, viewerID string) ([]models.PostProjection, error)
	Delete(ctx context.Context, postID string) error
}

type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	Delete(ctx context.Context, userID, postID string) error
	DeleteByPostID(ctx context.Context, postID string) error
	CountByPostID(ctx context.Context, postID string) (int, error)
	Exists(ctx context.Context, userID, postID string) (bool, error)
}

type StatsRepository interface {
	Counts(ctx context.Context) (*models.Stats, error)
}

type Repository struct {
	User  UserRepository
	Post  PostRepository
	Like  LikeRepository
	Stats StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:  NewUserRepository(db),
		Post:  NewPostRepository(db),
		Like:  NewLikeRepository(db),
		Stats: NewStatsRepository(db),
	}
}
