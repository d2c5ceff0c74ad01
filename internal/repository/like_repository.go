package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"whisp/internal/models"
)

type LikeRepositoryImpl struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) *LikeRepositoryImpl {
	return &LikeRepositoryImpl{db: db}
}

// Create inserts the (user, post) pair and lets the database decide the
// race: a duplicate pair comes back as ErrAlreadyLiked, a vanished post
// as ErrPostNotFound through the foreign key.
func (r *LikeRepositoryImpl) Create(ctx context.Context, like *models.Like) error {
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO likes (user_id, post_id, created_at)
		VALUES (:user_id, :post_id, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, like)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return ErrAlreadyLiked
		}
		if strings.Contains(err.Error(), "violates foreign key constraint") &&
			strings.Contains(err.Error(), "post_id") {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

// Delete removes the pair if present. Zero affected rows is a success:
// unlike is idempotent, unlike Like.
func (r *LikeRepositoryImpl) Delete(ctx context.Context, userID, postID string) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return nil
}

func (r *LikeRepositoryImpl) DeleteByPostID(ctx context.Context, postID string) error {
	query := `DELETE FROM likes WHERE post_id = $1`

	_, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete likes for post: %w", err)
	}

	return nil
}

func (r *LikeRepositoryImpl) CountByPostID(ctx context.Context, postID string) (int, error) {
	query := `SELECT COUNT(*) FROM likes WHERE post_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}

func (r *LikeRepositoryImpl) Exists(ctx context.Context, userID, postID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND post_id = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return exists, nil
}
