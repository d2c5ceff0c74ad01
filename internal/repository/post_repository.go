package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"whisp/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

// postProjectionRow is the flat scan target for projection queries;
// sqlx cannot fill the nested author struct directly.
type postProjectionRow struct {
	PostID            string    `db:"post_id"`
	Content           string    `db:"content"`
	ImageURL          *string   `db:"image_url"`
	CreatedAt         time.Time `db:"created_at"`
	AuthorID          string    `db:"author_id"`
	AuthorName        string    `db:"author_name"`
	AuthorDisplayName *string   `db:"author_display_name"`
	AuthorImage       *string   `db:"author_image"`
	Likes             int       `db:"likes"`
	LikedByUser       bool      `db:"liked_by_user"`
}

func (row *postProjectionRow) toProjection() models.PostProjection {
	return models.PostProjection{
		PostID:    row.PostID,
		Content:   row.Content,
		ImageURL:  row.ImageURL,
		CreatedAt: row.CreatedAt,
		Author: models.AuthorSummary{
			UserID:      row.AuthorID,
			Name:        row.AuthorName,
			DisplayName: row.AuthorDisplayName,
			Image:       row.AuthorImage,
		},
		Likes:       row.Likes,
		LikedByUser: row.LikedByUser,
	}
}

const projectionSelect = `
	SELECT p.post_id,
	       p.content,
	       p.image_url,
	       p.created_at,
	       u.user_id AS author_id,
	       u.name AS author_name,
	       u.display_name AS author_display_name,
	       u.image AS author_image,
	       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.post_id) AS likes,
	       EXISTS (
	           SELECT 1 FROM likes l
	           WHERE l.post_id = p.post_id AND l.user_id = $1
	       ) AS liked_by_user
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
`

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	query := `
		INSERT INTO posts (post_id, author_id, content, image_url, created_at)
		VALUES (:post_id, :author_id, :content, :image_url, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// GetProjection returns one post with its author summary and like
// aggregates. viewerID may be empty for anonymous viewers.
func (r *PostRepositoryImpl) GetProjection(ctx context.Context, postID, viewerID string) (*models.PostProjection, error) {
	query := projectionSelect + ` WHERE p.post_id = $2`

	var row postProjectionRow
	err := r.db.GetContext(ctx, &row, query, viewerID, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	projection := row.toProjection()
	return &projection, nil
}

// List returns projections newest-first, the whole set, optionally
// narrowed to one author. No pagination at this scale.
func (r *PostRepositoryImpl) List(ctx context.Context, authorID, viewerID string) ([]models.PostProjection, error) {
	query := projectionSelect
	args := []interface{}{viewerID}

	if authorID != "" {
		query += ` WHERE p.author_id = $2`
		args = append(args, authorID)
	}
	query += ` ORDER BY p.created_at DESC`

	var rows []postProjectionRow
	err := r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	projections := make([]models.PostProjection, 0, len(rows))
	for i := range rows {
		projections = append(projections, rows[i].toProjection())
	}

	return projections, nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}
