package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"whisp/internal/models"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Counts(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	err := r.db.GetContext(ctx, &stats, `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM posts) AS posts,
			(SELECT COUNT(*) FROM likes) AS likes
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}

	return &stats, nil
}
