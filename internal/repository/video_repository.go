package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"oncolearn/internal/errs"
	"oncolearn/internal/models"
)

type videoRepository struct {
	db *sqlx.DB
}

func NewVideoRepository(db *sqlx.DB) VideoRepository {
	return &videoRepository{db: db}
}

const videoColumns = `
	v.id, v.title, v.description, v.category_id, v.user_id,
	v.status, v.file_url, v.created_at,
	COALESCE(c.name, '') AS category_name,
	COALESCE(u.username, '') AS author_name
`

func (r *videoRepository) Create(ctx context.Context, video *models.Video) error {
	query := `
		INSERT INTO videos (title, description, category_id, user_id, status, file_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now()
	}

	err := r.db.QueryRowxContext(ctx, query,
		video.Title,
		video.Description,
		video.CategoryID,
		video.UserID,
		video.Status,
		video.FileURL,
		video.CreatedAt,
	).Scan(&video.VideoID)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, videoID int64) (*models.Video, error) {
	var video models.Video

	query := `
		SELECT ` + videoColumns + `
		FROM videos v
		LEFT JOIN categories c ON c.id = v.category_id
		LEFT JOIN users u ON u.id = v.user_id
		WHERE v.id = $1
	`

	err := r.db.GetContext(ctx, &video, query, videoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("video %d: %w", videoID, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return &video, nil
}

func (r *videoRepository) List(ctx context.Context, filter ContentFilter) ([]*models.Video, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos v
		LEFT JOIN categories c ON c.id = v.category_id
		LEFT JOIN users u ON u.id = v.user_id
	`

	where, args := contentWhere("v", filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY v.created_at DESC"

	var videos []*models.Video
	err := r.db.SelectContext(ctx, &videos, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	return videos, nil
}

func (r *videoRepository) Update(ctx context.Context, video *models.Video) error {
	query := `
		UPDATE videos
		SET title = $1, description = $2, category_id = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		video.Title,
		video.Description,
		video.CategoryID,
		video.VideoID,
	)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}

	return checkAffected(result, errs.ErrNotFound)
}

func (r *videoRepository) UpdateStatus(ctx context.Context, videoID int64, status models.Status) error {
	query := `UPDATE videos SET status = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, videoID)
	if err != nil {
		return fmt.Errorf("failed to update video status: %w", err)
	}

	return checkAffected(result, errs.ErrNotFound)
}

func (r *videoRepository) Delete(ctx context.Context, videoID int64) error {
	query := `DELETE FROM videos WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, videoID)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	return checkAffected(result, errs.ErrNotFound)
}

func (r *videoRepository) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM videos WHERE category_id = $1`

	err := r.db.GetContext(ctx, &count, query, categoryID)
	if err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}

	return count, nil
}
