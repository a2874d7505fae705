package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"oncolearn/internal/errs"
	"oncolearn/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

const commentColumns = `
	cm.id, cm.content_type, cm.content_id, cm.user_id, cm.guest_name, cm.guest_role,
	cm.body, cm.created_at,
	COALESCE(u.username, cm.guest_name, '') AS author_name,
	COALESCE(d.title, v.title, '') AS content_title
`

const commentJoins = `
	FROM comments cm
	LEFT JOIN users u ON u.id = cm.user_id
	LEFT JOIN documents d ON cm.content_type = 'document' AND d.id = cm.content_id
	LEFT JOIN videos v ON cm.content_type = 'video' AND v.id = cm.content_id
`

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (content_type, content_id, user_id, guest_name, guest_role, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	err := r.db.QueryRowxContext(ctx, query,
		comment.ContentType,
		comment.ContentID,
		comment.UserID,
		comment.GuestName,
		comment.GuestRole,
		comment.Body,
		comment.CreatedAt,
	).Scan(&comment.CommentID)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	var comment models.Comment

	query := `SELECT ` + commentColumns + commentJoins + ` WHERE cm.id = $1`

	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("comment %d: %w", commentID, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) ListByContent(ctx context.Context, contentType models.ContentType, contentID int64) ([]*models.Comment, error) {
	query := `SELECT ` + commentColumns + commentJoins + `
		WHERE cm.content_type = $1 AND cm.content_id = $2
		ORDER BY cm.created_at
	`

	var comments []*models.Comment
	err := r.db.SelectContext(ctx, &comments, query, contentType, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) ListForModeration(ctx context.Context, filter CommentFilter) ([]*models.Comment, error) {
	query := `SELECT ` + commentColumns + commentJoins

	var conditions []string
	var args []interface{}

	switch filter.AuthorType {
	case "registered":
		conditions = append(conditions, "cm.user_id IS NOT NULL")
	case "guest":
		conditions = append(conditions, "cm.user_id IS NULL")
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(cm.body ILIKE $%d OR COALESCE(u.username, cm.guest_name, '') ILIKE $%d OR COALESCE(d.title, v.title, '') ILIKE $%d)",
			n, n, n))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY cm.created_at DESC"

	var comments []*models.Comment
	err := r.db.SelectContext(ctx, &comments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for moderation: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return checkAffected(result, errs.ErrNotFound)
}

// DeleteByContent clears every comment attached to a content item. Called by
// the deletion coordinator before the item row itself goes away, so comments
// never outlive their content item.
func (r *commentRepository) DeleteByContent(ctx context.Context, contentType models.ContentType, contentID int64) error {
	query := `DELETE FROM comments WHERE content_type = $1 AND content_id = $2`

	_, err := r.db.ExecContext(ctx, query, contentType, contentID)
	if err != nil {
		return fmt.Errorf("failed to delete comments for content: %w", err)
	}

	return nil
}
