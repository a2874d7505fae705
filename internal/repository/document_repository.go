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

type documentRepository struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) DocumentRepository {
	return &documentRepository{db: db}
}

const documentColumns = `
	d.id, d.title, d.description, d.journal, d.year, d.category_id, d.user_id,
	d.status, d.file_url, d.created_at,
	COALESCE(c.name, '') AS category_name,
	COALESCE(u.username, '') AS author_name
`

func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (title, description, journal, year, category_id, user_id, status, file_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	err := r.db.QueryRowxContext(ctx, query,
		doc.Title,
		doc.Description,
		doc.Journal,
		doc.Year,
		doc.CategoryID,
		doc.UserID,
		doc.Status,
		doc.FileURL,
		doc.CreatedAt,
	).Scan(&doc.DocumentID)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

func (r *documentRepository) GetByID(ctx context.Context, documentID int64) (*models.Document, error) {
	var doc models.Document

	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		LEFT JOIN categories c ON c.id = d.category_id
		LEFT JOIN users u ON u.id = d.user_id
		WHERE d.id = $1
	`

	err := r.db.GetContext(ctx, &doc, query, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %d: %w", documentID, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return &doc, nil
}

func (r *documentRepository) List(ctx context.Context, filter ContentFilter) ([]*models.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		LEFT JOIN categories c ON c.id = d.category_id
		LEFT JOIN users u ON u.id = d.user_id
	`

	where, args := contentWhere("d", filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY d.created_at DESC"

	var docs []*models.Document
	err := r.db.SelectContext(ctx, &docs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return docs, nil
}

// Update writes non-status fields only. The status column is owned by the
// moderation path and an owner edit never resets it.
func (r *documentRepository) Update(ctx context.Context, doc *models.Document) error {
	query := `
		UPDATE documents
		SET title = $1, description = $2, journal = $3, year = $4, category_id = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		doc.Title,
		doc.Description,
		doc.Journal,
		doc.Year,
		doc.CategoryID,
		doc.DocumentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	return checkAffected(result, errs.ErrNotFound)
}

func (r *documentRepository) UpdateStatus(ctx context.Context, documentID int64, status models.Status) error {
	query := `UPDATE documents SET status = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, documentID)
	if err != nil {
		return fmt.Errorf("failed to update document status: %w", err)
	}

	return checkAffected(result, errs.ErrNotFound)
}

func (r *documentRepository) Delete(ctx context.Context, documentID int64) error {
	query := `DELETE FROM documents WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return checkAffected(result, errs.ErrNotFound)
}

func (r *documentRepository) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM documents WHERE category_id = $1`

	err := r.db.GetContext(ctx, &count, query, categoryID)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}

	return count, nil
}

// contentWhere builds the visibility clause shared by document and video
// listings: everyone sees verified items, the owner additionally sees their
// own, the admin view lifts the status restriction.
func contentWhere(alias string, filter ContentFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if !filter.AllStatuses {
		if filter.OwnerID != nil {
			args = append(args, models.StatusVerified, *filter.OwnerID)
			conditions = append(conditions, fmt.Sprintf("(%s.status = $%d OR %s.user_id = $%d)", alias, len(args)-1, alias, len(args)))
		} else {
			args = append(args, models.StatusVerified)
			conditions = append(conditions, fmt.Sprintf("%s.status = $%d", alias, len(args)))
		}
	}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("%s.category_id = $%d", alias, len(args)))
	}

	return strings.Join(conditions, " AND "), args
}
