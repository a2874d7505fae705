package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"oncolearn/internal/errs"
	"oncolearn/internal/models"
)

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

const categoryColumns = `
	cat.id, cat.name, cat.description,
	(SELECT COUNT(*) FROM documents d WHERE d.category_id = cat.id)
	+ (SELECT COUNT(*) FROM videos v WHERE v.category_id = cat.id) AS content_count
`

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query, category.Name, category.Description).Scan(&category.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, categoryID int64) (*models.Category, error) {
	var category models.Category

	query := `SELECT ` + categoryColumns + ` FROM categories cat WHERE cat.id = $1`

	err := r.db.GetContext(ctx, &category, query, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %d: %w", categoryID, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category

	query := `SELECT ` + categoryColumns + ` FROM categories cat ORDER BY cat.name`

	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	query := `UPDATE categories SET name = $1, description = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, category.Name, category.Description, category.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return checkAffected(result, errs.ErrNotFound)
}

func (r *categoryRepository) Delete(ctx context.Context, categoryID int64) error {
	query := `DELETE FROM categories WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return checkAffected(result, errs.ErrNotFound)
}
