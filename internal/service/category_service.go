package service

import (
	"context"
	"fmt"

	"oncolearn/internal/errs"
	"oncolearn/internal/models"
	"oncolearn/internal/repository"
)

type CategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	Create(ctx context.Context, actor *models.Profile, name, description string) (*models.Category, error)
	Update(ctx context.Context, actor *models.Profile, categoryID int64, name, description string) (*models.Category, error)
	Delete(ctx context.Context, actor *models.Profile, categoryID int64) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	docRepo      repository.DocumentRepository
	videoRepo    repository.VideoRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, docRepo repository.DocumentRepository, videoRepo repository.VideoRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		docRepo:      docRepo,
		videoRepo:    videoRepo,
	}
}

func (s *categoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) Create(ctx context.Context, actor *models.Profile, name, description string) (*models.Category, error) {
	if !IsAdmin(actor) {
		return nil, errs.ErrUnauthorized
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", errs.ErrValidation)
	}

	category := &models.Category{Name: name, Description: description}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) Update(ctx context.Context, actor *models.Profile, categoryID int64, name, description string) (*models.Category, error) {
	if !IsAdmin(actor) {
		return nil, errs.ErrUnauthorized
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", errs.ErrValidation)
	}

	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	category := &models.Category{CategoryID: categoryID, Name: name, Description: description}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete refuses to remove a category that still has documents or videos
// assigned to it. The check is exact-count queries against both tables, not a
// database constraint.
func (s *categoryService) Delete(ctx context.Context, actor *models.Profile, categoryID int64) error {
	if !IsAdmin(actor) {
		return errs.ErrUnauthorized
	}

	docCount, err := s.docRepo.CountByCategory(ctx, categoryID)
	if err != nil {
		return err
	}

	videoCount, err := s.videoRepo.CountByCategory(ctx, categoryID)
	if err != nil {
		return err
	}

	if docCount+videoCount > 0 {
		return fmt.Errorf("category still has %d content items: %w", docCount+videoCount, errs.ErrValidation)
	}

	return s.categoryRepo.Delete(ctx, categoryID)
}
