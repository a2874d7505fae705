package service

import (
	"context"
	"fmt"

	"oncolearn/internal/errs"
	"oncolearn/internal/models"
	"oncolearn/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, author *models.Profile, contentType models.ContentType, contentID int64, body string) (*models.Comment, error)
	AddGuestComment(ctx context.Context, guestName string, guestRole models.Role, contentType models.ContentType, contentID int64, body string) (*models.Comment, error)
	ListByContent(ctx context.Context, viewer *models.Profile, contentType models.ContentType, contentID int64) ([]*models.Comment, error)
	ListForModeration(ctx context.Context, actor *models.Profile, filter repository.CommentFilter) ([]*models.Comment, error)
	Delete(ctx context.Context, actor *models.Profile, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	docRepo     repository.DocumentRepository
	videoRepo   repository.VideoRepository
}

func NewCommentService(commentRepo repository.CommentRepository, docRepo repository.DocumentRepository, videoRepo repository.VideoRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		docRepo:     docRepo,
		videoRepo:   videoRepo,
	}
}

// resolveContent checks that the target content item exists and is visible to
// the commenter.
func (s *commentService) resolveContent(ctx context.Context, viewer *models.Profile, contentType models.ContentType, contentID int64) error {
	switch contentType {
	case models.ContentDocument:
		doc, err := s.docRepo.GetByID(ctx, contentID)
		if err != nil {
			return err
		}
		if !canView(viewer, doc.UserID, doc.Status) {
			return fmt.Errorf("document %d: %w", contentID, errs.ErrNotFound)
		}
		return nil
	case models.ContentVideo:
		video, err := s.videoRepo.GetByID(ctx, contentID)
		if err != nil {
			return err
		}
		if !canView(viewer, video.UserID, video.Status) {
			return fmt.Errorf("video %d: %w", contentID, errs.ErrNotFound)
		}
		return nil
	default:
		return fmt.Errorf("unknown content type %q: %w", contentType, errs.ErrValidation)
	}
}

// AddComment stores a registered-user comment: user reference set, guest
// fields empty.
func (s *commentService) AddComment(ctx context.Context, author *models.Profile, contentType models.ContentType, contentID int64, body string) (*models.Comment, error) {
	if author == nil {
		return nil, errs.ErrUnauthorized
	}
	if body == "" {
		return nil, fmt.Errorf("comment body is required: %w", errs.ErrValidation)
	}

	if err := s.resolveContent(ctx, author, contentType, contentID); err != nil {
		return nil, err
	}

	userID := author.ID
	comment := &models.Comment{
		ContentType: contentType,
		ContentID:   contentID,
		UserID:      &userID,
		Body:        body,
		AuthorName:  author.Username,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// AddGuestComment stores an unauthenticated comment: guest name and role tag
// set, no user reference.
func (s *commentService) AddGuestComment(ctx context.Context, guestName string, guestRole models.Role, contentType models.ContentType, contentID int64, body string) (*models.Comment, error) {
	if guestName == "" {
		return nil, fmt.Errorf("guest name is required: %w", errs.ErrValidation)
	}
	if guestRole != models.RoleUser && guestRole != models.RoleDoctor {
		return nil, fmt.Errorf("guest role must be user or doctor: %w", errs.ErrValidation)
	}
	if body == "" {
		return nil, fmt.Errorf("comment body is required: %w", errs.ErrValidation)
	}

	if err := s.resolveContent(ctx, nil, contentType, contentID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ContentType: contentType,
		ContentID:   contentID,
		GuestName:   &guestName,
		GuestRole:   &guestRole,
		Body:        body,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) ListByContent(ctx context.Context, viewer *models.Profile, contentType models.ContentType, contentID int64) ([]*models.Comment, error) {
	if err := s.resolveContent(ctx, viewer, contentType, contentID); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByContent(ctx, contentType, contentID)
}

func (s *commentService) ListForModeration(ctx context.Context, actor *models.Profile, filter repository.CommentFilter) ([]*models.Comment, error) {
	if !IsAdmin(actor) {
		return nil, errs.ErrUnauthorized
	}

	return s.commentRepo.ListForModeration(ctx, filter)
}

// Delete is a hard delete with no undo state, administrator only.
func (s *commentService) Delete(ctx context.Context, actor *models.Profile, commentID int64) error {
	if !IsAdmin(actor) {
		return errs.ErrUnauthorized
	}

	return s.commentRepo.Delete(ctx, commentID)
}
