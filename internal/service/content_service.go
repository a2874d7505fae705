package service

import (
	"context"
	"fmt"
	"io"

	"oncolearn/internal/errs"
	"oncolearn/internal/logger"
	"oncolearn/internal/models"
	"oncolearn/internal/repository"
	"oncolearn/internal/storage"
)

type UploadDocumentRequest struct {
	Title       string
	Description string
	Journal     string
	Year        int
	CategoryID  int64
}

type UploadVideoRequest struct {
	Title       string
	Description string
	CategoryID  int64
}

type UpdateDocumentRequest struct {
	Title       *string
	Description *string
	Journal     *string
	Year        *int
	CategoryID  *int64
}

type UpdateVideoRequest struct {
	Title       *string
	Description *string
	CategoryID  *int64
}

type ContentService interface {
	UploadDocument(ctx context.Context, owner *models.Profile, req UploadDocumentRequest, file io.Reader, size int64, fileName string) (*models.Document, error)
	GetDocument(ctx context.Context, viewer *models.Profile, documentID int64) (*models.Document, error)
	ListDocuments(ctx context.Context, viewer *models.Profile, categoryID *int64) ([]*models.Document, error)
	UpdateDocument(ctx context.Context, actor *models.Profile, documentID int64, req UpdateDocumentRequest) (*models.Document, error)
	SetDocumentStatus(ctx context.Context, actor *models.Profile, documentID int64, status models.Status) error
	DeleteDocument(ctx context.Context, actor *models.Profile, documentID int64) error

	UploadVideo(ctx context.Context, owner *models.Profile, req UploadVideoRequest, file io.Reader, size int64, fileName string) (*models.Video, error)
	GetVideo(ctx context.Context, viewer *models.Profile, videoID int64) (*models.Video, error)
	ListVideos(ctx context.Context, viewer *models.Profile, categoryID *int64) ([]*models.Video, error)
	UpdateVideo(ctx context.Context, actor *models.Profile, videoID int64, req UpdateVideoRequest) (*models.Video, error)
	SetVideoStatus(ctx context.Context, actor *models.Profile, videoID int64, status models.Status) error
	DeleteVideo(ctx context.Context, actor *models.Profile, videoID int64) error
}

type contentService struct {
	docRepo     repository.DocumentRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	storage     storage.Storage
}

func NewContentService(docRepo repository.DocumentRepository, videoRepo repository.VideoRepository, commentRepo repository.CommentRepository, store storage.Storage) ContentService {
	return &contentService{
		docRepo:     docRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		storage:     store,
	}
}

// canView applies the visibility rule: verified items are public, owners see
// all statuses of their own items, admins see everything.
func canView(viewer *models.Profile, ownerID int64, status models.Status) bool {
	if IsAdmin(viewer) {
		return true
	}
	if viewer != nil && viewer.ID == ownerID {
		return true
	}
	return status == models.StatusVerified
}

func filterFor(viewer *models.Profile, categoryID *int64) repository.ContentFilter {
	filter := repository.ContentFilter{CategoryID: categoryID}
	if IsAdmin(viewer) {
		filter.AllStatuses = true
	} else if viewer != nil {
		id := viewer.ID
		filter.OwnerID = &id
	}
	return filter
}

func (s *contentService) UploadDocument(ctx context.Context, owner *models.Profile, req UploadDocumentRequest, file io.Reader, size int64, fileName string) (*models.Document, error) {
	if owner == nil {
		return nil, errs.ErrUnauthorized
	}
	if req.Title == "" || req.CategoryID == 0 {
		return nil, fmt.Errorf("title and category are required: %w", errs.ErrValidation)
	}

	key := storage.ObjectKey("documents", fileName)
	fileURL, err := s.storage.Upload(ctx, key, file, size, fileName)
	if err != nil {
		return nil, err
	}

	// Status is forced: whatever the caller supplied, a new upload always
	// enters review as pending.
	doc := &models.Document{
		Title:       req.Title,
		Description: req.Description,
		Journal:     req.Journal,
		Year:        req.Year,
		CategoryID:  req.CategoryID,
		UserID:      owner.ID,
		Status:      models.StatusPending,
		FileURL:     fileURL,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		// No row means nothing will ever reference the object; take it back out.
		if rmErr := s.storage.Remove(ctx, key); rmErr != nil {
			logger.Log.Warnw("failed to remove orphaned upload", "key", key, "err", rmErr)
		}
		return nil, err
	}

	return doc, nil
}

func (s *contentService) GetDocument(ctx context.Context, viewer *models.Profile, documentID int64) (*models.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if !canView(viewer, doc.UserID, doc.Status) {
		return nil, fmt.Errorf("document %d: %w", documentID, errs.ErrNotFound)
	}

	return doc, nil
}

func (s *contentService) ListDocuments(ctx context.Context, viewer *models.Profile, categoryID *int64) ([]*models.Document, error) {
	return s.docRepo.List(ctx, filterFor(viewer, categoryID))
}

// UpdateDocument lets the owner or an admin edit non-status fields. The status
// is untouched: editing approved content does not unpublish it, re-review is
// an explicit admin action.
func (s *contentService) UpdateDocument(ctx context.Context, actor *models.Profile, documentID int64, req UpdateDocumentRequest) (*models.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if actor == nil || (actor.ID != doc.UserID && !IsAdmin(actor)) {
		return nil, errs.ErrUnauthorized
	}

	if req.Title != nil {
		doc.Title = *req.Title
	}
	if req.Description != nil {
		doc.Description = *req.Description
	}
	if req.Journal != nil {
		doc.Journal = *req.Journal
	}
	if req.Year != nil {
		doc.Year = *req.Year
	}
	if req.CategoryID != nil {
		doc.CategoryID = *req.CategoryID
	}

	if doc.Title == "" {
		return nil, fmt.Errorf("title cannot be empty: %w", errs.ErrValidation)
	}

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// SetDocumentStatus is the moderation transition. Only admins hold transition
// authority; every move between the three states is legal because moderation
// is corrective. Concurrent admin writes are last-write-wins.
func (s *contentService) SetDocumentStatus(ctx context.Context, actor *models.Profile, documentID int64, status models.Status) error {
	if !IsAdmin(actor) {
		return errs.ErrUnauthorized
	}
	if !status.Valid() {
		return fmt.Errorf("bad status %q: %w", status, errs.ErrValidation)
	}

	return s.docRepo.UpdateStatus(ctx, documentID, status)
}

func (s *contentService) DeleteDocument(ctx context.Context, actor *models.Profile, documentID int64) error {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}

	if actor == nil || (actor.ID != doc.UserID && !IsAdmin(actor)) {
		return errs.ErrUnauthorized
	}

	s.removeObject(ctx, doc.FileURL)

	if err := s.commentRepo.DeleteByContent(ctx, models.ContentDocument, documentID); err != nil {
		return err
	}

	return s.docRepo.Delete(ctx, documentID)
}

func (s *contentService) UploadVideo(ctx context.Context, owner *models.Profile, req UploadVideoRequest, file io.Reader, size int64, fileName string) (*models.Video, error) {
	if owner == nil {
		return nil, errs.ErrUnauthorized
	}
	if req.Title == "" || req.CategoryID == 0 {
		return nil, fmt.Errorf("title and category are required: %w", errs.ErrValidation)
	}

	key := storage.ObjectKey("videos", fileName)
	fileURL, err := s.storage.Upload(ctx, key, file, size, fileName)
	if err != nil {
		return nil, err
	}

	video := &models.Video{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		UserID:      owner.ID,
		Status:      models.StatusPending,
		FileURL:     fileURL,
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		if rmErr := s.storage.Remove(ctx, key); rmErr != nil {
			logger.Log.Warnw("failed to remove orphaned upload", "key", key, "err", rmErr)
		}
		return nil, err
	}

	return video, nil
}

func (s *contentService) GetVideo(ctx context.Context, viewer *models.Profile, videoID int64) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if !canView(viewer, video.UserID, video.Status) {
		return nil, fmt.Errorf("video %d: %w", videoID, errs.ErrNotFound)
	}

	return video, nil
}

func (s *contentService) ListVideos(ctx context.Context, viewer *models.Profile, categoryID *int64) ([]*models.Video, error) {
	return s.videoRepo.List(ctx, filterFor(viewer, categoryID))
}

func (s *contentService) UpdateVideo(ctx context.Context, actor *models.Profile, videoID int64, req UpdateVideoRequest) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if actor == nil || (actor.ID != video.UserID && !IsAdmin(actor)) {
		return nil, errs.ErrUnauthorized
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Description != nil {
		video.Description = *req.Description
	}
	if req.CategoryID != nil {
		video.CategoryID = *req.CategoryID
	}

	if video.Title == "" {
		return nil, fmt.Errorf("title cannot be empty: %w", errs.ErrValidation)
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}

	return video, nil
}

func (s *contentService) SetVideoStatus(ctx context.Context, actor *models.Profile, videoID int64, status models.Status) error {
	if !IsAdmin(actor) {
		return errs.ErrUnauthorized
	}
	if !status.Valid() {
		return fmt.Errorf("bad status %q: %w", status, errs.ErrValidation)
	}

	return s.videoRepo.UpdateStatus(ctx, videoID, status)
}

// DeleteVideo removes the backing object, the comments and the row, in that
// order. Comments never outlive their video.
func (s *contentService) DeleteVideo(ctx context.Context, actor *models.Profile, videoID int64) error {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}

	if actor == nil || (actor.ID != video.UserID && !IsAdmin(actor)) {
		return errs.ErrUnauthorized
	}

	s.removeObject(ctx, video.FileURL)

	if err := s.commentRepo.DeleteByContent(ctx, models.ContentVideo, videoID); err != nil {
		return err
	}

	return s.videoRepo.Delete(ctx, videoID)
}

// removeObject is the storage half of the coupled deletion. A failure here is
// logged and absorbed: an orphaned file is a disk-space leak sweepable later,
// while a row pointing at nothing would break every subsequent read, so the
// row delete must proceed regardless.
func (s *contentService) removeObject(ctx context.Context, fileURL string) {
	if fileURL == "" {
		return
	}

	key, err := s.storage.KeyFromURL(fileURL)
	if err != nil {
		logger.Log.Warnw("cannot resolve storage key, leaving object behind", "url", fileURL, "err", err)
		return
	}

	if err := s.storage.Remove(ctx, key); err != nil {
		logger.Log.Warnw("failed to remove storage object, leaving orphan", "key", key, "err", err)
	}
}
