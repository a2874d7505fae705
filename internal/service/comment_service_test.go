package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"oncolearn/internal/errs"
	"oncolearn/internal/models"
	"oncolearn/internal/repository"
)

func newCommentService(commentRepo *MockCommentRepository, docRepo *MockDocumentRepository, videoRepo *MockVideoRepository) CommentService {
	return NewCommentService(commentRepo, docRepo, videoRepo)
}

func verifiedVideoFixture(videoRepo *MockVideoRepository, ctx context.Context) {
	videoRepo.On("GetByID", ctx, int64(21)).
		Return(&models.Video{VideoID: 21, UserID: 7, Status: models.StatusVerified}, nil)
}

func TestCommentService_AddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("registered comment carries user reference and no guest fields", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		videoRepo := new(MockVideoRepository)
		svc := newCommentService(commentRepo, new(MockDocumentRepository), videoRepo)

		verifiedVideoFixture(videoRepo, ctx)
		commentRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Comment) bool {
			return c.UserID != nil && *c.UserID == 8 && c.GuestName == nil && c.GuestRole == nil
		})).Return(nil)

		comment, err := svc.AddComment(ctx, other, models.ContentVideo, 21, "thanks, very clear")

		require.NoError(t, err)
		assert.Equal(t, "bob", comment.AuthorName)
		commentRepo.AssertExpectations(t)
	})

	t.Run("anonymous caller cannot use the registered path", func(t *testing.T) {
		svc := newCommentService(new(MockCommentRepository), new(MockDocumentRepository), new(MockVideoRepository))

		_, err := svc.AddComment(ctx, nil, models.ContentVideo, 21, "hi")

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("empty body rejected", func(t *testing.T) {
		svc := newCommentService(new(MockCommentRepository), new(MockDocumentRepository), new(MockVideoRepository))

		_, err := svc.AddComment(ctx, other, models.ContentVideo, 21, "")

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("cannot comment on content hidden from the viewer", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		videoRepo := new(MockVideoRepository)
		svc := newCommentService(commentRepo, new(MockDocumentRepository), videoRepo)

		videoRepo.On("GetByID", ctx, int64(22)).
			Return(&models.Video{VideoID: 22, UserID: 7, Status: models.StatusPending}, nil)

		_, err := svc.AddComment(ctx, other, models.ContentVideo, 22, "hi")

		assert.ErrorIs(t, err, errs.ErrNotFound)
		commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCommentService_AddGuestComment(t *testing.T) {
	ctx := context.Background()

	t.Run("guest comment carries name and role tag, no user reference", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		videoRepo := new(MockVideoRepository)
		svc := newCommentService(commentRepo, new(MockDocumentRepository), videoRepo)

		verifiedVideoFixture(videoRepo, ctx)
		commentRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Comment) bool {
			return c.UserID == nil && c.GuestName != nil && *c.GuestName == "Maria" &&
				c.GuestRole != nil && *c.GuestRole == models.RoleDoctor
		})).Return(nil)

		comment, err := svc.AddGuestComment(ctx, "Maria", models.RoleDoctor, models.ContentVideo, 21, "good overview")

		require.NoError(t, err)
		assert.Equal(t, "Maria", comment.DisplayAuthor())
		commentRepo.AssertExpectations(t)
	})

	t.Run("guest name is required", func(t *testing.T) {
		svc := newCommentService(new(MockCommentRepository), new(MockDocumentRepository), new(MockVideoRepository))

		_, err := svc.AddGuestComment(ctx, "", models.RoleUser, models.ContentVideo, 21, "hi")

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("guests may not claim the admin role", func(t *testing.T) {
		svc := newCommentService(new(MockCommentRepository), new(MockDocumentRepository), new(MockVideoRepository))

		_, err := svc.AddGuestComment(ctx, "Maria", models.RoleAdmin, models.ContentVideo, 21, "hi")

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("guests see only verified content", func(t *testing.T) {
		videoRepo := new(MockVideoRepository)
		svc := newCommentService(new(MockCommentRepository), new(MockDocumentRepository), videoRepo)

		videoRepo.On("GetByID", ctx, int64(22)).
			Return(&models.Video{VideoID: 22, UserID: 7, Status: models.StatusPending}, nil)

		_, err := svc.AddGuestComment(ctx, "Maria", models.RoleUser, models.ContentVideo, 22, "hi")

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCommentService_ListByContent(t *testing.T) {
	ctx := context.Background()

	commentRepo := new(MockCommentRepository)
	docRepo := new(MockDocumentRepository)
	svc := newCommentService(commentRepo, docRepo, new(MockVideoRepository))

	docRepo.On("GetByID", ctx, int64(11)).
		Return(&models.Document{DocumentID: 11, UserID: 7, Status: models.StatusVerified}, nil)
	commentRepo.On("ListByContent", ctx, models.ContentDocument, int64(11)).
		Return([]*models.Comment{{CommentID: 1, Body: "first"}}, nil)

	comments, err := svc.ListByContent(ctx, nil, models.ContentDocument, 11)

	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestCommentService_Moderation(t *testing.T) {
	ctx := context.Background()

	t.Run("moderation list is admin only", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		svc := newCommentService(commentRepo, new(MockDocumentRepository), new(MockVideoRepository))

		_, err := svc.ListForModeration(ctx, owner, repository.CommentFilter{})
		assert.ErrorIs(t, err, errs.ErrUnauthorized)

		_, err = svc.ListForModeration(ctx, nil, repository.CommentFilter{})
		assert.ErrorIs(t, err, errs.ErrUnauthorized)

		commentRepo.On("ListForModeration", ctx, repository.CommentFilter{AuthorType: "guest"}).
			Return([]*models.Comment{}, nil)
		_, err = svc.ListForModeration(ctx, admin, repository.CommentFilter{AuthorType: "guest"})
		assert.NoError(t, err)
	})

	t.Run("delete is admin only", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		svc := newCommentService(commentRepo, new(MockDocumentRepository), new(MockVideoRepository))

		assert.ErrorIs(t, svc.Delete(ctx, owner, 1), errs.ErrUnauthorized)
		commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

		commentRepo.On("Delete", ctx, int64(1)).Return(nil)
		assert.NoError(t, svc.Delete(ctx, admin, 1))
	})
}
