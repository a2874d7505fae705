package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"oncolearn/internal/models"
	"oncolearn/internal/repository"
	"oncolearn/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.Profile, *service.TokenPair, error) {
	args := m.Called(ctx, req)
	var profile *models.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*models.Profile)
	}
	var tokens *service.TokenPair
	if args.Get(1) != nil {
		tokens = args.Get(1).(*service.TokenPair)
	}
	return profile, tokens, args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.Profile, *service.TokenPair, error) {
	args := m.Called(ctx, email, password)
	var profile *models.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*models.Profile)
	}
	var tokens *service.TokenPair
	if args.Get(1) != nil {
		tokens = args.Get(1).(*service.TokenPair)
	}
	return profile, tokens, args.Error(2)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*models.Profile, *service.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	var profile *models.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*models.Profile)
	}
	var tokens *service.TokenPair
	if args.Get(1) != nil {
		tokens = args.Get(1).(*service.TokenPair)
	}
	return profile, tokens, args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID int64, req repository.UpdateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockAuthService) UpdatePassword(ctx context.Context, userID int64, current, newPassword string) error {
	args := m.Called(ctx, userID, current, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) ParseAccessToken(tokenString string) (*models.Profile, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) UploadDocument(ctx context.Context, owner *models.Profile, req service.UploadDocumentRequest, file io.Reader, size int64, fileName string) (*models.Document, error) {
	args := m.Called(ctx, owner, req, file, size, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *MockContentService) GetDocument(ctx context.Context, viewer *models.Profile, documentID int64) (*models.Document, error) {
	args := m.Called(ctx, viewer, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *MockContentService) ListDocuments(ctx context.Context, viewer *models.Profile, categoryID *int64) ([]*models.Document, error) {
	args := m.Called(ctx, viewer, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Document), args.Error(1)
}

func (m *MockContentService) UpdateDocument(ctx context.Context, actor *models.Profile, documentID int64, req service.UpdateDocumentRequest) (*models.Document, error) {
	args := m.Called(ctx, actor, documentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *MockContentService) SetDocumentStatus(ctx context.Context, actor *models.Profile, documentID int64, status models.Status) error {
	args := m.Called(ctx, actor, documentID, status)
	return args.Error(0)
}

func (m *MockContentService) DeleteDocument(ctx context.Context, actor *models.Profile, documentID int64) error {
	args := m.Called(ctx, actor, documentID)
	return args.Error(0)
}

func (m *MockContentService) UploadVideo(ctx context.Context, owner *models.Profile, req service.UploadVideoRequest, file io.Reader, size int64, fileName string) (*models.Video, error) {
	args := m.Called(ctx, owner, req, file, size, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockContentService) GetVideo(ctx context.Context, viewer *models.Profile, videoID int64) (*models.Video, error) {
	args := m.Called(ctx, viewer, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockContentService) ListVideos(ctx context.Context, viewer *models.Profile, categoryID *int64) ([]*models.Video, error) {
	args := m.Called(ctx, viewer, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Video), args.Error(1)
}

func (m *MockContentService) UpdateVideo(ctx context.Context, actor *models.Profile, videoID int64, req service.UpdateVideoRequest) (*models.Video, error) {
	args := m.Called(ctx, actor, videoID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockContentService) SetVideoStatus(ctx context.Context, actor *models.Profile, videoID int64, status models.Status) error {
	args := m.Called(ctx, actor, videoID, status)
	return args.Error(0)
}

func (m *MockContentService) DeleteVideo(ctx context.Context, actor *models.Profile, videoID int64) error {
	args := m.Called(ctx, actor, videoID)
	return args.Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) AddComment(ctx context.Context, author *models.Profile, contentType models.ContentType, contentID int64, body string) (*models.Comment, error) {
	args := m.Called(ctx, author, contentType, contentID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) AddGuestComment(ctx context.Context, guestName string, guestRole models.Role, contentType models.ContentType, contentID int64, body string) (*models.Comment, error) {
	args := m.Called(ctx, guestName, guestRole, contentType, contentID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) ListByContent(ctx context.Context, viewer *models.Profile, contentType models.ContentType, contentID int64) ([]*models.Comment, error) {
	args := m.Called(ctx, viewer, contentType, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *MockCommentService) ListForModeration(ctx context.Context, actor *models.Profile, filter repository.CommentFilter) ([]*models.Comment, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, actor *models.Profile, commentID int64) error {
	args := m.Called(ctx, actor, commentID)
	return args.Error(0)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, actor *models.Profile, name, description string) (*models.Category, error) {
	args := m.Called(ctx, actor, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, actor *models.Profile, categoryID int64, name, description string) (*models.Category, error) {
	args := m.Called(ctx, actor, categoryID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, actor *models.Profile, categoryID int64) error {
	args := m.Called(ctx, actor, categoryID)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Get(ctx context.Context, userID int64) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, actor *models.Profile) ([]*models.Profile, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Profile), args.Error(1)
}

func (m *MockUserService) SetRole(ctx context.Context, actor *models.Profile, userID int64, role models.Role) error {
	args := m.Called(ctx, actor, userID, role)
	return args.Error(0)
}

func (m *MockUserService) Delete(ctx context.Context, actor *models.Profile, userID int64) error {
	args := m.Called(ctx, actor, userID)
	return args.Error(0)
}
