package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"oncolearn/internal/models"
)

// ContentFilter narrows list queries. AllStatuses is the admin view; otherwise
// only verified items are returned, plus the owner's own items when OwnerID is
// set.
type ContentFilter struct {
	CategoryID  *int64
	AllStatuses bool
	OwnerID     *int64
}

// CommentFilter narrows moderation listings. AuthorType is "registered",
// "guest" or empty for both. Search matches comment body, author name and the
// title of the attached content item.
type CommentFilter struct {
	AuthorType string
	Search     string
}

type UpdateProfileRequest struct {
	Username  *string
	FullName  *string
	AvatarURL *string
	Bio       *string
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) error
	UpdatePasswordHash(ctx context.Context, userID int64, hash string) error
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
	UpdateRole(ctx context.Context, userID int64, role models.Role) error
	Delete(ctx context.Context, userID int64) error
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, documentID int64) (*models.Document, error)
	List(ctx context.Context, filter ContentFilter) ([]*models.Document, error)
	Update(ctx context.Context, doc *models.Document) error
	UpdateStatus(ctx context.Context, documentID int64, status models.Status) error
	Delete(ctx context.Context, documentID int64) error
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
}

type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, videoID int64) (*models.Video, error)
	List(ctx context.Context, filter ContentFilter) ([]*models.Video, error)
	Update(ctx context.Context, video *models.Video) error
	UpdateStatus(ctx context.Context, videoID int64, status models.Status) error
	Delete(ctx context.Context, videoID int64) error
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	ListByContent(ctx context.Context, contentType models.ContentType, contentID int64) ([]*models.Comment, error)
	ListForModeration(ctx context.Context, filter CommentFilter) ([]*models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
	DeleteByContent(ctx context.Context, contentType models.ContentType, contentID int64) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, categoryID int64) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, categoryID int64) error
}

type Repository struct {
	User     UserRepository
	Document DocumentRepository
	Video    VideoRepository
	Comment  CommentRepository
	Category CategoryRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Document: NewDocumentRepository(db),
		Video:    NewVideoRepository(db),
		Comment:  NewCommentRepository(db),
		Category: NewCategoryRepository(db),
	}
}
