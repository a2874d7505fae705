package models

import (
	"time"
)

type User struct {
	ID           int64      `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FullName     string     `json:"fullName" db:"full_name"`
	AvatarURL    string     `json:"avatarUrl" db:"avatar_url"`
	Bio          string     `json:"bio" db:"bio"`
	Role         Role       `json:"role" db:"role"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	LastLoginAt  *time.Time `json:"lastLoginAt" db:"last_login_at"`
}

// Profile is the sanitized session shape: no hash, no timestamps the UI
// does not need. This is the only user representation that leaves the
// auth service.
type Profile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl"`
	Bio       string `json:"bio"`
	Role      Role   `json:"role"`
}

func (u *User) Sanitize() *Profile {
	return &Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		Role:      u.Role,
	}
}

type Document struct {
	DocumentID   int64     `json:"documentId" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Journal      string    `json:"journal" db:"journal"`
	Year         int       `json:"year" db:"year"`
	CategoryID   int64     `json:"categoryId" db:"category_id"`
	UserID       int64     `json:"userId" db:"user_id"`
	Status       Status    `json:"status" db:"status"`
	FileURL      string    `json:"fileUrl" db:"file_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	CategoryName string    `json:"categoryName,omitempty" db:"category_name"`
	AuthorName   string    `json:"authorName,omitempty" db:"author_name"`
}

type Video struct {
	VideoID      int64     `json:"videoId" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	CategoryID   int64     `json:"categoryId" db:"category_id"`
	UserID       int64     `json:"userId" db:"user_id"`
	Status       Status    `json:"status" db:"status"`
	FileURL      string    `json:"fileUrl" db:"file_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	CategoryName string    `json:"categoryName,omitempty" db:"category_name"`
	AuthorName   string    `json:"authorName,omitempty" db:"author_name"`
}

// Comment is attached to a document or a video by either a registered user
// or a guest. Invariant: exactly one of UserID / GuestName is set.
type Comment struct {
	CommentID   int64       `json:"commentId" db:"id"`
	ContentType ContentType `json:"contentType" db:"content_type"`
	ContentID   int64       `json:"contentId" db:"content_id"`
	UserID      *int64      `json:"userId,omitempty" db:"user_id"`
	GuestName   *string     `json:"guestName,omitempty" db:"guest_name"`
	GuestRole   *Role       `json:"guestRole,omitempty" db:"guest_role"`
	Body        string      `json:"body" db:"body"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	AuthorName  string      `json:"authorName,omitempty" db:"author_name"`
	// ContentTitle is filled on moderation listings.
	ContentTitle string `json:"contentTitle,omitempty" db:"content_title"`
}

// DisplayAuthor resolves the author name for display. Exactly one path
// executes per comment.
func (c *Comment) DisplayAuthor() string {
	if c.UserID != nil {
		return c.AuthorName
	}
	if c.GuestName != nil {
		return *c.GuestName
	}
	return ""
}

type Category struct {
	CategoryID  int64  `json:"categoryId" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	// ContentCount is the derived number of documents and videos currently
	// assigned to the category.
	ContentCount int `json:"contentCount" db:"content_count"`
}
