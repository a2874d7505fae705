package models

import "fmt"

// Role is the closed set of user roles. Authorization code switches over it
// exhaustively; an unknown value must never fall through to "allowed".
type Role string

const (
	RoleUser   Role = "user"
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleDoctor, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// Status is the three-valued review state of a content item.
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusVerified, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected:
		return true
	}
	return false
}

// ContentType discriminates which table a comment is attached to.
type ContentType string

const (
	ContentDocument ContentType = "document"
	ContentVideo    ContentType = "video"
)

func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentDocument, ContentVideo:
		return ContentType(s), nil
	}
	return "", fmt.Errorf("unknown content type %q", s)
}
