package service

import (
	"oncolearn/internal/config"
	"oncolearn/internal/repository"
	"oncolearn/internal/session"
	"oncolearn/internal/storage"
)

type Service struct {
	Auth     AuthService
	Content  ContentService
	Comment  CommentService
	Category CategoryService
	User     UserService
}

func NewService(repo *repository.Repository, cfg *config.Config, store storage.Storage, sessions session.Store) *Service {
	return &Service{
		Auth:     NewAuthService(repo.User, sessions, cfg),
		Content:  NewContentService(repo.Document, repo.Video, repo.Comment, store),
		Comment:  NewCommentService(repo.Comment, repo.Document, repo.Video),
		Category: NewCategoryService(repo.Category, repo.Document, repo.Video),
		User:     NewUserService(repo.User, store),
	}
}
