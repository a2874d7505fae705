package handlers

import (
	"github.com/go-playground/validator/v10"

	"oncolearn/internal/config"
	"oncolearn/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	ContentService  service.ContentService
	CommentService  service.CommentService
	CategoryService service.CategoryService
	UserService     service.UserService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(services *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:     services.Auth,
		ContentService:  services.Content,
		CommentService:  services.Comment,
		CategoryService: services.Category,
		UserService:     services.User,
		Cfg:             cfg,
		Validate:        validator.New(),
	}
}
