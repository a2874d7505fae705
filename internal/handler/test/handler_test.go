package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"oncolearn/internal/config"
	handlers "oncolearn/internal/handler"
	"oncolearn/internal/service"
)

func TestNewHandlers(t *testing.T) {
	services := &service.Service{
		Auth:     new(MockAuthService),
		Content:  new(MockContentService),
		Comment:  new(MockCommentService),
		Category: new(MockCategoryService),
		User:     new(MockUserService),
	}
	cfg := &config.Config{}

	handler := handlers.NewHandlers(services, cfg)

	assert.NotNil(t, handler.AuthService)
	assert.NotNil(t, handler.ContentService)
	assert.NotNil(t, handler.CommentService)
	assert.NotNil(t, handler.CategoryService)
	assert.NotNil(t, handler.UserService)
	assert.NotNil(t, handler.Cfg)
	assert.NotNil(t, handler.Validate)
}

func createTestHandler() *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey:  "test-secret-key",
		MaxUploadSize: 10 * 1024 * 1024,
	}

	return &handlers.Handlers{
		AuthService:     new(MockAuthService),
		ContentService:  new(MockContentService),
		CommentService:  new(MockCommentService),
		CategoryService: new(MockCategoryService),
		UserService:     new(MockUserService),
		Cfg:             cfg,
		Validate:        validator.New(),
	}
}

// assertJSONError checks the JSON error response shape.
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}
