package handlers

import (
	"encoding/json"
	"net/http"

	"oncolearn/internal/middleware"
	"oncolearn/internal/models"
	"oncolearn/internal/repository"
	"oncolearn/internal/service"
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Username  string `json:"username" validate:"required"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type AuthResponse struct {
	User         *models.Profile `json:"user"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, tokens, err := h.AuthService.Register(r.Context(), service.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		Username:  req.Username,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, AuthResponse{
		User:         profile,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, tokens, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, AuthResponse{
		User:         profile,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, http.StatusOK)
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, tokens, err := h.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, AuthResponse{
		User:         profile,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	// Missing body is fine: logout with nothing to revoke is a no-op.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.AuthService.Logout(r.Context(), req.RefreshToken); err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "logged out"}, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	profile := middleware.ProfileFromContext(r.Context())
	if profile == nil {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	full, err := h.UserService.Get(r.Context(), profile.ID)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, full, http.StatusOK)
}

type UpdateProfileBody struct {
	Username  *string `json:"username"`
	FullName  *string `json:"fullName"`
	AvatarURL *string `json:"avatarUrl"`
	Bio       *string `json:"bio"`
}

func (h *Handlers) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	profile := middleware.ProfileFromContext(r.Context())
	if profile == nil {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.AuthService.UpdateProfile(r.Context(), profile.ID, repository.UpdateProfileRequest{
		Username:  req.Username,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	})
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, updated, http.StatusOK)
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

func (h *Handlers) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	profile := middleware.ProfileFromContext(r.Context())
	if profile == nil {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.AuthService.UpdatePassword(r.Context(), profile.ID, req.CurrentPassword, req.NewPassword); err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "password updated"}, http.StatusOK)
}
