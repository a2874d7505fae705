package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"oncolearn/internal/config"
	"oncolearn/internal/errs"
	"oncolearn/internal/logger"
	"oncolearn/internal/models"
	"oncolearn/internal/repository"
	"oncolearn/internal/session"
)

type RegisterRequest struct {
	Email     string
	Password  string
	Username  string
	FullName  string
	AvatarURL string
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.Profile, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*models.Profile, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.Profile, *TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	UpdateProfile(ctx context.Context, userID int64, req repository.UpdateProfileRequest) (*models.Profile, error)
	UpdatePassword(ctx context.Context, userID int64, current, newPassword string) error
	ParseAccessToken(tokenString string) (*models.Profile, error)
}

type authService struct {
	userRepo repository.UserRepository
	sessions session.Store
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessions session.Store, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
		cfg:      cfg,
	}
}

// HashPassword generates a bcrypt hash with a fresh per-call salt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.Profile, *TokenPair, error) {
	if req.Email == "" || req.Password == "" || req.Username == "" {
		return nil, nil, fmt.Errorf("email, password and username are required: %w", errs.ErrValidation)
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, nil, fmt.Errorf("email already registered: %w", errs.ErrValidation)
	}
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, nil, err
	}

	taken, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err == nil && taken != nil {
		return nil, nil, fmt.Errorf("username already taken: %w", errs.ErrValidation)
	}
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	// Role is forced here. Elevation is an administrator operation, never a
	// self-service input.
	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		AvatarURL:    req.AvatarURL,
		Role:         models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	return s.establishSession(ctx, user)
}

// Login conflates "no such email" and "wrong password" into the same error so
// callers cannot probe which addresses are registered.
func (s *authService) Login(ctx context.Context, email, password string) (*models.Profile, *TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil, errs.ErrInvalidCredential
		}
		return nil, nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, nil, errs.ErrInvalidCredential
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		logger.Log.Warnw("failed to record last login", "userID", user.ID, "err", err)
	}

	return s.establishSession(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.Profile, *TokenPair, error) {
	userID, err := s.sessions.Lookup(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil, errs.ErrInvalidCredential
		}
		return nil, nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	// Rotate: the old token is dead as soon as a new pair is issued.
	if err := s.sessions.Delete(ctx, refreshToken); err != nil {
		logger.Log.Warnw("failed to revoke rotated refresh token", "err", err)
	}

	return s.establishSession(ctx, user)
}

// Logout is idempotent: deleting an unknown token succeeds.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.sessions.Delete(ctx, refreshToken)
}

func (s *authService) UpdateProfile(ctx context.Context, userID int64, req repository.UpdateProfileRequest) (*models.Profile, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.Sanitize(), nil
}

// UpdatePassword verifies the current password against the freshly fetched
// hash, then stores a new salted hash in a single write.
func (s *authService) UpdatePassword(ctx context.Context, userID int64, current, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password is required: %w", errs.ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !VerifyPassword(current, user.PasswordHash) {
		return errs.ErrInvalidCredential
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePasswordHash(ctx, userID, hash)
}

func (s *authService) establishSession(ctx context.Context, user *models.User) (*models.Profile, *TokenPair, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, nil, err
	}

	refreshToken := uuid.New().String()
	if err := s.sessions.Save(ctx, refreshToken, user.ID, s.cfg.RefreshTokenDuration); err != nil {
		return nil, nil, err
	}

	return user.Sanitize(), &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     string(user.Role),
		"exp":      time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken validates the token and reconstructs the sanitized profile
// carried in its claims.
func (s *authService) ParseAccessToken(tokenString string) (*models.Profile, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", errs.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims: %w", errs.ErrUnauthorized)
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing user_id claim: %w", errs.ErrUnauthorized)
	}

	roleStr, _ := claims["role"].(string)
	role, err := models.ParseRole(roleStr)
	if err != nil {
		return nil, fmt.Errorf("bad role claim: %w", errs.ErrUnauthorized)
	}

	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)

	return &models.Profile{
		ID:       int64(userID),
		Username: username,
		Email:    email,
		Role:     role,
	}, nil
}
