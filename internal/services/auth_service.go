// internal/services/auth_service.go
package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/stamperia/stamperia-backend/internal/apperrors"
	"github.com/stamperia/stamperia-backend/internal/config"
	"github.com/stamperia/stamperia-backend/internal/models"
	"github.com/stamperia/stamperia-backend/internal/repository"
	"github.com/stamperia/stamperia-backend/internal/utils"
)

type AuthService struct {
	users repository.UserStore
	cfg   *config.Config
}

type RegisterRequest struct {
	Email       string                 `json:"email" validate:"required,email"`
	Password    string                 `json:"password" validate:"required,strong_password"`
	Name        string                 `json:"name,omitempty" validate:"omitempty,max=100"`
	Role        models.UserRole        `json:"role,omitempty"`
	ProfileData map[string]interface{} `json:"profile_data,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // in seconds
}

func NewAuthService(users repository.UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
	}
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, err, "invalid registration")
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleClient
	}
	// Admin accounts are provisioned out of band, never self-registered.
	if role != models.UserRoleClient && role != models.UserRoleDesigner {
		return nil, apperrors.Validation("Invalid role")
	}

	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, apperrors.Validation("A user with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal(err, "failed to check existing user")
	}

	user := &models.User{
		Email:       req.Email,
		Name:        req.Name,
		Role:        role,
		ProfileData: models.JSONB(req.ProfileData),
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperrors.Internal(err, "failed to hash password")
	}

	if err := s.users.Create(user); err != nil {
		return nil, apperrors.Internal(err, "failed to create user")
	}

	return s.issueTokens(user)
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, err, "invalid login")
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Validation("Invalid email or password")
		}
		return nil, apperrors.Internal(err, "failed to load user")
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, apperrors.Validation("Invalid email or password")
	}

	return s.issueTokens(user)
}

func (s *AuthService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	subject, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.Validation("Invalid refresh token")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, apperrors.Validation("Invalid refresh token")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Internal(err, "failed to load user")
	}

	return s.issueTokens(user)
}

func (s *AuthService) GetProfile(userID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Internal(err, "failed to load user")
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Email, string(user.Role), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to generate access token")
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to generate refresh token")
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}
