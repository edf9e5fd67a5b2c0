package services

import (
	"context"
	"fmt"

	"schoolapi/internal/app/models"
	"schoolapi/internal/app/models/dto"
	"schoolapi/internal/app/repositories"
	"schoolapi/internal/pkg/apperrors"
	"schoolapi/internal/pkg/auth"
)

// AuthService handles credential verification, session issuance and
// user registration
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies the submitted credentials and issues a session token.
// An unknown email and a wrong password are indistinguishable to the
// caller: both collapse to ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	match, err := auth.CheckPassword(user.Password, req.Password)
	if err != nil || !match {
		// A malformed stored hash is treated as a non-match
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &dto.TokenResponse{Token: token}, nil
}

// Register creates a new student account
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleStudent,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{UserID: user.ID.String()}, nil
}
