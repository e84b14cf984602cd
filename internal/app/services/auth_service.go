// Package services implements the business logic between controllers and
// repositories.
package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Mikailhassan/bursary-aden/internal/app/models"
	"github.com/Mikailhassan/bursary-aden/internal/app/models/dto"
	"github.com/Mikailhassan/bursary-aden/internal/app/repositories"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/apperrors"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/auth"
)

// AuthService defines authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(ctx context.Context, userID int64) (*dto.UserData, error)
}

type authService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register hashes the password and creates the user account
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		FullName:        req.FullName,
		AdmissionNumber: req.AdmissionNumber,
		InstitutionName: req.InstitutionName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Password:        hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return apperrors.NewCustomError(err, "User already exists")
		}
		return err
	}

	s.logger.Info().Str("email", user.Email).Int64("userID", user.ID).Msg("User registered")
	return nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password both report invalid credentials so the responses are
// indistinguishable.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, user.AdmissionNumber)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message:     "Login successful",
		AccessToken: token,
		ExpiresIn:   expiresIn,
		UserData: dto.UserData{
			ID:              user.ID,
			FullName:        user.FullName,
			AdmissionNumber: user.AdmissionNumber,
			InstitutionName: user.InstitutionName,
			Email:           user.Email,
			PhoneNumber:     user.PhoneNumber,
		},
	}, nil
}

// GetProfile returns the profile of the given user without credentials
func (s *authService) GetProfile(ctx context.Context, userID int64) (*dto.UserData, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserData{
		FullName:        user.FullName,
		AdmissionNumber: user.AdmissionNumber,
		InstitutionName: user.InstitutionName,
		Email:           user.Email,
		PhoneNumber:     user.PhoneNumber,
	}, nil
}
