package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/repository"
)

// AuthService handles registration, login and credential management.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Me(ctx context.Context, userID uint) (dto.UserResponse, error)
	UpdatePassword(ctx context.Context, userID uint, req dto.UpdatePasswordRequest) error
}

type authService struct {
	users     repository.UserRepository
	profiles  repository.ProfileRepository
	mailer    Mailer
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

// NewAuthService constructs the auth service.
func NewAuthService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	mailer Mailer,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		users:     users,
		profiles:  profiles,
		mailer:    mailer,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger.With().Str("component", "auth_service").Logger(),
	}
}

// Register creates a student account. Coordinator and admin accounts are
// provisioned by admins, never self-registered.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return dto.AuthResponse{}, ValidationError("email %s is already registered", req.Email)
	} else if !isRecordNotFound(err) {
		return dto.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleStudent,
		IsActive: true,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return dto.AuthResponse{}, err
	}

	// Every student starts with an empty profile so completion tracking and
	// eligibility filtering have a row to work against.
	profile := models.Profile{
		UserID:     user.ID,
		Completion: datatypes.NewJSONType(models.ProfileCompletion{}),
	}
	if err := s.profiles.Create(ctx, &profile); err != nil {
		s.logger.Error().Err(err).Uint("user_id", user.ID).Msg("failed to create initial profile")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("student registered")

	return dto.AuthResponse{User: dto.NewUserResponse(user), Token: token}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if isRecordNotFound(err) {
			return dto.AuthResponse{}, ErrCredentials
		}
		return dto.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return dto.AuthResponse{}, ErrCredentials
	}

	if !user.IsActive {
		return dto.AuthResponse{}, ForbiddenError("account is deactivated")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	s.sendLoginAlert(ctx, user)

	return dto.AuthResponse{User: dto.NewUserResponse(user), Token: token}, nil
}

func (s *authService) Me(ctx context.Context, userID uint) (dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return dto.UserResponse{}, NotFoundError("user %d not found", userID)
		}
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *authService) UpdatePassword(ctx context.Context, userID uint, req dto.UpdatePasswordRequest) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return NotFoundError("user %d not found", userID)
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hash)
	if err := s.users.Update(ctx, &user); err != nil {
		return err
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("password updated")
	return nil
}

func (s *authService) issueToken(user models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        fmt.Sprint(user.ID),
		"user_id":    user.ID,
		"role":       string(user.Role),
		"department": user.Department,
		"iat":        now.Unix(),
		"exp":        now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) sendLoginAlert(ctx context.Context, user models.User) {
	if s.mailer == nil {
		return
	}

	subject := "New sign-in to your placement account"
	body := fmt.Sprintf("Hello %s,\n\nYour account signed in at %s. If this was not you, change your password immediately.\n",
		user.Name, time.Now().UTC().Format(time.RFC1123))

	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("failed to send login alert")
	}
}
