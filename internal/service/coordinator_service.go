package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/repository"
)

const generatedPasswordLength = 12

// CoordinatorService lets admins provision and manage coordinator accounts.
type CoordinatorService interface {
	Create(ctx context.Context, actor Actor, req dto.CoordinatorCreateRequest) (dto.UserResponse, error)
	List(ctx context.Context, actor Actor) ([]dto.UserResponse, error)
	SetStatus(ctx context.Context, actor Actor, id uint, req dto.CoordinatorStatusRequest) (dto.UserResponse, error)
	ResetPassword(ctx context.Context, actor Actor, id uint) (dto.UserResponse, error)
	Delete(ctx context.Context, actor Actor, id uint) error
}

type coordinatorService struct {
	users  repository.UserRepository
	mailer Mailer
	logger zerolog.Logger
}

// NewCoordinatorService constructs the coordinator management service.
func NewCoordinatorService(users repository.UserRepository, mailer Mailer, logger zerolog.Logger) CoordinatorService {
	return &coordinatorService{
		users:  users,
		mailer: mailer,
		logger: logger.With().Str("component", "coordinator_service").Logger(),
	}
}

// Create provisions a coordinator account. When no password is supplied one
// is generated and delivered by email only; it is never echoed back in the
// API response.
func (s *coordinatorService) Create(ctx context.Context, actor Actor, req dto.CoordinatorCreateRequest) (dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return dto.UserResponse{}, ForbiddenError("only admins can create coordinators")
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return dto.UserResponse{}, ValidationError("email %s is already registered", req.Email)
	} else if !isRecordNotFound(err) {
		return dto.UserResponse{}, err
	}

	password := req.Password
	generated := false
	if password == "" {
		random, err := randomPassword(generatedPasswordLength)
		if err != nil {
			return dto.UserResponse{}, err
		}
		password = random
		generated = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, err
	}

	createdBy := actor.ID
	coordinator := models.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hash),
		Role:       models.RoleCoordinator,
		Department: req.Department,
		IsActive:   true,
		CreatedBy:  &createdBy,
	}

	if err := s.users.Create(ctx, &coordinator); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().
		Uint("coordinator_id", coordinator.ID).
		Str("department", coordinator.Department).
		Msg("coordinator created")

	s.sendCredentials(ctx, coordinator, password, generated)

	return dto.NewUserResponse(coordinator), nil
}

func (s *coordinatorService) List(ctx context.Context, actor Actor) ([]dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return nil, ForbiddenError("only admins can list coordinators")
	}

	coordinators, err := s.users.ListByRole(ctx, models.RoleCoordinator)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponseSlice(coordinators), nil
}

func (s *coordinatorService) SetStatus(ctx context.Context, actor Actor, id uint, req dto.CoordinatorStatusRequest) (dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return dto.UserResponse{}, ForbiddenError("only admins can change coordinator status")
	}

	coordinator, err := s.findCoordinator(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}

	coordinator.IsActive = *req.IsActive
	if err := s.users.Update(ctx, &coordinator); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().
		Uint("coordinator_id", coordinator.ID).
		Bool("is_active", coordinator.IsActive).
		Msg("coordinator status changed")

	return dto.NewUserResponse(coordinator), nil
}

// ResetPassword replaces a coordinator's password with a freshly generated
// one, delivered by email only.
func (s *coordinatorService) ResetPassword(ctx context.Context, actor Actor, id uint) (dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return dto.UserResponse{}, ForbiddenError("only admins can reset coordinator passwords")
	}

	coordinator, err := s.findCoordinator(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}

	password, err := randomPassword(generatedPasswordLength)
	if err != nil {
		return dto.UserResponse{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, err
	}

	coordinator.Password = string(hash)
	if err := s.users.Update(ctx, &coordinator); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Uint("coordinator_id", coordinator.ID).Msg("coordinator password reset")

	if s.mailer != nil {
		body := fmt.Sprintf("Hello %s,\n\nYour placement portal password has been reset.\n\nTemporary password: %s\n\nPlease change it after your next login.\n",
			coordinator.Name, password)
		if err := s.mailer.Send(ctx, coordinator.Email, "Your placement portal password was reset", body); err != nil {
			s.logger.Warn().Err(err).Str("email", coordinator.Email).Msg("failed to email reset password")
		}
	}

	return dto.NewUserResponse(coordinator), nil
}

func (s *coordinatorService) Delete(ctx context.Context, actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ForbiddenError("only admins can delete coordinators")
	}

	if _, err := s.findCoordinator(ctx, id); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return NotFoundError("coordinator %d not found", id)
		}
		return err
	}

	s.logger.Info().Uint("coordinator_id", id).Msg("coordinator deleted")
	return nil
}

func (s *coordinatorService) findCoordinator(ctx context.Context, id uint) (models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return models.User{}, NotFoundError("coordinator %d not found", id)
		}
		return models.User{}, err
	}
	if user.Role != models.RoleCoordinator {
		return models.User{}, NotFoundError("coordinator %d not found", id)
	}
	return user, nil
}

func (s *coordinatorService) sendCredentials(ctx context.Context, coordinator models.User, password string, generated bool) {
	if s.mailer == nil {
		return
	}

	subject := "Your placement portal coordinator account"
	body := fmt.Sprintf("Hello %s,\n\nA coordinator account for the %s department has been created for you.\n\nEmail: %s\n",
		coordinator.Name, coordinator.Department, coordinator.Email)
	if generated {
		body += fmt.Sprintf("Temporary password: %s\n\nPlease change it after your first login.\n", password)
	}

	if err := s.mailer.Send(ctx, coordinator.Email, subject, body); err != nil {
		s.logger.Warn().Err(err).Str("email", coordinator.Email).Msg("failed to email coordinator credentials")
	}
}

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randomPassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}
