package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/repository"
)

// UserService exposes the student directory to staff, primarily to back the
// share-with-students picker.
type UserService interface {
	ListStudents(ctx context.Context, actor Actor) ([]dto.UserResponse, error)
	GetStudent(ctx context.Context, actor Actor, id uint) (dto.UserResponse, error)
}

type userService struct {
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewUserService constructs the user directory service.
func NewUserService(users repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		users:  users,
		logger: logger.With().Str("component", "user_service").Logger(),
	}
}

// ListStudents returns the whole student body. Drives cut across departments,
// so coordinators see every student, not just their own department.
func (s *userService) ListStudents(ctx context.Context, actor Actor) ([]dto.UserResponse, error) {
	if actor.IsStudent() {
		return nil, ForbiddenError("students cannot browse the directory")
	}

	students, err := s.users.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponseSlice(students), nil
}

func (s *userService) GetStudent(ctx context.Context, actor Actor, id uint) (dto.UserResponse, error) {
	if actor.IsStudent() {
		return dto.UserResponse{}, ForbiddenError("students cannot browse the directory")
	}

	student, err := s.users.FindByID(ctx, id)
	if err != nil {
		return dto.UserResponse{}, notFoundOr(err, "student %d not found", id)
	}
	if student.Role != models.RoleStudent {
		return dto.UserResponse{}, NotFoundError("student %d not found", id)
	}
	return dto.NewUserResponse(student), nil
}
