package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/service"
	"github.com/noah-isme/placement-go-api/internal/utils"
)

// StudentHandler serves the staff-facing student directory.
type StudentHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewStudentHandler constructs a handler instance.
func NewStudentHandler(service service.UserService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		logger:  logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register binds the directory routes. The group is gated to staff roles.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Get("/:id", h.get)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	students, err := h.service.ListStudents(requestContext(c), actorFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "students", students)
}

func (h *StudentHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid student id")
	}

	student, err := h.service.GetStudent(requestContext(c), actorFromContext(c), id)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "student", student)
}
