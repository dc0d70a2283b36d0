package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/middleware"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/service"
	"github.com/noah-isme/placement-go-api/internal/utils"
)

// ApplicationHandler serves application submission and review endpoints.
type ApplicationHandler struct {
	service service.ApplicationService
	logger  zerolog.Logger
}

// NewApplicationHandler constructs a handler instance.
func NewApplicationHandler(service service.ApplicationService, logger zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
		logger:  logger.With().Str("component", "application_handler").Logger(),
	}
}

// Register binds the application routes.
func (h *ApplicationHandler) Register(router fiber.Router) {
	studentOnly := middleware.RequireRole(models.RoleStudent)
	staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleCoordinator)

	router.Post("/", studentOnly, h.apply)
	router.Get("/me", studentOnly, h.listMine)
	router.Get("/", staffOnly, h.listForReview)
	router.Patch("/:id/status", staffOnly, h.updateStatus)
}

func (h *ApplicationHandler) apply(c *fiber.Ctx) error {
	var req dto.ApplicationCreateRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	application, err := h.service.Apply(requestContext(c), actorFromContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "application submitted", application)
}

func (h *ApplicationHandler) listMine(c *fiber.Ctx) error {
	applications, err := h.service.ListMine(requestContext(c), actorFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "applications", applications)
}

func (h *ApplicationHandler) listForReview(c *fiber.Ctx) error {
	driveID, err := parseQueryInt(c, "drive_id")
	if err != nil || driveID < 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid drive_id")
	}

	applications, err := h.service.ListForReview(requestContext(c), actorFromContext(c), uint(driveID))
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "applications", applications)
}

func (h *ApplicationHandler) updateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid application id")
	}

	var req dto.ApplicationStatusRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	application, err := h.service.UpdateStatus(requestContext(c), actorFromContext(c), id, req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "application updated", application)
}
