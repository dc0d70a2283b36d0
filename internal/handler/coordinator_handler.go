package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/service"
	"github.com/noah-isme/placement-go-api/internal/utils"
)

// CoordinatorHandler serves the admin-facing coordinator management routes.
type CoordinatorHandler struct {
	service service.CoordinatorService
	logger  zerolog.Logger
}

// NewCoordinatorHandler constructs a handler instance.
func NewCoordinatorHandler(service service.CoordinatorService, logger zerolog.Logger) *CoordinatorHandler {
	return &CoordinatorHandler{
		service: service,
		logger:  logger.With().Str("component", "coordinator_handler").Logger(),
	}
}

// Register binds the coordinator routes. The router group is already gated
// to admins.
func (h *CoordinatorHandler) Register(router fiber.Router) {
	router.Post("/", h.create)
	router.Get("/", h.list)
	router.Patch("/:id/status", h.setStatus)
	router.Post("/:id/reset-password", h.resetPassword)
	router.Delete("/:id", h.delete)
}

func (h *CoordinatorHandler) create(c *fiber.Ctx) error {
	var req dto.CoordinatorCreateRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	coordinator, err := h.service.Create(requestContext(c), actorFromContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "coordinator created", coordinator)
}

func (h *CoordinatorHandler) list(c *fiber.Ctx) error {
	coordinators, err := h.service.List(requestContext(c), actorFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "coordinators", coordinators)
}

func (h *CoordinatorHandler) setStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid coordinator id")
	}

	var req dto.CoordinatorStatusRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	coordinator, err := h.service.SetStatus(requestContext(c), actorFromContext(c), id, req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "coordinator updated", coordinator)
}

func (h *CoordinatorHandler) resetPassword(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid coordinator id")
	}

	coordinator, err := h.service.ResetPassword(requestContext(c), actorFromContext(c), id)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "password reset", coordinator)
}

func (h *CoordinatorHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid coordinator id")
	}

	if err := h.service.Delete(requestContext(c), actorFromContext(c), id); err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "coordinator deleted", nil)
}
