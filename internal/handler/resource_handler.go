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

// ResourceHandler serves the departmental study material routes.
type ResourceHandler struct {
	service service.ResourceService
	logger  zerolog.Logger
}

// NewResourceHandler constructs a handler instance.
func NewResourceHandler(service service.ResourceService, logger zerolog.Logger) *ResourceHandler {
	return &ResourceHandler{
		service: service,
		logger:  logger.With().Str("component", "resource_handler").Logger(),
	}
}

// Register binds the resource routes.
func (h *ResourceHandler) Register(router fiber.Router) {
	staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleCoordinator)

	router.Get("/", h.list)
	router.Post("/", staffOnly, h.create)
	router.Delete("/:id", staffOnly, h.delete)
}

func (h *ResourceHandler) list(c *fiber.Ctx) error {
	resources, err := h.service.List(requestContext(c), actorFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "resources", resources)
}

func (h *ResourceHandler) create(c *fiber.Ctx) error {
	var req dto.ResourceCreateRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	resource, err := h.service.Create(requestContext(c), actorFromContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "resource published", resource)
}

func (h *ResourceHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid resource id")
	}

	if err := h.service.Delete(requestContext(c), actorFromContext(c), id); err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "resource deleted", nil)
}
