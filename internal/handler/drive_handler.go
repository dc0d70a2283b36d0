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

// DriveHandler serves drive CRUD, assignment and sharing endpoints.
type DriveHandler struct {
	service service.DriveService
	logger  zerolog.Logger
}

// NewDriveHandler constructs a handler instance.
func NewDriveHandler(service service.DriveService, logger zerolog.Logger) *DriveHandler {
	return &DriveHandler{
		service: service,
		logger:  logger.With().Str("component", "drive_handler").Logger(),
	}
}

// Register binds the drive routes. Listing and lookup are open to every
// authenticated role; the service narrows visibility per caller.
func (h *DriveHandler) Register(router fiber.Router) {
	adminOnly := middleware.RequireRole(models.RoleAdmin)
	staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleCoordinator)

	router.Get("/", h.list)
	router.Get("/:id", h.get)
	router.Post("/", adminOnly, h.create)
	router.Put("/:id", adminOnly, h.update)
	router.Delete("/:id", adminOnly, h.delete)
	router.Post("/:id/assign", adminOnly, h.assign)
	router.Post("/:id/share", staffOnly, h.share)
}

func (h *DriveHandler) list(c *fiber.Ctx) error {
	drives, err := h.service.List(requestContext(c), actorFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "drives", drives)
}

func (h *DriveHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid drive id")
	}

	drive, err := h.service.Get(requestContext(c), actorFromContext(c), id)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "drive", drive)
}

func (h *DriveHandler) create(c *fiber.Ctx) error {
	var req dto.DriveCreateRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	drive, err := h.service.Create(requestContext(c), actorFromContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "drive created", drive)
}

func (h *DriveHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid drive id")
	}

	var req dto.DriveUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	drive, err := h.service.Update(requestContext(c), actorFromContext(c), id, req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "drive updated", drive)
}

func (h *DriveHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid drive id")
	}

	if err := h.service.Delete(requestContext(c), actorFromContext(c), id); err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "drive deleted", nil)
}

func (h *DriveHandler) assign(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid drive id")
	}

	var req dto.DriveAssignRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	drive, err := h.service.Assign(requestContext(c), actorFromContext(c), id, req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "drive assigned", drive)
}

func (h *DriveHandler) share(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid drive id")
	}

	var req dto.DriveShareRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	response, err := h.service.Share(requestContext(c), actorFromContext(c), id, req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "drive shared", response)
}
