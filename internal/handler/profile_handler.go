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

// ProfileHandler serves the student profile endpoints.
type ProfileHandler struct {
	service service.ProfileService
	logger  zerolog.Logger
}

// NewProfileHandler constructs a handler instance.
func NewProfileHandler(service service.ProfileService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("component", "profile_handler").Logger(),
	}
}

// Register binds the profile routes.
func (h *ProfileHandler) Register(router fiber.Router) {
	studentOnly := middleware.RequireRole(models.RoleStudent)
	staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleCoordinator)

	router.Get("/me", h.getOwn)
	router.Get("/:userId", staffOnly, h.getByUser)
	router.Put("/basic-details", studentOnly, h.updateBasicDetails)
	router.Put("/education", studentOnly, h.updateEducation)
	router.Put("/skills", studentOnly, h.updateSkills)
	router.Post("/photo", studentOnly, h.uploadPhoto)
	router.Delete("/photo", studentOnly, h.deletePhoto)
}

func (h *ProfileHandler) getOwn(c *fiber.Ctx) error {
	profile, err := h.service.Get(requestContext(c), actorFromContext(c), 0)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "profile", profile)
}

func (h *ProfileHandler) getByUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid user id")
	}

	profile, err := h.service.Get(requestContext(c), actorFromContext(c), userID)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "profile", profile)
}

func (h *ProfileHandler) updateBasicDetails(c *fiber.Ctx) error {
	var req dto.BasicDetailsUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	profile, err := h.service.UpdateBasicDetails(requestContext(c), actorFromContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "profile updated", profile)
}

func (h *ProfileHandler) updateEducation(c *fiber.Ctx) error {
	var req dto.EducationUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	profile, err := h.service.UpdateEducation(requestContext(c), actorFromContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "profile updated", profile)
}

func (h *ProfileHandler) updateSkills(c *fiber.Ctx) error {
	var req dto.SkillsUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	profile, err := h.service.UpdateSkills(requestContext(c), actorFromContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "profile updated", profile)
}

func (h *ProfileHandler) uploadPhoto(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "photo file required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "unable to read photo")
	}
	defer file.Close()

	profile, err := h.service.UploadPhoto(requestContext(c), actorFromContext(c), fileHeader.Filename, file)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "photo uploaded", profile)
}

func (h *ProfileHandler) deletePhoto(c *fiber.Ctx) error {
	profile, err := h.service.DeletePhoto(requestContext(c), actorFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "photo removed", profile)
}
