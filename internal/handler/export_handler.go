package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/service"
	"github.com/noah-isme/placement-go-api/internal/utils"
)

// ExportHandler serves the staff CSV downloads. The group is gated to staff
// roles.
type ExportHandler struct {
	service service.ExportService
	logger  zerolog.Logger
}

// NewExportHandler constructs a handler instance.
func NewExportHandler(service service.ExportService, logger zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger.With().Str("component", "export_handler").Logger(),
	}
}

// Register binds the export routes.
func (h *ExportHandler) Register(router fiber.Router) {
	router.Get("/students", h.roster)
	router.Get("/drives/:id/applications", h.driveApplications)
}

func (h *ExportHandler) roster(c *fiber.Ctx) error {
	content, err := h.service.StudentRosterCSV(requestContext(c), actorFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}

	filename := fmt.Sprintf("students-%s.csv", time.Now().UTC().Format("2006-01-02"))
	return utils.SendCSV(c, filename, content)
}

func (h *ExportHandler) driveApplications(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid drive id")
	}

	content, err := h.service.DriveApplicationsCSV(requestContext(c), actorFromContext(c), id)
	if err != nil {
		return sendDomainError(c, err)
	}

	filename := fmt.Sprintf("drive-%d-applications.csv", id)
	return utils.SendCSV(c, filename, content)
}
