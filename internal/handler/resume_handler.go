package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/service"
	"github.com/noah-isme/placement-go-api/internal/utils"
)

// ResumeHandler serves the resume PDF download. The group is gated to
// students.
type ResumeHandler struct {
	service service.ResumeService
	logger  zerolog.Logger
}

// NewResumeHandler constructs a handler instance.
func NewResumeHandler(service service.ResumeService, logger zerolog.Logger) *ResumeHandler {
	return &ResumeHandler{
		service: service,
		logger:  logger.With().Str("component", "resume_handler").Logger(),
	}
}

// Register binds the resume routes.
func (h *ResumeHandler) Register(router fiber.Router) {
	router.Get("/", h.download)
}

func (h *ResumeHandler) download(c *fiber.Ctx) error {
	content, filename, err := h.service.Generate(requestContext(c), actorFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendPDF(c, filename, content)
}
