package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/service"
	"github.com/noah-isme/placement-go-api/internal/utils"
)

// PortfolioHandler serves project, experience, accomplishment and
// certificate routes. The group is gated to students.
type PortfolioHandler struct {
	service service.PortfolioService
	logger  zerolog.Logger
}

// NewPortfolioHandler constructs a handler instance.
func NewPortfolioHandler(service service.PortfolioService, logger zerolog.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		service: service,
		logger:  logger.With().Str("component", "portfolio_handler").Logger(),
	}
}

// Register binds the portfolio routes.
func (h *PortfolioHandler) Register(router fiber.Router) {
	projects := router.Group("/projects")
	projects.Get("/", h.listProjects)
	projects.Post("/", h.createProject)
	projects.Put("/:id", h.updateProject)
	projects.Delete("/:id", h.deleteProject)

	experiences := router.Group("/experiences")
	experiences.Get("/", h.listExperiences)
	experiences.Post("/", h.createExperience)
	experiences.Put("/:id", h.updateExperience)
	experiences.Delete("/:id", h.deleteExperience)

	accomplishments := router.Group("/accomplishments")
	accomplishments.Get("/", h.listAccomplishments)
	accomplishments.Post("/", h.createAccomplishment)
	accomplishments.Put("/:id", h.updateAccomplishment)
	accomplishments.Delete("/:id", h.deleteAccomplishment)

	certificates := router.Group("/certificates")
	certificates.Get("/", h.listCertificates)
	certificates.Post("/", h.createCertificate)
	certificates.Put("/:id", h.updateCertificate)
	certificates.Delete("/:id", h.deleteCertificate)
}

func (h *PortfolioHandler) listProjects(c *fiber.Ctx) error {
	projects, err := h.service.ListProjects(requestContext(c), actorFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "projects", projects)
}

func (h *PortfolioHandler) createProject(c *fiber.Ctx) error {
	var req dto.ProjectRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	project, err := h.service.CreateProject(requestContext(c), actorFromContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "project created", project)
}

func (h *PortfolioHandler) updateProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid project id")
	}

	var req dto.ProjectRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	project, err := h.service.UpdateProject(requestContext(c), actorFromContext(c), id, req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "project updated", project)
}

func (h *PortfolioHandler) deleteProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid project id")
	}

	if err := h.service.DeleteProject(requestContext(c), actorFromContext(c), id); err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "project deleted", nil)
}

func (h *PortfolioHandler) listExperiences(c *fiber.Ctx) error {
	experiences, err := h.service.ListExperiences(requestContext(c), actorFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "experiences", experiences)
}

func (h *PortfolioHandler) createExperience(c *fiber.Ctx) error {
	var req dto.ExperienceRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	experience, err := h.service.CreateExperience(requestContext(c), actorFromContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "experience created", experience)
}

func (h *PortfolioHandler) updateExperience(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid experience id")
	}

	var req dto.ExperienceRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	experience, err := h.service.UpdateExperience(requestContext(c), actorFromContext(c), id, req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "experience updated", experience)
}

func (h *PortfolioHandler) deleteExperience(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid experience id")
	}

	if err := h.service.DeleteExperience(requestContext(c), actorFromContext(c), id); err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "experience deleted", nil)
}

func (h *PortfolioHandler) listAccomplishments(c *fiber.Ctx) error {
	accomplishments, err := h.service.ListAccomplishments(requestContext(c), actorFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "accomplishments", accomplishments)
}

func (h *PortfolioHandler) createAccomplishment(c *fiber.Ctx) error {
	var req dto.AccomplishmentRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	accomplishment, err := h.service.CreateAccomplishment(requestContext(c), actorFromContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "accomplishment created", accomplishment)
}

func (h *PortfolioHandler) updateAccomplishment(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid accomplishment id")
	}

	var req dto.AccomplishmentRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	accomplishment, err := h.service.UpdateAccomplishment(requestContext(c), actorFromContext(c), id, req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "accomplishment updated", accomplishment)
}

func (h *PortfolioHandler) deleteAccomplishment(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid accomplishment id")
	}

	if err := h.service.DeleteAccomplishment(requestContext(c), actorFromContext(c), id); err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "accomplishment deleted", nil)
}

func (h *PortfolioHandler) listCertificates(c *fiber.Ctx) error {
	certificates, err := h.service.ListCertificates(requestContext(c), actorFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "certificates", certificates)
}

func (h *PortfolioHandler) createCertificate(c *fiber.Ctx) error {
	var req dto.CertificateRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	certificate, err := h.service.CreateCertificate(requestContext(c), actorFromContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "certificate created", certificate)
}

func (h *PortfolioHandler) updateCertificate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid certificate id")
	}

	var req dto.CertificateRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	certificate, err := h.service.UpdateCertificate(requestContext(c), actorFromContext(c), id, req)
	if err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "certificate updated", certificate)
}

func (h *PortfolioHandler) deleteCertificate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid certificate id")
	}

	if err := h.service.DeleteCertificate(requestContext(c), actorFromContext(c), id); err != nil {
		return sendDomainError(c, err)
	}
	return utils.SendSuccess(c, "certificate deleted", nil)
}
