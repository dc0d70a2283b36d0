package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/service"
	"github.com/noah-isme/placement-go-api/internal/utils"
)

// AuthHandler serves registration, login and account endpoints.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs a handler instance.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// RegisterPublic binds the unauthenticated auth routes.
func (h *AuthHandler) RegisterPublic(router fiber.Router) {
	router.Post("/register", h.register)
	router.Post("/login", h.login)
}

// RegisterProtected binds the auth routes that require a valid token.
func (h *AuthHandler) RegisterProtected(router fiber.Router) {
	router.Get("/me", h.me)
	router.Patch("/password", h.updatePassword)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	response, err := h.service.Register(requestContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "account created", response)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	response, err := h.service.Login(requestContext(c), req)
	if err != nil {
		return sendDomainError(c, err)
	}

	return utils.SendSuccess(c, "logged in", response)
}

func (h *AuthHandler) me(c *fiber.Ctx) error {
	response, err := h.service.Me(requestContext(c), userIDFromContext(c))
	if err != nil {
		return sendDomainError(c, err)
	}

	return utils.SendSuccess(c, "account", response)
}

func (h *AuthHandler) updatePassword(c *fiber.Ctx) error {
	var req dto.UpdatePasswordRequest
	if err := parseBody(c, &req); err != nil {
		return sendDomainError(c, err)
	}

	if err := h.service.UpdatePassword(requestContext(c), userIDFromContext(c), req); err != nil {
		return sendDomainError(c, err)
	}

	return utils.SendSuccess(c, "password updated", nil)
}
