package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/placement-go-api/internal/middleware"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/service"
	"github.com/noah-isme/placement-go-api/internal/utils"
)

var validate = validator.New()

// parseBody binds and validates a JSON request body. Callers route the
// returned error through sendDomainError, which turns it into a 400.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return service.ValidationError("invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		return service.ValidationError("%s", validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return "invalid field " + strings.ToLower(first.Field())
	}
	return "invalid request body"
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	parsed, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

func userIDFromContext(c *fiber.Ctx) uint {
	if v := c.Locals("user_id"); v != nil {
		if id, ok := v.(uint); ok {
			return id
		}
		if id, ok := v.(int); ok && id >= 0 {
			return uint(id)
		}
	}
	return 0
}

func actorFromContext(c *fiber.Ctx) service.Actor {
	actor := service.Actor{ID: userIDFromContext(c)}
	if role, ok := c.Locals("user_role").(string); ok {
		actor.Role = models.Role(strings.ToUpper(strings.TrimSpace(role)))
	}
	if department, ok := c.Locals("user_department").(string); ok {
		actor.Department = department
	}
	return actor
}

// requestContext carries the correlation id into the service layer.
func requestContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if ctx == nil {
		ctx = context.Background()
	}
	return middleware.ContextWithCorrelation(ctx, middleware.GetCorrelationID(c))
}

// sendDomainError maps service error kinds onto HTTP statuses. Unknown errors
// surface as an opaque 500 so storage details never leak to clients.
func sendDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCredentials):
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return utils.SendError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalid):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
