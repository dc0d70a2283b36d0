package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/service"
)

func performJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) (bool, string) {
	t.Helper()
	defer resp.Body.Close()

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.Success, payload.Message
}

func TestSendDomainErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"credentials", service.ErrCredentials, fiber.StatusUnauthorized},
		{"forbidden", service.ForbiddenError("not yours"), fiber.StatusForbidden},
		{"not found", service.NotFoundError("drive %d not found", 7), fiber.StatusNotFound},
		{"validation", service.ValidationError("bad input"), fiber.StatusBadRequest},
		{"storage", fiber.ErrTeapot, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return sendDomainError(c, tc.err)
			})

			resp := performJSON(t, app, http.MethodGet, "/", "")
			require.Equal(t, tc.status, resp.StatusCode)

			success, message := decodeEnvelope(t, resp)
			require.False(t, success)
			if tc.status == fiber.StatusInternalServerError {
				// Storage details never leak to clients.
				require.Equal(t, "internal server error", message)
			} else {
				require.Equal(t, tc.err.Error(), message)
			}
		})
	}
}

func TestParseBodyValidation(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var body payload
		if err := parseBody(c, &body); err != nil {
			return sendDomainError(c, err)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp := performJSON(t, app, http.MethodPost, "/", `{"email":"not-an-email"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	_, message := decodeEnvelope(t, resp)
	require.Equal(t, "invalid field email", message)

	resp = performJSON(t, app, http.MethodPost, "/", `{"email":`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	_, message = decodeEnvelope(t, resp)
	require.Equal(t, "invalid request body", message)

	resp = performJSON(t, app, http.MethodPost, "/", `{"email":"asha@example.com"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestActorFromContext(t *testing.T) {
	var actor service.Actor

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(7))
		c.Locals("user_role", "dept_coordinator")
		c.Locals("user_department", "CSE")

		actor = actorFromContext(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp := performJSON(t, app, http.MethodGet, "/", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, uint(7), actor.ID)
	require.Equal(t, models.RoleCoordinator, actor.Role)
	require.Equal(t, "CSE", actor.Department)
}
