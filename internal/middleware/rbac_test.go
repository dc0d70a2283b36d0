package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/placement-go-api/internal/models"
)

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func newRoleApp(role interface{}, allowed ...models.Role) *fiber.App {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if role != nil {
			c.Locals("user_role", role)
		}
		return c.Next()
	}, RequireRole(allowed...), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func performRoleRequest(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	return resp
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	app := newRoleApp("ADMIN", models.RoleAdmin)
	resp := performRoleRequest(t, app)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", readBody(t, resp))
}

func TestRequireRoleIsCaseInsensitive(t *testing.T) {
	app := newRoleApp("admin", models.RoleAdmin)
	resp := performRoleRequest(t, app)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleAcceptsTypedRole(t *testing.T) {
	app := newRoleApp(models.RoleCoordinator, models.RoleAdmin, models.RoleCoordinator)
	resp := performRoleRequest(t, app)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	app := newRoleApp("STUDENT", models.RoleAdmin)
	resp := performRoleRequest(t, app)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	app := newRoleApp(nil, models.RoleAdmin)
	resp := performRoleRequest(t, app)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
