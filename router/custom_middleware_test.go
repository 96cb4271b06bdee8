package router

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/edustack/school-fees-api/handlers"
	"github.com/edustack/school-fees-api/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userId primitive.ObjectID, role, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"userId": userId.Hex(),
		"role":   role,
		"email":  email,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func protectedApp(roles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/secure", Protected(roles...), func(c *fiber.Ctx) error {
		p, ok := handlers.PrincipalFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(p)
	})
	return app
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := protectedApp()

	req := httptest.NewRequest("GET", "/secure", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsBadSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := protectedApp()

	claims := jwt.MapClaims{
		"userId": primitive.NewObjectID().Hex(),
		"role":   models.RoleAdmin,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := protectedApp()

	claims := jwt.MapClaims{
		"userId": primitive.NewObjectID().Hex(),
		"role":   models.RoleAdmin,
		"exp":    time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedEnforcesRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := protectedApp(models.RoleAdmin, models.RoleTeacher)

	token := signToken(t, primitive.NewObjectID(), models.RoleParent, "parent@example.com")
	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestProtectedStoresPrincipal(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := protectedApp(models.RoleAdmin)

	userId := primitive.NewObjectID()
	token := signToken(t, userId, models.RoleAdmin, "admin@example.com")
	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
