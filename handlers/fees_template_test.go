package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/edustack/school-fees-api/database"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAssignedStudentsRouteParamOrder(t *testing.T) {
	h := disconnectedHandler(t, database.FeesTemplatesCollection)
	app := fiber.New()
	// registered exactly as the router registers it: templateId first
	app.Get("/api/fees-templates/assigned-students/:templateId/:sessionId", GetAssignedStudents(h))

	req := httptest.NewRequest("GET",
		"/api/fees-templates/assigned-students/not-an-id/"+primitive.NewObjectID().Hex(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "invalid template id", envelope.Message)
}
