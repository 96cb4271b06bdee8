package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/edustack/school-fees-api/database"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// disconnectedHandler returns a Handler whose collection belongs to a client
// that was never connected. Requests that reach the query path fail with a
// 500, which lets routing and parameter parsing be exercised without a live
// database.
func disconnectedHandler(t *testing.T, collection string) *Handler {
	t.Helper()
	client, err := mongo.NewClient(options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	return &Handler{
		Db: client.Database("schoolfees").Collection(collection),
		L:  logrus.New(),
		C:  context.Background(),
	}
}

func TestGetFeesTypesByGroupReadsRouteParam(t *testing.T) {
	h := disconnectedHandler(t, database.FeesTypesCollection)
	app := fiber.New()
	// registered exactly as the router registers it
	app.Get("/api/fees-types/group/:feesGroupId", GetFeesTypesByGroup(h))

	// a well-formed id must reach the query path, not fail parameter parsing
	req := httptest.NewRequest("GET", "/api/fees-types/group/"+primitive.NewObjectID().Hex(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/fees-types/group/not-an-id", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
