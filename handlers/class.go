package handlers

import (
	"time"

	"github.com/edustack/school-fees-api/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @Summary Create a class.
// @Description create a class within a session.
// @Tags classes
// @Accept json
// @Param class body models.Class true "Class to create"
// @Produce json
// @Success 201 {object} models.Class
// @Router /api/classes [post]
func CreateClass(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		class := new(models.Class)
		if err := c.BodyParser(class); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := validateStruct(class); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid class", err.Error())
		}

		if _, err := h.GetSessionByID(class.SessionId); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "session not found", err.Error())
		}

		class.ID = primitive.NewObjectID()
		if class.ClassId == "" {
			class.ClassId = uuid.NewString()
		}
		class.CreatedAt = time.Now()
		class.UpdatedAt = time.Now()

		if _, err := h.Db.InsertOne(h.C, class); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to create class", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusCreated, "success", "class created", class)
	}
}

// @Summary List classes for a session.
// @Tags classes
// @Param sessionId path string true "Session ID"
// @Produce json
// @Success 200 {object} []models.Class
// @Router /api/classes/session/:sessionId [get]
func GetClassesForSession(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		sessionId, err := parseObjectID(c.Params("sessionId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}

		classes := make([]models.Class, 0)
		cursor, err := h.Db.Find(h.C, bson.M{"sessionId": sessionId}, options.Find().SetSort(bson.M{"name": 1}))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list classes", err.Error())
		}
		if err = cursor.All(h.C, &classes); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall classes", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "classes", classes)
	}
}

// @Summary Get a single class.
// @Tags classes
// @Param id path string true "Class ID"
// @Produce json
// @Success 200 {object} models.Class
// @Router /api/classes/:id [get]
func GetClassById(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid class id", err.Error())
		}
		var class models.Class
		if err = h.Db.FindOne(h.C, bson.M{"_id": id}).Decode(&class); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "class not found", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "class", class)
	}
}

// @Summary Delete a class.
// @Tags classes
// @Param id path string true "Class ID"
// @Produce json
// @Success 200
// @Router /api/classes/:id [delete]
func DeleteClass(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid class id", err.Error())
		}
		res, err := h.Db.DeleteOne(h.C, bson.M{"_id": id})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to delete class", err.Error())
		}
		if res.DeletedCount == 0 {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "class not found", nil)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "class deleted", nil)
	}
}
