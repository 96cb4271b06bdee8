package handlers

import (
	"time"

	"github.com/edustack/school-fees-api/models"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @Summary Create a session.
// @Description create a billing/academic period.
// @Tags sessions
// @Accept json
// @Param session body models.Session true "Session to create"
// @Produce json
// @Success 201 {object} models.Session
// @Router /api/sessions [post]
func CreateSession(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		session := new(models.Session)
		if err := c.BodyParser(session); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := validateStruct(session); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session", err.Error())
		}

		session.ID = primitive.NewObjectID()
		if session.Status == "" {
			session.Status = "inactive"
		}
		session.CreatedAt = time.Now()
		session.UpdatedAt = time.Now()

		if _, err := h.Db.InsertOne(h.C, session); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to create session", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusCreated, "success", "session created", session)
	}
}

// @Summary List sessions.
// @Tags sessions
// @Produce json
// @Success 200 {object} []models.Session
// @Router /api/sessions [get]
func GetAllSessions(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		sessions := make([]models.Session, 0)
		cursor, err := h.Db.Find(h.C, bson.M{}, options.Find().SetSort(bson.M{"startDate": -1}))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list sessions", err.Error())
		}
		if err = cursor.All(h.C, &sessions); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall sessions", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "sessions", sessions)
	}
}

// @Summary Get a single session.
// @Tags sessions
// @Param id path string true "Session ID"
// @Produce json
// @Success 200 {object} models.Session
// @Router /api/sessions/:id [get]
func GetSessionById(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}
		var session models.Session
		if err = h.Db.FindOne(h.C, bson.M{"_id": id}).Decode(&session); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "session not found", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "session", session)
	}
}

// @Summary Update a session.
// @Tags sessions
// @Param id path string true "Session ID"
// @Accept json
// @Produce json
// @Success 200 {object} models.Session
// @Router /api/sessions/:id [put]
func UpdateSession(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}

		patch := new(models.Session)
		if err = c.BodyParser(patch); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}

		set := bson.M{"updatedAt": time.Now()}
		if patch.Name != "" {
			set["name"] = patch.Name
		}
		if !patch.StartDate.IsZero() {
			set["startDate"] = patch.StartDate
		}
		if !patch.EndDate.IsZero() {
			set["endDate"] = patch.EndDate
		}
		if patch.SessionId != "" {
			set["sessionId"] = patch.SessionId
		}
		if patch.Status != "" {
			set["status"] = patch.Status
		}

		var session models.Session
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = h.Db.FindOneAndUpdate(h.C, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&session)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "session not found", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "session updated", session)
	}
}

// @Summary Delete a session.
// @Tags sessions
// @Param id path string true "Session ID"
// @Produce json
// @Success 200
// @Router /api/sessions/:id [delete]
func DeleteSession(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}
		res, err := h.Db.DeleteOne(h.C, bson.M{"_id": id})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to delete session", err.Error())
		}
		if res.DeletedCount == 0 {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "session not found", nil)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "session deleted", nil)
	}
}
