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

// @Summary Create a fees group.
// @Description create a named fee category, e.g. Tuition.
// @Tags fees-groups
// @Accept json
// @Param group body models.FeesGroup true "Fees group to create"
// @Produce json
// @Success 201 {object} models.FeesGroup
// @Router /api/fees-groups [post]
func CreateFeesGroup(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		group := new(models.FeesGroup)
		if err := c.BodyParser(group); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := validateStruct(group); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees group", err.Error())
		}

		group.ID = primitive.NewObjectID()
		if group.GroupId == "" {
			group.GroupId = uuid.NewString()
		}
		group.CreatedAt = time.Now()
		group.UpdatedAt = time.Now()

		if _, err := h.Db.InsertOne(h.C, group); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to create fees group", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusCreated, "success", "fees group created", group)
	}
}

// @Summary List fees groups.
// @Tags fees-groups
// @Produce json
// @Success 200 {object} []models.FeesGroup
// @Router /api/fees-groups [get]
func GetAllFeesGroups(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		groups := make([]models.FeesGroup, 0)
		cursor, err := h.Db.Find(h.C, bson.M{})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list fees groups", err.Error())
		}
		if err = cursor.All(h.C, &groups); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall fees groups", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fees groups", groups)
	}
}

// @Summary Get a single fees group.
// @Tags fees-groups
// @Param id path string true "Fees group ID"
// @Produce json
// @Success 200 {object} models.FeesGroup
// @Router /api/fees-groups/:id [get]
func GetFeesGroupById(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees group id", err.Error())
		}
		var group models.FeesGroup
		if err = h.Db.FindOne(h.C, bson.M{"_id": id}).Decode(&group); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "fees group not found", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fees group", group)
	}
}

// @Summary Update a fees group.
// @Tags fees-groups
// @Param id path string true "Fees group ID"
// @Accept json
// @Produce json
// @Success 200 {object} models.FeesGroup
// @Router /api/fees-groups/:id [put]
func UpdateFeesGroup(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees group id", err.Error())
		}

		patch := new(models.FeesGroup)
		if err = c.BodyParser(patch); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}

		set := bson.M{"updatedAt": time.Now()}
		if patch.Name != "" {
			set["name"] = patch.Name
		}
		if patch.Description != "" {
			set["description"] = patch.Description
		}
		if patch.Status != "" {
			set["status"] = patch.Status
		}

		var group models.FeesGroup
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = h.Db.FindOneAndUpdate(h.C, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&group)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "fees group not found", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fees group updated", group)
	}
}

// @Summary Delete a fees group.
// @Tags fees-groups
// @Param id path string true "Fees group ID"
// @Produce json
// @Success 200
// @Router /api/fees-groups/:id [delete]
func DeleteFeesGroup(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees group id", err.Error())
		}
		res, err := h.Db.DeleteOne(h.C, bson.M{"_id": id})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to delete fees group", err.Error())
		}
		if res.DeletedCount == 0 {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "fees group not found", nil)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fees group deleted", nil)
	}
}
