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

type CreateFeesTypeRequest struct {
	TypeId      string `json:"typeId"`
	Name        string `json:"name" validate:"required"`
	FeesGroupId string `json:"feesGroupId" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// @Summary Create a fees type.
// @Description create a billable line item under an existing fees group. The
// @Description owning group is fixed at creation; the type can never be used
// @Description under any other group.
// @Tags fees-types
// @Accept json
// @Param feesType body CreateFeesTypeRequest true "Fees type to create"
// @Produce json
// @Success 201 {object} models.FeesType
// @Router /api/fees-types [post]
func CreateFeesType(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(CreateFeesTypeRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := validateStruct(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees type", err.Error())
		}

		groupId, err := parseObjectID(req.FeesGroupId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees group id", err.Error())
		}
		if _, err = h.GetFeesGroupByID(groupId); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "fees group not found", err.Error())
		}

		feesType := &models.FeesType{
			ID:          primitive.NewObjectID(),
			TypeId:      req.TypeId,
			Name:        req.Name,
			FeesGroup:   groupId,
			Description: req.Description,
			Status:      req.Status,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if feesType.TypeId == "" {
			feesType.TypeId = uuid.NewString()
		}

		if _, err = h.Db.InsertOne(h.C, feesType); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to create fees type", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusCreated, "success", "fees type created", feesType)
	}
}

// @Summary List fees types.
// @Tags fees-types
// @Produce json
// @Success 200 {object} []models.FeesType
// @Router /api/fees-types [get]
func GetAllFeesTypes(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		feesTypes := make([]models.FeesType, 0)
		cursor, err := h.Db.Find(h.C, bson.M{})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list fees types", err.Error())
		}
		if err = cursor.All(h.C, &feesTypes); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall fees types", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fees types", feesTypes)
	}
}

// @Summary Get a single fees type.
// @Tags fees-types
// @Param id path string true "Fees type ID"
// @Produce json
// @Success 200 {object} models.FeesType
// @Router /api/fees-types/:id [get]
func GetFeesTypeById(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees type id", err.Error())
		}
		var feesType models.FeesType
		if err = h.Db.FindOne(h.C, bson.M{"_id": id}).Decode(&feesType); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "fees type not found", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fees type", feesType)
	}
}

// @Summary Update a fees type.
// @Tags fees-types
// @Param id path string true "Fees type ID"
// @Accept json
// @Produce json
// @Success 200 {object} models.FeesType
// @Router /api/fees-types/:id [put]
func UpdateFeesType(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees type id", err.Error())
		}

		req := new(CreateFeesTypeRequest)
		if err = c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}

		set := bson.M{"updatedAt": time.Now()}
		if req.Name != "" {
			set["name"] = req.Name
		}
		if req.Description != "" {
			set["description"] = req.Description
		}
		if req.Status != "" {
			set["status"] = req.Status
		}
		if req.FeesGroupId != "" {
			groupId, err := parseObjectID(req.FeesGroupId)
			if err != nil {
				return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees group id", err.Error())
			}
			if _, err = h.GetFeesGroupByID(groupId); err != nil {
				return FiberJsonResponse(c, fiber.StatusNotFound, "error", "fees group not found", err.Error())
			}
			set["feesGroup"] = groupId
		}

		var feesType models.FeesType
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = h.Db.FindOneAndUpdate(h.C, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&feesType)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "fees type not found", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fees type updated", feesType)
	}
}

// @Summary Delete a fees type.
// @Tags fees-types
// @Param id path string true "Fees type ID"
// @Produce json
// @Success 200
// @Router /api/fees-types/:id [delete]
func DeleteFeesType(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees type id", err.Error())
		}
		res, err := h.Db.DeleteOne(h.C, bson.M{"_id": id})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to delete fees type", err.Error())
		}
		if res.DeletedCount == 0 {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "fees type not found", nil)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fees type deleted", nil)
	}
}

// @Summary List fees types belonging to a group.
// @Tags fees-types
// @Param feesGroupId path string true "Fees group ID"
// @Produce json
// @Success 200 {object} []models.FeesType
// @Router /api/fees-types/group/:feesGroupId [get]
func GetFeesTypesByGroup(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		groupId, err := parseObjectID(c.Params("feesGroupId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees group id", err.Error())
		}

		feesTypes := make([]models.FeesType, 0)
		cursor, err := h.Db.Find(h.C, bson.M{"feesGroup": groupId})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list fees types", err.Error())
		}
		if err = cursor.All(h.C, &feesTypes); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall fees types", err.Error())
		}
		if len(feesTypes) == 0 {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "no fee types found for this fees group", nil)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fees types", feesTypes)
	}
}
