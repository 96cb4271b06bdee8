package handlers

import (
	"fmt"
	"time"

	"github.com/edustack/school-fees-api/database"
	"github.com/edustack/school-fees-api/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TemplateFeeTypeInput struct {
	FeesType string  `json:"feesType" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
}

type TemplateFeeGroupInput struct {
	FeesGroup string                 `json:"feesGroup" validate:"required"`
	FeeTypes  []TemplateFeeTypeInput `json:"feeTypes" validate:"required,min=1,dive"`
}

type CreateFeesTemplateRequest struct {
	TemplateId string                  `json:"templateId"`
	Name       string                  `json:"name" validate:"required"`
	SessionId  string                  `json:"sessionId" validate:"required"`
	Fees       []TemplateFeeGroupInput `json:"fees" validate:"required,min=1,dive"`
	Status     string                  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type UpdateFeesTemplateRequest struct {
	TemplateId string                  `json:"templateId"`
	Name       string                  `json:"name"`
	SessionId  string                  `json:"sessionId"`
	ClassIds   []string                `json:"classIds"`
	Fees       []TemplateFeeGroupInput `json:"fees" validate:"omitempty,min=1,dive"`
	Status     string                  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func parseTemplateFees(inputs []TemplateFeeGroupInput) ([]models.TemplateFeeGroup, error) {
	fees := make([]models.TemplateFeeGroup, 0, len(inputs))
	for _, group := range inputs {
		groupId, err := parseObjectID(group.FeesGroup)
		if err != nil {
			return nil, fmt.Errorf("invalid fees group id %q", group.FeesGroup)
		}
		types := make([]models.TemplateFeeType, 0, len(group.FeeTypes))
		for _, ft := range group.FeeTypes {
			typeId, err := parseObjectID(ft.FeesType)
			if err != nil {
				return nil, fmt.Errorf("invalid fees type id %q", ft.FeesType)
			}
			types = append(types, models.TemplateFeeType{FeesType: typeId, Amount: ft.Amount})
		}
		fees = append(fees, models.TemplateFeeGroup{FeesGroup: groupId, FeeTypes: types})
	}
	return fees, nil
}

// validateTemplateFees checks that every referenced group exists and that
// every fee type exists under the group it is listed with.
func (h *Handler) validateTemplateFees(fees []models.TemplateFeeGroup) (string, error) {
	for _, group := range fees {
		if _, err := h.GetFeesGroupByID(group.FeesGroup); err != nil {
			return fmt.Sprintf("Fees Group %s not found", group.FeesGroup.Hex()), err
		}
		for _, ft := range group.FeeTypes {
			if _, err := h.GetFeesTypeUnderGroup(ft.FeesType, group.FeesGroup); err != nil {
				return fmt.Sprintf("Fees Type %s not found or not associated with Fees Group %s",
					ft.FeesType.Hex(), group.FeesGroup.Hex()), err
			}
		}
	}
	return "", nil
}

// expandTemplates resolves every reference a template carries into {id,
// name} views: session, classes, fee groups and fee types.
func (h *Handler) expandTemplates(templates ...models.FeesTemplate) ([]models.FeesTemplateView, error) {
	sessionIds := make([]primitive.ObjectID, 0)
	classIds := make([]primitive.ObjectID, 0)
	groupIds := make([]primitive.ObjectID, 0)
	typeIds := make([]primitive.ObjectID, 0)
	for _, t := range templates {
		sessionIds = append(sessionIds, t.SessionId)
		classIds = append(classIds, t.ClassIds...)
		for _, g := range t.Fees {
			groupIds = append(groupIds, g.FeesGroup)
			for _, ft := range g.FeeTypes {
				typeIds = append(typeIds, ft.FeesType)
			}
		}
	}

	classNames, err := h.nameMap(database.ClassesCollection, classIds)
	if err != nil {
		return nil, err
	}
	groupNames, err := h.nameMap(database.FeesGroupsCollection, groupIds)
	if err != nil {
		return nil, err
	}
	typeNames, err := h.nameMap(database.FeesTypesCollection, typeIds)
	if err != nil {
		return nil, err
	}

	sessions := make(map[primitive.ObjectID]models.SessionRef, len(sessionIds))
	if len(sessionIds) > 0 {
		cursor, err := h.Col(database.SessionsCollection).Find(h.C, bson.M{"_id": bson.M{"$in": sessionIds}})
		if err != nil {
			return nil, err
		}
		var refs []models.SessionRef
		if err = cursor.All(h.C, &refs); err != nil {
			return nil, err
		}
		for _, ref := range refs {
			sessions[ref.ID] = ref
		}
	}

	views := make([]models.FeesTemplateView, 0, len(templates))
	for _, t := range templates {
		view := models.FeesTemplateView{
			ID:         t.ID,
			TemplateId: t.TemplateId,
			Name:       t.Name,
			Session:    sessions[t.SessionId],
			Classes:    make([]models.NamedRef, 0, len(t.ClassIds)),
			Fees:       make([]models.TemplateFeeGroupView, 0, len(t.Fees)),
			Status:     t.Status,
			CreatedAt:  t.CreatedAt,
			UpdatedAt:  t.UpdatedAt,
		}
		for _, id := range t.ClassIds {
			view.Classes = append(view.Classes, models.NamedRef{ID: id, Name: classNames[id]})
		}
		for _, g := range t.Fees {
			groupView := models.TemplateFeeGroupView{
				FeesGroup: models.NamedRef{ID: g.FeesGroup, Name: groupNames[g.FeesGroup]},
				FeeTypes:  make([]models.TemplateFeeTypeView, 0, len(g.FeeTypes)),
			}
			for _, ft := range g.FeeTypes {
				groupView.FeeTypes = append(groupView.FeeTypes, models.TemplateFeeTypeView{
					FeesType: models.NamedRef{ID: ft.FeesType, Name: typeNames[ft.FeesType]},
					Amount:   ft.Amount,
				})
			}
			view.Fees = append(view.Fees, groupView)
		}
		views = append(views, view)
	}
	return views, nil
}

// @Summary Create a fee template.
// @Description create a reusable fee plan for a session. Every fee group
// @Description must exist and every fee type must belong to the group it is
// @Description listed under. The class scope starts empty.
// @Tags fees-templates
// @Accept json
// @Param template body CreateFeesTemplateRequest true "Template to create"
// @Produce json
// @Success 201 {object} models.FeesTemplateView
// @Router /api/fees-templates [post]
func CreateFeeTemplate(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(CreateFeesTemplateRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := validateStruct(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fee template", err.Error())
		}

		sessionId, err := parseObjectID(req.SessionId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}
		if _, err = h.GetSessionByID(sessionId); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Session not found", err.Error())
		}

		fees, err := parseTemplateFees(req.Fees)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", err.Error(), nil)
		}
		if msg, err := h.validateTemplateFees(fees); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", msg, err.Error())
		}

		template := &models.FeesTemplate{
			ID:         primitive.NewObjectID(),
			TemplateId: req.TemplateId,
			Name:       req.Name,
			SessionId:  sessionId,
			ClassIds:   []primitive.ObjectID{},
			Fees:       fees,
			Status:     req.Status,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if template.TemplateId == "" {
			template.TemplateId = uuid.NewString()
		}
		if template.Status == "" {
			template.Status = models.TemplateActive
		}

		if _, err = h.Db.InsertOne(h.C, template); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to create fee template", err.Error())
		}

		views, err := h.expandTemplates(*template)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to expand fee template", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusCreated, "success", "fee template created", views[0])
	}
}

// @Summary List fee templates.
// @Description list every template with expanded references. Zero templates
// @Description is an empty array, not an error.
// @Tags fees-templates
// @Produce json
// @Success 200 {object} []models.FeesTemplateView
// @Router /api/fees-templates [get]
func GetAllFeeTemplates(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		templates := make([]models.FeesTemplate, 0)
		cursor, err := h.Db.Find(h.C, bson.M{})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list fee templates", err.Error())
		}
		if err = cursor.All(h.C, &templates); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall fee templates", err.Error())
		}

		views, err := h.expandTemplates(templates...)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to expand fee templates", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fee templates", views)
	}
}

// @Summary Get a single fee template.
// @Tags fees-templates
// @Param id path string true "Template ID"
// @Produce json
// @Success 200 {object} models.FeesTemplateView
// @Router /api/fees-templates/:id [get]
func GetFeeTemplateById(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid template id", err.Error())
		}
		var template models.FeesTemplate
		if err = h.Db.FindOne(h.C, bson.M{"_id": id}).Decode(&template); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Fee Template not found", err.Error())
		}

		views, err := h.expandTemplates(template)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to expand fee template", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fee template", views[0])
	}
}

// @Summary Update a fee template.
// @Description partial update. Supplied class ids must resolve to classes of
// @Description the template's session; supplied fees are re-validated the
// @Description same way create validates them.
// @Tags fees-templates
// @Param id path string true "Template ID"
// @Accept json
// @Produce json
// @Success 200 {object} models.FeesTemplateView
// @Router /api/fees-templates/:id [put]
func UpdateFeeTemplate(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid template id", err.Error())
		}

		req := new(UpdateFeesTemplateRequest)
		if err = c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err = validateStruct(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fee template", err.Error())
		}

		var existing models.FeesTemplate
		if err = h.Db.FindOne(h.C, bson.M{"_id": id}).Decode(&existing); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Fee Template not found", err.Error())
		}

		set := bson.M{"updatedAt": time.Now()}
		sessionId := existing.SessionId
		if req.SessionId != "" {
			sessionId, err = parseObjectID(req.SessionId)
			if err != nil {
				return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
			}
			if _, err = h.GetSessionByID(sessionId); err != nil {
				return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Session not found", err.Error())
			}
			set["sessionId"] = sessionId
		}

		if len(req.ClassIds) > 0 {
			classIds := make([]primitive.ObjectID, 0, len(req.ClassIds))
			for _, hex := range req.ClassIds {
				classId, err := parseObjectID(hex)
				if err != nil {
					return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid class id", err.Error())
				}
				classIds = append(classIds, classId)
			}
			count, err := h.Col(database.ClassesCollection).CountDocuments(h.C,
				bson.M{"_id": bson.M{"$in": classIds}, "sessionId": sessionId})
			if err != nil {
				return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to resolve classes", err.Error())
			}
			if count != int64(len(classIds)) {
				return FiberJsonResponse(c, fiber.StatusNotFound, "error",
					"One or more classes not found or not associated with this session", nil)
			}
			set["classIds"] = classIds
		}

		if len(req.Fees) > 0 {
			fees, err := parseTemplateFees(req.Fees)
			if err != nil {
				return FiberJsonResponse(c, fiber.StatusBadRequest, "error", err.Error(), nil)
			}
			if msg, err := h.validateTemplateFees(fees); err != nil {
				return FiberJsonResponse(c, fiber.StatusNotFound, "error", msg, err.Error())
			}
			set["fees"] = fees
		}

		if req.TemplateId != "" {
			set["templateId"] = req.TemplateId
		}
		if req.Name != "" {
			set["name"] = req.Name
		}
		if req.Status != "" {
			set["status"] = req.Status
		}

		var template models.FeesTemplate
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = h.Db.FindOneAndUpdate(h.C, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&template)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Fee Template not found", err.Error())
		}

		views, err := h.expandTemplates(template)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to expand fee template", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fee template updated", views[0])
	}
}

// @Summary Delete a fee template.
// @Description hard delete. Student fees and ledger rows already derived
// @Description from the template are left in place.
// @Tags fees-templates
// @Param id path string true "Template ID"
// @Produce json
// @Success 200
// @Router /api/fees-templates/:id [delete]
func DeleteFeeTemplate(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid template id", err.Error())
		}
		res, err := h.Db.DeleteOne(h.C, bson.M{"_id": id})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to delete fee template", err.Error())
		}
		if res.DeletedCount == 0 {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Fee Template not found", nil)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "Fee Template deleted successfully", nil)
	}
}

// @Summary List fee templates scoped to a class.
// @Description zero matches is a 404, unlike the plain list.
// @Tags fees-templates
// @Param classId path string true "Class ID"
// @Produce json
// @Success 200 {object} []models.FeesTemplateView
// @Router /api/fees-templates/class/:classId [get]
func GetFeeTemplatesForClass(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		classId, err := parseObjectID(c.Params("classId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid class id", err.Error())
		}

		templates := make([]models.FeesTemplate, 0)
		cursor, err := h.Db.Find(h.C, bson.M{"classIds": classId})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list fee templates", err.Error())
		}
		if err = cursor.All(h.C, &templates); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall fee templates", err.Error())
		}
		if len(templates) == 0 {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "No templates assigned to this class", nil)
		}

		views, err := h.expandTemplates(templates...)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to expand fee templates", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fee templates", views)
	}
}

// @Summary List fee templates of a session.
// @Description zero matches is a 404, unlike the plain list.
// @Tags fees-templates
// @Param sessionId path string true "Session ID"
// @Produce json
// @Success 200 {object} []models.FeesTemplateView
// @Router /api/fees-templates/session/:sessionId [get]
func GetFeeTemplatesBySession(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		sessionId, err := parseObjectID(c.Params("sessionId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}

		templates := make([]models.FeesTemplate, 0)
		cursor, err := h.Db.Find(h.C, bson.M{"sessionId": sessionId})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list fee templates", err.Error())
		}
		if err = cursor.All(h.C, &templates); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall fee templates", err.Error())
		}
		if len(templates) == 0 {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "No templates found for this session", nil)
		}

		views, err := h.expandTemplates(templates...)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to expand fee templates", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fee templates", views)
	}
}

type ClassWithTemplates struct {
	Class     models.Class              `json:"class"`
	Templates []models.FeesTemplateView `json:"templates"`
}

type ClassesWithTemplatesResponse struct {
	Session models.SessionRef    `json:"session"`
	Classes []ClassWithTemplates `json:"classes"`
}

// @Summary List a session's classes with the templates scoped to each.
// @Tags fees-templates
// @Param sessionId path string true "Session ID"
// @Produce json
// @Success 200 {object} ClassesWithTemplatesResponse
// @Router /api/fees-templates/classes/session/:sessionId [get]
func GetClassesWithTemplatesBySession(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		sessionId, err := parseObjectID(c.Params("sessionId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}
		session, err := h.GetSessionByID(sessionId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Session not found", err.Error())
		}

		classes := make([]models.Class, 0)
		cursor, err := h.Col(database.ClassesCollection).Find(h.C, bson.M{"sessionId": sessionId})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list classes", err.Error())
		}
		if err = cursor.All(h.C, &classes); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall classes", err.Error())
		}

		// Only templates already scoped to at least one class show up here.
		templates := make([]models.FeesTemplate, 0)
		cursor, err = h.Db.Find(h.C, bson.M{
			"sessionId": sessionId,
			"classIds":  bson.M{"$exists": true, "$not": bson.M{"$size": 0}},
		})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list fee templates", err.Error())
		}
		if err = cursor.All(h.C, &templates); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall fee templates", err.Error())
		}

		views, err := h.expandTemplates(templates...)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to expand fee templates", err.Error())
		}

		scopes := make(map[primitive.ObjectID][]models.FeesTemplateView)
		for i, t := range templates {
			for _, classId := range t.ClassIds {
				scopes[classId] = append(scopes[classId], views[i])
			}
		}

		result := ClassesWithTemplatesResponse{
			Session: models.SessionRef{ID: session.ID, Name: session.Name, SessionId: session.SessionId},
			Classes: make([]ClassWithTemplates, 0, len(classes)),
		}
		for _, class := range classes {
			classTemplates := scopes[class.ID]
			if classTemplates == nil {
				classTemplates = make([]models.FeesTemplateView, 0)
			}
			result.Classes = append(result.Classes, ClassWithTemplates{Class: class, Templates: classTemplates})
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "classes with templates", result)
	}
}

type AssignedStudent struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	Name            string             `json:"name" bson:"name"`
	AdmissionNumber string             `json:"admissionNumber" bson:"admissionNumber"`
}

// @Summary List students a template has been assigned to.
// @Tags fees-templates
// @Param templateId path string true "Template ID"
// @Param sessionId path string true "Session ID"
// @Produce json
// @Success 200 {object} []AssignedStudent
// @Router /api/fees-templates/assigned-students/:templateId/:sessionId [get]
func GetAssignedStudents(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		templateId, err := parseObjectID(c.Params("templateId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid template id", err.Error())
		}
		sessionId, err := parseObjectID(c.Params("sessionId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}

		var template models.FeesTemplate
		if err = h.Db.FindOne(h.C, bson.M{"_id": templateId}).Decode(&template); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Fee Template not found", err.Error())
		}

		studentIds, err := h.Col(database.StudentFeesCollection).Distinct(h.C, "studentId",
			bson.M{"sessionId": sessionId, "feeTemplateId": templateId})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to resolve assigned students", err.Error())
		}

		students := make([]AssignedStudent, 0, len(studentIds))
		if len(studentIds) > 0 {
			opts := options.Find().SetProjection(bson.M{"name": 1, "admissionNumber": 1})
			cursor, err := h.Col(database.StudentsCollection).Find(h.C, bson.M{"_id": bson.M{"$in": studentIds}}, opts)
			if err != nil {
				return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list students", err.Error())
			}
			if err = cursor.All(h.C, &students); err != nil {
				return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall students", err.Error())
			}
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "assigned students", students)
	}
}

// @Summary Get one student's resolved fee plan.
// @Tags fees-templates
// @Param studentId path string true "Student ID"
// @Param sessionId path string true "Session ID"
// @Produce json
// @Success 200 {object} models.StudentFee
// @Router /api/fees-templates/student-fees/:studentId/:sessionId [get]
func GetStudentFees(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		studentId, err := parseObjectID(c.Params("studentId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid student id", err.Error())
		}
		sessionId, err := parseObjectID(c.Params("sessionId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}

		var studentFee models.StudentFee
		filter := bson.M{"studentId": studentId, "sessionId": sessionId}
		if err = h.Col(database.StudentFeesCollection).FindOne(h.C, filter).Decode(&studentFee); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Student fee not found", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "student fees", studentFee)
	}
}
