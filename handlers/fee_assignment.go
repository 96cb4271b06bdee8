package handlers

import (
	"sync"
	"time"

	"github.com/edustack/school-fees-api/database"
	"github.com/edustack/school-fees-api/models"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AssignFeeTypeInput struct {
	FeesType       string    `json:"feesType" validate:"required"`
	Amount         float64   `json:"amount" validate:"gte=0"`
	OriginalAmount float64   `json:"originalAmount" validate:"gte=0"`
	Discount       float64   `json:"discount" validate:"gte=0"`
	DiscountType   string    `json:"discountType" validate:"omitempty,oneof=fixed percentage"`
	DueDate        time.Time `json:"dueDate"`
}

type AssignFeeGroupInput struct {
	FeesGroup string               `json:"feesGroup" validate:"required"`
	FeeTypes  []AssignFeeTypeInput `json:"feeTypes" validate:"required,min=1,dive"`
}

type AssignFeesRequest struct {
	TemplateId string                `json:"templateId" validate:"required"`
	SessionId  string                `json:"sessionId" validate:"required"`
	StudentIds []string              `json:"studentIds" validate:"required,min=1"`
	CustomFees []AssignFeeGroupInput `json:"customFees" validate:"omitempty,min=1,dive"`
}

// AssignmentResult reports the outcome for one student of the batch. The
// batch never rolls back: students that completed before another one failed
// keep their writes.
type AssignmentResult struct {
	StudentId primitive.ObjectID `json:"studentId"`
	Status    string             `json:"status"`
	Error     string             `json:"error,omitempty"`
}

func parseAssignCustomFees(inputs []AssignFeeGroupInput) ([]models.StudentFeeGroup, error) {
	custom := make([]models.StudentFeeGroup, 0, len(inputs))
	for _, group := range inputs {
		groupId, err := parseObjectID(group.FeesGroup)
		if err != nil {
			return nil, err
		}
		types := make([]models.StudentFeeType, 0, len(group.FeeTypes))
		for _, ft := range group.FeeTypes {
			typeId, err := parseObjectID(ft.FeesType)
			if err != nil {
				return nil, err
			}
			types = append(types, models.StudentFeeType{
				FeesType:       typeId,
				Amount:         ft.Amount,
				OriginalAmount: ft.OriginalAmount,
				Discount:       ft.Discount,
				DiscountType:   ft.DiscountType,
				DueDate:        ft.DueDate,
			})
		}
		custom = append(custom, models.StudentFeeGroup{FeesGroup: groupId, FeeTypes: types})
	}
	return custom, nil
}

// @Summary Assign a fee template to students.
// @Description materialize a template (or a caller-supplied custom fee set)
// @Description into per-student fee plans and ledger rows. Students outside
// @Description the template's class scope or session are silently dropped;
// @Description if that drops everyone the call is a 404. Per-student
// @Description outcomes are reported individually and nothing is rolled
// @Description back.
// @Tags fees-templates
// @Accept json
// @Param assignment body AssignFeesRequest true "Assignment request"
// @Produce json
// @Success 200 {object} []AssignmentResult
// @Router /api/fees-templates/assign-fees-to-students [post]
func AssignFeesToStudents(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(AssignFeesRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := validateStruct(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "No students selected for assignment", err.Error())
		}

		templateId, err := parseObjectID(req.TemplateId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid template id", err.Error())
		}
		sessionId, err := parseObjectID(req.SessionId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}

		var template models.FeesTemplate
		if err = h.Db.FindOne(h.C, bson.M{"_id": templateId}).Decode(&template); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Fee Template not found", err.Error())
		}

		// Hard equality with the template's stored session, not containment.
		if sessionId != template.SessionId {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "Session ID does not match the template's session", nil)
		}
		if len(template.ClassIds) == 0 {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "No classes assigned to this template", nil)
		}

		studentIds := make([]primitive.ObjectID, 0, len(req.StudentIds))
		for _, hex := range req.StudentIds {
			studentId, err := parseObjectID(hex)
			if err != nil {
				return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid student id", err.Error())
			}
			studentIds = append(studentIds, studentId)
		}

		// Students outside the template's class scope or session fall out of
		// the filter without being reported individually.
		students := make([]models.Student, 0, len(studentIds))
		cursor, err := h.Col(database.StudentsCollection).Find(h.C, bson.M{
			"_id":       bson.M{"$in": studentIds},
			"sessionId": sessionId,
			"classId":   bson.M{"$in": template.ClassIds},
		})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to resolve students", err.Error())
		}
		if err = cursor.All(h.C, &students); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall students", err.Error())
		}
		if len(students) == 0 {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "No valid students found for assignment", nil)
		}

		now := time.Now()
		var feesToAssign []models.StudentFeeGroup
		if len(req.CustomFees) > 0 {
			custom, err := parseAssignCustomFees(req.CustomFees)
			if err != nil {
				return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid custom fees", err.Error())
			}
			feesToAssign = models.NormalizeCustomFees(custom, &template, now)
		} else {
			feesToAssign = models.DefaultPlanFromTemplate(&template, now)
		}

		results := make([]AssignmentResult, len(students))
		var wg sync.WaitGroup
		for i := range students {
			wg.Add(1)
			go func(i int, student models.Student) {
				defer wg.Done()
				results[i] = AssignmentResult{StudentId: student.ID, Status: "assigned"}
				if err := h.assignStudentFees(&student, &template, feesToAssign); err != nil {
					h.L.Error("[FeeAssignment] Error assigning fees to student ", student.ID.Hex(), " ", err)
					results[i].Status = "failed"
					results[i].Error = err.Error()
				}
			}(i, students[i])
		}
		wg.Wait()

		return FiberJsonResponse(c, fiber.StatusOK, "success", "Fees assigned to selected students successfully", results)
	}
}

// ledgerRowKey identifies one (student, session, group, type) ledger row.
func ledgerRowKey(studentId, sessionId, groupId, typeId primitive.ObjectID) bson.M {
	return bson.M{
		"studentId":   studentId,
		"sessionId":   sessionId,
		"feesGroupId": groupId,
		"feesTypeId":  typeId,
	}
}

// ledgerRowUpsert creates the row once; later assignments only refresh the
// due date. amountDue, amountPaid and status live solely under $setOnInsert
// so partial payments are never clobbered.
func ledgerRowUpsert(amount float64, dueDate time.Time) bson.M {
	return bson.M{
		"$set": bson.M{"dueDate": dueDate},
		"$setOnInsert": bson.M{
			"amountDue":    amount,
			"amountPaid":   0.0,
			"status":       models.PaymentPending,
			"reminderSent": false,
		},
	}
}

// assignStudentFees upserts one student's fee plan and ledger rows. The plan
// upsert is a single conditional write per fee group so concurrent
// assignments cannot duplicate a group.
func (h *Handler) assignStudentFees(student *models.Student, template *models.FeesTemplate, feesToAssign []models.StudentFeeGroup) error {
	studentFees := h.Col(database.StudentFeesCollection)
	now := time.Now()

	filter := bson.M{"studentId": student.ID, "sessionId": template.SessionId}
	insert := bson.M{"$setOnInsert": models.StudentFee{
		ID:            primitive.NewObjectID(),
		StudentId:     student.ID,
		SessionId:     template.SessionId,
		ClassId:       student.ClassId,
		FeeTemplateId: template.ID,
		CustomFees:    feesToAssign,
		CreatedAt:     now,
		UpdatedAt:     now,
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.Before)

	var existing models.StudentFee
	err := studentFees.FindOneAndUpdate(h.C, filter, insert, opts).Decode(&existing)
	switch {
	case err == mongo.ErrNoDocuments:
		// Fresh plan, nothing to append.
	case err != nil:
		return err
	default:
		// Append only the groups the plan does not carry yet. The guard on
		// customFees.feesGroup keeps the push atomic against a concurrent
		// assignment of the same group.
		for _, group := range models.MissingGroups(existing.CustomFees, feesToAssign) {
			_, err := studentFees.UpdateOne(h.C, bson.M{
				"studentId":            student.ID,
				"sessionId":            template.SessionId,
				"customFees.feesGroup": bson.M{"$ne": group.FeesGroup},
			}, bson.M{
				"$push": bson.M{"customFees": group},
				"$set":  bson.M{"updatedAt": now},
			})
			if err != nil {
				return err
			}
		}
	}

	// One ledger row per line item, created once. Re-assignment refreshes the
	// due date only; amountDue keeps the value billed on first assignment so
	// partial payments are never clobbered.
	feePayments := h.Col(database.FeePaymentsCollection)
	for _, group := range feesToAssign {
		for _, ft := range group.FeeTypes {
			filter := ledgerRowKey(student.ID, template.SessionId, group.FeesGroup, ft.FeesType)
			update := ledgerRowUpsert(ft.Amount, ft.DueDate)
			if _, err := feePayments.UpdateOne(h.C, filter, update, options.Update().SetUpsert(true)); err != nil {
				return err
			}
		}
	}
	return nil
}
