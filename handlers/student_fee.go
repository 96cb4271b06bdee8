package handlers

import (
	"time"

	"github.com/edustack/school-fees-api/database"
	"github.com/edustack/school-fees-api/models"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StudentRef struct {
	ID              primitive.ObjectID `json:"id"`
	Name            string             `json:"name"`
	AdmissionNumber string             `json:"admissionNumber"`
	ClassId         primitive.ObjectID `json:"classId,omitempty"`
}

type StudentWithFees struct {
	Student StudentRef               `json:"student"`
	Fees    []models.StudentFeeGroup `json:"fees"`
}

// @Summary List a class's students with their fee plans.
// @Description one entry per student; students without a fee plan report an
// @Description empty fees list. Zero students is still a 200.
// @Tags fees-payments
// @Param sessionId query string true "Session ID"
// @Param classId query string true "Class ID"
// @Produce json
// @Success 200 {object} []StudentWithFees
// @Router /api/fees-payments/students-fees [get]
func GetStudentsWithFees(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		sessionId, err := parseObjectID(c.Query("sessionId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}
		classId, err := parseObjectID(c.Query("classId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid class id", err.Error())
		}

		students := make([]models.Student, 0)
		cursor, err := h.Col(database.StudentsCollection).Find(h.C, bson.M{"sessionId": sessionId, "classId": classId})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list students", err.Error())
		}
		if err = cursor.All(h.C, &students); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall students", err.Error())
		}

		studentFees := make([]models.StudentFee, 0)
		cursor, err = h.Db.Find(h.C, bson.M{"sessionId": sessionId, "classId": classId})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list student fees", err.Error())
		}
		if err = cursor.All(h.C, &studentFees); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall student fees", err.Error())
		}

		plans := make(map[primitive.ObjectID][]models.StudentFeeGroup, len(studentFees))
		for _, sf := range studentFees {
			plans[sf.StudentId] = sf.CustomFees
		}

		result := make([]StudentWithFees, 0, len(students))
		for _, student := range students {
			fees := plans[student.ID]
			if fees == nil {
				fees = make([]models.StudentFeeGroup, 0)
			}
			result = append(result, StudentWithFees{
				Student: StudentRef{
					ID:              student.ID,
					Name:            student.Name,
					AdmissionNumber: student.AdmissionNumber,
					ClassId:         student.ClassId,
				},
				Fees: fees,
			})
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "students with fees", result)
	}
}

type EditStudentFeesRequest struct {
	StudentId  string                `json:"studentId" validate:"required"`
	SessionId  string                `json:"sessionId" validate:"required"`
	CustomFees []AssignFeeGroupInput `json:"customFees" validate:"required,min=1,dive"`
}

// @Summary Replace a student's fee plan.
// @Description wholesale replacement of the plan, e.g. for scholarships.
// @Description Group and type references are checked for existence only.
// @Description Matching ledger rows get their amountDue updated; rows for
// @Description line items no longer on the plan are left as they are.
// @Tags fees-payments
// @Accept json
// @Param fees body EditStudentFeesRequest true "Replacement fee plan"
// @Produce json
// @Success 200 {object} models.StudentFee
// @Router /api/fees-payments/edit-student-fees [put]
func EditStudentFees(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(EditStudentFeesRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := validateStruct(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fee edit", err.Error())
		}

		studentId, err := parseObjectID(req.StudentId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid student id", err.Error())
		}
		sessionId, err := parseObjectID(req.SessionId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}
		customFees, err := parseAssignCustomFees(req.CustomFees)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid custom fees", err.Error())
		}

		now := time.Now()
		for i, group := range customFees {
			if _, err := h.GetFeesGroupByID(group.FeesGroup); err != nil {
				return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Fees Group "+group.FeesGroup.Hex()+" not found", err.Error())
			}
			for j, ft := range group.FeeTypes {
				var feesType models.FeesType
				if err := h.Col(database.FeesTypesCollection).FindOne(h.C, bson.M{"_id": ft.FeesType}).Decode(&feesType); err != nil {
					return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Fees Type "+ft.FeesType.Hex()+" not found", err.Error())
				}
				if ft.OriginalAmount == 0 {
					customFees[i].FeeTypes[j].OriginalAmount = ft.Amount
				}
				if ft.DiscountType == "" {
					customFees[i].FeeTypes[j].DiscountType = models.DiscountFixed
				}
				if ft.DueDate.IsZero() {
					customFees[i].FeeTypes[j].DueDate = now
				}
			}
		}

		var studentFee models.StudentFee
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = h.Db.FindOneAndUpdate(h.C,
			bson.M{"studentId": studentId, "sessionId": sessionId},
			bson.M{"$set": bson.M{"customFees": customFees, "updatedAt": now}},
			opts).Decode(&studentFee)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Student fee record not found", err.Error())
		}

		feePayments := h.Col(database.FeePaymentsCollection)
		for _, group := range customFees {
			for _, ft := range group.FeeTypes {
				_, err := feePayments.UpdateOne(h.C,
					ledgerRowKey(studentId, sessionId, group.FeesGroup, ft.FeesType),
					bson.M{"$set": bson.M{"amountDue": ft.Amount}})
				if err != nil {
					return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to update fee payments", err.Error())
				}
			}
		}

		return FiberJsonResponse(c, fiber.StatusOK, "success", "student fees updated", studentFee)
	}
}

// SessionFeeSummary is one student's aggregated ledger position for a
// session.
type SessionFeeSummary struct {
	StudentId       primitive.ObjectID `json:"studentId" bson:"_id"`
	AdmNo           string             `json:"admNo" bson:"admNo"`
	RollNo          string             `json:"rollNo" bson:"rollNo"`
	StudentName     string             `json:"studentName" bson:"studentName"`
	StudentClass    string             `json:"studentClass" bson:"studentClass"`
	StudentSection  string             `json:"studentSection" bson:"studentSection"`
	StudentImage    string             `json:"studentImage" bson:"studentImage"`
	TotalAmountDue  float64            `json:"totalAmountDue" bson:"totalAmountDue"`
	TotalAmountPaid float64            `json:"totalAmountPaid" bson:"totalAmountPaid"`
	LastDate        time.Time          `json:"lastDate" bson:"lastDate"`
	Status          string             `json:"status" bson:"status"`
}

// @Summary Aggregate the session's ledger per student.
// @Description totals amountDue/amountPaid per student, synthesizes a
// @Description Paid/Pending status from their equality and reports the
// @Description latest due date. Class name is joined through the student's
// @Description class reference, falling back to the legacy flat field.
// @Tags fees-payments
// @Param sessionId path string true "Session ID"
// @Produce json
// @Success 200 {object} []SessionFeeSummary
// @Router /api/fees-payments/fee-payments/:sessionId [get]
func GetFeePaymentsBySession(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		sessionId, err := parseObjectID(c.Params("sessionId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}

		pipeline := mongo.Pipeline{
			{{Key: "$match", Value: bson.M{"sessionId": sessionId}}},
			{{Key: "$group", Value: bson.M{
				"_id":             "$studentId",
				"totalAmountDue":  bson.M{"$sum": "$amountDue"},
				"totalAmountPaid": bson.M{"$sum": "$amountPaid"},
				"fees": bson.M{"$push": bson.M{
					"feesGroupId": "$feesGroupId",
					"feesTypeId":  "$feesTypeId",
					"amountDue":   "$amountDue",
					"amountPaid":  "$amountPaid",
					"dueDate":     "$dueDate",
					"status":      "$status",
				}},
			}}},
			{{Key: "$lookup", Value: bson.M{
				"from":         database.StudentsCollection,
				"localField":   "_id",
				"foreignField": "_id",
				"as":           "student",
			}}},
			{{Key: "$unwind", Value: "$student"}},
			{{Key: "$lookup", Value: bson.M{
				"from":         database.ClassesCollection,
				"localField":   "student.classId",
				"foreignField": "_id",
				"as":           "classInfo",
			}}},
			{{Key: "$unwind", Value: bson.M{
				"path":                       "$classInfo",
				"preserveNullAndEmptyArrays": true,
			}}},
			{{Key: "$project", Value: bson.M{
				"admNo":       "$student.admissionNumber",
				"rollNo":      "$student.rollNumber",
				"studentName": "$student.name",
				"studentClass": bson.M{"$cond": bson.M{
					"if":   bson.M{"$ifNull": bson.A{"$classInfo.name", false}},
					"then": "$classInfo.name",
					"else": "$student.class",
				}},
				"studentSection":  "$student.section",
				"studentImage":    "$student.photo",
				"totalAmountDue":  1,
				"totalAmountPaid": 1,
				"lastDate":        bson.M{"$max": "$fees.dueDate"},
				"status": bson.M{"$cond": bson.M{
					"if":   bson.M{"$eq": bson.A{"$totalAmountDue", "$totalAmountPaid"}},
					"then": models.PaymentPaid,
					"else": models.PaymentPending,
				}},
			}}},
		}

		cursor, err := h.Db.Aggregate(h.C, pipeline)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to aggregate fee payments", err.Error())
		}
		summaries := make([]SessionFeeSummary, 0)
		if err = cursor.All(h.C, &summaries); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall fee payments", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fee payments by session", summaries)
	}
}
