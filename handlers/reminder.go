package handlers

import (
	"time"

	client "github.com/edustack/school-fees-api/app/clients"
	"github.com/edustack/school-fees-api/database"
	"github.com/edustack/school-fees-api/models"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SendReminderRequest struct {
	StudentId   string `json:"studentId" validate:"required"`
	SessionId   string `json:"sessionId" validate:"required"`
	FeesGroupId string `json:"feesGroupId" validate:"required"`
	FeesTypeId  string `json:"feesTypeId" validate:"required"`
}

type SendReminderResponse struct {
	FeePayment    models.FeePayment                `json:"feePayment"`
	Notifications []models.FeeReminderNotification `json:"notifications"`
}

// pendingLedgerRow matches a ledger row only while it is still Pending.
// Paired with FindOneAndUpdate it makes the eligibility check and the
// reminder stamp one atomic step, so Paid, Overdue and Collected rows can
// never be stamped.
func pendingLedgerRow(studentId, sessionId, groupId, typeId primitive.ObjectID) bson.M {
	filter := ledgerRowKey(studentId, sessionId, groupId, typeId)
	filter["status"] = models.PaymentPending
	return filter
}

// outstandingLedgerRows matches every row the collection workflow picks up.
func outstandingLedgerRows(studentId, sessionId primitive.ObjectID) bson.M {
	return bson.M{
		"studentId": studentId,
		"sessionId": sessionId,
		"status":    bson.M{"$in": bson.A{models.PaymentPending, models.PaymentOverdue}},
	}
}

// resolveActiveParents looks up the active parent accounts linked to the
// student through the parent emails on the record. Emails that resolve to no
// active parent account are skipped.
func (h *Handler) resolveActiveParents(student *models.Student) []models.User {
	parents := make([]models.User, 0, 2)
	for _, email := range student.ParentEmails() {
		parent, err := h.GetActiveParentByEmail(email)
		if err != nil {
			continue
		}
		parents = append(parents, *parent)
	}
	return parents
}

// parentPhones returns the phone numbers on the student record for the SMS
// fan-out, skipping blanks.
func parentPhones(student *models.Student) []string {
	phones := make([]string, 0, 2)
	if student.FatherInfo.PhoneNumber != "" {
		phones = append(phones, student.FatherInfo.PhoneNumber)
	}
	if student.MotherInfo.PhoneNumber != "" {
		phones = append(phones, student.MotherInfo.PhoneNumber)
	}
	return phones
}

// @Summary Send a reminder for one outstanding ledger row.
// @Description marks the row as reminded and creates a notification per
// @Description recipient. Only Pending rows qualify; the match and the
// @Description reminder flags are applied in a single update, so concurrent
// @Description sends cannot double-stamp a row. When Twilio is configured the
// @Description message also goes out by SMS, best effort.
// @Tags fees-payments
// @Accept json
// @Param reminder body SendReminderRequest true "Ledger row key"
// @Produce json
// @Success 200 {object} SendReminderResponse
// @Router /api/fees-payments/send-reminder [post]
func SendFeeReminder(h *Handler, sms *client.TwilioClient) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(SendReminderRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := validateStruct(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid reminder request", err.Error())
		}

		studentId, err := parseObjectID(req.StudentId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid student id", err.Error())
		}
		sessionId, err := parseObjectID(req.SessionId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}
		feesGroupId, err := parseObjectID(req.FeesGroupId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees group id", err.Error())
		}
		feesTypeId, err := parseObjectID(req.FeesTypeId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid fees type id", err.Error())
		}

		now := time.Now()
		var feePayment models.FeePayment
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = h.Db.FindOneAndUpdate(h.C,
			pendingLedgerRow(studentId, sessionId, feesGroupId, feesTypeId),
			bson.M{"$set": bson.M{"reminderSent": true, "reminderDate": now}},
			opts).Decode(&feePayment)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Fee payment not found or already paid", err.Error())
		}

		student, err := h.GetStudentByID(studentId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Student not found", err.Error())
		}
		feesGroup, err := h.GetFeesGroupByID(feesGroupId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Fees Group not found", err.Error())
		}
		var feesType models.FeesType
		if err := h.Col(database.FeesTypesCollection).FindOne(h.C, bson.M{"_id": feesTypeId}).Decode(&feesType); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Fees Type not found", err.Error())
		}

		amountDue := feePayment.Outstanding()
		message := models.ReminderMessage(feesType.Name, feesGroup.Name, amountDue, feePayment.DueDate)
		recipients := models.ResolveRecipients(studentId, h.resolveActiveParents(student))

		notifications := make([]models.FeeReminderNotification, 0, len(recipients))
		docs := make([]any, 0, len(recipients))
		for _, recipient := range recipients {
			n := models.FeeReminderNotification{
				RecipientId:   recipient.ID,
				RecipientType: recipient.Type,
				Title:         models.ReminderTitle,
				Message:       message,
				FeePaymentId:  feePayment.ID,
				DueDate:       models.SnapshotDate(feePayment.DueDate),
				AmountDue:     amountDue,
				Status:        models.ReminderUnread,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			notifications = append(notifications, n)
			docs = append(docs, n)
		}
		if _, err := h.Col(database.FeeRemindersCollection).InsertMany(h.C, docs); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to save notifications", err.Error())
		}

		if sms != nil {
			for _, phone := range parentPhones(student) {
				if _, err := sms.SendSMS(phone, message); err != nil {
					h.L.Warn("[Reminder] SMS delivery failed for ", phone)
				}
			}
		}

		return FiberJsonResponse(c, fiber.StatusOK, "success", "fee reminder sent", SendReminderResponse{
			FeePayment:    feePayment,
			Notifications: notifications,
		})
	}
}

type CollectFeesRequest struct {
	StudentId string `json:"studentId" validate:"required"`
	SessionId string `json:"sessionId" validate:"required"`
}

type CollectFeesResponse struct {
	CollectedCount int                            `json:"collectedCount"`
	TotalDue       float64                        `json:"totalDue"`
	Notification   models.FeeReminderNotification `json:"notification"`
}

// @Summary Collect all outstanding fees for a student.
// @Description moves every Pending or Overdue ledger row for the student's
// @Description session to Collected and notifies the linked parent with one
// @Description aggregate notice. Requires a parent email on the student
// @Description record and a matching parent account.
// @Tags fees-payments
// @Accept json
// @Param collection body CollectFeesRequest true "Student and session"
// @Produce json
// @Success 200 {object} CollectFeesResponse
// @Router /api/fees-payments/collect [post]
func CollectFees(h *Handler, sms *client.TwilioClient) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(CollectFeesRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := validateStruct(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid collection request", err.Error())
		}

		studentId, err := parseObjectID(req.StudentId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid student id", err.Error())
		}
		sessionId, err := parseObjectID(req.SessionId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
		}

		filter := outstandingLedgerRows(studentId, sessionId)
		cursor, err := h.Db.Find(h.C, filter)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list fee payments", err.Error())
		}
		var rows []models.FeePayment
		if err = cursor.All(h.C, &rows); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall fee payments", err.Error())
		}
		if len(rows) == 0 {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "No pending or overdue fees found", nil)
		}

		student, err := h.GetStudentByID(studentId)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Student not found", err.Error())
		}
		parentEmail := student.FatherInfo.Email
		if parentEmail == "" {
			parentEmail = student.MotherInfo.Email
		}
		if parentEmail == "" {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "No parent email found for this student", nil)
		}
		parent, err := h.GetActiveParentByEmail(parentEmail)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "Parent user not found", err.Error())
		}

		groupIds := make([]primitive.ObjectID, 0, len(rows))
		typeIds := make([]primitive.ObjectID, 0, len(rows))
		for _, row := range rows {
			groupIds = append(groupIds, row.FeesGroupId)
			typeIds = append(typeIds, row.FeesTypeId)
		}
		groupNames, err := h.nameMap(database.FeesGroupsCollection, groupIds)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to resolve fees groups", err.Error())
		}
		typeNames, err := h.nameMap(database.FeesTypesCollection, typeIds)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to resolve fees types", err.Error())
		}

		var totalDue float64
		lastDate := rows[0].DueDate
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			outstanding := row.Outstanding()
			totalDue += outstanding
			if row.DueDate.After(lastDate) {
				lastDate = row.DueDate
			}
			lines = append(lines, models.CollectionLine(typeNames[row.FeesTypeId], groupNames[row.FeesGroupId], outstanding, row.DueDate))
		}

		now := time.Now()
		message := models.CollectionMessage(student.Name, lines, totalDue)
		notification := models.FeeReminderNotification{
			RecipientId:   parent.ID,
			RecipientType: models.RecipientParent,
			Title:         models.ReminderTitle,
			Message:       message,
			FeePaymentId:  rows[0].ID,
			DueDate:       models.SnapshotDate(lastDate),
			AmountDue:     totalDue,
			Status:        models.ReminderUnread,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		res, err := h.Col(database.FeeRemindersCollection).InsertOne(h.C, notification)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to save notification", err.Error())
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			notification.ID = oid
		}

		result, err := h.Db.UpdateMany(h.C, filter, bson.M{"$set": bson.M{"status": models.PaymentCollected}})
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to collect fees", err.Error())
		}

		if sms != nil {
			for _, phone := range parentPhones(student) {
				if _, err := sms.SendSMS(phone, message); err != nil {
					h.L.Warn("[Collection] SMS delivery failed for ", phone)
				}
			}
		}

		return FiberJsonResponse(c, fiber.StatusOK, "success", "fees collected", CollectFeesResponse{
			CollectedCount: int(result.ModifiedCount),
			TotalDue:       totalDue,
			Notification:   notification,
		})
	}
}

// @Summary List the calling parent's reminder notifications.
// @Description returns reminders addressed to the parent directly plus those
// @Description addressed to any of their linked students, newest first.
// @Tags fees-payments
// @Produce json
// @Success 200 {object} []models.FeeReminderNotification
// @Router /api/fees-payments/reminders [get]
func GetReminders(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromCtx(c)
		if !ok {
			return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "missing credentials", nil)
		}
		if principal.Role != models.RoleParent {
			return FiberJsonResponse(c, fiber.StatusForbidden, "error", "only parents can view fee reminders", nil)
		}

		studentFilter := bson.M{"$or": bson.A{
			bson.M{"fatherInfo.email": principal.Email},
			bson.M{"motherInfo.email": principal.Email},
		}}
		cursor, err := h.Col(database.StudentsCollection).Find(h.C, studentFilter)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list students", err.Error())
		}
		var students []models.Student
		if err = cursor.All(h.C, &students); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall students", err.Error())
		}
		studentIds := make([]primitive.ObjectID, 0, len(students))
		for _, s := range students {
			studentIds = append(studentIds, s.ID)
		}

		reminderFilter := bson.M{"$or": bson.A{
			bson.M{"recipientId": principal.UserId, "recipientType": models.RecipientParent},
			bson.M{"recipientId": bson.M{"$in": studentIds}, "recipientType": models.RecipientStudent},
		}}
		opts := options.Find().SetSort(bson.M{"createdAt": -1})
		cursor, err = h.Col(database.FeeRemindersCollection).Find(h.C, reminderFilter, opts)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list reminders", err.Error())
		}
		reminders := make([]models.FeeReminderNotification, 0)
		if err = cursor.All(h.C, &reminders); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall reminders", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "fee reminders", reminders)
	}
}
