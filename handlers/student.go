package handlers

import (
	"time"

	"github.com/edustack/school-fees-api/models"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @Summary Admit a student.
// @Description create a student record carrying the parent contact info the
// @Description reminder flows resolve recipients through.
// @Tags students
// @Accept json
// @Param student body models.Student true "Student to admit"
// @Produce json
// @Success 201 {object} models.Student
// @Router /api/students [post]
func CreateStudent(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		student := new(models.Student)
		if err := c.BodyParser(student); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := validateStruct(student); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid student", err.Error())
		}

		if _, err := h.GetSessionByID(student.SessionId); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "session not found", err.Error())
		}

		student.ID = primitive.NewObjectID()
		if student.Status == "" {
			student.Status = models.UserActive
		}
		if student.AdmissionDate.IsZero() {
			student.AdmissionDate = time.Now()
		}
		student.CreatedAt = time.Now()
		student.UpdatedAt = time.Now()

		if _, err := h.Db.InsertOne(h.C, student); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to create student", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusCreated, "success", "student created", student)
	}
}

// @Summary Get a single student.
// @Tags students
// @Param id path string true "Student ID"
// @Produce json
// @Success 200 {object} models.Student
// @Router /api/students/:id [get]
func GetStudentById(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseObjectID(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid student id", err.Error())
		}
		var student models.Student
		if err = h.Db.FindOne(h.C, bson.M{"_id": id}).Decode(&student); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "student not found", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "student", student)
	}
}

// @Summary List students, optionally filtered by session and class.
// @Tags students
// @Param sessionId query string false "Session ID"
// @Param classId query string false "Class ID"
// @Produce json
// @Success 200 {object} []models.Student
// @Router /api/students [get]
func GetStudents(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		filter := bson.M{}
		if q := c.Query("sessionId"); q != "" {
			sessionId, err := parseObjectID(q)
			if err != nil {
				return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid session id", err.Error())
			}
			filter["sessionId"] = sessionId
		}
		if q := c.Query("classId"); q != "" {
			classId, err := parseObjectID(q)
			if err != nil {
				return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid class id", err.Error())
			}
			filter["classId"] = classId
		}

		students := make([]models.Student, 0)
		cursor, err := h.Db.Find(h.C, filter, options.Find().SetSort(bson.M{"name": 1}))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list students", err.Error())
		}
		if err = cursor.All(h.C, &students); err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to unmarshall students", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "students", students)
	}
}
