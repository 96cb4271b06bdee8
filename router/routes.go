package router

import (
	client "github.com/edustack/school-fees-api/app/clients"
	"github.com/edustack/school-fees-api/database"
	"github.com/edustack/school-fees-api/handlers"
	"github.com/edustack/school-fees-api/models"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger.
var l = logrus.New()

func SetupRoutes(app *fiber.App) {

	sessionHandler := handlers.NewHandler(database.SessionsCollection, l)
	classHandler := handlers.NewHandler(database.ClassesCollection, l)
	studentHandler := handlers.NewHandler(database.StudentsCollection, l)
	feesGroupHandler := handlers.NewHandler(database.FeesGroupsCollection, l)
	feesTypeHandler := handlers.NewHandler(database.FeesTypesCollection, l)
	feesTemplateHandler := handlers.NewHandler(database.FeesTemplatesCollection, l)
	studentFeeHandler := handlers.NewHandler(database.StudentFeesCollection, l)
	feePaymentHandler := handlers.NewHandler(database.FeePaymentsCollection, l)
	userHandler := handlers.NewHandler(database.UsersCollection, l)
	sms := client.NewTwilioClient(l)

	staff := Protected(models.RoleAdmin, models.RoleTeacher)
	admin := Protected(models.RoleAdmin)

	app.Get("/health", handlers.HandleHealthCheck)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.Login(userHandler))

	sessions := api.Group("/sessions")
	sessions.Post("/", admin, handlers.CreateSession(sessionHandler))
	sessions.Get("/", handlers.GetAllSessions(sessionHandler))
	sessions.Get("/:id", handlers.GetSessionById(sessionHandler))
	sessions.Put("/:id", admin, handlers.UpdateSession(sessionHandler))
	sessions.Delete("/:id", admin, handlers.DeleteSession(sessionHandler))

	classes := api.Group("/classes")
	classes.Post("/", admin, handlers.CreateClass(classHandler))
	classes.Get("/session/:sessionId", handlers.GetClassesForSession(classHandler))
	classes.Get("/:id", handlers.GetClassById(classHandler))
	classes.Delete("/:id", admin, handlers.DeleteClass(classHandler))

	students := api.Group("/students", staff)
	students.Post("/", handlers.CreateStudent(studentHandler))
	students.Get("/", handlers.GetStudents(studentHandler))
	students.Get("/:id", handlers.GetStudentById(studentHandler))

	feesGroups := api.Group("/fees-groups", staff)
	feesGroups.Post("/", handlers.CreateFeesGroup(feesGroupHandler))
	feesGroups.Get("/", handlers.GetAllFeesGroups(feesGroupHandler))
	feesGroups.Get("/:id", handlers.GetFeesGroupById(feesGroupHandler))
	feesGroups.Put("/:id", handlers.UpdateFeesGroup(feesGroupHandler))
	feesGroups.Delete("/:id", handlers.DeleteFeesGroup(feesGroupHandler))

	feesTypes := api.Group("/fees-types", staff)
	feesTypes.Post("/", handlers.CreateFeesType(feesTypeHandler))
	feesTypes.Get("/", handlers.GetAllFeesTypes(feesTypeHandler))
	feesTypes.Get("/group/:feesGroupId", handlers.GetFeesTypesByGroup(feesTypeHandler))
	feesTypes.Get("/:id", handlers.GetFeesTypeById(feesTypeHandler))
	feesTypes.Put("/:id", handlers.UpdateFeesType(feesTypeHandler))
	feesTypes.Delete("/:id", handlers.DeleteFeesType(feesTypeHandler))

	feesTemplates := api.Group("/fees-templates", staff)
	feesTemplates.Post("/", handlers.CreateFeeTemplate(feesTemplateHandler))
	feesTemplates.Get("/", handlers.GetAllFeeTemplates(feesTemplateHandler))
	feesTemplates.Post("/assign-fees-to-students", handlers.AssignFeesToStudents(feesTemplateHandler))
	feesTemplates.Get("/class/:classId", handlers.GetFeeTemplatesForClass(feesTemplateHandler))
	feesTemplates.Get("/session/:sessionId", handlers.GetFeeTemplatesBySession(feesTemplateHandler))
	feesTemplates.Get("/classes/session/:sessionId", handlers.GetClassesWithTemplatesBySession(feesTemplateHandler))
	feesTemplates.Get("/assigned-students/:templateId/:sessionId", handlers.GetAssignedStudents(feesTemplateHandler))
	feesTemplates.Get("/student-fees/:studentId/:sessionId", handlers.GetStudentFees(feesTemplateHandler))
	feesTemplates.Get("/:id", handlers.GetFeeTemplateById(feesTemplateHandler))
	feesTemplates.Put("/:id", handlers.UpdateFeeTemplate(feesTemplateHandler))
	feesTemplates.Delete("/:id", handlers.DeleteFeeTemplate(feesTemplateHandler))

	feesPayments := api.Group("/fees-payments")
	feesPayments.Get("/students-fees", staff, handlers.GetStudentsWithFees(studentFeeHandler))
	feesPayments.Put("/edit-student-fees", staff, handlers.EditStudentFees(studentFeeHandler))
	feesPayments.Post("/send-reminder", staff, handlers.SendFeeReminder(feePaymentHandler, sms))
	feesPayments.Post("/collect", staff, handlers.CollectFees(feePaymentHandler, sms))
	feesPayments.Get("/fee-payments/:sessionId", staff, handlers.GetFeePaymentsBySession(feePaymentHandler))
	feesPayments.Get("/reminders", Protected(models.RoleParent), handlers.GetReminders(feePaymentHandler))
}
