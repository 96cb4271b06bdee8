package app

import (
	"github.com/edustack/school-fees-api/config"
	"github.com/edustack/school-fees-api/database"
	"github.com/edustack/school-fees-api/router"
	"github.com/gofiber/fiber/v2"
)

// SetupAndRunApp handle app and database start and graceful shutdown
func SetupAndRunApp() error {
	// start database
	err := database.StartMongoDB()
	if err != nil {
		return err
	}

	// defer closing database
	defer database.CloseMongoDB()

	// start the cache layer, optional
	if err = database.StartRedis(); err != nil {
		return err
	}
	defer database.CloseRedis()

	// create app
	app := fiber.New()

	// attach middleware
	FiberMiddleware(app)

	// setup routes
	router.SetupRoutes(app)

	// attach swagger
	config.AddSwaggerRoutes(app)

	StartServerWithGracefulShutdown(app)

	return nil
}
