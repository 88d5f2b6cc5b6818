package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/trahulprabhu38/major-project-sub003/app/config"
	"github.com/trahulprabhu38/major-project-sub003/app/database"
	"github.com/trahulprabhu38/major-project-sub003/app/routes/attainment"
	"github.com/trahulprabhu38/major-project-sub003/app/routes/auth"
	"github.com/trahulprabhu38/major-project-sub003/app/routes/comappings"
	"github.com/trahulprabhu38/major-project-sub003/app/routes/courses"
	"github.com/trahulprabhu38/major-project-sub003/app/routes/grades"
	"github.com/trahulprabhu38/major-project-sub003/app/routes/progression"
	"github.com/trahulprabhu38/major-project-sub003/app/routes/students"
	"github.com/trahulprabhu38/major-project-sub003/app/services"
)

// apiErrorHandler renders every unhandled error as a JSON envelope
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	config.LoadEnv()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Create derived tables owned by the attainment/grading pipelines
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	comappings.SetupCOMappingRoutes(app, config.GetDB())
	attainment.SetupAttainmentRoutes(app, config.GetDB())
	grades.SetupGradesRoutes(app, config.GetDB())
	progression.SetupProgressionRoutes(app, config.GetDB())
	courses.SetupCourseRoutes(app, config.GetDB())
	students.SetupStudentRoutes(app, config.GetDB())

	// Nightly CGPA refresh
	services.StartScheduler(config.GetDB())

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	// Start server
	log.Println("Server starting on :8080")
	log.Fatal(app.Listen(":8080"))
}
