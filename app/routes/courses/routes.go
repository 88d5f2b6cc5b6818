package courses

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/trahulprabhu38/major-project-sub003/app/routes/auth"
)

// SetupCourseRoutes registers the course read API
func SetupCourseRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/courses")
	api.Use(auth.AuthMiddleware)

	api.Get("/:id", func(c *fiber.Ctx) error { return GetCourseAPI(c, db) })
	api.Get("/:id/outcomes", func(c *fiber.Ctx) error { return GetCourseOutcomesAPI(c, db) })
	api.Get("/:id/students", func(c *fiber.Ctx) error { return GetCourseStudentsAPI(c, db) })
	api.Get("/:id/marksheets", func(c *fiber.Ctx) error { return GetCourseMarksheetsAPI(c, db) })
}
