package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/trahulprabhu38/major-project-sub003/app/routes/auth"
)

// SetupStudentRoutes registers the student read API
func SetupStudentRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetStudentsAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetStudentAPI(c, db) })
}
