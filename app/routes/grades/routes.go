package grades

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/trahulprabhu38/major-project-sub003/app/routes/auth"
)

// SetupGradesRoutes registers the final-grade API
func SetupGradesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/grades")
	api.Use(auth.AuthMiddleware)

	api.Post("/calculate", func(c *fiber.Ctx) error { return CalculateGradeAPI(c, db) })
	api.Post("/course/:courseId/recalculate", func(c *fiber.Ctx) error { return RecalculateCourseAPI(c, db) })
	api.Get("/student/:studentId", func(c *fiber.Ctx) error { return GetStudentGradesAPI(c, db) })
}
