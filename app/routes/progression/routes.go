package progression

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/trahulprabhu38/major-project-sub003/app/routes/auth"
)

// SetupProgressionRoutes registers the progression and statistics API
func SetupProgressionRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/progression")
	api.Use(auth.AuthMiddleware)

	api.Get("/student/:studentId", func(c *fiber.Ctx) error { return GetStudentProgressionAPI(c, db) })
	api.Post("/student/:studentId/cgpa", func(c *fiber.Ctx) error { return UpdateStudentCGPAAPI(c, db) })
	api.Get("/semester/:semester/statistics", func(c *fiber.Ctx) error { return GetSemesterStatisticsAPI(c, db) })
	api.Get("/course/:courseId", func(c *fiber.Ctx) error { return GetCourseProgressionAPI(c, db) })
	api.Get("/top-performers", func(c *fiber.Ctx) error { return GetTopPerformersAPI(c, db) })
}
