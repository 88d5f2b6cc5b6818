package attainment

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/trahulprabhu38/major-project-sub003/app/routes/auth"
)

// SetupAttainmentRoutes registers the attainment calculation API
func SetupAttainmentRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/attainment")
	api.Use(auth.AuthMiddleware)

	api.Post("/marksheet/:id/vertical", func(c *fiber.Ctx) error { return RunVerticalAnalysisAPI(c, db) })
	api.Post("/course/:courseId/combined", func(c *fiber.Ctx) error { return RunCombinedAttainmentAPI(c, db) })
	api.Get("/course/:courseId", func(c *fiber.Ctx) error { return GetCourseAttainmentAPI(c, db) })
}
