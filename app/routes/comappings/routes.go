package comappings

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/trahulprabhu38/major-project-sub003/app/routes/auth"
)

// SetupCOMappingRoutes registers the CO-mapping API
func SetupCOMappingRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/comappings")
	api.Use(auth.AuthMiddleware)

	api.Post("/:marksheetId/upload", func(c *fiber.Ctx) error { return UploadMappingsAPI(c, db) })
	api.Get("/:marksheetId", func(c *fiber.Ctx) error { return GetMappingsAPI(c, db) })
	api.Delete("/:marksheetId", func(c *fiber.Ctx) error { return DeleteMappingsAPI(c, db) })
}
