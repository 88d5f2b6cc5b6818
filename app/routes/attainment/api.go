package attainment

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/trahulprabhu38/major-project-sub003/app/errs"
)

// RunVerticalAnalysisAPI recomputes per-question attainment for a marksheet
func RunVerticalAnalysisAPI(c *fiber.Ctx, db *sql.DB) error {
	marksheetID := c.Params("id")

	summary, err := CalculateVerticalAnalysis(db, marksheetID)
	if err != nil {
		if errs.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false, "error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to calculate vertical analysis",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}

// RunCombinedAttainmentAPI rebuilds the combined CO attainment of a course
func RunCombinedAttainmentAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Params("courseId")

	results, err := CalculateCombinedAttainment(db, courseID)
	if err != nil {
		if errs.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false, "error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to calculate combined attainment",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    results,
		"message": "Combined CO attainment recalculated",
	})
}

// GetCourseAttainmentAPI returns the stored combined attainment rows
func GetCourseAttainmentAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Params("courseId")

	attainments, err := GetCourseAttainment(db, courseID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch attainment",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    attainments,
	})
}
