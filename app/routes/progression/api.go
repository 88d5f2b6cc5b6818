package progression

import (
	"database/sql"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/trahulprabhu38/major-project-sub003/app/errs"
)

// GetStudentProgressionAPI returns the full 8-semester timeline of a student
func GetStudentProgressionAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")

	record, err := GetStudentProgression(db, studentID)
	if err != nil {
		if errs.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false, "error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch progression",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    record,
	})
}

// UpdateStudentCGPAAPI recomputes and stores a student's cumulative CGPA
func UpdateStudentCGPAAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")

	record, err := UpdateStudentCGPA(db, studentID)
	if err != nil {
		if errs.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false, "error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to update CGPA",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    record,
		"message": "CGPA updated",
	})
}

// GetSemesterStatisticsAPI returns department-wide statistics for a semester
func GetSemesterStatisticsAPI(c *fiber.Ctx, db *sql.DB) error {
	semester, err := strconv.Atoi(c.Params("semester"))
	if err != nil || semester < 1 || semester > TotalSemesters {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": "semester must be between 1 and 8",
		})
	}

	department := c.Query("department")

	stats, err := GetSemesterStatistics(db, semester, department)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch semester statistics",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetCourseProgressionAPI lists every enrolled student's standing in a course
func GetCourseProgressionAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Params("courseId")

	students, err := GetCourseStudentsProgression(db, courseID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch course progression",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
	})
}

// GetTopPerformersAPI returns the CGPA leaderboard
func GetTopPerformersAPI(c *fiber.Ctx, db *sql.DB) error {
	department := c.Query("department")
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	performers, err := GetTopPerformers(db, department, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch top performers",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    performers,
	})
}
