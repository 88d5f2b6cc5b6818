package courses

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/trahulprabhu38/major-project-sub003/app/database"
)

// GetCourseAPI returns a single course by id
func GetCourseAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Params("id")

	course, err := database.GetCourseByID(db, courseID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch course",
		})
	}
	if course == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "Course not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    course,
	})
}

// GetCourseOutcomesAPI lists the course outcomes defined for a course
func GetCourseOutcomesAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Params("id")

	outcomes, err := database.GetCourseOutcomes(db, courseID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch course outcomes",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    outcomes,
		"count":   len(outcomes),
	})
}

// GetCourseStudentsAPI lists active students enrolled in a course
func GetCourseStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Params("id")

	studentList, err := database.GetEnrolledStudents(db, courseID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch enrolled students",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    studentList,
		"count":   len(studentList),
	})
}

// GetCourseMarksheetsAPI lists the marksheets uploaded for a course
func GetCourseMarksheetsAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Params("id")

	sheets, err := database.GetMarksheetsByCourse(db, courseID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch marksheets",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sheets,
		"count":   len(sheets),
	})
}
