package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/trahulprabhu38/major-project-sub003/app/database"
)

// GetStudentsAPI lists active students, optionally filtered by department
// and current semester
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.StudentFilters{
		Department: c.Query("department"),
		Semester:   c.QueryInt("semester", 0),
		Limit:      c.QueryInt("limit", 0),
		Offset:     c.QueryInt("offset", 0),
	}

	studentList, totalCount, err := database.GetStudents(db, filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch students",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"students":    studentList,
		"count":       len(studentList),
		"total_count": totalCount,
	})
}

// GetStudentAPI returns a single student by id
func GetStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch student",
		})
	}
	if student == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "Student not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}
