package grades

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/trahulprabhu38/major-project-sub003/app/errs"
)

var validate = validator.New()

// CalculateGradeAPI computes and stores the final grade for one student in
// one course
func CalculateGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		CourseID  string `json:"course_id" validate:"required,uuid"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": "student_id and course_id are required",
		})
	}

	grade, err := CalculateFinalGrade(db, req.StudentID, req.CourseID)
	if err != nil {
		switch {
		case errs.IsNotFound(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false, "error": err.Error(),
			})
		case errs.IsPrerequisiteMissing(err):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false, "error": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false, "error": "Failed to calculate grade",
			})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    grade,
	})
}

// RecalculateCourseAPI recomputes final grades for every student enrolled in
// a course and reports per-student failures
func RecalculateCourseAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Params("courseId")

	summary, err := RecalculateAllGrades(db, courseID)
	if err != nil {
		if errs.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false, "error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to recalculate grades",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
		"message": "Grade recalculation completed",
	})
}

// GetStudentGradesAPI returns all stored final grades of a student
func GetStudentGradesAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")

	grades, err := GetStudentGrades(db, studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch grades",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    grades,
	})
}
