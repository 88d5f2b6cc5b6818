package services

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/trahulprabhu38/major-project-sub003/app/database"
	"github.com/trahulprabhu38/major-project-sub003/app/routes/progression"
)

// RefreshAllCGPAs recomputes the cumulative CGPA of every active student.
// Individual failures are logged and skipped so one bad record does not
// stall the nightly run.
func RefreshAllCGPAs(db *sql.DB) error {
	students, _, err := database.GetStudents(db, database.StudentFilters{})
	if err != nil {
		return fmt.Errorf("failed to list students for CGPA refresh: %w", err)
	}

	var failed int
	for _, student := range students {
		if _, err := progression.UpdateStudentCGPA(db, student.ID); err != nil {
			failed++
			log.Printf("CGPA refresh failed for %s: %v", student.USN, err)
		}
	}

	log.Printf("CGPA refresh done: %d students, %d failed", len(students), failed)
	return nil
}
