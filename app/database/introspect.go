package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Marksheet tables are created dynamically by the upload service, so the
// student-identifier column has to be discovered from the live catalog at
// read time rather than assumed.

// studentIDColumnPreference is checked in order, case-insensitively
var studentIDColumnPreference = []string{"usn", "student_usn", "studentid", "student_id", "roll_no"}

// GetTableColumns returns the column names of a table from the catalog.
// A missing table yields an empty slice, not an error.
func GetTableColumns(db *sql.DB, tableName string) ([]string, error) {
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position
	`

	rows, err := db.Query(query, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch columns for %s: %w", tableName, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column name: %w", err)
		}
		columns = append(columns, name)
	}

	return columns, rows.Err()
}

// ResolveStudentIDColumn finds the column of a marksheet table that holds the
// student identifier. It returns "" (without error) when the table does not
// exist or no suitable column is present; callers skip such marksheets
// instead of failing the whole pipeline.
func ResolveStudentIDColumn(db *sql.DB, tableName string) (string, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return "", err
	}
	if len(columns) == 0 {
		return "", nil
	}

	for _, preferred := range studentIDColumnPreference {
		for _, col := range columns {
			if strings.EqualFold(col, preferred) {
				return col, nil
			}
		}
	}

	// Fallback: any column whose name contains "usn"
	for _, col := range columns {
		if strings.Contains(strings.ToLower(col), "usn") {
			return col, nil
		}
	}

	return "", nil
}

// ReadQuestionMarks reads every value of one question column from a dynamic
// marksheet table. Identifiers are quoted; values come back nullable since
// absent attempts are stored as NULL.
func ReadQuestionMarks(db *sql.DB, tableName, questionColumn string) ([]sql.NullFloat64, error) {
	query := fmt.Sprintf("SELECT %s FROM %s",
		pq.QuoteIdentifier(questionColumn), pq.QuoteIdentifier(tableName))

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to read column %s from %s: %w", questionColumn, tableName, err)
	}
	defer rows.Close()

	var marks []sql.NullFloat64
	for rows.Next() {
		var m sql.NullFloat64
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("failed to scan mark: %w", err)
		}
		marks = append(marks, m)
	}

	return marks, rows.Err()
}

// FindColumnCaseInsensitive returns the actual column name matching wanted,
// ignoring case, or "" when absent.
func FindColumnCaseInsensitive(columns []string, wanted string) string {
	for _, col := range columns {
		if strings.EqualFold(col, wanted) {
			return col
		}
	}
	return ""
}
