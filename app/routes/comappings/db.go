package comappings

import (
	"database/sql"
	"fmt"

	"github.com/trahulprabhu38/major-project-sub003/app/database"
	"github.com/trahulprabhu38/major-project-sub003/app/errs"
	"github.com/trahulprabhu38/major-project-sub003/app/models"
)

// ReplaceSummary reports what a mapping replacement actually stored
type ReplaceSummary struct {
	Stored           int      `json:"stored"`
	SkippedUnknownCO int      `json:"skipped_unknown_co"`
	Warnings         []string `json:"warnings,omitempty"`
}

// ReplaceMappings replaces the entire mapping set of a marksheet in a single
// transaction: delete existing rows, insert the new set, upsert the file
// metadata record. Mappings whose CO number has no matching course outcome
// are skipped with a warning; partial success is acceptable. Any statement
// failure rolls the whole replacement back.
func ReplaceMappings(db *sql.DB, courseID, marksheetID string, parsed []ParsedMapping, uploaderID, contentHash string) (*ReplaceSummary, error) {
	outcomes, err := database.GetCourseOutcomes(db, courseID)
	if err != nil {
		return nil, err
	}

	coIDByNumber := make(map[int]string, len(outcomes))
	for _, co := range outcomes {
		coIDByNumber[co.CONumber] = co.ID
	}

	summary := &ReplaceSummary{}

	var accepted []ParsedMapping
	var coIDs []string
	for _, m := range parsed {
		coID, ok := coIDByNumber[m.CONumber]
		if !ok {
			summary.SkippedUnknownCO++
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("question %q maps to CO%d which does not exist for this course, skipped", m.QuestionColumn, m.CONumber))
			continue
		}
		accepted = append(accepted, m)
		coIDs = append(coIDs, coID)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM question_co_mappings WHERE marksheet_id = $1`, marksheetID); err != nil {
		return nil, &errs.TransactionFailure{Op: "delete old mappings", Err: err}
	}

	insertStmt, err := tx.Prepare(`
		INSERT INTO question_co_mappings (marksheet_id, question_column, original_name, co_number, co_id, max_marks)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return nil, &errs.TransactionFailure{Op: "prepare mapping insert", Err: err}
	}
	defer insertStmt.Close()

	for i, m := range accepted {
		if _, err := insertStmt.Exec(marksheetID, m.QuestionColumn, m.OriginalName, m.CONumber, coIDs[i], m.MaxMarks); err != nil {
			return nil, &errs.TransactionFailure{Op: "insert mapping", Err: err}
		}
	}

	fileQuery := `
		INSERT INTO comapping_files (marksheet_id, content_hash, mapping_count, uploaded_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (marksheet_id)
		DO UPDATE SET content_hash = EXCLUDED.content_hash,
			mapping_count = EXCLUDED.mapping_count,
			uploaded_by = EXCLUDED.uploaded_by,
			updated_at = NOW()
	`
	var uploader interface{}
	if uploaderID != "" {
		uploader = uploaderID
	}
	if _, err := tx.Exec(fileQuery, marksheetID, contentHash, len(accepted), uploader); err != nil {
		return nil, &errs.TransactionFailure{Op: "upsert file metadata", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return nil, &errs.TransactionFailure{Op: "commit", Err: err}
	}

	summary.Stored = len(accepted)
	return summary, nil
}

// GetValidMappings returns a marksheet's mappings with max_marks > 0 (NULL
// allowed for legacy rows), ordered by question column.
func GetValidMappings(db *sql.DB, marksheetID string) ([]*models.QuestionCOMapping, error) {
	query := `
		SELECT id, marksheet_id, question_column, original_name, co_number, co_id, max_marks, created_at, updated_at
		FROM question_co_mappings
		WHERE marksheet_id = $1
		AND (max_marks > 0 OR max_marks IS NULL)
		AND deleted_at IS NULL
		ORDER BY question_column
	`

	rows, err := db.Query(query, marksheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mappings: %w", err)
	}
	defer rows.Close()

	var mappings []*models.QuestionCOMapping
	for rows.Next() {
		var m models.QuestionCOMapping
		var coID sql.NullString
		var maxMarks sql.NullFloat64

		err := rows.Scan(&m.ID, &m.MarksheetID, &m.QuestionColumn, &m.OriginalName,
			&m.CONumber, &coID, &maxMarks, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mapping: %w", err)
		}

		if coID.Valid {
			m.COID = &coID.String
		}
		if maxMarks.Valid {
			m.MaxMarks = &maxMarks.Float64
		}
		mappings = append(mappings, &m)
	}

	return mappings, nil
}

// DeleteMappings removes a marksheet's mapping rows and file metadata.
// Idempotent: deleting a marksheet with no mappings is a no-op.
func DeleteMappings(db *sql.DB, marksheetID string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM question_co_mappings WHERE marksheet_id = $1`, marksheetID); err != nil {
		return &errs.TransactionFailure{Op: "delete mappings", Err: err}
	}

	if _, err := tx.Exec(`DELETE FROM comapping_files WHERE marksheet_id = $1`, marksheetID); err != nil {
		return &errs.TransactionFailure{Op: "delete file metadata", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &errs.TransactionFailure{Op: "commit", Err: err}
	}

	return nil
}
