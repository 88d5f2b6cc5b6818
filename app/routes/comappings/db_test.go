package comappings

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/trahulprabhu38/major-project-sub003/app/errs"
)

func outcomeRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "course_id", "co_number", "description", "bloom_level", "created_at", "updated_at"}).
		AddRow("co-uuid-1", "course-1", 1, "Apply basic concepts", nil, now, now).
		AddRow("co-uuid-2", "course-1", 2, "Analyze systems", nil, now, now)
}

func TestReplaceMappingsStoresKnownCOsOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM course_outcomes").WithArgs("course-1").WillReturnRows(outcomeRows())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM question_co_mappings").
		WithArgs("sheet-1").WillReturnResult(sqlmock.NewResult(0, 2))

	prep := mock.ExpectPrepare("INSERT INTO question_co_mappings")
	prep.ExpectExec().
		WithArgs("sheet-1", "q1a", "Q1a", 1, "co-uuid-1", 10.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().
		WithArgs("sheet-1", "q2", "Q2", 2, "co-uuid-2", 5.0).
		WillReturnResult(sqlmock.NewResult(2, 1))

	mock.ExpectExec("INSERT INTO comapping_files").
		WithArgs("sheet-1", "hash-abc", 2, "user-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	parsed := []ParsedMapping{
		{QuestionColumn: "q1a", OriginalName: "Q1a", MaxMarks: 10, CONumber: 1},
		{QuestionColumn: "q2", OriginalName: "Q2", MaxMarks: 5, CONumber: 2},
		{QuestionColumn: "q3", OriginalName: "Q3", MaxMarks: 5, CONumber: 7},
	}

	summary, err := ReplaceMappings(db, "course-1", "sheet-1", parsed, "user-1", "hash-abc")
	if err != nil {
		t.Fatalf("ReplaceMappings: %v", err)
	}

	if summary.Stored != 2 {
		t.Errorf("expected 2 stored, got %d", summary.Stored)
	}
	if summary.SkippedUnknownCO != 1 {
		t.Errorf("expected 1 unknown-CO skip, got %d", summary.SkippedUnknownCO)
	}
	if len(summary.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", summary.Warnings)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReplaceMappingsRollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM course_outcomes").WithArgs("course-1").WillReturnRows(outcomeRows())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM question_co_mappings").
		WithArgs("sheet-1").WillReturnResult(sqlmock.NewResult(0, 0))

	prep := mock.ExpectPrepare("INSERT INTO question_co_mappings")
	prep.ExpectExec().
		WithArgs("sheet-1", "q1a", "Q1a", 1, "co-uuid-1", 10.0).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	parsed := []ParsedMapping{
		{QuestionColumn: "q1a", OriginalName: "Q1a", MaxMarks: 10, CONumber: 1},
	}

	_, err = ReplaceMappings(db, "course-1", "sheet-1", parsed, "", "hash")
	if err == nil {
		t.Fatal("expected an error")
	}

	var txErr *errs.TransactionFailure
	if !errors.As(err, &txErr) {
		t.Fatalf("expected TransactionFailure, got %T: %v", err, err)
	}
	if txErr.Op != "insert mapping" {
		t.Errorf("expected op %q, got %q", "insert mapping", txErr.Op)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteMappingsIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM question_co_mappings").
		WithArgs("sheet-empty").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM comapping_files").
		WithArgs("sheet-empty").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := DeleteMappings(db, "sheet-empty"); err != nil {
		t.Fatalf("DeleteMappings on empty marksheet should succeed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
