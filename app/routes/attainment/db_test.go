package attainment

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/trahulprabhu38/major-project-sub003/app/errs"
)

func marksheetRow(tableName string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "course_id", "name", "assessment_type", "table_name", "row_count", "uploaded_by", "created_at", "updated_at"}).
		AddRow("sheet-1", "course-1", "CIE 1", "internal", tableName, 60, nil, now, now)
}

func TestCalculateVerticalAnalysisSkipsUnresolvableTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM marksheets").WithArgs("sheet-1").
		WillReturnRows(marksheetRow("marksheet_cie1"))

	// No usn-like column in the dynamic table
	mock.ExpectQuery("SELECT column_name FROM information_schema.columns").
		WithArgs("marksheet_cie1").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id").AddRow("q1a"))

	summary, err := CalculateVerticalAnalysis(db, "sheet-1")
	if err != nil {
		t.Fatalf("unresolvable marksheet must be skipped, not fail: %v", err)
	}

	if !summary.Skipped {
		t.Error("expected summary.Skipped")
	}
	if len(summary.Warnings) == 0 {
		t.Error("expected a diagnostic warning")
	}
	if summary.RowsStored != 0 {
		t.Errorf("expected no rows stored, got %d", summary.RowsStored)
	}
}

func TestCalculateVerticalAnalysisUnknownMarksheet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM marksheets").WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "name", "assessment_type", "table_name", "row_count", "uploaded_by", "created_at", "updated_at"}))

	_, err = CalculateVerticalAnalysis(db, "nope")
	if !errs.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCalculateVerticalAnalysisRebuild(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM marksheets").WithArgs("sheet-1").
		WillReturnRows(marksheetRow("marksheet_cie1"))

	mock.ExpectQuery("SELECT column_name FROM information_schema.columns").
		WithArgs("marksheet_cie1").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("usn").AddRow("q1a"))

	maxMarks := 10.0
	mappingRows := sqlmock.NewRows([]string{"id", "marksheet_id", "question_column", "original_name", "co_number", "co_id", "max_marks", "created_at", "updated_at"}).
		AddRow("map-1", "sheet-1", "q1a", "Q1a", 1, "co-uuid-1", maxMarks, now, now).
		AddRow("map-2", "sheet-1", "q1a", "Q1a", 2, "co-uuid-2", maxMarks, now, now)
	mock.ExpectQuery("FROM question_co_mappings").WithArgs("sheet-1").WillReturnRows(mappingRows)

	mock.ExpectQuery("SELECT column_name FROM information_schema.columns").
		WithArgs("marksheet_cie1").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("usn").AddRow("q1a"))

	// 3 attempts, 2 at or above 6 of 10
	markRows := sqlmock.NewRows([]string{"q1a"}).
		AddRow(10.0).AddRow(6.0).AddRow(5.0).AddRow(nil)
	mock.ExpectQuery(`SELECT "q1a" FROM "marksheet_cie1"`).WillReturnRows(markRows)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM question_vertical_analysis").
		WithArgs("sheet-1").WillReturnResult(sqlmock.NewResult(0, 0))

	prep := mock.ExpectPrepare("INSERT INTO question_vertical_analysis")
	// One stats row per mapped CO, same counts for both
	prep.ExpectExec().
		WithArgs("sheet-1", "q1a", 1, 10.0, 3, 2).
		WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().
		WithArgs("sheet-1", "q1a", 2, 10.0, 3, 2).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	summary, err := CalculateVerticalAnalysis(db, "sheet-1")
	if err != nil {
		t.Fatalf("CalculateVerticalAnalysis: %v", err)
	}

	if summary.QuestionsAnalyzed != 1 {
		t.Errorf("expected 1 question analyzed, got %d", summary.QuestionsAnalyzed)
	}
	if summary.RowsStored != 2 {
		t.Errorf("expected 2 rows stored, got %d", summary.RowsStored)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCalculateCombinedAttainmentZeroQuestionCO(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	courseRows := sqlmock.NewRows([]string{"id", "code", "name", "department", "semester", "credits", "teacher_id", "is_active", "created_at", "updated_at"}).
		AddRow("course-1", "CS301", "Operating Systems", "CSE", 5, 4, nil, true, now, now)
	mock.ExpectQuery("FROM courses").WithArgs("course-1").WillReturnRows(courseRows)

	outcomeRows := sqlmock.NewRows([]string{"id", "course_id", "co_number", "description", "bloom_level", "created_at", "updated_at"}).
		AddRow("co-uuid-1", "course-1", 1, "Apply", nil, now, now).
		AddRow("co-uuid-2", "course-1", 2, "Analyze", nil, now, now)
	mock.ExpectQuery("FROM course_outcomes").WithArgs("course-1").WillReturnRows(outcomeRows)

	// CO1 aggregates 20 attempts with 14 above; CO2 has no questions yet
	mock.ExpectQuery("FROM question_vertical_analysis qva").
		WithArgs("course-1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum_max", "sum_attempts", "sum_above"}).AddRow(2, 15.0, 20, 14))
	mock.ExpectQuery("FROM question_vertical_analysis qva").
		WithArgs("course-1", 2).
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum_max", "sum_attempts", "sum_above"}).AddRow(0, 0.0, 0, 0))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM co_attainment").
		WithArgs("course-1").WillReturnResult(sqlmock.NewResult(0, 0))

	prep := mock.ExpectPrepare("INSERT INTO co_attainment")
	prep.ExpectExec().
		WithArgs("course-1", "co-uuid-1", 1, 2, 15.0, 20, 14, 70.0, Threshold).
		WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().
		WithArgs("course-1", "co-uuid-2", 2, 0, 0.0, 0, 0, 0.0, Threshold).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	results, err := CalculateCombinedAttainment(db, "course-1")
	if err != nil {
		t.Fatalf("CalculateCombinedAttainment: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected a result per CO, got %d", len(results))
	}
	if results[0].AttainmentPercent != 70 {
		t.Errorf("expected CO1 attainment 70, got %v", results[0].AttainmentPercent)
	}
	if results[1].NumQuestions != 0 || results[1].AttainmentPercent != 0 {
		t.Errorf("expected zero-valued CO2 row, got %+v", results[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
