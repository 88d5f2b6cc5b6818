package attainment

import (
	"database/sql"
	"testing"
)

func mark(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

func TestAnalyzeQuestion(t *testing.T) {
	// max 10, bar at 6; NULL and zero are not attempts
	marks := []sql.NullFloat64{
		mark(10), mark(6), mark(5.9), mark(0), {},
	}

	stats := AnalyzeQuestion(marks, 10)
	if stats.AttemptsCount != 3 {
		t.Errorf("expected 3 attempts, got %d", stats.AttemptsCount)
	}
	if stats.StudentsAboveThreshold != 2 {
		t.Errorf("expected 2 above threshold, got %d", stats.StudentsAboveThreshold)
	}
}

func TestAnalyzeQuestionExactThreshold(t *testing.T) {
	// 60% of 20 is 12; an exact hit counts
	stats := AnalyzeQuestion([]sql.NullFloat64{mark(12)}, 20)
	if stats.StudentsAboveThreshold != 1 {
		t.Errorf("exact threshold mark should count, got %d", stats.StudentsAboveThreshold)
	}
}

func TestAttainmentPercent(t *testing.T) {
	tests := []struct {
		above, attempts int
		want            float64
	}{
		{14, 20, 70},
		{0, 20, 0},
		{20, 20, 100},
		{1, 3, 33.33},
		{0, 0, 0},
	}

	for _, tt := range tests {
		got := AttainmentPercent(tt.above, tt.attempts)
		if got != tt.want {
			t.Errorf("AttainmentPercent(%d, %d) = %v, want %v", tt.above, tt.attempts, got, tt.want)
		}
	}
}
