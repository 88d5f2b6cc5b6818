package attainment

import (
	"database/sql"
	"math"
)

// Threshold is the fixed performance bar for every question and CO: a
// student attains a question by scoring at least 60% of its max marks.
const Threshold = 60.0

// QuestionStats holds the vertical (per-question) attainment counts for one
// question of one marksheet
type QuestionStats struct {
	AttemptsCount          int `json:"attempts_count"`
	StudentsAboveThreshold int `json:"students_above_threshold"`
}

// AnalyzeQuestion computes attempt and above-threshold counts for one
// question column. NULL and zero marks count as "not attempted".
func AnalyzeQuestion(marks []sql.NullFloat64, maxMarks float64) QuestionStats {
	var stats QuestionStats
	bar := maxMarks * Threshold / 100.0

	for _, m := range marks {
		if !m.Valid || m.Float64 == 0 {
			continue
		}
		stats.AttemptsCount++
		if m.Float64 >= bar {
			stats.StudentsAboveThreshold++
		}
	}

	return stats
}

// AttainmentPercent is the fraction of question-attempts that cleared the
// threshold, as a percentage. Zero attempts yields 0, not an error.
func AttainmentPercent(studentsAboveThreshold, totalAttempts int) float64 {
	if totalAttempts == 0 {
		return 0
	}
	pct := float64(studentsAboveThreshold) / float64(totalAttempts) * 100.0
	return math.Round(pct*100) / 100
}

// CombinedResult is the combined attainment of one course outcome across
// every assessment of the course. The percentage divides summed
// above-threshold counts by summed attempts across all mapped questions;
// this is the intended methodology, not a per-student recombination.
type CombinedResult struct {
	COID                   string  `json:"co_id"`
	CONumber               int     `json:"co_number"`
	NumQuestions           int     `json:"num_questions"`
	TotalMaxMarks          float64 `json:"total_max_marks"`
	TotalAttempts          int     `json:"total_attempts"`
	StudentsAboveThreshold int     `json:"students_above_threshold"`
	AttainmentPercent      float64 `json:"attainment_percent"`
	Threshold              float64 `json:"threshold"`
}
