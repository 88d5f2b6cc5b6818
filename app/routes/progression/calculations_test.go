package progression

import (
	"testing"

	"github.com/trahulprabhu38/major-project-sub003/app/models"
)

func TestBuildTimelineAlwaysEightSlots(t *testing.T) {
	timeline := BuildTimeline(nil)
	if len(timeline) != TotalSemesters {
		t.Fatalf("expected %d entries, got %d", TotalSemesters, len(timeline))
	}

	for i, entry := range timeline {
		if entry.SemesterNumber != i+1 {
			t.Errorf("slot %d has semester number %d", i, entry.SemesterNumber)
		}
		if entry.Status != StatusNotStarted {
			t.Errorf("semester %d: expected %q, got %q", i+1, StatusNotStarted, entry.Status)
		}
		if entry.SGPA != nil {
			t.Errorf("semester %d: expected nil SGPA", i+1)
		}
	}
}

func TestBuildTimelineFillsKnownSemesters(t *testing.T) {
	results := []*models.SemesterResult{
		{SemesterNumber: 1, SGPA: 8.5, AcademicYear: "2023-24", SemesterStatus: StatusCompleted,
			CreditsRegistered: 24, CreditsEarned: 24, CoursesTotal: 6, CoursesPassed: 6},
		{SemesterNumber: 3, SGPA: 6.1, AcademicYear: "2024-25", SemesterStatus: StatusInProgress,
			CreditsRegistered: 22, CoursesTotal: 5},
	}

	timeline := BuildTimeline(results)
	if len(timeline) != TotalSemesters {
		t.Fatalf("expected %d entries, got %d", TotalSemesters, len(timeline))
	}

	first := timeline[0]
	if first.Status != StatusCompleted || first.SGPA == nil || *first.SGPA != 8.5 {
		t.Errorf("semester 1 not filled: %+v", first)
	}
	if first.CreditsEarned != 24 || first.CoursesPassed != 6 {
		t.Errorf("semester 1 counts wrong: %+v", first)
	}

	if timeline[1].Status != StatusNotStarted {
		t.Errorf("semester 2 should be not_started, got %q", timeline[1].Status)
	}

	third := timeline[2]
	if third.Status != StatusInProgress || third.SGPA == nil || *third.SGPA != 6.1 {
		t.Errorf("semester 3 not filled: %+v", third)
	}
}

func TestPassPercentage(t *testing.T) {
	tests := []struct {
		total, failed int
		want          float64
	}{
		{0, 0, 0},
		{100, 0, 100},
		{100, 25, 75},
		{3, 1, 66.67},
	}

	for _, tt := range tests {
		if got := PassPercentage(tt.total, tt.failed); got != tt.want {
			t.Errorf("PassPercentage(%d, %d) = %v, want %v", tt.total, tt.failed, got, tt.want)
		}
	}
}

func TestOrderedDistribution(t *testing.T) {
	dist := OrderedDistribution(map[string]int{"A": 3, "F": 1})

	if len(dist) != len(gradeRankOrder) {
		t.Fatalf("expected %d buckets, got %d", len(gradeRankOrder), len(dist))
	}
	if dist[0].LetterGrade != "A+" || dist[0].Count != 0 {
		t.Errorf("first bucket should be empty A+, got %+v", dist[0])
	}
	if dist[1].LetterGrade != "A" || dist[1].Count != 3 {
		t.Errorf("second bucket should be A with 3, got %+v", dist[1])
	}
	if dist[len(dist)-1].LetterGrade != "F" || dist[len(dist)-1].Count != 1 {
		t.Errorf("last bucket should be F with 1, got %+v", dist[len(dist)-1])
	}
}

func TestWeightedCGPA(t *testing.T) {
	results := []*models.SemesterResult{
		{SGPA: 8.0, CreditsEarned: 20},
		{SGPA: 9.0, CreditsEarned: 20},
		{SGPA: 5.0, CreditsEarned: 0},
	}

	cgpa, credits := WeightedCGPA(results)
	if credits != 40 {
		t.Errorf("expected 40 credits, got %d", credits)
	}
	if cgpa != 8.5 {
		t.Errorf("expected CGPA 8.5, got %v", cgpa)
	}
}

func TestWeightedCGPANoCredits(t *testing.T) {
	cgpa, credits := WeightedCGPA(nil)
	if cgpa != 0 || credits != 0 {
		t.Errorf("expected zero CGPA and credits, got %v/%d", cgpa, credits)
	}
}
