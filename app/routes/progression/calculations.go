package progression

import (
	"math"

	"github.com/trahulprabhu38/major-project-sub003/app/models"
)

// TotalSemesters is the fixed length of every progression timeline
const TotalSemesters = 8

// Semester statuses
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// gradeRankOrder fixes histogram ordering from best to worst
var gradeRankOrder = []string{"A+", "A", "B+", "B", "C+", "C", "D", "E", "F"}

// SemesterEntry is one slot of the 8-semester timeline. Semesters without a
// result row carry status "not_started" and zeroed metrics so consumers
// never deal with a sparse timeline.
type SemesterEntry struct {
	SemesterNumber    int               `json:"semester_number"`
	Status            string            `json:"status"`
	SGPA              *float64          `json:"sgpa"`
	AcademicYear      *string           `json:"academic_year"`
	CreditsRegistered int               `json:"credits_registered"`
	CreditsEarned     int               `json:"credits_earned"`
	CoursesTotal      int               `json:"courses_total"`
	CoursesPassed     int               `json:"courses_passed"`
	Courses           []*SemesterCourse `json:"courses,omitempty"`
}

// BuildTimeline expands whatever semester results exist into the fixed
// 8-slot shape. Zero input rows still produce 8 entries.
func BuildTimeline(results []*models.SemesterResult) []SemesterEntry {
	bySemester := make(map[int]*models.SemesterResult, len(results))
	for _, r := range results {
		bySemester[r.SemesterNumber] = r
	}

	timeline := make([]SemesterEntry, TotalSemesters)
	for i := 0; i < TotalSemesters; i++ {
		num := i + 1
		entry := SemesterEntry{
			SemesterNumber: num,
			Status:         StatusNotStarted,
		}

		if r, ok := bySemester[num]; ok {
			sgpa := r.SGPA
			year := r.AcademicYear
			entry.Status = r.SemesterStatus
			entry.SGPA = &sgpa
			entry.AcademicYear = &year
			entry.CreditsRegistered = r.CreditsRegistered
			entry.CreditsEarned = r.CreditsEarned
			entry.CoursesTotal = r.CoursesTotal
			entry.CoursesPassed = r.CoursesPassed
		}

		timeline[i] = entry
	}

	return timeline
}

// PassPercentage computes the share of students who did not fail, rounded to
// two decimals. No students yields 0 rather than a division by zero.
func PassPercentage(totalStudents, failedCount int) float64 {
	if totalStudents == 0 {
		return 0
	}
	pct := float64(totalStudents-failedCount) / float64(totalStudents) * 100.0
	return math.Round(pct*100) / 100
}

// GradeBucket is one histogram bar of a grade distribution
type GradeBucket struct {
	LetterGrade string `json:"letter_grade"`
	Count       int    `json:"count"`
}

// OrderedDistribution converts raw per-grade counts into a histogram ordered
// by grade rank, best first. Every rank appears even when its count is zero.
func OrderedDistribution(counts map[string]int) []GradeBucket {
	buckets := make([]GradeBucket, 0, len(gradeRankOrder))
	for _, letter := range gradeRankOrder {
		buckets = append(buckets, GradeBucket{LetterGrade: letter, Count: counts[letter]})
	}
	return buckets
}

// WeightedCGPA folds semester results into a cumulative credit-weighted GPA.
// Semesters with zero earned credits contribute nothing.
func WeightedCGPA(results []*models.SemesterResult) (cgpa float64, totalCredits int) {
	var weighted float64
	for _, r := range results {
		if r.CreditsEarned <= 0 {
			continue
		}
		weighted += r.SGPA * float64(r.CreditsEarned)
		totalCredits += r.CreditsEarned
	}

	if totalCredits == 0 {
		return 0, 0
	}

	cgpa = math.Round(weighted/float64(totalCredits)*100) / 100
	return cgpa, totalCredits
}
