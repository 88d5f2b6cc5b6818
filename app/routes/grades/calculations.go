package grades

import "math"

// Final results combine CIE (already on a 50-point basis) with SEE rescaled
// to 50, giving a percentage out of 100.

// ScaleSEETo50 rescales a raw SEE score to the 50-point final component
func ScaleSEETo50(obtained, maxMarks float64) float64 {
	if maxMarks <= 0 {
		return 0
	}
	return math.Round(obtained/maxMarks*50*100) / 100
}

// LetterGradeFor maps a final percentage to its letter grade. Breakpoints
// are inclusive lower bounds evaluated highest-first; C is checked before D,
// so exactly 40 yields D. The order must not be rearranged: borderline
// students would silently be reclassified.
func LetterGradeFor(percentage float64) string {
	switch {
	case percentage >= 91:
		return "A+"
	case percentage >= 81:
		return "A"
	case percentage >= 71:
		return "B+"
	case percentage >= 61:
		return "B"
	case percentage >= 51:
		return "C+"
	case percentage >= 41:
		return "C"
	case percentage >= 40:
		return "D"
	case percentage >= 35:
		return "E"
	default:
		return "F"
	}
}

// gradePoints is the 10-point scale; E and F both carry zero points
var gradePoints = map[string]float64{
	"A+": 10,
	"A":  9,
	"B+": 8,
	"B":  7,
	"C+": 6,
	"C":  5,
	"D":  4,
	"E":  0,
	"F":  0,
}

// GradePointsFor returns the grade points for a letter grade
func GradePointsFor(letter string) float64 {
	return gradePoints[letter]
}

// IsPassingGrade reports whether a letter grade passes the course; E and F
// are failing grades even though D carries points.
func IsPassingGrade(letter string) bool {
	return letter != "E" && letter != "F"
}

// ComputedGrade is the pure result of combining CIE and SEE components
type ComputedGrade struct {
	CIEOn50         float64 `json:"cie_on_50"`
	SEEOn50         float64 `json:"see_on_50"`
	FinalPercentage float64 `json:"final_percentage"`
	LetterGrade     string  `json:"letter_grade"`
	GradePoints     float64 `json:"grade_points"`
	IsPassed        bool    `json:"is_passed"`
}

// clampComponent keeps a 50-point component inside its share of the final
// scale; out-of-range upstream rows must not push the total past 100
func clampComponent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 50 {
		return 50
	}
	return v
}

// ComputeFinalGrade combines the CIE composite (on 50) and raw SEE marks
// into the final percentage, letter grade and grade points
func ComputeFinalGrade(cieOn50, seeObtained, seeMax float64) ComputedGrade {
	cieOn50 = clampComponent(cieOn50)
	seeOn50 := clampComponent(ScaleSEETo50(seeObtained, seeMax))
	finalTotal := cieOn50 + seeOn50
	finalPercentage := math.Round(finalTotal*100) / 100

	letter := LetterGradeFor(finalPercentage)

	return ComputedGrade{
		CIEOn50:         cieOn50,
		SEEOn50:         seeOn50,
		FinalPercentage: finalPercentage,
		LetterGrade:     letter,
		GradePoints:     GradePointsFor(letter),
		IsPassed:        IsPassingGrade(letter),
	}
}
