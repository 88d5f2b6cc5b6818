package grades

import "testing"

func TestLetterGradeFor(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{91, "A+"},
		{90.99, "A"},
		{81, "A"},
		{80.5, "B+"},
		{71, "B+"},
		{61, "B"},
		{51, "C+"},
		{41, "C"},
		{40.5, "D"},
		{40, "D"},
		{39.99, "E"},
		{35, "E"},
		{34.99, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := LetterGradeFor(tt.percentage); got != tt.want {
			t.Errorf("LetterGradeFor(%v) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestGradePointsFor(t *testing.T) {
	tests := []struct {
		letter string
		want   float64
	}{
		{"A+", 10}, {"A", 9}, {"B+", 8}, {"B", 7},
		{"C+", 6}, {"C", 5}, {"D", 4}, {"E", 0}, {"F", 0},
	}

	for _, tt := range tests {
		if got := GradePointsFor(tt.letter); got != tt.want {
			t.Errorf("GradePointsFor(%q) = %v, want %v", tt.letter, got, tt.want)
		}
	}
}

func TestIsPassingGrade(t *testing.T) {
	// D passes despite its low points, E and F do not
	if !IsPassingGrade("D") {
		t.Error("D should pass")
	}
	if IsPassingGrade("E") || IsPassingGrade("F") {
		t.Error("E and F should fail")
	}
}

func TestScaleSEETo50(t *testing.T) {
	if got := ScaleSEETo50(70, 100); got != 35 {
		t.Errorf("ScaleSEETo50(70, 100) = %v, want 35", got)
	}
	if got := ScaleSEETo50(45, 90); got != 25 {
		t.Errorf("ScaleSEETo50(45, 90) = %v, want 25", got)
	}
	if got := ScaleSEETo50(50, 0); got != 0 {
		t.Errorf("ScaleSEETo50 with zero max should be 0, got %v", got)
	}
}

func TestComputeFinalGrade(t *testing.T) {
	grade := ComputeFinalGrade(42, 70, 100)

	if grade.SEEOn50 != 35 {
		t.Errorf("expected SEE on 50 = 35, got %v", grade.SEEOn50)
	}
	if grade.FinalPercentage != 77 {
		t.Errorf("expected final percentage 77, got %v", grade.FinalPercentage)
	}
	if grade.LetterGrade != "B+" || grade.GradePoints != 8 {
		t.Errorf("expected B+/8, got %s/%v", grade.LetterGrade, grade.GradePoints)
	}
	if !grade.IsPassed {
		t.Error("expected a passing grade")
	}
}

func TestComputeFinalGradeClampsComponents(t *testing.T) {
	// Upstream rows above range must not push the total past 100
	grade := ComputeFinalGrade(55, 120, 100)
	if grade.CIEOn50 != 50 || grade.SEEOn50 != 50 {
		t.Errorf("expected both components capped at 50, got %v/%v", grade.CIEOn50, grade.SEEOn50)
	}
	if grade.FinalPercentage != 100 || grade.LetterGrade != "A+" {
		t.Errorf("expected 100/A+, got %v/%s", grade.FinalPercentage, grade.LetterGrade)
	}

	grade = ComputeFinalGrade(-5, -10, 100)
	if grade.CIEOn50 != 0 || grade.SEEOn50 != 0 {
		t.Errorf("expected negative components floored at 0, got %v/%v", grade.CIEOn50, grade.SEEOn50)
	}
	if grade.FinalPercentage != 0 || grade.LetterGrade != "F" {
		t.Errorf("expected 0/F, got %v/%s", grade.FinalPercentage, grade.LetterGrade)
	}
}

func TestComputeFinalGradeFailing(t *testing.T) {
	grade := ComputeFinalGrade(20, 30, 100)

	if grade.FinalPercentage != 35 {
		t.Errorf("expected final percentage 35, got %v", grade.FinalPercentage)
	}
	if grade.LetterGrade != "E" || grade.GradePoints != 0 || grade.IsPassed {
		t.Errorf("expected failing E with 0 points, got %+v", grade)
	}
}
