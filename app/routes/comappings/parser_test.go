package comappings

import (
	"strings"
	"testing"

	"github.com/trahulprabhu38/major-project-sub003/app/errs"
)

func TestParseMappingTable(t *testing.T) {
	raw := strings.Join([]string{
		"Question Column,Max Marks,CO Mapping",
		"Q1a,10,CO1",
		"Q1b,5,CO2",
		"Q2,0,CO1",
		"Q3,8,remarks only",
		"Q4,20,\"CO1, CO3\"",
	}, "\n")

	result, err := ParseMappingTable(raw)
	if err != nil {
		t.Fatalf("ParseMappingTable returned error: %v", err)
	}

	// Q1a, Q1b, and Q4 expanded into two rows
	if len(result.Mappings) != 4 {
		t.Fatalf("expected 4 mappings, got %d: %+v", len(result.Mappings), result.Mappings)
	}

	if result.SkippedZeroMax != 1 {
		t.Errorf("expected 1 zero-max skip, got %d", result.SkippedZeroMax)
	}
	if result.SkippedNoCO != 1 {
		t.Errorf("expected 1 no-CO skip, got %d", result.SkippedNoCO)
	}

	first := result.Mappings[0]
	if first.QuestionColumn != "q1a" || first.OriginalName != "Q1a" {
		t.Errorf("question name not normalized: %+v", first)
	}
	if first.MaxMarks != 10 || first.CONumber != 1 {
		t.Errorf("unexpected first mapping: %+v", first)
	}

	// Quoted multi-CO cell expands with max marks repeated
	last := result.Mappings[len(result.Mappings)-1]
	if last.QuestionColumn != "q4" || last.CONumber != 3 || last.MaxMarks != 20 {
		t.Errorf("multi-CO expansion wrong: %+v", last)
	}
	secondLast := result.Mappings[len(result.Mappings)-2]
	if secondLast.QuestionColumn != "q4" || secondLast.CONumber != 1 {
		t.Errorf("multi-CO expansion wrong: %+v", secondLast)
	}
}

func TestParseMappingTableMissingMaxMarksColumn(t *testing.T) {
	raw := "Question,CO\nQ1,CO2\n"

	result, err := ParseMappingTable(raw)
	if err != nil {
		t.Fatalf("ParseMappingTable returned error: %v", err)
	}

	if len(result.Mappings) != 1 {
		t.Fatalf("expected 1 mapping, got %d", len(result.Mappings))
	}
	if result.Mappings[0].MaxMarks != DefaultMaxMarks {
		t.Errorf("expected default max marks %v, got %v", DefaultMaxMarks, result.Mappings[0].MaxMarks)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning about the missing max-marks column")
	}
}

func TestParseMappingTableTooFewLines(t *testing.T) {
	for _, raw := range []string{"", "Question,Max,CO"} {
		_, err := ParseMappingTable(raw)
		if !errs.IsValidation(err) {
			t.Errorf("input %q: expected validation error, got %v", raw, err)
		}
	}
}

func TestParseMappingTableMissingHeaders(t *testing.T) {
	if _, err := ParseMappingTable("Max Marks,CO\n10,CO1\n"); !errs.IsValidation(err) {
		t.Errorf("missing question header: expected validation error, got %v", err)
	}
	if _, err := ParseMappingTable("Question,Max Marks\nQ1,10\n"); !errs.IsValidation(err) {
		t.Errorf("missing CO header: expected validation error, got %v", err)
	}
}

func TestMatchHeaderColumnDoesNotMatchCO(t *testing.T) {
	qIdx, maxIdx, coIdx := matchHeader([]string{"Column Name", "Max Marks", "COs"})
	if qIdx != 0 || maxIdx != 1 || coIdx != 2 {
		t.Errorf("got question=%d max=%d co=%d", qIdx, maxIdx, coIdx)
	}
}

func TestExtractCONumbers(t *testing.T) {
	tests := []struct {
		cell string
		want []int
	}{
		{"CO1", []int{1}},
		{"co 2", []int{2}},
		{"CO-3", []int{3}},
		{"CO1,CO2", []int{1, 2}},
		{"CO1 / co1", []int{1}},
		{"none here", nil},
	}

	for _, tt := range tests {
		got := extractCONumbers(tt.cell)
		if len(got) != len(tt.want) {
			t.Errorf("%q: got %v, want %v", tt.cell, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: got %v, want %v", tt.cell, got, tt.want)
			}
		}
	}
}
