package comappings

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/trahulprabhu38/major-project-sub003/app/errs"
)

// DefaultMaxMarks is assumed when the uploaded mapping has no max-marks column
const DefaultMaxMarks = 10.0

// coPattern extracts CO numbers from cells like "CO1", "co 2" or "CO1,CO3"
var coPattern = regexp.MustCompile(`(?i)co\s*-?\s*(\d+)`)

// ParsedMapping is one normalized (question, CO) pair from an uploaded file.
// A source row listing several COs expands into one ParsedMapping per CO.
type ParsedMapping struct {
	QuestionColumn string  `json:"question_column"`
	OriginalName   string  `json:"original_name"`
	MaxMarks       float64 `json:"max_marks"`
	CONumber       int     `json:"co_number"`
}

// ParseResult carries accepted mappings together with skip/warning
// diagnostics; dropped rows are data, not errors, and the caller decides
// whether to surface them.
type ParseResult struct {
	Mappings       []ParsedMapping `json:"mappings"`
	Warnings       []string        `json:"warnings,omitempty"`
	SkippedZeroMax int             `json:"skipped_zero_max"`
	SkippedNoCO    int             `json:"skipped_no_co"`
}

// ParseMappingTable parses an uploaded CO-mapping table (CSV text: header row
// plus data rows). Header fields are matched flexibly; quoted fields
// containing commas are handled. Rows with max marks <= 0 are dropped
// silently (the question is treated as absent), rows yielding no CO number
// are dropped with a warning.
func ParseMappingTable(raw string) (*ParseResult, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errs.NewValidation("malformed CSV: %v", err)
	}

	if len(records) < 2 {
		return nil, errs.NewValidation("mapping file must contain a header row and at least one data row")
	}

	result := &ParseResult{}

	questionIdx, maxMarksIdx, coIdx := matchHeader(records[0])
	if questionIdx < 0 {
		return nil, errs.NewValidation("mapping header is missing a question/column field")
	}
	if coIdx < 0 {
		return nil, errs.NewValidation("mapping header is missing a CO field")
	}
	if maxMarksIdx < 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("no max-marks column found, assuming %.0f marks per question", DefaultMaxMarks))
	}

	for i, row := range records[1:] {
		lineNo := i + 2

		if questionIdx >= len(row) || coIdx >= len(row) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("line %d: too few fields, row skipped", lineNo))
			continue
		}

		name := strings.ToLower(strings.TrimSpace(row[questionIdx]))
		if name == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("line %d: empty question name, row skipped", lineNo))
			continue
		}

		maxMarks := DefaultMaxMarks
		if maxMarksIdx >= 0 {
			if maxMarksIdx < len(row) {
				parsed, err := strconv.ParseFloat(strings.TrimSpace(row[maxMarksIdx]), 64)
				if err != nil {
					parsed = 0
				}
				maxMarks = parsed
			} else {
				maxMarks = 0
			}
		}

		// A question worth zero marks does not exist
		if maxMarks <= 0 {
			result.SkippedZeroMax++
			continue
		}

		coNumbers := extractCONumbers(row[coIdx])
		if len(coNumbers) == 0 {
			result.SkippedNoCO++
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("line %d: question %q has no recognizable CO, row skipped", lineNo, name))
			continue
		}

		for _, coNum := range coNumbers {
			result.Mappings = append(result.Mappings, ParsedMapping{
				QuestionColumn: name,
				OriginalName:   strings.TrimSpace(row[questionIdx]),
				MaxMarks:       maxMarks,
				CONumber:       coNum,
			})
		}
	}

	return result, nil
}

// matchHeader locates the question, max-marks and CO fields in a header row.
// Returns -1 for fields that are absent.
func matchHeader(header []string) (questionIdx, maxMarksIdx, coIdx int) {
	questionIdx, maxMarksIdx, coIdx = -1, -1, -1

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))

		switch {
		case questionIdx < 0 && (strings.Contains(name, "question") || strings.Contains(name, "column")):
			questionIdx = i
		case maxMarksIdx < 0 && strings.Contains(name, "max"):
			maxMarksIdx = i
		case coIdx < 0 && isCOHeader(name):
			coIdx = i
		}
	}

	return questionIdx, maxMarksIdx, coIdx
}

// isCOHeader matches "co", "cos", "co mapping", "course outcome" style
// headers without being fooled by "column"
func isCOHeader(name string) bool {
	if strings.Contains(name, "outcome") {
		return true
	}
	return name == "co" || name == "cos" || strings.HasPrefix(name, "co ") || strings.HasPrefix(name, "co_") || strings.HasPrefix(name, "co-")
}

// extractCONumbers pulls every CO number out of a cell like "CO1,CO2" or
// "co 3 / CO4"; separators are arbitrary.
func extractCONumbers(cell string) []int {
	matches := coPattern.FindAllStringSubmatch(cell, -1)

	var numbers []int
	seen := map[int]bool{}
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 || seen[n] {
			continue
		}
		seen[n] = true
		numbers = append(numbers, n)
	}

	return numbers
}
