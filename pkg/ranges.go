package explorer

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ToFRange is a labeled closed interval of time-of-flight values (ns).
type ToFRange struct {
	Label string
	Min   int
	Max   int
}

// DefaultRanges returns the ranges used when the user supplies none.
func DefaultRanges() []ToFRange {
	return []ToFRange{
		{Label: "A", Min: 10000, Max: 10400},
		{Label: "B", Min: 8450, Max: 8850},
		{Label: "C", Min: 7000, Max: 7400},
	}
}

// ParseRange parses a string of the form "(INT,INT)". The parentheses
// are optional.
func ParseRange(s string) (int, int, error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	tokens := strings.Split(trimmed, ",")
	if len(tokens) != 2 {
		return 0, 0, &ErrParseRange{Input: s, Reason: "expected two comma-separated values"}
	}
	min, err := strconv.Atoi(strings.TrimSpace(tokens[0]))
	if err != nil {
		return 0, 0, &ErrParseRange{Input: s, Reason: "first value is not an integer"}
	}
	max, err := strconv.Atoi(strings.TrimSpace(tokens[1]))
	if err != nil {
		return 0, 0, &ErrParseRange{Input: s, Reason: "second value is not an integer"}
	}
	return min, max, nil
}

// BuildRanges parses user-supplied range strings, assigning labels
// positionally: A, B, ..., Z, then AA, AB, ...
func BuildRanges(args []string) ([]ToFRange, error) {
	ranges := make([]ToFRange, 0, len(args))
	for i, arg := range args {
		min, max, err := ParseRange(arg)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, ToFRange{Label: rangeLabel(i), Min: min, Max: max})
	}
	return ranges, nil
}

// rangeLabel returns the spreadsheet-style label for position i:
// 0 -> A, 25 -> Z, 26 -> AA, and so on.
func rangeLabel(i int) string {
	label := ""
	for {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
		if i < 0 {
			return label
		}
	}
}

// RangeReport is a ToF range with its bounds converted to m/z.
type RangeReport struct {
	Label  string
	ToFMin int
	ToFMax int
	MzMin  float64
	MzMax  float64
}

// ConvertRanges maps the bounds of each range through the calibration,
// preserving order. The bounds are not validated (min > max passes
// through unchanged).
func ConvertRanges(ranges []ToFRange, cal Calibration) []RangeReport {
	return lo.Map(ranges, func(r ToFRange, _ int) RangeReport {
		return RangeReport{
			Label:  r.Label,
			ToFMin: r.Min,
			ToFMax: r.Max,
			MzMin:  cal.ToFToMz(float64(r.Min)),
			MzMax:  cal.ToFToMz(float64(r.Max)),
		}
	})
}

// Mask selects the events whose ToF falls inside the closed interval.
func Mask(data EventData, r ToFRange) EventData {
	var sel EventData
	for i, t := range data.ToF {
		if t >= float64(r.Min) && t <= float64(r.Max) {
			sel.ToF = append(sel.ToF, t)
			sel.X = append(sel.X, data.X[i])
			sel.Y = append(sel.Y, data.Y[i])
		}
	}
	return sel
}
