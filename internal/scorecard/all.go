package scorecard

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc/iter"

	"github.com/dotcommander/fitcheck/internal/types"
)

// letterSizes is the conventional alpha size ladder, smallest first.
var letterSizes = map[string]int{
	"XXS":  0,
	"2XS":  0,
	"XS":   1,
	"S":    2,
	"M":    3,
	"L":    4,
	"XL":   5,
	"XXL":  6,
	"2XL":  6,
	"XXXL": 7,
	"3XL":  7,
}

// SortSizes orders size labels naturally: the XXS to XXXL ladder first, then
// numeric labels ascending, then everything else lexically. The input is not
// modified.
func SortSizes(labels []string) []string {
	out := slices.Clone(labels)
	slices.SortStableFunc(out, compareSizes)
	return out
}

func sizeRank(label string) (group int, letter int, number float64) {
	upper := strings.ToUpper(strings.TrimSpace(label))
	if r, ok := letterSizes[upper]; ok {
		return 0, r, 0
	}
	if n, err := strconv.ParseFloat(upper, 64); err == nil {
		return 1, 0, n
	}
	return 2, 0, 0
}

func compareSizes(a, b string) int {
	ga, la, na := sizeRank(a)
	gb, lb, nb := sizeRank(b)
	switch {
	case ga != gb:
		return ga - gb
	case ga == 0 && la != lb:
		return la - lb
	case ga == 1 && na < nb:
		return -1
	case ga == 1 && na > nb:
		return 1
	}
	return strings.Compare(a, b)
}

// Sizes returns the garment's published size labels in natural order.
func Sizes(g types.GarmentMeasurements) []string {
	labels := make([]string, 0, len(g.Sizes))
	for label := range g.Sizes {
		labels = append(labels, label)
	}
	return SortSizes(labels)
}

// CheckSize returns ErrUnknownSize when g does not publish size.
func CheckSize(g types.GarmentMeasurements, size string) error {
	if _, ok := g.Sizes[size]; !ok {
		return fmt.Errorf("%w: %q (available: %s)", ErrUnknownSize, size, strings.Join(Sizes(g), ", "))
	}
	return nil
}

// EvaluateAll scores every published size of g concurrently and returns the
// results in natural size order.
func (e *Evaluator) EvaluateAll(g types.GarmentMeasurements, u types.UserMeasurements) []types.ScorecardResult {
	sizes := Sizes(g)
	mapper := iter.Mapper[string, types.ScorecardResult]{MaxGoroutines: e.opts.MaxGoroutines}
	return mapper.Map(sizes, func(size *string) types.ScorecardResult {
		return e.Evaluate(g, *size, u)
	})
}

// EvaluateAll scores every published size of g with default options.
func EvaluateAll(g types.GarmentMeasurements, u types.UserMeasurements) []types.ScorecardResult {
	return New(Options{}).EvaluateAll(g, u)
}
