// Package output renders scorecards and measurement explanations.
//
// Formatters write to an io.Writer; choosing stdout or a file is the
// caller's job (see package outputters).
package output

import (
	"fmt"
	"math"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dotcommander/fitcheck/internal/garment"
	"github.com/dotcommander/fitcheck/internal/types"
)

// Report is the set of scorecards produced for one garment.
type Report struct {
	// Source names the garment, usually its file path.
	Source  string
	Results []types.ScorecardResult
}

// Explained pairs a dimension key with its explainer entry.
type Explained struct {
	Dimension   string
	Explanation garment.Explanation
}

// Formatter renders reports.
type Formatter interface {
	Format(reports []Report) error
	FormatExplanations(items []Explained) error
}

// formatDelta renders a nullable delta. Rows without a delta show a dash.
func formatDelta(d *float64) string {
	if d == nil {
		return "-"
	}
	return fmt.Sprintf("%+.2f", *d)
}

// formatValue renders the garment side of a row, using the range for
// elastic waistbands.
func formatValue(m types.MeasurementResult) string {
	if m.GarmentRange != nil {
		return fmt.Sprintf("%s-%s", trimFloat(m.GarmentRange.Min), trimFloat(m.GarmentRange.Max))
	}
	v := trimFloat(m.GarmentValue)
	if m.IsApproximation {
		v = "~" + v
	}
	return v
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// severe reports whether a category means the garment is unlikely to work.
func severe(categoryName string) bool {
	switch categoryName {
	case "Restrictive / Non-Viable", "Below Range", "Outside Range":
		return true
	default:
		return false
	}
}

// stdoutIsTerminal decides whether console output gets colors.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
