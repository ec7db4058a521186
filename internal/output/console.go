package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dotcommander/fitcheck/internal/types"
)

// ConsoleFormatter renders one table per scorecard for a terminal.
type ConsoleFormatter struct {
	w        io.Writer
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter. Colors are enabled
// only when stdout is a terminal.
func NewConsoleFormatter(w io.Writer, quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		w:        w,
		quiet:    quiet,
		verbose:  verbose,
		colorize: stdoutIsTerminal(),
	}
}

func (f *ConsoleFormatter) style(color string) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func (f *ConsoleFormatter) bold() lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true)
}

// Format writes every scorecard of every report.
func (f *ConsoleFormatter) Format(reports []Report) error {
	if f.quiet {
		return nil
	}

	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		if r.Source != "" {
			b.WriteString(f.bold().Render(r.Source))
			b.WriteString("\n")
		}
		if len(r.Results) == 0 {
			b.WriteString(f.style("8").Render("  no sizes published"))
			b.WriteString("\n")
			continue
		}
		for _, res := range r.Results {
			f.writeResult(&b, res)
		}
	}

	_, err := io.WriteString(f.w, b.String())
	return err
}

func (f *ConsoleFormatter) writeResult(b *strings.Builder, res types.ScorecardResult) {
	header := fmt.Sprintf("Size %s  %s", res.Size, res.GarmentType)
	if res.GarmentSubType != "" {
		header += " (" + res.GarmentSubType + ")"
	}
	b.WriteString("\n")
	b.WriteString(f.bold().Render(header))
	b.WriteString("\n")

	if len(res.Measurements) > 0 {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Measurement", "Garment", "Delta", "Fit", "What it means")
		for _, m := range res.Measurements {
			t.Row(m.MeasurementName, formatValue(m), formatDelta(m.Delta), m.FitCategory.Category, m.Description())
		}
		t.StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Inherit(f.bold())
			}
			if col == 3 && row >= 0 && row < len(res.Measurements) {
				if severe(res.Measurements[row].FitCategory.Category) {
					return s.Inherit(f.style("9"))
				}
				return s.Inherit(f.style("10"))
			}
			return s
		})
		b.WriteString(t.String())
		b.WriteString("\n")
	}

	dim := f.style("8")
	for _, m := range res.Measurements {
		for _, c := range m.Callouts {
			fmt.Fprintf(b, "  • %s: %s\n", m.MeasurementName, c)
		}
		if m.IsApproximation && m.ApproximationNote != "" {
			fmt.Fprintf(b, "  %s\n", dim.Render("~ "+m.MeasurementName+": "+m.ApproximationNote))
		}
		if f.verbose && m.GarmentDescription != nil {
			fmt.Fprintf(b, "  %s\n", dim.Render(m.MeasurementName+": "+m.FitCategory.UniversalMeaning))
		}
	}

	if len(res.MissingMeasurements) > 0 {
		warn := f.style("3")
		names := make([]string, 0, len(res.MissingMeasurements))
		for _, mm := range res.MissingMeasurements {
			names = append(names, mm.Name)
		}
		if f.verbose {
			for _, mm := range res.MissingMeasurements {
				fmt.Fprintf(b, "  %s %s\n", warn.Render("⚠ "+mm.Name+":"), mm.Impact)
			}
		} else {
			fmt.Fprintf(b, "  %s\n", warn.Render("⚠ Missing: "+strings.Join(names, ", ")))
		}
	}

	if f.verbose {
		if res.FabricInfo != "" {
			fmt.Fprintf(b, "  Fabric: %s\n", res.FabricInfo)
		}
		if res.BrandFitNotes != "" {
			fmt.Fprintf(b, "  Brand notes: %s\n", res.BrandFitNotes)
		}
	}
}

// FormatExplanations writes explainer entries.
func (f *ConsoleFormatter) FormatExplanations(items []Explained) error {
	if f.quiet {
		return nil
	}

	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.bold().Render(it.Dimension))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s\n", it.Explanation.WhatThisMeans)
		for _, bullet := range it.Explanation.InWear {
			fmt.Fprintf(&b, "  • %s\n", bullet)
		}
		if it.Explanation.Context != "" {
			fmt.Fprintf(&b, "  %s\n", f.style("8").Render(it.Explanation.Context))
		}
	}

	_, err := io.WriteString(f.w, b.String())
	return err
}
