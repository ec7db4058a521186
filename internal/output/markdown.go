package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dotcommander/fitcheck/internal/types"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	w       io.Writer
	verbose bool
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(w io.Writer, verbose bool) *MarkdownFormatter {
	return &MarkdownFormatter{w: w, verbose: verbose}
}

// Format formats the reports as Markdown
func (f *MarkdownFormatter) Format(reports []Report) error {
	var b strings.Builder
	b.WriteString("# Fit Scorecard\n\n")

	if len(reports) == 0 {
		b.WriteString("*No garments evaluated.*\n")
	}

	for _, r := range reports {
		if r.Source != "" {
			fmt.Fprintf(&b, "## %s\n\n", r.Source)
		}
		if len(r.Results) == 0 {
			b.WriteString("*No sizes published.*\n\n")
			continue
		}
		for _, res := range r.Results {
			f.writeResult(&b, res)
		}
	}

	_, err := io.WriteString(f.w, b.String())
	return err
}

func (f *MarkdownFormatter) writeResult(b *strings.Builder, res types.ScorecardResult) {
	title := fmt.Sprintf("Size %s: %s", res.Size, res.GarmentType)
	if res.GarmentSubType != "" {
		title += " (" + res.GarmentSubType + ")"
	}
	fmt.Fprintf(b, "### %s\n\n", title)

	if len(res.Measurements) > 0 {
		b.WriteString("| Measurement | Garment | Delta | Fit | What it means |\n")
		b.WriteString("|-------------|---------|-------|-----|---------------|\n")
		for _, m := range res.Measurements {
			fmt.Fprintf(b, "| %s | %s | %s | **%s** | %s |\n",
				m.MeasurementName, formatValue(m), formatDelta(m.Delta),
				escapeCell(m.FitCategory.Category), escapeCell(m.Description()))
		}
		b.WriteString("\n")
	}

	var notes []string
	for _, m := range res.Measurements {
		for _, c := range m.Callouts {
			notes = append(notes, fmt.Sprintf("- **%s:** %s", m.MeasurementName, c))
		}
		if m.IsApproximation && m.ApproximationNote != "" {
			notes = append(notes, fmt.Sprintf("- **%s** *(approximate):* %s", m.MeasurementName, m.ApproximationNote))
		}
	}
	if len(notes) > 0 {
		b.WriteString("#### Notes\n\n")
		b.WriteString(strings.Join(notes, "\n"))
		b.WriteString("\n\n")
	}

	if len(res.MissingMeasurements) > 0 {
		b.WriteString("#### Missing Measurements\n\n")
		for _, mm := range res.MissingMeasurements {
			fmt.Fprintf(b, "- **%s:** %s\n", mm.Name, mm.Impact)
		}
		b.WriteString("\n")
	}

	if f.verbose {
		if res.FabricInfo != "" {
			fmt.Fprintf(b, "**Fabric:** %s\n\n", res.FabricInfo)
		}
		if res.BrandFitNotes != "" {
			fmt.Fprintf(b, "**Brand notes:** %s\n\n", res.BrandFitNotes)
		}
	}
}

// FormatExplanations formats explainer entries as Markdown sections.
func (f *MarkdownFormatter) FormatExplanations(items []Explained) error {
	var b strings.Builder
	b.WriteString("# Measurements\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "## %s\n\n", it.Dimension)
		fmt.Fprintf(&b, "%s\n\n", it.Explanation.WhatThisMeans)
		if len(it.Explanation.InWear) > 0 {
			b.WriteString("**How this shows up in wear**\n\n")
			for _, bullet := range it.Explanation.InWear {
				fmt.Fprintf(&b, "- %s\n", bullet)
			}
			b.WriteString("\n")
		}
		if it.Explanation.Context != "" {
			fmt.Fprintf(&b, "*%s*\n\n", it.Explanation.Context)
		}
	}
	_, err := io.WriteString(f.w, b.String())
	return err
}

// escapeCell keeps pipes from breaking a table row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
