package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CompactFormatter prints one line per size, summary first. It suits
// compare runs where a full table per size is too much.
type CompactFormatter struct {
	w        io.Writer
	quiet    bool
	colorize bool
}

// NewCompactFormatter creates a new CompactFormatter.
func NewCompactFormatter(w io.Writer, quiet bool) *CompactFormatter {
	return &CompactFormatter{
		w:        w,
		quiet:    quiet,
		colorize: stdoutIsTerminal(),
	}
}

// Format writes each size as "SIZE  Name: Category, Name: Category".
// Sizes with a non-viable dimension are marked.
func (f *CompactFormatter) Format(reports []Report) error {
	if f.quiet {
		return nil
	}

	green := lipgloss.NewStyle()
	red := lipgloss.NewStyle()
	dim := lipgloss.NewStyle()
	if f.colorize {
		green = green.Foreground(lipgloss.Color("10"))
		red = red.Foreground(lipgloss.Color("9"))
		dim = dim.Foreground(lipgloss.Color("8"))
	}

	var b strings.Builder
	for _, r := range reports {
		if r.Source != "" {
			fmt.Fprintf(&b, "%s\n", r.Source)
		}

		sizeWidth := 0
		for _, res := range r.Results {
			sizeWidth = max(sizeWidth, len(res.Size))
		}

		for _, res := range r.Results {
			icon := green.Render("✓")
			parts := make([]string, 0, len(res.Measurements))
			for _, m := range res.Measurements {
				if severe(m.FitCategory.Category) {
					icon = red.Render("✗")
				}
				parts = append(parts, m.MeasurementName+": "+m.FitCategory.Category)
			}
			line := fmt.Sprintf("%s %-*s  %s", icon, sizeWidth, res.Size, strings.Join(parts, ", "))
			if n := len(res.MissingMeasurements); n > 0 {
				line += dim.Render(fmt.Sprintf("  (%d missing)", n))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(f.w, b.String())
	return err
}

// FormatExplanations prints each dimension with its one-line meaning.
func (f *CompactFormatter) FormatExplanations(items []Explained) error {
	if f.quiet {
		return nil
	}
	width := 0
	for _, it := range items {
		width = max(width, len(it.Dimension))
	}
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%-*s  %s\n", width, it.Dimension, it.Explanation.WhatThisMeans)
	}
	_, err := io.WriteString(f.w, b.String())
	return err
}
