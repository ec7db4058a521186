package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dotcommander/fitcheck/internal/garment"
	"github.com/dotcommander/fitcheck/internal/types"
)

// Version is reported in the JSON header. The CLI sets it at startup.
var Version = "dev"

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	w      io.Writer
	indent bool
	now    func() time.Time
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		w:      w,
		indent: indent,
		now:    time.Now,
	}
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header   JSONHeader    `json:"header"`
	Garments []JSONGarment `json:"garments"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONGarment holds the scorecards of one garment.
type JSONGarment struct {
	Source     string                  `json:"source,omitempty"`
	Scorecards []types.ScorecardResult `json:"scorecards"`
}

// JSONExplanation is one explainer entry.
type JSONExplanation struct {
	Dimension string `json:"dimension"`
	garment.Explanation
}

// Format formats the reports as JSON
func (f *JSONFormatter) Format(reports []Report) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      "fitcheck",
			Version:   Version,
			Timestamp: f.now().Format(time.RFC3339),
		},
		Garments: make([]JSONGarment, len(reports)),
	}
	for i, r := range reports {
		results := r.Results
		if results == nil {
			results = []types.ScorecardResult{}
		}
		report.Garments[i] = JSONGarment{Source: r.Source, Scorecards: results}
	}
	return f.write(report)
}

// FormatExplanations formats explainer entries as a JSON array.
func (f *JSONFormatter) FormatExplanations(items []Explained) error {
	out := make([]JSONExplanation, len(items))
	for i, it := range items {
		out[i] = JSONExplanation{Dimension: it.Dimension, Explanation: it.Explanation}
	}
	return f.write(out)
}

func (f *JSONFormatter) write(v any) error {
	var (
		data []byte
		err  error
	)
	if f.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	if _, err := f.w.Write(data); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}
