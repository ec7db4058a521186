// Package outputters picks a formatter from configuration and routes its
// output to stdout or the configured file.
package outputters

import (
	"fmt"
	"io"
	"os"

	"github.com/dotcommander/fitcheck/internal/config"
	"github.com/dotcommander/fitcheck/internal/output"
)

// FormatterFactory creates formatters by name.
type FormatterFactory interface {
	CreateFormatter(format string, w io.Writer) (output.Formatter, error)
}

// DefaultFormatterFactory builds the formatters in package output.
type DefaultFormatterFactory struct {
	cfg *config.Config
}

// NewDefaultFormatterFactory creates a DefaultFormatterFactory.
func NewDefaultFormatterFactory(cfg *config.Config) *DefaultFormatterFactory {
	return &DefaultFormatterFactory{cfg: cfg}
}

// CreateFormatter returns the formatter for format writing to w.
func (f *DefaultFormatterFactory) CreateFormatter(format string, w io.Writer) (output.Formatter, error) {
	switch format {
	case "console":
		return output.NewConsoleFormatter(w, f.cfg.Quiet, f.cfg.Verbose), nil
	case "compact":
		return output.NewCompactFormatter(w, f.cfg.Quiet), nil
	case "json":
		return output.NewJSONFormatter(w, true), nil
	case "markdown":
		return output.NewMarkdownFormatter(w, f.cfg.Verbose), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter handles output formatting
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
	stdout  io.Writer
}

// NewOutputter creates a new Outputter
func NewOutputter(cfg *config.Config) *Outputter {
	return NewOutputterWithFactory(cfg, NewDefaultFormatterFactory(cfg))
}

// NewOutputterWithFactory creates an Outputter with a custom factory.
func NewOutputterWithFactory(cfg *config.Config, factory FormatterFactory) *Outputter {
	return &Outputter{
		config:  cfg,
		factory: factory,
		stdout:  os.Stdout,
	}
}

// SetStdout redirects output that is not sent to a file.
func (o *Outputter) SetStdout(w io.Writer) {
	o.stdout = w
}

// Format renders reports in the configured format.
func (o *Outputter) Format(reports []output.Report) error {
	return o.run(func(f output.Formatter) error { return f.Format(reports) })
}

// FormatExplanations renders explainer entries in the configured format.
func (o *Outputter) FormatExplanations(items []output.Explained) error {
	return o.run(func(f output.Formatter) error { return f.FormatExplanations(items) })
}

func (o *Outputter) run(render func(output.Formatter) error) (err error) {
	w := o.stdout
	if o.config.Output != "" {
		file, createErr := os.Create(o.config.Output)
		if createErr != nil {
			return fmt.Errorf("error writing to file %s: %w", o.config.Output, createErr)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("error closing file %s: %w", o.config.Output, closeErr)
			}
		}()
		w = file
	}

	formatter, err := o.factory.CreateFormatter(o.config.Format, w)
	if err != nil {
		return err
	}
	return render(formatter)
}
