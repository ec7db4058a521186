package outputters

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotcommander/fitcheck/internal/config"
	"github.com/dotcommander/fitcheck/internal/output"
)

// =============================================================================
// Mock Formatter for testing
// =============================================================================

type mockFormatter struct {
	formatCalled  bool
	explainCalled bool
	formatError   error
	reports       []output.Report
}

func (m *mockFormatter) Format(reports []output.Report) error {
	m.formatCalled = true
	m.reports = reports
	return m.formatError
}

func (m *mockFormatter) FormatExplanations(items []output.Explained) error {
	m.explainCalled = true
	return m.formatError
}

// =============================================================================
// Mock FormatterFactory for testing
// =============================================================================

type mockFormatterFactory struct {
	createCalled    bool
	requestedFormat string
	writer          io.Writer
	formatter       output.Formatter
	createError     error
}

func (m *mockFormatterFactory) CreateFormatter(format string, w io.Writer) (output.Formatter, error) {
	m.createCalled = true
	m.requestedFormat = format
	m.writer = w
	if m.createError != nil {
		return nil, m.createError
	}
	return m.formatter, nil
}

func TestNewOutputter(t *testing.T) {
	cfg := &config.Config{Format: "console"}

	outputter := NewOutputter(cfg)
	if outputter == nil {
		t.Fatal("NewOutputter() returned nil")
	}
	if outputter.config != cfg {
		t.Errorf("NewOutputter() config = %v, want %v", outputter.config, cfg)
	}
	if _, ok := outputter.factory.(*DefaultFormatterFactory); !ok {
		t.Errorf("NewOutputter() factory type = %T, want *DefaultFormatterFactory", outputter.factory)
	}
	if outputter.stdout != os.Stdout {
		t.Error("NewOutputter() should default to os.Stdout")
	}
}

func TestOutputter_Format_Success(t *testing.T) {
	cfg := &config.Config{Format: "console"}
	mf := &mockFormatter{}
	factory := &mockFormatterFactory{formatter: mf}
	outputter := NewOutputterWithFactory(cfg, factory)
	var buf bytes.Buffer
	outputter.SetStdout(&buf)

	reports := []output.Report{{Source: "a.yaml"}}
	if err := outputter.Format(reports); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !factory.createCalled {
		t.Error("Format() did not call CreateFormatter")
	}
	if factory.requestedFormat != "console" {
		t.Errorf("Format() requested format = %s, want 'console'", factory.requestedFormat)
	}
	if factory.writer != &buf {
		t.Error("Format() should write to the configured stdout")
	}
	if !mf.formatCalled || len(mf.reports) != 1 {
		t.Errorf("Format() did not pass reports through: %+v", mf.reports)
	}
}

func TestOutputter_FormatExplanations(t *testing.T) {
	mf := &mockFormatter{}
	outputter := NewOutputterWithFactory(&config.Config{Format: "json"}, &mockFormatterFactory{formatter: mf})
	outputter.SetStdout(io.Discard)

	if err := outputter.FormatExplanations(nil); err != nil {
		t.Fatalf("FormatExplanations() error = %v", err)
	}
	if !mf.explainCalled {
		t.Error("FormatExplanations() did not reach the formatter")
	}
}

func TestOutputter_Format_CreateFormatterError(t *testing.T) {
	wantErr := errors.New("boom")
	outputter := NewOutputterWithFactory(&config.Config{Format: "xml"}, &mockFormatterFactory{createError: wantErr})

	if err := outputter.Format(nil); !errors.Is(err, wantErr) {
		t.Errorf("Format() error = %v, want %v", err, wantErr)
	}
}

func TestOutputter_Format_FormatterError(t *testing.T) {
	wantErr := errors.New("write failed")
	mf := &mockFormatter{formatError: wantErr}
	outputter := NewOutputterWithFactory(&config.Config{Format: "console"}, &mockFormatterFactory{formatter: mf})
	outputter.SetStdout(io.Discard)

	if err := outputter.Format(nil); !errors.Is(err, wantErr) {
		t.Errorf("Format() error = %v, want %v", err, wantErr)
	}
}

func TestOutputter_Format_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	cfg := &config.Config{Format: "markdown", Output: path}
	outputter := NewOutputter(cfg)
	var stdout bytes.Buffer
	outputter.SetStdout(&stdout)

	if err := outputter.Format([]output.Report{{Source: "jeans.yaml"}}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("Format() wrote %d bytes to stdout, want 0", stdout.Len())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(data), "## jeans.yaml") {
		t.Errorf("output file missing report:\n%s", data)
	}
}

func TestOutputter_Format_BadOutputPath(t *testing.T) {
	cfg := &config.Config{Format: "json", Output: filepath.Join(t.TempDir(), "missing", "out.json")}
	err := NewOutputter(cfg).Format(nil)
	if err == nil || !strings.Contains(err.Error(), "error writing to file") {
		t.Errorf("Format() error = %v, want file error", err)
	}
}

func TestDefaultFormatterFactory_CreateFormatter(t *testing.T) {
	factory := NewDefaultFormatterFactory(&config.Config{})

	tests := []struct {
		format   string
		wantType string
		wantErr  bool
	}{
		{"console", "*output.ConsoleFormatter", false},
		{"compact", "*output.CompactFormatter", false},
		{"json", "*output.JSONFormatter", false},
		{"markdown", "*output.MarkdownFormatter", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			formatter, err := factory.CreateFormatter(tt.format, io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CreateFormatter(%q) expected error", tt.format)
				}
				if !strings.Contains(err.Error(), "unsupported format") {
					t.Errorf("CreateFormatter(%q) error = %v", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateFormatter(%q) error = %v", tt.format, err)
			}
			if got := typeName(formatter); got != tt.wantType {
				t.Errorf("CreateFormatter(%q) type = %s, want %s", tt.format, got, tt.wantType)
			}
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *output.ConsoleFormatter:
		return "*output.ConsoleFormatter"
	case *output.CompactFormatter:
		return "*output.CompactFormatter"
	case *output.JSONFormatter:
		return "*output.JSONFormatter"
	case *output.MarkdownFormatter:
		return "*output.MarkdownFormatter"
	default:
		return "unknown"
	}
}
