// Package input reads garment and user measurement documents. Files may be
// YAML or JSON; both are decoded with the YAML decoder.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/fitcheck/internal/types"
)

// ErrUnknownFormat is returned for files whose extension is not YAML or JSON.
var ErrUnknownFormat = errors.New("unknown input format")

// Kind is what a document describes.
type Kind string

const (
	KindGarment Kind = "garment"
	KindUser    Kind = "user"
)

// Extensions accepted by Read.
var Extensions = []string{".yaml", ".yml", ".json"}

// Document is a decoded measurement file.
type Document struct {
	Path string
	Kind Kind
	// Data is the generic decoded form used for schema validation.
	Data map[string]any
	raw  []byte
}

// IsSupported reports whether path has an accepted extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Read loads and decodes the file at path.
func Read(path string) (*Document, error) {
	if !IsSupported(path) {
		return nil, fmt.Errorf("%s: %w (want one of %s)", path, ErrUnknownFormat, strings.Join(Extensions, ", "))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Decode parses a YAML or JSON document.
func Decode(raw []byte) (*Document, error) {
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("decoding document: empty document")
	}
	data = stringKeys(data).(map[string]any)
	return &Document{Kind: DetectKind(data), Data: data, raw: raw}, nil
}

// DetectKind treats any document with a sizes table as a garment.
func DetectKind(data map[string]any) Kind {
	if _, ok := data["sizes"]; ok {
		return KindGarment
	}
	if _, ok := data["type"]; ok {
		return KindGarment
	}
	return KindUser
}

// Garment decodes the document as a garment size chart.
func (d *Document) Garment() (types.GarmentMeasurements, error) {
	var g types.GarmentMeasurements
	if err := yaml.Unmarshal(d.raw, &g); err != nil {
		return g, fmt.Errorf("decoding garment: %w", err)
	}
	return g, nil
}

// User decodes the document as body measurements.
func (d *Document) User() (types.UserMeasurements, error) {
	var u types.UserMeasurements
	if err := yaml.Unmarshal(d.raw, &u); err != nil {
		return u, fmt.Errorf("decoding user measurements: %w", err)
	}
	return u, nil
}

// LoadGarment reads a garment file.
func LoadGarment(path string) (types.GarmentMeasurements, *Document, error) {
	doc, err := Read(path)
	if err != nil {
		return types.GarmentMeasurements{}, nil, err
	}
	g, err := doc.Garment()
	if err != nil {
		return g, nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, doc, nil
}

// LoadUser reads a user measurements file.
func LoadUser(path string) (types.UserMeasurements, *Document, error) {
	doc, err := Read(path)
	if err != nil {
		return types.UserMeasurements{}, nil, err
	}
	u, err := doc.User()
	if err != nil {
		return u, nil, fmt.Errorf("%s: %w", path, err)
	}
	return u, doc, nil
}

// stringKeys rewrites map[any]any, which YAML produces for numeric keys such
// as size "32", into map[string]any so the data can be encoded for CUE.
func stringKeys(v any) any {
	switch m := v.(type) {
	case map[string]any:
		for k, val := range m {
			m[k] = stringKeys(val)
		}
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case []any:
		for i, val := range m {
			m[i] = stringKeys(val)
		}
		return m
	default:
		return v
	}
}
