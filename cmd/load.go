package cmd

import (
	"fmt"
	"strings"

	"github.com/dotcommander/fitcheck/internal/cue"
	"github.com/dotcommander/fitcheck/internal/discovery"
	"github.com/dotcommander/fitcheck/internal/input"
	"github.com/dotcommander/fitcheck/internal/types"
)

func newValidator() (*cue.Validator, error) {
	v := cue.NewValidator()
	if err := v.LoadSchemas(); err != nil {
		return nil, fmt.Errorf("error loading schemas: %w", err)
	}
	return v, nil
}

// readChecked reads a measurement file and validates it against the schema
// for kind.
func readChecked(v *cue.Validator, path string, kind input.Kind) (*input.Document, error) {
	mf, err := discovery.CheckMeasurementFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := input.Read(mf.Path)
	if err != nil {
		return nil, err
	}
	verrs, err := v.Validate(string(kind), doc.Data)
	if err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			ve.File = path
			msgs[i] = ve.String()
		}
		return nil, fmt.Errorf("invalid %s file: %s", kind, strings.Join(msgs, "; "))
	}
	return doc, nil
}

func loadUser(v *cue.Validator, path string) (types.UserMeasurements, error) {
	doc, err := readChecked(v, path, input.KindUser)
	if err != nil {
		return types.UserMeasurements{}, err
	}
	return doc.User()
}

func loadGarment(v *cue.Validator, path string) (types.GarmentMeasurements, error) {
	doc, err := readChecked(v, path, input.KindGarment)
	if err != nil {
		return types.GarmentMeasurements{}, err
	}
	return doc.Garment()
}
