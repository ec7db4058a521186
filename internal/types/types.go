// Package types provides the measurement and scorecard types shared across fitcheck.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Garment type constants.
const (
	GarmentTop    = "top"
	GarmentBottom = "bottom"
)

// Sleeve measurement conventions published by brands.
const (
	SleeveShoulderToCuff   = "shoulder-to-cuff"
	SleeveCenterBackToCuff = "center-back-to-cuff"
)

// Waistband constructions.
const (
	WaistFixed   = "fixed"
	WaistElastic = "elastic"
)

// Hem constructions.
const (
	HemElastic = "elastic"
	HemOpen    = "open"
)

// UserMeasurements are body measurements in inches.
// A value <= 0 is treated as not provided.
type UserMeasurements struct {
	Height        float64 `json:"height" yaml:"height"`
	Inseam        float64 `json:"inseam" yaml:"inseam"`
	Chest         float64 `json:"chest" yaml:"chest"`
	Waist         float64 `json:"waist" yaml:"waist"`
	Thigh         float64 `json:"thigh" yaml:"thigh"`
	ShoulderWidth float64 `json:"shoulderWidth" yaml:"shoulderWidth"`
	SleeveLength  float64 `json:"sleeveLength" yaml:"sleeveLength"`
}

// SizeMeasurements is one row of a size chart. Top garments use the chest,
// shoulder, sleeve and front length fields; bottoms use the rest. A nil
// pointer means the brand did not publish that measurement.
type SizeMeasurements struct {
	// Tops
	Chest                 *float64 `json:"chest,omitempty" yaml:"chest,omitempty"`
	Shoulder              *float64 `json:"shoulder,omitempty" yaml:"shoulder,omitempty"`
	SleeveLength          *float64 `json:"sleeveLength,omitempty" yaml:"sleeveLength,omitempty"`
	SleeveMeasurementType string   `json:"sleeveMeasurementType,omitempty" yaml:"sleeveMeasurementType,omitempty"`
	FrontLength           *float64 `json:"frontLength,omitempty" yaml:"frontLength,omitempty"`

	// Bottoms
	Waist      *float64 `json:"waist,omitempty" yaml:"waist,omitempty"`
	FrontRise  *float64 `json:"frontRise,omitempty" yaml:"frontRise,omitempty"`
	Thigh      *float64 `json:"thigh,omitempty" yaml:"thigh,omitempty"`
	Inseam     *float64 `json:"inseam,omitempty" yaml:"inseam,omitempty"`
	Outseam    *float64 `json:"outseam,omitempty" yaml:"outseam,omitempty"`
	LegOpening *float64 `json:"legOpening,omitempty" yaml:"legOpening,omitempty"`
	WaistType  string   `json:"waistType,omitempty" yaml:"waistType,omitempty"`
	WaistMin   *float64 `json:"waistMin,omitempty" yaml:"waistMin,omitempty"`
	WaistMax   *float64 `json:"waistMax,omitempty" yaml:"waistMax,omitempty"`
	HemType    string   `json:"hemType,omitempty" yaml:"hemType,omitempty"`
}

// GarmentMeasurements is a garment's published size chart.
type GarmentMeasurements struct {
	Type          string                      `json:"type" yaml:"type"`
	SubType       string                      `json:"subType" yaml:"subType"`
	Sizes         map[string]SizeMeasurements `json:"sizes" yaml:"sizes"`
	FabricInfo    string                      `json:"fabricInfo,omitempty" yaml:"fabricInfo,omitempty"`
	BrandFitNotes string                      `json:"brandFitNotes,omitempty" yaml:"brandFitNotes,omitempty"`
}

// FitCategory is a named fit outcome with its garment-agnostic meaning.
// Values come from the fixed catalogs in the category package.
type FitCategory struct {
	Category         string `json:"category"`
	UniversalMeaning string `json:"universalMeaning"`
}

// Range is a published min/max span, used for elastic waistbands.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MeasurementResult is one scored row of a scorecard.
type MeasurementResult struct {
	MeasurementName    string      `json:"measurementName"`
	GarmentValue       float64     `json:"garmentValue"`
	GarmentRange       *Range      `json:"garmentRange,omitempty"`
	Delta              *float64    `json:"delta"`
	FitCategory        FitCategory `json:"fitCategory"`
	GarmentDescription *string     `json:"garmentDescription"`
	Callouts           []string    `json:"callouts"`
	IsApproximation    bool        `json:"isApproximation"`
	ApproximationNote  string      `json:"approximationNote,omitempty"`
}

// Description returns the garment-specific description when one exists,
// otherwise the universal meaning.
func (m MeasurementResult) Description() string {
	if m.GarmentDescription != nil {
		return *m.GarmentDescription
	}
	return m.FitCategory.UniversalMeaning
}

// MissingMeasurement explains a dimension that could not be scored.
type MissingMeasurement struct {
	Name   string `json:"name"`
	Impact string `json:"impact"`
}

// ScorecardResult is the full evaluation of one size against one body.
type ScorecardResult struct {
	Size                string               `json:"size"`
	GarmentType         string               `json:"garmentType"`
	GarmentSubType      string               `json:"garmentSubType"`
	Measurements        []MeasurementResult  `json:"measurements"`
	FabricInfo          string               `json:"fabricInfo,omitempty"`
	BrandFitNotes       string               `json:"brandFitNotes,omitempty"`
	MissingMeasurements []MissingMeasurement `json:"missingMeasurements"`
}

// Float returns a pointer to v. Handy for building size charts in code.
func Float(v float64) *float64 {
	return &v
}
