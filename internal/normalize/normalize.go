// Package normalize resolves ambiguous size-chart representations into the
// canonical inches-of-circumference form the formulas expect.
package normalize

// MeasurementType is how a garment dimension was measured.
type MeasurementType string

const (
	Flat          MeasurementType = "flat"
	Circumference MeasurementType = "circumference"
)

// Dimension identifies which threshold pair flat detection should use.
type Dimension string

const (
	DimensionWaist      Dimension = "waist"
	DimensionThigh      Dimension = "thigh"
	DimensionLegOpening Dimension = "legOpening"
	DimensionChest      Dimension = "chest"
)

// Thresholds bound the flat and circumference bands for one dimension.
// Means at or below FlatMax are flat; at or above CircMin are circumference.
type Thresholds struct {
	FlatMax float64
	CircMin float64
}

// flatThresholds is in inches.
var flatThresholds = map[Dimension]Thresholds{
	DimensionWaist:      {FlatMax: 22, CircMin: 28},
	DimensionThigh:      {FlatMax: 14, CircMin: 20},
	DimensionLegOpening: {FlatMax: 10, CircMin: 12},
	DimensionChest:      {FlatMax: 26, CircMin: 36},
}

// ThresholdsFor returns the detection thresholds for a dimension.
func ThresholdsFor(dim Dimension) (Thresholds, bool) {
	t, ok := flatThresholds[dim]
	return t, ok
}

// Hip-shelf adjustment constants.
const (
	BaselineRise         = 11.0
	RiseAdjustmentFactor = 0.7
	// OutseamAllowance covers waistband and seam allowance lost between
	// outseam and inseam.
	OutseamAllowance = 2.0
)

// DetectFlatOrCircumference classifies candidate values by their mean.
// In the band between FlatMax and CircMin the closer threshold wins and ties
// go to Flat. An empty slice or an unknown dimension is Flat.
func DetectFlatOrCircumference(values []float64, dim Dimension) MeasurementType {
	if len(values) == 0 {
		return Flat
	}
	t, ok := flatThresholds[dim]
	if !ok {
		return Flat
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	switch {
	case mean <= t.FlatMax:
		return Flat
	case mean >= t.CircMin:
		return Circumference
	}

	// Inside the band, mean > FlatMax and mean < CircMin, so both distances are positive.
	if mean-t.FlatMax <= t.CircMin-mean {
		return Flat
	}
	return Circumference
}

// ToCircumference doubles a flat value and returns circumference values unchanged.
func ToCircumference(v float64, mt MeasurementType) float64 {
	if mt == Flat {
		return v * 2
	}
	return v
}

// ConvertOutseamToInseam estimates an inseam from outseam and front rise.
func ConvertOutseamToInseam(outseam, frontRise float64) float64 {
	return outseam - frontRise - OutseamAllowance
}

// ApplyHipShelfRiseAdjustment lengthens the inseam for rises deeper than the
// baseline. The boolean reports whether an adjustment was made.
func ApplyHipShelfRiseAdjustment(inseam, frontRise float64) (float64, bool) {
	if frontRise > BaselineRise {
		return inseam + (frontRise-BaselineRise)*RiseAdjustmentFactor, true
	}
	return inseam, false
}

// Inseam is the canonical garment inseam after conversion and adjustment.
type Inseam struct {
	// Published is the brand's inseam, or the outseam estimate when converted.
	Published float64
	// Effective is Published plus any hip-shelf adjustment.
	Effective float64
	Converted bool
	Adjusted  bool
}

// ResolveInseam picks the garment inseam from the available fields. A
// published inseam wins; otherwise outseam and front rise are converted.
// The hip-shelf adjustment is applied whenever a front rise is known. The
// second return is false when no inseam can be determined.
func ResolveInseam(inseam, outseam, frontRise *float64) (Inseam, bool) {
	var res Inseam
	switch {
	case inseam != nil:
		res.Published = *inseam
	case outseam != nil && frontRise != nil:
		res.Published = ConvertOutseamToInseam(*outseam, *frontRise)
		res.Converted = true
	default:
		return Inseam{}, false
	}

	res.Effective = res.Published
	if frontRise != nil {
		res.Effective, res.Adjusted = ApplyHipShelfRiseAdjustment(res.Published, *frontRise)
	}
	return res, true
}
