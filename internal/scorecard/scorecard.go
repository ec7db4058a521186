// Package scorecard assembles per-dimension fit results for one garment size
// against one body.
//
// Evaluation order is fixed: chest, front length, shoulder, sleeve, waist,
// thigh, inseam normalization, inseam, rise, leg opening. Later rows may
// depend on earlier ones (sleeve reads the shoulder category). A dimension
// whose inputs are absent is reported as missing instead of scored.
package scorecard

import (
	"errors"
	"math"

	"github.com/dotcommander/fitcheck/internal/callout"
	"github.com/dotcommander/fitcheck/internal/category"
	"github.com/dotcommander/fitcheck/internal/formula"
	"github.com/dotcommander/fitcheck/internal/garment"
	"github.com/dotcommander/fitcheck/internal/normalize"
	"github.com/dotcommander/fitcheck/internal/types"
)

// ErrUnknownSize is returned by callers that check a size label before
// evaluating. Evaluate itself never fails.
var ErrUnknownSize = errors.New("size not published by garment")

// Measurement modes.
const (
	ModeAuto          = "auto"
	ModeFlat          = "flat"
	ModeCircumference = "circumference"
)

// Row display names.
const (
	NameChest       = "Chest"
	NameFrontLength = "Front Length"
	NameShoulder    = "Shoulder"
	NameSleeve      = "Sleeve Length"
	NameWaist       = "Waist"
	NameThigh       = "Thigh"
	NameInseam      = "Inseam"
	NameRise        = "Rise"
	NameLegOpening  = "Leg Opening"
)

// DimensionKey maps a row display name to its catalog dimension key.
var DimensionKey = map[string]string{
	NameChest:       category.Chest,
	NameFrontLength: category.FrontLength,
	NameShoulder:    category.Shoulder,
	NameSleeve:      category.Sleeve,
	NameWaist:       category.WaistFixed,
	NameThigh:       category.Thigh,
	NameInseam:      category.Inseam,
	NameRise:        category.Rise,
	NameLegOpening:  category.LegOpening,
}

var missingImpact = map[string]string{
	NameChest:       "Upper-body room and layering capacity cannot be determined.",
	NameFrontLength: "Hem placement relative to the waistband cannot be determined.",
	NameShoulder:    "Shoulder placement cannot be determined; sleeve length is read without shoulder adjustment.",
	NameSleeve:      "Cuff placement relative to the wrist cannot be determined.",
	NameWaist:       "Waistband comfort and security cannot be determined.",
	NameThigh:       "Upper-leg room and mobility cannot be determined.",
	NameInseam:      "Hem placement relative to the ankle cannot be determined.",
	NameRise:        "Seat and crotch room cannot be determined.",
	NameLegOpening:  "Leg silhouette (taper vs straight) cannot be determined.",
}

// OutseamApproximationNote is attached to an inseam row estimated from outseam.
const OutseamApproximationNote = "Inseam estimated from outseam minus front rise."

// Options configures an Evaluator.
type Options struct {
	// MeasurementMode forces flat or circumference interpretation of the
	// ease dimensions. Empty or ModeAuto detects per garment.
	MeasurementMode string
	// MaxGoroutines bounds EvaluateAll. Zero means GOMAXPROCS.
	MaxGoroutines int
}

// Evaluator scores garments. It holds no mutable state and is safe for
// concurrent use.
type Evaluator struct {
	opts Options
}

// New creates an Evaluator.
func New(opts Options) *Evaluator {
	if opts.MeasurementMode == "" {
		opts.MeasurementMode = ModeAuto
	}
	return &Evaluator{opts: opts}
}

// Evaluate scores one size with default options.
func Evaluate(g types.GarmentMeasurements, size string, u types.UserMeasurements) types.ScorecardResult {
	return New(Options{}).Evaluate(g, size, u)
}

// measurementTypes holds the flat/circumference decision per dimension for a
// whole garment.
type measurementTypes struct {
	chest, waist, waistRange, thigh normalize.MeasurementType
}

func (e *Evaluator) detect(g types.GarmentMeasurements) measurementTypes {
	switch e.opts.MeasurementMode {
	case ModeFlat:
		return measurementTypes{normalize.Flat, normalize.Flat, normalize.Flat, normalize.Flat}
	case ModeCircumference:
		c := normalize.Circumference
		return measurementTypes{c, c, c, c}
	}

	var chest, waist, waistRange, thigh []float64
	for _, s := range g.Sizes {
		chest = appendValue(chest, s.Chest)
		waist = appendValue(waist, s.Waist)
		waistRange = appendValue(appendValue(waistRange, s.WaistMin), s.WaistMax)
		thigh = appendValue(thigh, s.Thigh)
	}
	return measurementTypes{
		chest:      normalize.DetectFlatOrCircumference(chest, normalize.DimensionChest),
		waist:      normalize.DetectFlatOrCircumference(waist, normalize.DimensionWaist),
		waistRange: normalize.DetectFlatOrCircumference(waistRange, normalize.DimensionWaist),
		thigh:      normalize.DetectFlatOrCircumference(thigh, normalize.DimensionThigh),
	}
}

func appendValue(values []float64, v *float64) []float64 {
	if v == nil {
		return values
	}
	return append(values, *v)
}

// present returns the user value and whether it was provided.
func present(v float64) (float64, bool) {
	return v, v > 0
}

type builder struct {
	subType string
	result  types.ScorecardResult
}

func (b *builder) add(name string, value float64, delta *float64, fc types.FitCategory, callouts []string) *types.MeasurementResult {
	row := types.MeasurementResult{
		MeasurementName: name,
		GarmentValue:    value,
		Delta:           delta,
		FitCategory:     fc,
		Callouts:        callouts,
	}
	if desc, ok := garment.Description(DimensionKey[name], fc.Category, b.subType); ok {
		row.GarmentDescription = &desc
	}
	b.result.Measurements = append(b.result.Measurements, row)
	return &b.result.Measurements[len(b.result.Measurements)-1]
}

func (b *builder) missing(name string) {
	b.result.MissingMeasurements = append(b.result.MissingMeasurements, types.MissingMeasurement{
		Name:   name,
		Impact: missingImpact[name],
	})
}

// Evaluate scores one size of g against u. An unpublished size yields a
// result with every dimension reported missing.
func (e *Evaluator) Evaluate(g types.GarmentMeasurements, size string, u types.UserMeasurements) types.ScorecardResult {
	b := &builder{
		subType: g.SubType,
		result: types.ScorecardResult{
			Size:                size,
			GarmentType:         g.Type,
			GarmentSubType:      g.SubType,
			Measurements:        []types.MeasurementResult{},
			FabricInfo:          g.FabricInfo,
			BrandFitNotes:       g.BrandFitNotes,
			MissingMeasurements: []types.MissingMeasurement{},
		},
	}

	s := g.Sizes[size]
	mt := e.detect(g)

	switch g.Type {
	case types.GarmentTop:
		evaluateTop(b, s, u, mt)
	case types.GarmentBottom:
		evaluateBottom(b, s, u, mt)
	}
	return b.result
}

func evaluateTop(b *builder, s types.SizeMeasurements, u types.UserMeasurements, mt measurementTypes) {
	userChest, hasChest := present(u.Chest)
	if s.Chest != nil && hasChest {
		ease := formula.ChestEase(*s.Chest, userChest, mt.chest == normalize.Flat)
		b.add(NameChest, *s.Chest, &ease, category.ClassifyChest(ease), callout.Chest(b.subType))
	} else {
		b.missing(NameChest)
	}

	height, hasHeight := present(u.Height)
	inseam, hasInseam := present(u.Inseam)
	if s.FrontLength != nil && hasHeight && hasInseam {
		fl := formula.CalculateFrontLength(*s.FrontLength, height, inseam)
		delta := fl.NormalizedDiff
		b.add(NameFrontLength, *s.FrontLength, &delta, category.ClassifyFrontLength(delta), callout.FrontLength(b.subType))
	} else {
		b.missing(NameFrontLength)
	}

	userShoulder, hasShoulder := present(u.ShoulderWidth)
	var shoulderCategory string
	if s.Shoulder != nil && hasShoulder {
		diff := formula.ShoulderDiff(*s.Shoulder, userShoulder)
		fc := category.ClassifyShoulder(diff)
		shoulderCategory = fc.Category
		b.add(NameShoulder, *s.Shoulder, &diff, fc, callout.Shoulder(b.subType))
	} else {
		b.missing(NameShoulder)
	}

	userSleeve, hasSleeve := present(u.SleeveLength)
	switch {
	case s.SleeveLength == nil || !hasSleeve:
		b.missing(NameSleeve)
	case s.SleeveMeasurementType == types.SleeveCenterBackToCuff:
		cb := formula.SleeveFromCenterBack(*s.SleeveLength, userSleeve)
		delta := cb.PerceivedDiff
		b.add(NameSleeve, *s.SleeveLength, &delta, category.ClassifySleeve(delta), callout.Sleeve(b.subType, shoulderCategory))
	case !hasShoulder:
		// Shoulder-to-cuff needs the user's shoulder width to find the casual sleeve.
		b.missing(NameSleeve)
	default:
		var adjustment float64
		if s.Shoulder != nil {
			adjustment = formula.CalculateShoulderAdjustment(*s.Shoulder, userShoulder).Adjustment
		}
		ss := formula.SleeveFromShoulder(*s.SleeveLength, userSleeve, userShoulder, adjustment)
		delta := ss.PerceivedDiff
		b.add(NameSleeve, *s.SleeveLength, &delta, category.ClassifySleeve(delta), callout.Sleeve(b.subType, shoulderCategory))
	}
}

func evaluateBottom(b *builder, s types.SizeMeasurements, u types.UserMeasurements, mt measurementTypes) {
	userWaist, hasWaist := present(u.Waist)
	elastic := s.WaistType == types.WaistElastic && s.WaistMin != nil && s.WaistMax != nil
	switch {
	case !hasWaist:
		b.missing(NameWaist)
	case elastic:
		lo := normalize.ToCircumference(*s.WaistMin, mt.waistRange)
		hi := normalize.ToCircumference(*s.WaistMax, mt.waistRange)
		ew := formula.CalculateWaistElastic(userWaist, lo, hi)
		value := *s.WaistMin
		if s.Waist != nil {
			value = *s.Waist
		}
		row := b.add(NameWaist, value, nil, category.ClassifyWaistElastic(ew.Position, ew.BelowRange, ew.AboveRange), callout.Waist(b.subType))
		row.GarmentRange = &types.Range{Min: *s.WaistMin, Max: *s.WaistMax}
	case s.Waist != nil:
		diff := formula.WaistFixed(*s.Waist, userWaist, mt.waist == normalize.Flat)
		b.add(NameWaist, *s.Waist, &diff, category.ClassifyWaistFixed(diff), callout.Waist(b.subType))
	default:
		b.missing(NameWaist)
	}

	userThigh, hasThigh := present(u.Thigh)
	if s.Thigh != nil && hasThigh {
		ease := formula.ThighEase(*s.Thigh, userThigh, mt.thigh == normalize.Flat)
		b.add(NameThigh, *s.Thigh, &ease, category.ClassifyThigh(ease), callout.Thigh(b.subType))
	} else {
		b.missing(NameThigh)
	}

	userInseam, hasInseam := present(u.Inseam)
	resolved, ok := normalize.ResolveInseam(s.Inseam, s.Outseam, s.FrontRise)
	if ok && hasInseam {
		diff := formula.InseamDiff(resolved.Effective, userInseam)
		notes := callout.Inseam(b.subType, s.HemType == types.HemElastic)
		notes = append(notes, callout.OutseamConversion(resolved.Converted)...)
		notes = append(notes, callout.HipShelf(resolved.Adjusted)...)
		row := b.add(NameInseam, resolved.Published, &diff, category.ClassifyInseam(diff), notes)
		if resolved.Converted {
			row.IsApproximation = true
			row.ApproximationNote = OutseamApproximationNote
		}
	} else {
		b.missing(NameInseam)
	}

	if s.FrontRise != nil {
		b.add(NameRise, *s.FrontRise, nil, category.ClassifyRise(*s.FrontRise), callout.Rise(b.subType))
	} else {
		b.missing(NameRise)
	}

	// Both operands come from the same chart, so the ratio is taken on the
	// published values without flat detection.
	ratio := math.NaN()
	if s.LegOpening != nil && s.Thigh != nil {
		ratio = formula.LegOpeningRatio(*s.LegOpening, *s.Thigh)
	}
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		b.missing(NameLegOpening)
		return
	}
	b.add(NameLegOpening, *s.LegOpening, nil, category.ClassifyLegOpening(ratio), callout.LegOpening(b.subType))
}
