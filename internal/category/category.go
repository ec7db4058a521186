// Package category maps derived fit values to named fit categories.
//
// Each dimension has an ordered catalog of categories. Classifiers walk the
// thresholds from the lowest range upward; ranges are contiguous and the first
// and last ones are open-ended, so every real input lands in exactly one
// category.
package category

import "github.com/dotcommander/fitcheck/internal/types"

// Dimension keys. These double as the lookup keys of the garment description
// and measurement explainer catalogs.
const (
	Chest        = "chest"
	FrontLength  = "frontLength"
	Sleeve       = "sleeve"
	Shoulder     = "shoulder"
	WaistFixed   = "waistFixed"
	WaistElastic = "waistElastic"
	Thigh        = "thigh"
	Inseam       = "inseam"
	Rise         = "rise"
	LegOpening   = "legOpening"
)

// Dimensions lists every dimension key in scorecard order.
var Dimensions = []string{
	Chest, FrontLength, Shoulder, Sleeve, WaistFixed, WaistElastic, Thigh, Inseam, Rise, LegOpening,
}

func fit(name, meaning string) types.FitCategory {
	return types.FitCategory{Category: name, UniversalMeaning: meaning}
}

// Chest categories.
var (
	ChestRestrictive = fit("Restrictive / Non-Viable",
		"Garment chest is smaller than body. Unlikely to fit comfortably at rest; may restrict movement.")
	ChestUltraClose = fit("Ultra Close Fit",
		"Fabric sits against chest and ribs with minimal air space; chest shape clearly visible. Raising arms overhead creates pulling across chest and shoulders.")
	ChestClose = fit("Close Fit",
		"Fabric drapes near chest and ribs with slight air space; contours visible but not outlined. Arm movement feels controlled; a thin base layer fits underneath.")
	ChestNeutral = fit("Neutral Fit",
		"Fabric hangs near chest without touching ribs when standing; chest shape softened rather than defined. Room for a standard base layer or light sweater.")
	ChestRelaxed = fit("Relaxed Fit",
		"Fabric hangs away from chest and ribs creating visible air space; garment billows slightly when moving. Room for a sweatshirt or moderate layering.")
	ChestOversized = fit("Oversized Fit",
		"Fabric hangs well away from chest and ribs; garment creates boxy shape extending beyond natural shoulder width. Room for heavy layering.")
	ChestExtremeOversized = fit("Extreme Oversized",
		"Fabric extends significantly beyond chest, ribs, and shoulders; garment width dominates upper body proportions. Substantial room for extensive layering.")
)

// ClassifyChest maps chest ease to a category.
func ClassifyChest(ease float64) types.FitCategory {
	switch {
	case ease < 0:
		return ChestRestrictive
	case ease < 2:
		return ChestUltraClose
	case ease < 4:
		return ChestClose
	case ease < 6:
		return ChestNeutral
	case ease < 8:
		return ChestRelaxed
	case ease <= 12:
		return ChestOversized
	default:
		return ChestExtremeOversized
	}
}

// Front length categories.
var (
	FrontLengthHighCropped = fit("High-Cropped",
		"Hem sits well above waistband. Lower stomach and belt area visible. Hem does not reach top of front pockets.")
	FrontLengthCropped = fit("Cropped",
		"Hem sits just above waistband. Belt line and upper pant fly visible. Hem does not cover top of front pockets.")
	FrontLengthAligned = fit("Aligned",
		"Hem meets waistband or upper hip. Belt mostly covered; top of front pockets may be visible. Stomach covered at rest.")
	FrontLengthExtended = fit("Extended",
		"Hem sits below waistband onto hip. Belt line and pocket openings covered. Hem reaches toward lower half of front pockets.")
	FrontLengthLongline = fit("Longline",
		"Hem falls below hip past bottom of front pockets, approaching upper thigh. Torso appears visually elongated.")
	FrontLengthExtraLong = fit("Extra-Long",
		"Hem extends clearly onto thigh, below pocket level. Garment length becomes dominant visual feature.")
)

// ClassifyFrontLength maps a normalized front-length difference to a category.
func ClassifyFrontLength(normalizedDiff float64) types.FitCategory {
	switch {
	case normalizedDiff < -0.14:
		return FrontLengthHighCropped
	case normalizedDiff < -0.08:
		return FrontLengthCropped
	case normalizedDiff <= 0.04:
		return FrontLengthAligned
	case normalizedDiff <= 0.12:
		return FrontLengthExtended
	case normalizedDiff < 0.22:
		return FrontLengthLongline
	default:
		return FrontLengthExtraLong
	}
}

// Sleeve categories.
var (
	SleeveNoticeablyShort = fit("Noticeably Short",
		"Cuff rests well above wrist bone; wrist and part of forearm exposed. Sleeve appears cropped relative to arm length.")
	SleeveSlightlyShort = fit("Slightly Short",
		"Cuff rests just above wrist bone; wrist visible, no forearm exposure. Sleeve reads slightly short.")
	SleeveAligned = fit("Aligned",
		"Cuff meets wrist bone directly; neither wrist nor hand visibly covered. Neutral sleeve position.")
	SleeveSlightlyLong = fit("Slightly Long",
		"Cuff rests past wrist bone onto top of hand. Hand coverage begins slightly.")
	SleeveLong = fit("Long",
		"Cuff covers base of thumb; noticeable hand coverage. Sleeve clearly extends below wrist.")
	SleeveVeryLong = fit("Very Long",
		"Cuff covers significant part of hand — reaching thumb joint or knuckles. Strongly extended appearance.")
)

// ClassifySleeve maps a perceived sleeve difference to a category.
func ClassifySleeve(perceivedDiff float64) types.FitCategory {
	switch {
	case perceivedDiff < -1.0:
		return SleeveNoticeablyShort
	case perceivedDiff < -0.5:
		return SleeveSlightlyShort
	case perceivedDiff <= 0.5:
		return SleeveAligned
	case perceivedDiff <= 1.25:
		return SleeveSlightlyLong
	case perceivedDiff <= 2.0:
		return SleeveLong
	default:
		return SleeveVeryLong
	}
}

// Shoulder categories.
var (
	ShoulderNarrow = fit("Narrow",
		"Sleeve starts closer to neck than shoulder edge, creating structured upper body and compact silhouette. Shoulder movement may feel slightly restricted.")
	ShoulderSlightlyNarrow = fit("Slightly Narrow",
		"Sleeve starts just inside shoulder edge, creating cleaner shaped upper body without feeling tight. Sleeves sit slightly higher; movement mostly natural.")
	ShoulderAligned = fit("Aligned",
		"Sleeve starts at or near natural shoulder edge. Balanced upper-body shape. Sleeves fall naturally; movement unrestricted.")
	ShoulderSlightlyDropped = fit("Slightly Dropped",
		"Sleeve starts slightly below shoulder edge, softening upper body without excessive size. Sleeves begin lower and may appear slightly longer.")
	ShoulderDropped = fit("Dropped",
		"Sleeve starts clearly below shoulder edge. Relaxed, looser upper-body shape. Sleeves appear longer; shoulder line softened.")
	ShoulderHeavilyDropped = fit("Heavily Dropped",
		"Sleeve starts well below shoulder edge. Pronounced oversized or boxy silhouette. Sleeves appear significantly longer; shoulder definition reduced.")
)

// ClassifyShoulder maps a shoulder difference to a category.
func ClassifyShoulder(diff float64) types.FitCategory {
	switch {
	case diff < -1.0:
		return ShoulderNarrow
	case diff < -0.5:
		return ShoulderSlightlyNarrow
	case diff <= 0.5:
		return ShoulderAligned
	case diff <= 1.25:
		return ShoulderSlightlyDropped
	case diff <= 2.0:
		return ShoulderDropped
	default:
		return ShoulderHeavilyDropped
	}
}

// Fixed waistband categories.
var (
	WaistRestrictive = fit("Restrictive / Non-Viable",
		"Waistband smaller than body; buttoning or zipping difficult or impossible. Seated comfort unlikely.")
	WaistSnug = fit("Snug Waist",
		"Waistband sits firmly against body; fastening feels secure but creates pressure when sitting or bending. Little to no room between waistband and body.")
	WaistAligned = fit("Aligned Waist",
		"Waistband matches body circumference with minimal air space; closure fastens comfortably without pulling or gaping. Stays in position without belt; breathing and sitting unrestricted.")
	WaistRelaxed = fit("Relaxed Waist",
		"Waistband sits loosely with noticeable air space; you can easily slide fingers between waistband and body. Belt likely needed to prevent sliding or rotating.")
	WaistOversized = fit("Oversized Waist",
		"Substantial air space; waistband slides downward or rotates during movement. Belt required.")
)

// ClassifyWaistFixed maps a fixed-waistband difference to a category.
func ClassifyWaistFixed(diff float64) types.FitCategory {
	switch {
	case diff < -1.0:
		return WaistRestrictive
	case diff < 0:
		return WaistSnug
	case diff <= 1.0:
		return WaistAligned
	case diff <= 2.5:
		return WaistRelaxed
	default:
		return WaistOversized
	}
}

// Elastic waistband categories.
var (
	ElasticBelowRange = fit("Below Range",
		"Waistband may not stretch enough to fit comfortably.")
	ElasticOutsideRange = fit("Outside Range",
		"Above garment's published waistband range; elastic or drawstrings may or may not accommodate.")
	ElasticVerySecure = fit("Very Secure",
		"Elastic sits firmly with minimal slack.")
	ElasticComfortable = fit("Comfortable",
		"Natural elastic comfort zone.")
	ElasticRelaxed = fit("Relaxed",
		"Relies more on drawstring or slouch.")
)

// ClassifyWaistElastic maps a position within an elastic range to a category.
// Out-of-range flags short-circuit; a nil position without flags is treated
// as below range.
func ClassifyWaistElastic(position *float64, belowRange, aboveRange bool) types.FitCategory {
	switch {
	case belowRange:
		return ElasticBelowRange
	case aboveRange:
		return ElasticOutsideRange
	case position == nil:
		return ElasticBelowRange
	case *position <= 0.25:
		return ElasticVerySecure
	case *position <= 0.6:
		return ElasticComfortable
	default:
		return ElasticRelaxed
	}
}

// Thigh categories.
var (
	ThighRestrictive = fit("Restrictive / Non-Viable",
		"Garment thigh smaller than body. Movement restricted; wear unlikely to feel workable.")
	ThighClose = fit("Close Thigh",
		"Fits close to leg with limited extra room. Movement feels firm and controlled.")
	ThighRegular = fit("Regular Thigh",
		"Balanced room allowing natural movement without excess fabric.")
	ThighOversized = fit("Oversized Thigh",
		"Substantial extra room. Relaxed or oversized leg shape.")
)

// ClassifyThigh maps thigh ease to a category.
func ClassifyThigh(ease float64) types.FitCategory {
	switch {
	case ease < 0:
		return ThighRestrictive
	case ease < 3:
		return ThighClose
	case ease <= 5:
		return ThighRegular
	default:
		return ThighOversized
	}
}

// Inseam categories.
var (
	InseamVeryShort = fit("Very Short / Cropped",
		"Hem sits well above ankle bone; lower leg and ankle fully visible. Cropped appearance is distinct and intentional.")
	InseamShort = fit("Short Length",
		"Hem sits above ankle bone; lower ankle and top of footwear visible. Minimal to no stacking.")
	InseamAligned = fit("Aligned Length",
		"Hem lands at or just below ankle bone; rests lightly on footwear with minimal stacking. Slight break may form depending on shoe height.")
	InseamLong = fit("Long Length",
		"Hem extends past ankle bone onto footwear; gentle stacking creates light break at vamp or laces. Hem partially covers shoe.")
	InseamExtended = fit("Extended Length",
		"Hem extends well past ankle bone; noticeable stacking creates full break. Multiple horizontal folds form above hem.")
	InseamVeryLong = fit("Very Long / Pooled",
		"Heavy stacking pools on footwear and floor. Multiple prominent folds; shoe largely obscured. Excess length is dominant visual feature.")
)

// ClassifyInseam maps an inseam difference to a category.
func ClassifyInseam(diff float64) types.FitCategory {
	switch {
	case diff < -1.0:
		return InseamVeryShort
	case diff < -0.5:
		return InseamShort
	case diff <= 0.5:
		return InseamAligned
	case diff <= 1.0:
		return InseamLong
	case diff <= 2.0:
		return InseamExtended
	default:
		return InseamVeryLong
	}
}

// Rise categories.
var (
	RiseShort = fit("Short Rise",
		"Less vertical distance between crotch seam and waistband; seat and top block fit closer to body. Sitting or bending may pull waistband downward more noticeably. Less flexibility in wearing position.")
	RiseModerate = fit("Moderate Rise",
		"Balanced room through seat and upper thighs. Comfortable during sitting and bending. Some flexibility to wear slightly higher or lower.")
	RiseExtended = fit("Extended Rise",
		"Substantial room through seat, hips, and upper thighs. Comfortable at typical hip height with flexibility to wear higher if desired. Note: wearing higher may change waist fit due to body circumference variation.")
	RiseVeryLong = fit("Very Long Rise",
		"Extensive room through seat, hips, and upper thighs. Significant flexibility in wearing position; can be worn higher on torso, though waist fit will feel different at varying heights.")
)

// ClassifyRise maps a garment front rise in inches to a category.
func ClassifyRise(frontRise float64) types.FitCategory {
	switch {
	case frontRise < 9.0:
		return RiseShort
	case frontRise < 10.0:
		return RiseModerate
	case frontRise <= 11.25:
		return RiseExtended
	default:
		return RiseVeryLong
	}
}

// Leg opening categories.
var (
	LegOpeningStrongTaper = fit("Strong Taper",
		"Leg narrows sharply from thigh to hem. Skinny/aggressive taper.")
	LegOpeningTapered = fit("Tapered",
		"Gradual narrowing toward hem. Slim/modern taper.")
	LegOpeningStraight = fit("Straight",
		"Consistent width below thigh. Neutral, straight silhouette.")
	LegOpeningWide = fit("Open / Wide",
		"Hem opens noticeably. Relaxed, wide, or flared lower leg.")
)

// ClassifyLegOpening maps a leg-opening-to-thigh ratio to a category.
// NaN falls through every comparison and lands on Open / Wide; callers
// should treat a NaN ratio as indeterminate before classifying.
func ClassifyLegOpening(ratio float64) types.FitCategory {
	switch {
	case ratio < 0.5:
		return LegOpeningStrongTaper
	case ratio <= 0.65:
		return LegOpeningTapered
	case ratio <= 0.8:
		return LegOpeningStraight
	default:
		return LegOpeningWide
	}
}

var catalogs = map[string][]types.FitCategory{
	Chest: {ChestRestrictive, ChestUltraClose, ChestClose, ChestNeutral, ChestRelaxed, ChestOversized, ChestExtremeOversized},
	FrontLength: {FrontLengthHighCropped, FrontLengthCropped, FrontLengthAligned, FrontLengthExtended,
		FrontLengthLongline, FrontLengthExtraLong},
	Sleeve:       {SleeveNoticeablyShort, SleeveSlightlyShort, SleeveAligned, SleeveSlightlyLong, SleeveLong, SleeveVeryLong},
	Shoulder:     {ShoulderNarrow, ShoulderSlightlyNarrow, ShoulderAligned, ShoulderSlightlyDropped, ShoulderDropped, ShoulderHeavilyDropped},
	WaistFixed:   {WaistRestrictive, WaistSnug, WaistAligned, WaistRelaxed, WaistOversized},
	WaistElastic: {ElasticBelowRange, ElasticVerySecure, ElasticComfortable, ElasticRelaxed, ElasticOutsideRange},
	Thigh:        {ThighRestrictive, ThighClose, ThighRegular, ThighOversized},
	Inseam:       {InseamVeryShort, InseamShort, InseamAligned, InseamLong, InseamExtended, InseamVeryLong},
	Rise:         {RiseShort, RiseModerate, RiseExtended, RiseVeryLong},
	LegOpening:   {LegOpeningStrongTaper, LegOpeningTapered, LegOpeningStraight, LegOpeningWide},
}

// Catalog returns the categories of a dimension from lowest to highest.
// The returned slice is a copy.
func Catalog(dimension string) []types.FitCategory {
	c, ok := catalogs[dimension]
	if !ok {
		return nil
	}
	out := make([]types.FitCategory, len(c))
	copy(out, c)
	return out
}
