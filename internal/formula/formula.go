// Package formula derives the per-dimension quantities that the category
// classifiers consume. All inputs are inches; every function is pure.
package formula

import "math"

// ChestEase is garment chest circumference minus body chest.
func ChestEase(garmentChest, userChest float64, isFlat bool) float64 {
	total := garmentChest
	if isFlat {
		total = garmentChest * 2
	}
	return total - userChest
}

// FrontLength holds the front-length derivation.
type FrontLength struct {
	IdealFrontLength float64
	RawDiff          float64
	// NormalizedDiff is RawDiff as a fraction of the ideal length, which
	// removes the dependence on the wearer's height.
	NormalizedDiff float64
}

// CalculateFrontLength compares a garment's front length with an ideal derived
// from the wearer's torso (height minus inseam).
func CalculateFrontLength(garmentFrontLength, userHeight, userInseam float64) FrontLength {
	ideal := (userHeight-userInseam)*0.65 - 2.0
	raw := garmentFrontLength - ideal
	var normalized float64
	if ideal != 0 {
		normalized = raw / ideal
	}
	return FrontLength{IdealFrontLength: ideal, RawDiff: raw, NormalizedDiff: normalized}
}

// ShoulderAdjustment is the shoulder helper feeding the sleeve formula.
type ShoulderAdjustment struct {
	ShoulderDiff float64
	Adjustment   float64
}

// CalculateShoulderAdjustment converts a shoulder difference into extra
// perceived sleeve length. Beyond 2" of drop the adjustment is linear.
func CalculateShoulderAdjustment(garmentShoulder, userShoulderWidth float64) ShoulderAdjustment {
	diff := garmentShoulder - userShoulderWidth

	var adj float64
	switch {
	case diff < -1.0:
		adj = -0.5
	case diff < -0.5:
		adj = -0.25
	case diff <= 0.5:
		adj = 0
	case diff <= 1.25:
		adj = 0.25
	case diff <= 2.0:
		adj = 0.5
	default:
		adj = diff * 0.6
	}
	return ShoulderAdjustment{ShoulderDiff: diff, Adjustment: adj}
}

// ShoulderSleeve is the shoulder-to-cuff sleeve derivation.
type ShoulderSleeve struct {
	CasualSleeveEquivalent float64
	RawDiff                float64
	PerceivedDiff          float64
}

// SleeveFromShoulder scores a sleeve measured from the shoulder seam. The
// body sleeve is a center-back measurement, so half the shoulder width plus
// an inch of casual drape is removed before comparing.
func SleeveFromShoulder(garmentSleeve, userSleeveLength, userShoulderWidth, shoulderAdjustment float64) ShoulderSleeve {
	casual := userSleeveLength - userShoulderWidth*0.5 - 1.0
	raw := garmentSleeve - casual
	return ShoulderSleeve{
		CasualSleeveEquivalent: casual,
		RawDiff:                raw,
		PerceivedDiff:          raw + shoulderAdjustment,
	}
}

// CenterBackSleeve is the center-back-to-cuff sleeve derivation.
type CenterBackSleeve struct {
	EffectiveGarmentCB float64
	PerceivedDiff      float64
}

// SleeveFromCenterBack scores a sleeve measured from the center back of the neck.
func SleeveFromCenterBack(garmentCBSleeve, userSleeveLength float64) CenterBackSleeve {
	effective := garmentCBSleeve - 0.75
	return CenterBackSleeve{
		EffectiveGarmentCB: effective,
		PerceivedDiff:      effective - userSleeveLength,
	}
}

// ShoulderDiff is garment shoulder width minus body shoulder width.
func ShoulderDiff(garmentShoulder, userShoulderWidth float64) float64 {
	return garmentShoulder - userShoulderWidth
}

// WaistFixed is waistband circumference minus body waist.
func WaistFixed(garmentWaist, userWaist float64, isFlat bool) float64 {
	effective := garmentWaist
	if isFlat {
		effective = garmentWaist * 2
	}
	return effective - userWaist
}

// ElasticWaist places a body waist inside a published elastic range.
// Position is nil when the waist falls outside the range.
type ElasticWaist struct {
	Position   *float64
	BelowRange bool
	AboveRange bool
}

// CalculateWaistElastic locates userWaist within [rangeMin, rangeMax] as a
// fraction from 0 to 1. A zero-width range places the waist at 0.
func CalculateWaistElastic(userWaist, rangeMin, rangeMax float64) ElasticWaist {
	if userWaist < rangeMin {
		return ElasticWaist{BelowRange: true}
	}
	if userWaist > rangeMax {
		return ElasticWaist{AboveRange: true}
	}
	span := rangeMax - rangeMin
	var position float64
	if span != 0 {
		position = (userWaist - rangeMin) / span
	}
	return ElasticWaist{Position: &position}
}

// ThighEase is garment thigh circumference minus body thigh.
func ThighEase(garmentThigh, userThigh float64, isFlat bool) float64 {
	circ := garmentThigh
	if isFlat {
		circ = garmentThigh * 2
	}
	return circ - userThigh
}

// InseamDiff is the normalized garment inseam minus body inseam.
func InseamDiff(garmentInseam, userInseam float64) float64 {
	return garmentInseam - userInseam
}

// LegOpeningRatio is hem width over thigh width. It describes shape, not
// ease, and is NaN when the thigh is zero.
func LegOpeningRatio(garmentLegOpening, garmentThigh float64) float64 {
	if garmentThigh == 0 {
		return math.NaN()
	}
	return garmentLegOpening / garmentThigh
}
