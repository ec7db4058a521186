// Package callout returns garment-construction advisories for scorecard rows.
//
// Matching is a case-insensitive substring test against the brand's free-text
// subtype. Rules are not exclusive: every matching note is returned, in rule
// order.
package callout

import "strings"

// Rule attaches a note to any subtype containing one of its keywords.
type Rule struct {
	Keywords []string
	Note     string
}

// Fixed notes that do not depend on the subtype.
const (
	InseamRiseInteraction = "Longer rise places crotch seam lower, making same inseam feel longer. Shorter rise makes it feel shorter. Interpret together."
	RiseGeometry          = "Rise does not dictate wearing position. Describes garment geometry, not user behavior."
	InseamElasticHem      = "Hem anchors at ankle regardless of inseam. Excess or missing length absorbed above ankle rather than changing visual endpoint."
	SleeveHeavilyDropped  = "Sleeve may still reach wrist even if measured length appears shorter."
	HipShelfAdjusted      = "This inseam accounts for a longer rise placing the crotch seam lower on the body. The hem will land lower than the raw inseam suggests. This assumes the pant is worn at the hip shelf."
	OutseamConverted      = "Inseam was estimated from outseam. This is an approximation and may differ slightly from a directly measured inseam."
)

var chestRules = []Rule{
	{[]string{"hoodie", "sweatshirt"}, "Heavier knit fabrics amplify chest volume perception. Lower ease limits layering."},
	{[]string{"jacket", "coat"}, "Chest ease affects silhouette and layering more than drape due to structure and lining."},
}

var frontLengthRules = []Rule{
	{[]string{"hoodie", "sweater", "sweatshirt"}, "Ribbed/elastic hems (hoodies, sweaters): May bunch rather than hang straight at longer lengths."},
	{[]string{"tee", "t-shirt", "button-up", "button up"}, "Curved/split hems (tees, button-ups): Center front may sit higher than sides."},
}

var sleeveRules = []Rule{
	{[]string{"button-up", "button up"}, "Fixed cuffs create stable landing point. Extra length folds/stacks at cuff."},
	{[]string{"sweater", "knit"}, "Longer sleeves drape softly. Ribbed cuffs allow gradual extension."},
	{[]string{"hoodie"}, "Ribbed cuffs grip wrist, prevent hand coverage. Extra length pools above cuff."},
	{[]string{"light jacket", "lightweight jacket", "unstructured"}, "Sleeve moves more freely over wrist/hand."},
	{[]string{"coat"}, "Wider cuffs allow sleeve to drop over hand."},
}

var shoulderRules = []Rule{
	{[]string{"hoodie", "sweatshirt"}, "Dropped shoulders are common and increase visual sleeve length. Narrow shoulders may be less noticeable due to relaxed knit structure."},
}

var thighRules = []Rule{
	{[]string{"trouser"}, "Thigh fit is more precise and less forgiving. Small differences more noticeable."},
}

var elasticHemKeywords = []string{"sweatpant", "jogger", "cargo"}

var riseRules = []Rule{
	{[]string{"trouser"}, "Rise has greater impact on seat comfort and drape. Small differences more noticeable."},
}

var legOpeningRules = []Rule{
	{[]string{"sweatpant", "jogger"}, "Elastic or cinched hems visually constrain leg opening at ankle regardless of measured opening."},
}

// Matches reports whether the lower-cased subtype contains any keyword.
func Matches(subType string, keywords ...string) bool {
	lower := strings.ToLower(subType)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Apply returns the notes of every rule that matches subType.
func Apply(subType string, rules []Rule) []string {
	notes := []string{}
	for _, r := range rules {
		if Matches(subType, r.Keywords...) {
			notes = append(notes, r.Note)
		}
	}
	return notes
}

// Chest returns chest callouts.
func Chest(subType string) []string {
	return Apply(subType, chestRules)
}

// FrontLength returns front-length callouts.
func FrontLength(subType string) []string {
	return Apply(subType, frontLengthRules)
}

// Sleeve returns sleeve callouts. shoulderCategory is the category name of
// the shoulder row, or empty when shoulder was not scored.
func Sleeve(subType, shoulderCategory string) []string {
	notes := Apply(subType, sleeveRules)
	if shoulderCategory == "Heavily Dropped" {
		notes = append(notes, SleeveHeavilyDropped)
	}
	return notes
}

// Shoulder returns shoulder callouts.
func Shoulder(subType string) []string {
	return Apply(subType, shoulderRules)
}

// Waist has no garment callouts; it exists so every dimension has a resolver.
func Waist(string) []string {
	return []string{}
}

// Thigh returns thigh callouts.
func Thigh(subType string) []string {
	return Apply(subType, thighRules)
}

// Inseam returns inseam callouts. The rise interaction note is always last.
func Inseam(subType string, hasElasticHem bool) []string {
	notes := []string{}
	if hasElasticHem || Matches(subType, elasticHemKeywords...) {
		notes = append(notes, InseamElasticHem)
	}
	return append(notes, InseamRiseInteraction)
}

// Rise returns rise callouts. The geometry disclaimer is always last.
func Rise(subType string) []string {
	return append(Apply(subType, riseRules), RiseGeometry)
}

// LegOpening returns leg-opening callouts.
func LegOpening(subType string) []string {
	return Apply(subType, legOpeningRules)
}

// HipShelf returns the disclosure for a hip-shelf adjusted inseam.
func HipShelf(adjusted bool) []string {
	if adjusted {
		return []string{HipShelfAdjusted}
	}
	return []string{}
}

// OutseamConversion returns the disclosure for an inseam estimated from outseam.
func OutseamConversion(converted bool) []string {
	if converted {
		return []string{OutseamConverted}
	}
	return []string{}
}
