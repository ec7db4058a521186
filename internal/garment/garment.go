// Package garment maps free-text garment subtypes onto a fixed set of garment
// types and looks up per-type wording for each fit category.
package garment

import "strings"

// Type is a normalized garment family.
type Type string

const (
	TShirt           Type = "t-shirt"
	Polo             Type = "polo"
	ButtonUp         Type = "button-up"
	SweatshirtHoodie Type = "sweatshirt-hoodie"
	Sweater          Type = "sweater"
	LightJacket      Type = "light-jacket"
	HeavyJacket      Type = "heavy-jacket"
	Jeans            Type = "jeans"
	Chinos           Type = "chinos"
	Trousers         Type = "trousers"
	Sweatpants       Type = "sweatpants"
	Joggers          Type = "joggers"
	Shorts           Type = "shorts"
	Cargos           Type = "cargos"
)

// notApplicable marks a combination that has no meaningful description.
const notApplicable = "N/A"

type typeRule struct {
	keywords []string
	tag      Type
}

// Evaluated in order; the first rule with a matching keyword wins.
var typeRules = []typeRule{
	{[]string{"t-shirt", "tee", "long sleeve"}, TShirt},
	{[]string{"polo"}, Polo},
	{[]string{"button-up", "button up", "oxford", "flannel", "dress shirt"}, ButtonUp},
	{[]string{"sweatshirt", "hoodie", "hoody"}, SweatshirtHoodie},
	{[]string{"sweater", "knit", "cardigan"}, Sweater},
	{[]string{"light jacket", "lightweight", "bomber", "windbreaker", "overshirt", "shacket"}, LightJacket},
	{[]string{"heavy jacket", "coat", "parka", "overcoat", "puffer", "down jacket"}, HeavyJacket},
	{[]string{"jeans", "denim"}, Jeans},
	{[]string{"chinos", "chino"}, Chinos},
	{[]string{"trousers", "trouser", "dress pants", "slacks"}, Trousers},
	{[]string{"sweatpants", "sweatpant"}, Sweatpants},
	{[]string{"joggers", "jogger"}, Joggers},
	{[]string{"shorts", "short"}, Shorts},
	{[]string{"cargos", "cargo pants", "cargo"}, Cargos},
}

// NormalizeType returns the garment family for subType, or false when no
// keyword matches.
func NormalizeType(subType string) (Type, bool) {
	lower := strings.ToLower(subType)
	for _, r := range typeRules {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.tag, true
			}
		}
	}
	return "", false
}

// Description returns the garment-specific wording for a category of the
// given dimension. ok is false when the subtype is unrecognized, the
// dimension or category has no entries, or the combination is marked N/A.
func Description(dimension, categoryName, subType string) (string, bool) {
	tag, ok := NormalizeType(subType)
	if !ok {
		return "", false
	}
	byCategory, ok := descriptions[dimension]
	if !ok {
		return "", false
	}
	byType, ok := byCategory[categoryName]
	if !ok {
		return "", false
	}
	desc, ok := byType[tag]
	if !ok || desc == "" || desc == notApplicable {
		return "", false
	}
	return desc, true
}

// Explanation is the long-form description of what a measurement means.
type Explanation struct {
	WhatThisMeans string   `json:"whatThisMeans" yaml:"whatThisMeans"`
	InWear        []string `json:"howThisShowsUpInWear" yaml:"howThisShowsUpInWear"`
	Context       string   `json:"context" yaml:"context"`
}

// Explain returns the explanation for a dimension key.
func Explain(dimension string) (Explanation, bool) {
	e, ok := explanations[dimension]
	if !ok {
		return Explanation{}, false
	}
	e.InWear = append([]string(nil), e.InWear...)
	return e, true
}
