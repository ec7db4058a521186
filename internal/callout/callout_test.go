package callout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	assert.True(t, Matches("Heavyweight HOODIE", "hoodie"))
	assert.True(t, Matches("crewneck sweatshirt", "hoodie", "sweatshirt"))
	assert.False(t, Matches("slim jeans", "hoodie"))
	assert.False(t, Matches("", "hoodie"))
}

func TestChest(t *testing.T) {
	tests := []struct {
		name    string
		subType string
		want    int
	}{
		{"hoodie", "Pullover Hoodie", 1},
		{"coat", "wool coat", 1},
		{"hooded jacket matches both", "hoodie jacket", 2},
		{"tee matches none", "t-shirt", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chest(tt.subType)
			assert.Len(t, got, tt.want)
			assert.NotNil(t, got)
		})
	}
}

func TestFrontLength(t *testing.T) {
	got := FrontLength("Oversized Tee")
	assert.Equal(t, []string{"Curved/split hems (tees, button-ups): Center front may sit higher than sides."}, got)

	got = FrontLength("knit sweater")
	assert.Equal(t, []string{"Ribbed/elastic hems (hoodies, sweaters): May bunch rather than hang straight at longer lengths."}, got)
}

func TestSleeve(t *testing.T) {
	got := Sleeve("hoodie", "Heavily Dropped")
	assert.Equal(t, []string{
		"Ribbed cuffs grip wrist, prevent hand coverage. Extra length pools above cuff.",
		SleeveHeavilyDropped,
	}, got)

	got = Sleeve("Lightweight Jacket", "Dropped")
	assert.Equal(t, []string{"Sleeve moves more freely over wrist/hand."}, got)

	got = Sleeve("button up oxford", "")
	assert.Len(t, got, 1)

	assert.Empty(t, Sleeve("tank", ""))
}

func TestShoulderAndThigh(t *testing.T) {
	assert.Len(t, Shoulder("sweatshirt"), 1)
	assert.Empty(t, Shoulder("polo"))
	assert.Len(t, Thigh("Pleated Trousers"), 1)
	assert.Empty(t, Thigh("jeans"))
	assert.Empty(t, Waist("jeans"))
}

func TestInseam(t *testing.T) {
	got := Inseam("slim jeans", false)
	assert.Equal(t, []string{InseamRiseInteraction}, got)

	got = Inseam("Tech Joggers", false)
	assert.Equal(t, []string{InseamElasticHem, InseamRiseInteraction}, got)

	got = Inseam("chinos", true)
	assert.Equal(t, []string{InseamElasticHem, InseamRiseInteraction}, got)
}

func TestRise(t *testing.T) {
	assert.Equal(t, []string{RiseGeometry}, Rise("jeans"))
	assert.Equal(t, []string{
		"Rise has greater impact on seat comfort and drape. Small differences more noticeable.",
		RiseGeometry,
	}, Rise("wool trouser"))
}

func TestLegOpening(t *testing.T) {
	assert.Len(t, LegOpening("sweatpants"), 1)
	assert.Empty(t, LegOpening("cargo pants"))
}

func TestDisclosures(t *testing.T) {
	assert.Equal(t, []string{HipShelfAdjusted}, HipShelf(true))
	assert.Empty(t, HipShelf(false))
	assert.Equal(t, []string{OutseamConverted}, OutseamConversion(true))
	assert.Empty(t, OutseamConversion(false))
}
