package engine

import (
	"math"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// dutyBracket is one step of a progressive transfer-duty schedule.
// For a value above Lower the duty is Base + Rate% of the excess over Lower,
// or Rate% of the whole value when WholeValue is set. Formula, when present,
// replaces both.
type dutyBracket struct {
	Lower      float64
	Base       float64
	Rate       float64
	WholeValue bool
	Formula    func(value float64) float64
}

// firstHomeConcession waives Share of the duty up to ExemptUpTo, tapering
// linearly to nothing at PhaseOutTo.
type firstHomeConcession struct {
	ExemptUpTo      float64
	PhaseOutTo      float64
	Share           float64
	NewDwellingOnly bool
}

// stateRules holds every numeric rule that varies by state or territory.
type stateRules struct {
	Name                    string
	Duty                    []dutyBracket
	ForeignSurchargePercent float64
	LandTaxSurchargePercent float64
	FirstHome               *firstHomeConcession
}

var stateTable = map[model.AustralianState]stateRules{
	model.StateNSW: {
		Name: "New South Wales",
		Duty: []dutyBracket{
			{Lower: 0, Base: 0, Rate: 1.25},
			{Lower: 17_000, Base: 212, Rate: 1.5},
			{Lower: 36_000, Base: 497, Rate: 1.75},
			{Lower: 97_000, Base: 1_564, Rate: 3.5},
			{Lower: 364_000, Base: 10_909, Rate: 4.5},
			{Lower: 1_212_000, Base: 49_069, Rate: 5.5},
			{Lower: 3_636_000, Base: 182_389, Rate: 7.0},
		},
		ForeignSurchargePercent: 8,
		LandTaxSurchargePercent: 5,
		FirstHome:               &firstHomeConcession{ExemptUpTo: 800_000, PhaseOutTo: 1_000_000, Share: 1},
	},
	model.StateVIC: {
		Name: "Victoria",
		Duty: []dutyBracket{
			{Lower: 0, Base: 0, Rate: 1.4},
			{Lower: 25_000, Base: 350, Rate: 2.4},
			{Lower: 130_000, Base: 2_870, Rate: 6.0},
			{Lower: 960_000, Rate: 5.5, WholeValue: true},
			{Lower: 2_000_000, Base: 110_000, Rate: 6.5},
		},
		ForeignSurchargePercent: 8,
		LandTaxSurchargePercent: 4,
		FirstHome:               &firstHomeConcession{ExemptUpTo: 600_000, PhaseOutTo: 750_000, Share: 1},
	},
	model.StateQLD: {
		Name: "Queensland",
		Duty: []dutyBracket{
			{Lower: 0, Base: 0, Rate: 0},
			{Lower: 5_000, Base: 0, Rate: 1.5},
			{Lower: 75_000, Base: 1_050, Rate: 3.5},
			{Lower: 540_000, Base: 17_325, Rate: 4.5},
			{Lower: 1_000_000, Base: 38_025, Rate: 5.75},
		},
		ForeignSurchargePercent: 8,
		LandTaxSurchargePercent: 3,
		FirstHome:               &firstHomeConcession{ExemptUpTo: 700_000, PhaseOutTo: 800_000, Share: 1},
	},
	model.StateWA: {
		Name: "Western Australia",
		Duty: []dutyBracket{
			{Lower: 0, Base: 0, Rate: 1.9},
			{Lower: 120_000, Base: 2_280, Rate: 2.85},
			{Lower: 150_000, Base: 3_135, Rate: 3.8},
			{Lower: 360_000, Base: 11_115, Rate: 4.75},
			{Lower: 725_000, Base: 28_453, Rate: 5.15},
		},
		ForeignSurchargePercent: 7,
		FirstHome:               &firstHomeConcession{ExemptUpTo: 450_000, PhaseOutTo: 600_000, Share: 1},
	},
	model.StateSA: {
		Name: "South Australia",
		Duty: []dutyBracket{
			{Lower: 0, Base: 0, Rate: 1.0},
			{Lower: 12_000, Base: 120, Rate: 2.0},
			{Lower: 30_000, Base: 480, Rate: 3.0},
			{Lower: 50_000, Base: 1_080, Rate: 3.5},
			{Lower: 100_000, Base: 2_830, Rate: 4.0},
			{Lower: 200_000, Base: 6_830, Rate: 4.25},
			{Lower: 250_000, Base: 8_955, Rate: 4.75},
			{Lower: 300_000, Base: 11_330, Rate: 5.0},
			{Lower: 500_000, Base: 21_330, Rate: 5.5},
		},
		ForeignSurchargePercent: 7,
		FirstHome: &firstHomeConcession{
			ExemptUpTo:      math.Inf(1),
			PhaseOutTo:      math.Inf(1),
			Share:           1,
			NewDwellingOnly: true,
		},
	},
	model.StateTAS: {
		Name: "Tasmania",
		Duty: []dutyBracket{
			{Lower: 0, Base: 50, Rate: 0},
			{Lower: 3_000, Base: 50, Rate: 1.75},
			{Lower: 25_000, Base: 435, Rate: 2.25},
			{Lower: 75_000, Base: 1_560, Rate: 3.5},
			{Lower: 200_000, Base: 5_935, Rate: 4.0},
			{Lower: 375_000, Base: 12_935, Rate: 4.25},
			{Lower: 725_000, Base: 27_810, Rate: 4.5},
		},
		ForeignSurchargePercent: 8,
		LandTaxSurchargePercent: 2,
		FirstHome:               &firstHomeConcession{ExemptUpTo: 750_000, PhaseOutTo: 750_000, Share: 0.5},
	},
	model.StateACT: {
		Name: "Australian Capital Territory",
		Duty: []dutyBracket{
			{Lower: 0, Base: 0, Rate: 1.2},
			{Lower: 200_000, Base: 2_400, Rate: 2.2},
			{Lower: 300_000, Base: 4_600, Rate: 3.4},
			{Lower: 500_000, Base: 11_400, Rate: 4.32},
			{Lower: 750_000, Base: 22_200, Rate: 5.9},
			{Lower: 1_000_000, Base: 36_950, Rate: 6.4},
			{Lower: 1_455_000, Rate: 4.54, WholeValue: true},
		},
		LandTaxSurchargePercent: 0.75,
		FirstHome:               &firstHomeConcession{ExemptUpTo: 1_020_000, PhaseOutTo: 1_020_000, Share: 1},
	},
	model.StateNT: {
		Name: "Northern Territory",
		Duty: []dutyBracket{
			{Lower: 0, Formula: ntLowerBracketDuty},
			{Lower: 525_000, Rate: 4.95, WholeValue: true},
			{Lower: 3_000_000, Rate: 5.75, WholeValue: true},
			{Lower: 5_000_000, Rate: 5.95, WholeValue: true},
		},
	},
}

// ntLowerBracketDuty is the Territory formula D = 0.06571441·V² + 15·V where V
// is the value in thousands of dollars.
func ntLowerBracketDuty(value float64) float64 {
	v := value / 1000
	return 0.06571441*v*v + 15*v
}

// lookupState returns the rules for a state code.
func lookupState(state model.AustralianState) (stateRules, bool) {
	rules, ok := stateTable[state]
	return rules, ok
}

// baseDuty applies the state's bracket table to a property value.
func (r stateRules) baseDuty(value float64) float64 {
	if value <= 0 || len(r.Duty) == 0 {
		return 0
	}
	bracket := r.Duty[0]
	for _, b := range r.Duty[1:] {
		if value > b.Lower {
			bracket = b
		}
	}
	switch {
	case bracket.Formula != nil:
		return bracket.Formula(value)
	case bracket.WholeValue:
		return value * bracket.Rate / 100
	default:
		return bracket.Base + (value-bracket.Lower)*bracket.Rate/100
	}
}

// concession returns the part of duty waived for an eligible first-home buyer.
func (r stateRules) concession(duty, value float64, propertyType model.PropertyType) float64 {
	c := r.FirstHome
	if c == nil || duty <= 0 {
		return 0
	}
	if c.NewDwellingOnly && propertyType != model.PropertyNewDwelling {
		return 0
	}
	switch {
	case value <= c.ExemptUpTo:
		return duty * c.Share
	case value < c.PhaseOutTo:
		return duty * c.Share * (c.PhaseOutTo - value) / (c.PhaseOutTo - c.ExemptUpTo)
	default:
		return 0
	}
}
