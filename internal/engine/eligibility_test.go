package engine_test

import (
	"testing"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/engine"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// TestEvaluate_Scenarios tests eligibility outcomes for each citizenship branch.
//
// WHY: Eligibility is the first answer a buyer sees. Each branch of the
// residency rules must produce the right verdict, fee and denial reason.
func TestEvaluate_Scenarios(t *testing.T) {
	tests := []struct {
		name             string
		input            model.EligibilityInput
		canPurchase      bool
		requiresApproval bool
		reason           model.DenialReason
		condition        string
	}{
		{
			name: "foreign national established dwelling is denied",
			input: model.EligibilityInput{
				Citizenship:   model.CitizenshipForeignNational,
				PropertyType:  model.PropertyEstablishedDwelling,
				PropertyValue: 800_000,
			},
			reason: model.DenialForeignEstablishedDwelling,
		},
		{
			name: "foreign national established dwelling for redevelopment",
			input: model.EligibilityInput{
				Citizenship:     model.CitizenshipForeignNational,
				PropertyType:    model.PropertyEstablishedDwelling,
				PropertyValue:   800_000,
				IsRedevelopment: true,
			},
			canPurchase:      true,
			requiresApproval: true,
			condition:        engine.ConditionRedevelopment,
		},
		{
			name: "foreign national vacant land carries construction condition",
			input: model.EligibilityInput{
				Citizenship:   model.CitizenshipForeignNational,
				PropertyType:  model.PropertyVacantLand,
				PropertyValue: 400_000,
			},
			canPurchase:      true,
			requiresApproval: true,
			condition:        engine.ConditionConstruction,
		},
		{
			name: "foreign national new dwelling",
			input: model.EligibilityInput{
				Citizenship:   model.CitizenshipForeignNational,
				PropertyType:  model.PropertyNewDwelling,
				PropertyValue: 1_500_000,
			},
			canPurchase:      true,
			requiresApproval: true,
			condition:        engine.ConditionVacancyFee,
		},
		{
			name: "australian citizen needs no approval",
			input: model.EligibilityInput{
				Citizenship:   model.CitizenshipAustralian,
				PropertyType:  model.PropertyEstablishedDwelling,
				PropertyValue: 2_000_000,
			},
			canPurchase: true,
		},
		{
			name: "resident permanent resident needs no approval",
			input: model.EligibilityInput{
				Citizenship:          model.CitizenshipPermanentResident,
				PropertyType:         model.PropertyEstablishedDwelling,
				PropertyValue:        900_000,
				IsOrdinarilyResident: boolPtr(true),
			},
			canPurchase: true,
		},
		{
			name: "permanent resident living overseas needs approval",
			input: model.EligibilityInput{
				Citizenship:          model.CitizenshipPermanentResident,
				PropertyType:         model.PropertyEstablishedDwelling,
				PropertyValue:        900_000,
				IsOrdinarilyResident: boolPtr(false),
			},
			canPurchase:      true,
			requiresApproval: true,
			condition:        engine.ConditionNonResidentPR,
		},
		{
			name: "temporary resident without visa fails closed",
			input: model.EligibilityInput{
				Citizenship:   model.CitizenshipTemporaryResident,
				PropertyType:  model.PropertyNewDwelling,
				PropertyValue: 600_000,
			},
			reason: model.DenialMissingVisa,
		},
		{
			name: "temporary resident with unknown visa fails closed",
			input: model.EligibilityInput{
				Citizenship:   model.CitizenshipTemporaryResident,
				PropertyType:  model.PropertyNewDwelling,
				PropertyValue: 600_000,
				VisaType:      "tourist",
			},
			reason: model.DenialInvalidVisa,
		},
		{
			name: "temporary resident established dwelling as investment",
			input: model.EligibilityInput{
				Citizenship:   model.CitizenshipTemporaryResident,
				PropertyType:  model.PropertyEstablishedDwelling,
				PropertyValue: 600_000,
				VisaType:      model.VisaTemporarySkilled,
				Purpose:       model.PurposeInvestment,
			},
			reason: model.DenialTemporaryResidentInvestment,
		},
		{
			name: "temporary resident second established dwelling",
			input: model.EligibilityInput{
				Citizenship:             model.CitizenshipTemporaryResident,
				PropertyType:            model.PropertyEstablishedDwelling,
				PropertyValue:           600_000,
				VisaType:                model.VisaStudent,
				Purpose:                 model.PurposePrimaryResidence,
				OwnsEstablishedDwelling: true,
			},
			reason: model.DenialTemporaryResidentSecondDwelling,
		},
		{
			name: "temporary resident established dwelling to live in",
			input: model.EligibilityInput{
				Citizenship:   model.CitizenshipTemporaryResident,
				PropertyType:  model.PropertyEstablishedDwelling,
				PropertyValue: 600_000,
				VisaType:      model.VisaTemporaryGraduate,
				Purpose:       model.PurposePrimaryResidence,
			},
			canPurchase:      true,
			requiresApproval: true,
			condition:        engine.ConditionSellOnDeparture,
		},
		{
			name: "unknown citizenship fails closed",
			input: model.EligibilityInput{
				Citizenship:   "tourist",
				PropertyType:  model.PropertyNewDwelling,
				PropertyValue: 600_000,
			},
			reason: model.DenialInvalidInput,
		},
		{
			name: "negative value fails closed",
			input: model.EligibilityInput{
				Citizenship:   model.CitizenshipAustralian,
				PropertyType:  model.PropertyNewDwelling,
				PropertyValue: -1,
			},
			reason: model.DenialInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Evaluate(tt.input)

			if got.CanPurchase != tt.canPurchase {
				t.Errorf("CanPurchase = %v, want %v", got.CanPurchase, tt.canPurchase)
			}
			if got.RequiresApproval != tt.requiresApproval {
				t.Errorf("RequiresApproval = %v, want %v", got.RequiresApproval, tt.requiresApproval)
			}
			if tt.reason != "" {
				if got.ReasonForDenial == nil || *got.ReasonForDenial != tt.reason {
					t.Errorf("ReasonForDenial = %v, want %s", got.ReasonForDenial, tt.reason)
				}
			}
			if tt.condition != "" && !contains(got.Conditions, tt.condition) {
				t.Errorf("Conditions %v missing %q", got.Conditions, tt.condition)
			}
			if got.Explanation == "" {
				t.Error("Expected an explanation")
			}
		})
	}
}

// TestEvaluate_ApprovalFeeTier tests that approved purchases carry the fee tier.
//
// WHY: The fee shown with the eligibility verdict must match the fee charged in
// the cost breakdown.
func TestEvaluate_ApprovalFeeTier(t *testing.T) {
	got := engine.Evaluate(model.EligibilityInput{
		Citizenship:   model.CitizenshipForeignNational,
		PropertyType:  model.PropertyNewDwelling,
		PropertyValue: 1_500_000,
	})

	if got.ApprovalFeeTier == nil {
		t.Fatal("Expected an approval fee tier")
	}
	if *got.ApprovalFeeTier != 30_300 {
		t.Errorf("ApprovalFeeTier = %.2f, want 30300", *got.ApprovalFeeTier)
	}
	if got.Conditions[0] != engine.ConditionPriorApproval {
		t.Errorf("First condition = %q, want prior approval", got.Conditions[0])
	}
}

// TestEvaluate_DenialInvariant tests the shape of every denial.
//
// WHY: A denied result must never also claim approval is required or quote a fee,
// and must always say why.
func TestEvaluate_DenialInvariant(t *testing.T) {
	statuses := []model.CitizenshipStatus{
		model.CitizenshipAustralian, model.CitizenshipPermanentResident,
		model.CitizenshipTemporaryResident, model.CitizenshipForeignNational, "unknown",
	}
	types := []model.PropertyType{
		model.PropertyNewDwelling, model.PropertyEstablishedDwelling,
		model.PropertyVacantLand, model.PropertyCommercial, "castle",
	}
	visas := []model.VisaType{"", model.VisaStudent, "tourist"}
	purposes := []model.PurchasePurpose{"", model.PurposePrimaryResidence, model.PurposeInvestment}

	for _, status := range statuses {
		for _, pt := range types {
			for _, visa := range visas {
				for _, purpose := range purposes {
					got := engine.Evaluate(model.EligibilityInput{
						Citizenship:   status,
						PropertyType:  pt,
						PropertyValue: 700_000,
						VisaType:      visa,
						Purpose:       purpose,
					})
					if got.CanPurchase {
						continue
					}
					if got.RequiresApproval || got.ApprovalFeeTier != nil || got.ReasonForDenial == nil {
						t.Errorf("%s/%s/%s/%s: inconsistent denial %+v", status, pt, visa, purpose, got)
					}
				}
			}
		}
	}
}

// TestEvaluate_Monotonic tests that permanent residents are never worse off.
//
// WHY: Whenever a foreign national is denied, a permanent resident with the
// same inputs must still be able to buy, whatever their residency flag.
func TestEvaluate_Monotonic(t *testing.T) {
	types := []model.PropertyType{
		model.PropertyNewDwelling, model.PropertyEstablishedDwelling,
		model.PropertyVacantLand, model.PropertyCommercial,
	}
	values := []float64{0, 50_000, 800_000, 5_000_000}
	residency := []*bool{nil, boolPtr(true), boolPtr(false)}

	for _, pt := range types {
		for _, v := range values {
			for _, redevelopment := range []bool{false, true} {
				foreign := model.EligibilityInput{
					Citizenship:     model.CitizenshipForeignNational,
					PropertyType:    pt,
					PropertyValue:   v,
					IsRedevelopment: redevelopment,
				}
				if engine.Evaluate(foreign).CanPurchase {
					continue
				}
				for _, resident := range residency {
					pr := foreign
					pr.Citizenship = model.CitizenshipPermanentResident
					pr.IsOrdinarilyResident = resident
					if !engine.Evaluate(pr).CanPurchase {
						t.Errorf("permanent resident denied for %s at %.0f", pt, v)
					}
				}
			}
		}
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
