package engine

import (
	"fmt"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// scoreStep maps a metric at or above Min to Score. Steps are ordered from the
// highest threshold down; a metric below every step scores floorScore.
type scoreStep struct {
	Min   float64
	Score float64
}

const floorScore = 1.0

// Ratio ladders compare a metric with its benchmark (metric / benchmark).
var benchmarkRatioSteps = []scoreStep{
	{1.5, 10}, {1.25, 8.5}, {1.0, 7}, {0.8, 5.5}, {0.6, 4}, {0.4, 2.5},
}

// Year-one after-tax cash flow as a percentage of the capital invested.
var cashFlowSteps = []scoreStep{
	{5, 10}, {2, 8.5}, {0, 7}, {-2, 5.5}, {-5, 4}, {-10, 2.5},
}

// Year-one tax saving as a percentage of gross rent.
var taxEfficiencySteps = []scoreStep{
	{30, 10}, {20, 8.5}, {12, 7}, {6, 5.5}, {2, 4}, {0.01, 2.5},
}

// Risk proxy policy assumptions. The risk score starts at 10 and each factor
// below deducts its penalty; the result is clamped to 0-10.
const (
	RiskHighLVR              = 80.0
	RiskHighLVRPenalty       = 3.0
	RiskElevatedLVR          = 70.0
	RiskElevatedLVRPenalty   = 1.5
	RiskVacancyMargin        = 2.0
	RiskVacancyPenalty       = 1.5
	RiskInterestCoverFloor   = 1.0
	RiskInterestCoverPenalty = 2.0
	RiskUpfrontShare         = 10.0
	RiskUpfrontPenalty       = 1.0
	RiskShortHoldYears       = 5
	RiskShortHoldPenalty     = 1.0
	RiskInterestOnlyPenalty  = 1.0
)

// Verdict band thresholds on the overall score.
const (
	ExcellentThreshold = 8.0
	GoodThreshold      = 6.5
	ModerateThreshold  = 5.0
	PoorThreshold      = 3.5
)

func ladder(value float64, steps []scoreStep) float64 {
	for _, s := range steps {
		if value >= s.Min {
			return s.Score
		}
	}
	return floorScore
}

func ratioScore(value, benchmark float64) float64 {
	if benchmark <= 0 {
		if value > 0 {
			return 10
		}
		return 5
	}
	return ladder(value/benchmark, benchmarkRatioSteps)
}

// RiskFactors are the inputs of the risk/volatility proxy. InterestCover is
// first-year rent over first-year interest; use +Inf for an unfinanced purchase.
type RiskFactors struct {
	LVR              float64
	VacancyRate      float64
	BenchmarkVacancy float64
	InterestCover    float64
	UpfrontShare     float64
	HoldYears        int
	InterestOnly     bool
}

// RiskScore applies the penalty table to a set of risk factors.
func RiskScore(f RiskFactors) float64 {
	score := 10.0
	switch {
	case f.LVR > RiskHighLVR:
		score -= RiskHighLVRPenalty
	case f.LVR > RiskElevatedLVR:
		score -= RiskElevatedLVRPenalty
	}
	if f.VacancyRate > f.BenchmarkVacancy+RiskVacancyMargin {
		score -= RiskVacancyPenalty
	}
	if f.InterestCover < RiskInterestCoverFloor {
		score -= RiskInterestCoverPenalty
	}
	if f.UpfrontShare > RiskUpfrontShare {
		score -= RiskUpfrontPenalty
	}
	if f.HoldYears < RiskShortHoldYears {
		score -= RiskShortHoldPenalty
	}
	if f.InterestOnly {
		score -= RiskInterestOnlyPenalty
	}
	return clamp(score, 0, 10)
}

// ScoreInput holds the raw metrics the sub-scores are derived from.
type ScoreInput struct {
	GrossYield        float64
	BenchmarkYield    float64
	GrowthRate        float64
	BenchmarkGrowth   float64
	CashFlowOnCapital float64
	TaxSavingOnRent   float64
	Risk              RiskFactors
}

// SubScoresFor normalizes each metric to 0-10 using the fixed threshold ladders.
func SubScoresFor(in ScoreInput) model.SubScores {
	return model.SubScores{
		RentalYield:   ratioScore(in.GrossYield, in.BenchmarkYield),
		CapitalGrowth: ratioScore(in.GrowthRate, in.BenchmarkGrowth),
		CashFlow:      ladder(in.CashFlowOnCapital, cashFlowSteps),
		TaxEfficiency: ladder(in.TaxSavingOnRent, taxEfficiencySteps),
		Risk:          RiskScore(in.Risk),
	}
}

// Score averages the five sub-scores with equal weight, rounds to one decimal
// and maps the result to a verdict band.
func Score(s model.SubScores) model.ScoreBreakdown {
	avg := (s.RentalYield + s.CapitalGrowth + s.CashFlow + s.TaxEfficiency + s.Risk) / 5
	overall := roundRate(avg, 1)
	return model.ScoreBreakdown{
		SubScores: s,
		Overall:   overall,
		Verdict:   VerdictFor(overall),
	}
}

// VerdictFor maps an overall score to its band.
func VerdictFor(overall float64) model.Verdict {
	switch {
	case overall >= ExcellentThreshold:
		return model.VerdictExcellent
	case overall >= GoodThreshold:
		return model.VerdictGood
	case overall >= ModerateThreshold:
		return model.VerdictModerate
	case overall >= PoorThreshold:
		return model.VerdictPoor
	default:
		return model.VerdictNotRecommended
	}
}

var subScoreLabels = []struct {
	label string
	value func(model.SubScores) float64
}{
	{"rental yield", func(s model.SubScores) float64 { return s.RentalYield }},
	{"capital growth", func(s model.SubScores) float64 { return s.CapitalGrowth }},
	{"cash flow", func(s model.SubScores) float64 { return s.CashFlow }},
	{"tax efficiency", func(s model.SubScores) float64 { return s.TaxEfficiency }},
	{"risk profile", func(s model.SubScores) float64 { return s.Risk }},
}

// Recommend turns a score into strengths, weaknesses and a one-line summary.
func Recommend(score model.ScoreBreakdown) model.Recommendation {
	rec := model.Recommendation{
		Verdict:    score.Verdict,
		Strengths:  []string{},
		Weaknesses: []string{},
	}
	for _, l := range subScoreLabels {
		v := l.value(score.SubScores)
		switch {
		case v >= 7:
			rec.Strengths = append(rec.Strengths, fmt.Sprintf("Strong %s (%.1f/10)", l.label, v))
		case v <= 4:
			rec.Weaknesses = append(rec.Weaknesses, fmt.Sprintf("Weak %s (%.1f/10)", l.label, v))
		}
	}
	rec.Summary = fmt.Sprintf("%s investment with an overall score of %.1f/10", score.Verdict, score.Overall)
	return rec
}
