package engine

import "github.com/shopspring/decimal"

// roundMoney rounds a monetary amount to cents, half away from zero.
// Decimal rounding avoids float artefacts such as 1.005 rounding down.
//
// Example:
//
//	roundMoney(1234.565)  // returns 1234.57
//	roundMoney(-0.005)    // returns -0.01
func roundMoney(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// roundRate rounds a percentage or score to the given number of places.
func roundRate(value float64, places int32) float64 {
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

// sumMoney adds already-rounded amounts without reintroducing float drift.
func sumMoney(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(2).InexactFloat64()
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
