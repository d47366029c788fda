// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/loan-calculator/pkg/constants"
)

// MonthlyRate converts an annual percentage rate into the periodic rate
// applied once per month.
func MonthlyRate(annualInterestRate float64) float64 {
	return annualInterestRate / constants.MonthlyRateDivisor
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsInf(val, 0) && !math.IsNaN(val)
}

// CeilInt rounds val up to the next whole unit. The second return value is
// false when val is not finite or does not fit in an int64.
func CeilInt(val float64) (int64, bool) {
	c := math.Ceil(val)
	if !IsFinite(c) || c >= math.MaxInt64 || c < math.MinInt64 {
		return 0, false
	}
	return int64(c), true
}

// RoundHalfEven rounds val to the nearest whole unit, ties going to the even
// neighbour (2.5 -> 2, 3.5 -> 4).
func RoundHalfEven(val float64) (int, bool) {
	r := math.RoundToEven(val)
	if !IsFinite(r) || r >= math.MaxInt32 || r < math.MinInt32 {
		return 0, false
	}
	return int(r), true
}
