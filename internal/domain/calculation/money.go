// Package calculation holds the pure money logic of a claim: rate profiles, commission
// classification and amounts, and the metrics derived from approved supplements.
//
// Nothing in this package performs I/O. Every function is deterministic for its inputs, so a
// claim can be recomputed from scratch whenever one of its financial facts changes.
package calculation

import (
	"errors"
	"math"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned for negative or non-finite amounts and unknown classifications.
var ErrInvalidInput = errors.New("invalid input")

// Round2 rounds a money amount to cents, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Round4 rounds a fraction (e.g. a percentage increase) to four places.
func Round4(v float64) float64 {
	return decimal.NewFromFloat(v).Round(4).InexactFloat64()
}

// CentsEqual compares two money amounts at cent precision.
func CentsEqual(a, b float64) bool {
	return decimal.NewFromFloat(a).Round(2).Equal(decimal.NewFromFloat(b).Round(2))
}

// CheckAmount rejects negative and non-finite money inputs.
func CheckAmount(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return eris.Wrapf(ErrInvalidInput, "%s must be finite", name)
	}
	if v < 0 {
		return eris.Wrapf(ErrInvalidInput, "%s must not be negative, got %v", name, v)
	}
	return nil
}
