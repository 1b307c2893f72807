package calculation

import (
	"supplement_tracker/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MetricsInput is the full set of facts the claim metrics are derived from.
type MetricsInput struct {
	InitialValue    float64
	BaseUnitValue   float64
	TotalUnits      float64
	ApprovedAmounts []float64
}

// ComputeClaimMetrics derives the claim totals from the initial value and every approved amount.
//
// Callers pass the complete approved set each time; there is no incremental variant.
// A zero initial value yields a zero percentage and zero units yield a zero unit price.
func ComputeClaimMetrics(in MetricsInput) (entities.ClaimMetrics, error) {
	if err := CheckAmount("initial value", in.InitialValue); err != nil {
		return entities.ClaimMetrics{}, err
	}
	if err := CheckAmount("base unit value", in.BaseUnitValue); err != nil {
		return entities.ClaimMetrics{}, err
	}
	if err := CheckAmount("total units", in.TotalUnits); err != nil {
		return entities.ClaimMetrics{}, err
	}

	initial := decimal.NewFromFloat(in.InitialValue)
	sum := decimal.Zero
	for _, a := range in.ApprovedAmounts {
		if err := CheckAmount("approved amount", a); err != nil {
			return entities.ClaimMetrics{}, err
		}
		sum = sum.Add(decimal.NewFromFloat(a))
	}

	current := initial.Add(sum).Round(2)
	increase := current.Sub(initial).Round(2)

	pct := decimal.Zero
	if initial.IsPositive() {
		pct = increase.Div(initial).Round(4)
	}

	unitPrice := decimal.Zero
	if in.TotalUnits > 0 {
		unitPrice = decimal.NewFromFloat(in.BaseUnitValue).Div(decimal.NewFromFloat(in.TotalUnits)).Round(2)
	}

	return entities.ClaimMetrics{
		CurrentTotalValue:  current.InexactFloat64(),
		TotalIncrease:      increase.InexactFloat64(),
		PercentageIncrease: pct.InexactFloat64(),
		UnitPrice:          unitPrice.InexactFloat64(),
	}, nil
}

// ApprovedAmounts lists what each supplement contributes to the claim value: the full amount when
// approved, the approved amount when partial, nothing otherwise.
func ApprovedAmounts(supplements []entities.Supplement) []float64 {
	out := make([]float64, 0, len(supplements))
	for _, s := range supplements {
		switch s.Status {
		case entities.SupplementStatusApproved:
			out = append(out, s.Amount)
		case entities.SupplementStatusPartial:
			if s.ApprovedAmount != nil {
				out = append(out, *s.ApprovedAmount)
			}
		}
	}
	return out
}

// LatestUnitChange returns the squares pair of the most recent counted supplement that carries
// both measurements. Nil values mean no such supplement exists.
func LatestUnitChange(supplements []entities.Supplement) (previous, next *float64) {
	best := -1
	for i, s := range supplements {
		if !s.Status.CountsTowardTotal() || s.SquaresBefore == nil || s.SquaresAfter == nil {
			continue
		}
		if best == -1 || s.Sequence > supplements[best].Sequence {
			best = i
		}
	}
	if best == -1 {
		return nil, nil
	}
	return supplements[best].SquaresBefore, supplements[best].SquaresAfter
}
