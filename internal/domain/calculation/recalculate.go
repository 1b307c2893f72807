package calculation

import "supplement_tracker/internal/domain/entities"

// Recalculate rebuilds every derived field of a claim from its supplements and the two parties'
// rate profiles. The claim passed in is not modified.
//
// The commissionable amount is the claim's total increase; the unit price is the initial value
// spread over the measured units.
func Recalculate(c entities.Claim, supplements []entities.Supplement, contractor, estimator entities.RateProfile) (entities.Claim, error) {
	metrics, err := ComputeClaimMetrics(MetricsInput{
		InitialValue:    c.InitialValue,
		BaseUnitValue:   c.InitialValue,
		TotalUnits:      c.TotalUnits,
		ApprovedAmounts: ApprovedAmounts(supplements),
	})
	if err != nil {
		return entities.Claim{}, err
	}

	prev, next := LatestUnitChange(supplements)
	commission, err := CalculateCommission(CommissionInput{
		JobType:              c.JobType,
		PropertyType:         c.PropertyType,
		PreviousUnits:        prev,
		NewUnits:             next,
		CommissionableAmount: metrics.TotalIncrease,
		Contractor:           contractor,
		Estimator:            estimator,
	})
	if err != nil {
		return entities.Claim{}, err
	}

	c.Metrics = metrics
	c.Commission = commission
	return c, nil
}
