package request

import (
	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/usecase"
)

// CalculateCommissionRequest quotes a commission. Inline rates are used for a side unless its
// party id is given.
type CalculateCommissionRequest struct {
	JobType              string            `json:"job_type" binding:"required"`
	PropertyType         string            `json:"property_type"`
	PreviousUnits        *float64          `json:"previous_units"`
	NewUnits             *float64          `json:"new_units"`
	CommissionableAmount *float64          `json:"commissionable_amount" binding:"required"`
	ContractorID         string            `json:"contractor_id"`
	EstimatorID          string            `json:"estimator_id"`
	ContractorRates      RateConfigRequest `json:"contractor_rates"`
	EstimatorRates       RateConfigRequest `json:"estimator_rates"`
}

func (r CalculateCommissionRequest) ToQuote() usecase.CommissionQuote {
	var amount float64
	if r.CommissionableAmount != nil {
		amount = *r.CommissionableAmount
	}
	return usecase.CommissionQuote{
		JobType:              entities.JobType(normalizeEnum(r.JobType)),
		PropertyType:         entities.PropertyType(normalizeEnum(r.PropertyType)),
		PreviousUnits:        r.PreviousUnits,
		NewUnits:             r.NewUnits,
		CommissionableAmount: amount,
		ContractorID:         r.ContractorID,
		EstimatorID:          r.EstimatorID,
		ContractorRates:      r.ContractorRates.ToEntity(),
		EstimatorRates:       r.EstimatorRates.ToEntity(),
	}
}
