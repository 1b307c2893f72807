package usecase

import (
	"context"
	"strings"

	"supplement_tracker/internal/domain/calculation"
	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/usecase/interfaces"
)

// CommissionQuote is a what-if commission request. A party id, when set, takes precedence over
// the inline rate configuration for that side.
type CommissionQuote struct {
	JobType              entities.JobType
	PropertyType         entities.PropertyType
	PreviousUnits        *float64
	NewUnits             *float64
	CommissionableAmount float64
	ContractorID         string
	EstimatorID          string
	ContractorRates      entities.PartyRateConfig
	EstimatorRates       entities.PartyRateConfig
}

// ICommissionUseCase quotes commissions without touching any claim.
type ICommissionUseCase interface {
	Quote(ctx context.Context, q CommissionQuote) (entities.CommissionResult, error)
}

type CommissionUseCase struct {
	parties interfaces.IPartyRepository
}

var _ ICommissionUseCase = (*CommissionUseCase)(nil)

func NewCommissionUseCase(parties interfaces.IPartyRepository) *CommissionUseCase {
	return &CommissionUseCase{parties: parties}
}

func (u *CommissionUseCase) Quote(ctx context.Context, q CommissionQuote) (entities.CommissionResult, error) {
	contractor, err := u.profile(ctx, q.ContractorID, q.ContractorRates)
	if err != nil {
		return entities.CommissionResult{}, err
	}
	estimator, err := u.profile(ctx, q.EstimatorID, q.EstimatorRates)
	if err != nil {
		return entities.CommissionResult{}, err
	}
	return calculation.CalculateCommission(calculation.CommissionInput{
		JobType:              q.JobType,
		PropertyType:         q.PropertyType,
		PreviousUnits:        q.PreviousUnits,
		NewUnits:             q.NewUnits,
		CommissionableAmount: q.CommissionableAmount,
		Contractor:           contractor,
		Estimator:            estimator,
	})
}

func (u *CommissionUseCase) profile(ctx context.Context, partyID string, inline entities.PartyRateConfig) (entities.RateProfile, error) {
	if id := strings.TrimSpace(partyID); id != "" {
		return resolveRateProfile(ctx, u.parties, id)
	}
	return calculation.BuildRateProfile(inline)
}
