package calculation

import (
	"supplement_tracker/internal/domain/entities"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
)

// CommissionInput carries every fact the commission depends on.
type CommissionInput struct {
	JobType      entities.JobType
	PropertyType entities.PropertyType
	// PreviousUnits and NewUnits are nil when unknown.
	PreviousUnits        *float64
	NewUnits             *float64
	CommissionableAmount float64
	Contractor           entities.RateProfile
	Estimator            entities.RateProfile
}

// CalculateCommission classifies the event and computes the contractor billing and the
// estimator commission, keeping the flat-fee and percentage components apart.
func CalculateCommission(in CommissionInput) (entities.CommissionResult, error) {
	if err := CheckAmount("commissionable amount", in.CommissionableAmount); err != nil {
		return entities.CommissionResult{}, err
	}
	if in.PropertyType == "" {
		in.PropertyType = entities.PropertyTypeResidential
	}
	if !ValidPropertyType(in.PropertyType) {
		return entities.CommissionResult{}, eris.Wrapf(ErrInvalidInput, "unknown property type %q", in.PropertyType)
	}

	ctype, err := ClassifyCommissionType(in.JobType, in.PreviousUnits, in.NewUnits)
	if err != nil {
		return entities.CommissionResult{}, err
	}

	return entities.CommissionResult{
		Type:       ctype,
		BaseAmount: Round2(in.CommissionableAmount),
		Contractor: commissionLine(ctype, in.PropertyType, in.CommissionableAmount, in.Contractor),
		Estimator:  commissionLine(ctype, in.PropertyType, in.CommissionableAmount, in.Estimator),
	}, nil
}

// SelectRate picks the percentage rate a profile applies to a commission type.
func SelectRate(ctype entities.CommissionType, propertyType entities.PropertyType, p entities.RateProfile) float64 {
	switch ctype {
	case entities.CommissionTypeReinspection:
		return FirstConfigured(p.ReinspectionRate, p.DefaultRate)
	case entities.CommissionTypeSupplement, entities.CommissionTypeFinalInvoice:
		if propertyType == entities.PropertyTypeCommercial {
			return FirstConfigured(p.CommercialRate, p.DefaultRate)
		}
		return FirstConfigured(p.ResidentialRate, p.DefaultRate)
	default:
		return 0
	}
}

// SelectFlatFee returns the flat fee a profile charges for a commission type.
// Only estimate and final invoice events carry one.
func SelectFlatFee(ctype entities.CommissionType, p entities.RateProfile) float64 {
	switch ctype {
	case entities.CommissionTypeEstimate, entities.CommissionTypeFinalInvoice:
		return FirstConfigured(p.FlatFee)
	default:
		return 0
	}
}

func commissionLine(ctype entities.CommissionType, propertyType entities.PropertyType, amount float64, p entities.RateProfile) entities.CommissionLine {
	rate := SelectRate(ctype, propertyType, p)
	fee := decimal.NewFromFloat(SelectFlatFee(ctype, p)).Round(2)

	pct := decimal.Zero
	if ctype != entities.CommissionTypeEstimate {
		pct = decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Round(2)
	}

	return entities.CommissionLine{
		Rate:             rate,
		FlatFee:          fee.InexactFloat64(),
		PercentageAmount: pct.InexactFloat64(),
		Total:            fee.Add(pct).Round(2).InexactFloat64(),
	}
}
