package calculation

import (
	"supplement_tracker/internal/domain/entities"

	"github.com/rotisserie/eris"
)

// ClassifyCommissionType decides which commission event a claim represents.
//
// A declared estimate or final invoice job always wins over the unit-count signal. Otherwise a
// growth in measured units (both counts known) is a reinspection, and anything else is a supplement.
func ClassifyCommissionType(jobType entities.JobType, previousUnits, newUnits *float64) (entities.CommissionType, error) {
	switch jobType {
	case entities.JobTypeEstimate:
		return entities.CommissionTypeEstimate, nil
	case entities.JobTypeFinalInvoice:
		return entities.CommissionTypeFinalInvoice, nil
	case entities.JobTypeSupplement, entities.JobTypeReinspection:
	default:
		return "", eris.Wrapf(ErrInvalidInput, "unknown job type %q", jobType)
	}

	if previousUnits != nil && newUnits != nil && *newUnits > *previousUnits {
		return entities.CommissionTypeReinspection, nil
	}
	return entities.CommissionTypeSupplement, nil
}

// ValidJobType reports whether t is one of the known job types.
func ValidJobType(t entities.JobType) bool {
	switch t {
	case entities.JobTypeSupplement, entities.JobTypeReinspection, entities.JobTypeEstimate, entities.JobTypeFinalInvoice:
		return true
	}
	return false
}

// ValidPropertyType reports whether t is one of the known property types.
func ValidPropertyType(t entities.PropertyType) bool {
	return t == entities.PropertyTypeResidential || t == entities.PropertyTypeCommercial
}
