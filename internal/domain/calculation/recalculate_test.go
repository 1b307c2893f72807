package calculation

import (
	"testing"

	"supplement_tracker/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalculate_EndToEnd(t *testing.T) {
	claim := entities.Claim{
		ID:           "claim-1",
		JobType:      entities.JobTypeSupplement,
		PropertyType: entities.PropertyTypeResidential,
		InitialValue: 18500,
		TotalUnits:   25,
		Status:       entities.ClaimStatusSupplementReceived,
	}
	supplements := []entities.Supplement{
		{ID: "s1", ClaimID: "claim-1", Sequence: 1, Amount: 4200, Status: entities.SupplementStatusApproved},
	}

	got, err := Recalculate(claim, supplements, testContractor(), testEstimator())
	require.NoError(t, err)

	assert.Equal(t, 22700.00, got.Metrics.CurrentTotalValue)
	assert.Equal(t, 4200.00, got.Metrics.TotalIncrease)
	assert.InDelta(t, 0.2270, got.Metrics.PercentageIncrease, 1e-9)
	assert.Equal(t, 740.0, got.Metrics.UnitPrice)

	assert.Equal(t, entities.CommissionTypeSupplement, got.Commission.Type)
	assert.Equal(t, 4200.0, got.Commission.BaseAmount)
	assert.Equal(t, 525.0, got.Commission.Contractor.Total)
	assert.Equal(t, 210.0, got.Commission.Estimator.Total)

	// input claim untouched
	assert.Equal(t, entities.ClaimMetrics{}, claim.Metrics)
}

func TestRecalculate_DenialRemovesContribution(t *testing.T) {
	claim := entities.Claim{JobType: entities.JobTypeSupplement, PropertyType: entities.PropertyTypeResidential, InitialValue: 18500}
	supplements := []entities.Supplement{{Sequence: 1, Amount: 4200, Status: entities.SupplementStatusDenied}}

	got, err := Recalculate(claim, supplements, testContractor(), testEstimator())
	require.NoError(t, err)
	assert.Equal(t, 18500.0, got.Metrics.CurrentTotalValue)
	assert.Equal(t, 0.0, got.Metrics.TotalIncrease)
	assert.Equal(t, 0.0, got.Commission.Contractor.Total)
}

func TestRecalculate_InvalidJobType(t *testing.T) {
	_, err := Recalculate(entities.Claim{JobType: "bogus", InitialValue: 1}, nil, entities.RateProfile{}, entities.RateProfile{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
