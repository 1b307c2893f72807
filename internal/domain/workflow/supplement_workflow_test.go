package workflow

import (
	"testing"

	"supplement_tracker/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestValidateSupplementTransition(t *testing.T) {
	assert.NoError(t, ValidateSupplementTransition(entities.SupplementStatusDraft, entities.SupplementStatusSubmitted))
	assert.NoError(t, ValidateSupplementTransition(entities.SupplementStatusSubmitted, entities.SupplementStatusApproved))
	assert.NoError(t, ValidateSupplementTransition(entities.SupplementStatusPending, entities.SupplementStatusPartial))
	assert.NoError(t, ValidateSupplementTransition(entities.SupplementStatusApproved, entities.SupplementStatusDenied))
	assert.NoError(t, ValidateSupplementTransition(entities.SupplementStatusPartial, entities.SupplementStatusPartial))
	assert.NoError(t, ValidateSupplementTransition(entities.SupplementStatusApproved, entities.SupplementStatusApproved))
	assert.NoError(t, ValidateSupplementTransition(entities.SupplementStatusDenied, entities.SupplementStatusDenied))

	assert.ErrorIs(t, ValidateSupplementTransition(entities.SupplementStatusDraft, entities.SupplementStatusApproved), ErrIllegalTransition)
	assert.ErrorIs(t, ValidateSupplementTransition(entities.SupplementStatusApproved, entities.SupplementStatusDraft), ErrIllegalTransition)
	assert.ErrorIs(t, ValidateSupplementTransition(entities.SupplementStatusPending, entities.SupplementStatusPending), ErrIllegalTransition)
	assert.ErrorIs(t, ValidateSupplementTransition(entities.SupplementStatusDenied, "void"), ErrUnknownStatus)
}

func TestSupplementsNeverReturnToDraft(t *testing.T) {
	for _, s := range Supplements.States() {
		for _, next := range Supplements.Next(s) {
			assert.NotEqual(t, entities.SupplementStatusDraft, next, "from %s", s)
		}
	}
}

func TestDecidedSupplementsAcceptEveryCorrection(t *testing.T) {
	decided := []entities.SupplementStatus{
		entities.SupplementStatusApproved,
		entities.SupplementStatusPartial,
		entities.SupplementStatusDenied,
	}
	for _, from := range decided {
		for _, to := range append([]entities.SupplementStatus{entities.SupplementStatusPending}, decided...) {
			assert.NoError(t, ValidateSupplementTransition(from, to), "%s -> %s", from, to)
		}
	}
}
