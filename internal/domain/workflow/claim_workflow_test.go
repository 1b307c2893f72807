package workflow

import (
	"errors"
	"testing"
	"time"

	"supplement_tracker/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition_Legal(t *testing.T) {
	legal := [][2]entities.ClaimStatus{
		{entities.ClaimStatusMissingInfo, entities.ClaimStatusContractorReview},
		{entities.ClaimStatusContractorReview, entities.ClaimStatusMissingInfo},
		{entities.ClaimStatusSupplementReceived, entities.ClaimStatusWaitingOnBuild},
		{entities.ClaimStatusCounterargumentSubmitted, entities.ClaimStatusRebuttalPosted},
		{entities.ClaimStatusEscalated, entities.ClaimStatusSupplementReceived},
		{entities.ClaimStatusRebuttalPosted, entities.ClaimStatusFinalInvoiceSent},
		{entities.ClaimStatusFinalInvoiceSent, entities.ClaimStatusWorkSuspended},
		{entities.ClaimStatusMoneyReleased, entities.ClaimStatusCompleted},
		{entities.ClaimStatusWorkSuspended, entities.ClaimStatusContractorReview},
	}
	for _, tc := range legal {
		assert.NoError(t, ValidateTransition(tc[0], tc[1]), "%s -> %s", tc[0], tc[1])
	}
}

func TestValidateTransition_TerminalState(t *testing.T) {
	err := ValidateTransition(entities.ClaimStatusCompleted, entities.ClaimStatusMissingInfo)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Contains(t, err.Error(), "terminal state, no valid next states")

	var te *TransitionError
	require.True(t, errors.As(err, &te))
	assert.Empty(t, te.Allowed)
}

func TestValidateTransition_ListsLegalStates(t *testing.T) {
	err := ValidateTransition(entities.ClaimStatusMissingInfo, entities.ClaimStatusCompleted)
	require.Error(t, err)

	var te *TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "missing_info", te.From)
	assert.Equal(t, "completed", te.To)
	assert.ElementsMatch(t, []string{"contractor_review", "work_suspended"}, te.Allowed)
	assert.Contains(t, err.Error(), "contractor_review, work_suspended")
}

func TestValidateTransition_SuspensionResetsToTriage(t *testing.T) {
	assert.ElementsMatch(t,
		[]entities.ClaimStatus{entities.ClaimStatusMissingInfo, entities.ClaimStatusContractorReview},
		AllowedTransitions(entities.ClaimStatusWorkSuspended),
	)
	err := ValidateTransition(entities.ClaimStatusWorkSuspended, entities.ClaimStatusFinalInvoiceSent)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestValidateTransition_SameStatusIsIllegal(t *testing.T) {
	assert.ErrorIs(t, ValidateTransition(entities.ClaimStatusEscalated, entities.ClaimStatusEscalated), ErrIllegalTransition)
}

func TestValidateTransition_UnknownStatus(t *testing.T) {
	assert.ErrorIs(t, ValidateTransition("archived", entities.ClaimStatusMissingInfo), ErrUnknownStatus)
	assert.ErrorIs(t, ValidateTransition(entities.ClaimStatusMissingInfo, "archived"), ErrUnknownStatus)
}

func TestEveryNonTerminalStateCanBeSuspendedExceptMoneyReleased(t *testing.T) {
	for _, s := range Claims.States() {
		if s == entities.ClaimStatusWorkSuspended || s == entities.ClaimStatusCompleted || s == entities.ClaimStatusMoneyReleased {
			continue
		}
		assert.NoError(t, ValidateTransition(s, entities.ClaimStatusWorkSuspended), "%s should allow suspension", s)
	}
	assert.ErrorIs(t, ValidateTransition(entities.ClaimStatusMoneyReleased, entities.ClaimStatusWorkSuspended), ErrIllegalTransition)
}

func TestClaimsMachineShape(t *testing.T) {
	assert.Len(t, Claims.States(), 15)
	assert.True(t, Claims.IsTerminal(entities.ClaimStatusCompleted))
	assert.False(t, Claims.IsTerminal(entities.ClaimStatusMoneyReleased))
	assert.False(t, Claims.IsTerminal("archived"))

	// every declared target is itself a state
	for _, s := range Claims.States() {
		for _, next := range Claims.Next(s) {
			assert.True(t, Claims.Known(next), "%s -> %s", s, next)
		}
	}
}

func TestNextReturnsCopy(t *testing.T) {
	next := AllowedTransitions(entities.ClaimStatusMissingInfo)
	next[0] = entities.ClaimStatusCompleted
	assert.Equal(t, entities.ClaimStatusContractorReview, AllowedTransitions(entities.ClaimStatusMissingInfo)[0])
}

func TestApplyTransition(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	now := created.Add(48 * time.Hour)
	c := entities.Claim{ID: "c-1", Status: entities.ClaimStatusMissingInfo, StatusChangedAt: created, LastActivityAt: created}

	got, err := ApplyTransition(c, entities.ClaimStatusContractorReview, now)
	require.NoError(t, err)
	assert.Equal(t, entities.ClaimStatusContractorReview, got.Status)
	assert.Equal(t, now, got.StatusChangedAt)
	assert.Equal(t, now, got.LastActivityAt)
	assert.Nil(t, got.CompletedAt)
	assert.Equal(t, entities.ClaimStatusMissingInfo, c.Status)
}

func TestApplyTransition_CompletionStamp(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	c := entities.Claim{Status: entities.ClaimStatusMoneyReleased}

	got, err := ApplyTransition(c, entities.ClaimStatusCompleted, now)
	require.NoError(t, err)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, now, *got.CompletedAt)

	_, err = ApplyTransition(got, entities.ClaimStatusMissingInfo, now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestApplyTransition_RejectedLeavesClaim(t *testing.T) {
	c := entities.Claim{Status: entities.ClaimStatusMissingInfo}
	got, err := ApplyTransition(c, entities.ClaimStatusCompleted, time.Now())
	require.Error(t, err)
	assert.Equal(t, entities.Claim{}, got)
	assert.Equal(t, entities.ClaimStatusMissingInfo, c.Status)
}

func TestFullHappyPath(t *testing.T) {
	path := []entities.ClaimStatus{
		entities.ClaimStatusContractorReview,
		entities.ClaimStatusSupplementSent,
		entities.ClaimStatusSupplementReceived,
		entities.ClaimStatusCounterargumentSubmitted,
		entities.ClaimStatusEscalated,
		entities.ClaimStatusRebuttalPosted,
		entities.ClaimStatusFinalInvoiceSent,
		entities.ClaimStatusFinalInvoiceReceived,
		entities.ClaimStatusMoneyReleased,
		entities.ClaimStatusCompleted,
	}
	c := entities.Claim{Status: InitialClaimStatus}
	now := time.Now().UTC()
	for _, to := range path {
		var err error
		c, err = ApplyTransition(c, to, now)
		require.NoError(t, err, "to %s", to)
	}
	assert.Equal(t, entities.ClaimStatusCompleted, c.Status)
	assert.NotNil(t, c.CompletedAt)
}
