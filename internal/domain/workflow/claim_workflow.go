package workflow

import (
	"time"

	"supplement_tracker/internal/domain/entities"
)

// claimTransitions is the claim lifecycle.
//
// work_suspended resumes at missing_info or contractor_review only: a suspended claim goes back
// to triage instead of picking up where it stopped.
var claimTransitions = map[entities.ClaimStatus][]entities.ClaimStatus{
	entities.ClaimStatusMissingInfo: {
		entities.ClaimStatusContractorReview,
		entities.ClaimStatusWorkSuspended,
	},
	entities.ClaimStatusContractorReview: {
		entities.ClaimStatusSupplementSent,
		entities.ClaimStatusMissingInfo,
		entities.ClaimStatusWorkSuspended,
	},
	entities.ClaimStatusSupplementSent: {
		entities.ClaimStatusSupplementReceived,
		entities.ClaimStatusWorkSuspended,
	},
	entities.ClaimStatusSupplementReceived: {
		entities.ClaimStatusCounterargumentSubmitted,
		entities.ClaimStatusContractorAdvance,
		entities.ClaimStatusWaitingOnBuild,
		entities.ClaimStatusWorkSuspended,
	},
	entities.ClaimStatusCounterargumentSubmitted: {
		entities.ClaimStatusEscalated,
		entities.ClaimStatusSupplementReceived,
		entities.ClaimStatusRebuttalPosted,
		entities.ClaimStatusWorkSuspended,
	},
	entities.ClaimStatusEscalated: {
		entities.ClaimStatusSupplementReceived,
		entities.ClaimStatusRebuttalPosted,
		entities.ClaimStatusWorkSuspended,
	},
	entities.ClaimStatusContractorAdvance: {
		entities.ClaimStatusWaitingOnBuild,
		entities.ClaimStatusWorkSuspended,
	},
	entities.ClaimStatusWaitingOnBuild: {
		entities.ClaimStatusLineItemsConfirmed,
		entities.ClaimStatusWorkSuspended,
	},
	entities.ClaimStatusLineItemsConfirmed: {
		entities.ClaimStatusFinalInvoiceSent,
		entities.ClaimStatusWorkSuspended,
	},
	entities.ClaimStatusRebuttalPosted: {
		entities.ClaimStatusSupplementReceived,
		entities.ClaimStatusFinalInvoiceSent,
		entities.ClaimStatusWorkSuspended,
	},
	entities.ClaimStatusFinalInvoiceSent: {
		entities.ClaimStatusFinalInvoiceReceived,
		entities.ClaimStatusWorkSuspended,
	},
	entities.ClaimStatusFinalInvoiceReceived: {
		entities.ClaimStatusMoneyReleased,
		entities.ClaimStatusWorkSuspended,
	},
	entities.ClaimStatusMoneyReleased: {
		entities.ClaimStatusCompleted,
	},
	entities.ClaimStatusWorkSuspended: {
		entities.ClaimStatusMissingInfo,
		entities.ClaimStatusContractorReview,
	},
	entities.ClaimStatusCompleted: {},
}

// Claims is the claim status machine.
var Claims = NewMachine("claim", claimTransitions)

// InitialClaimStatus is the status every new claim starts in.
const InitialClaimStatus = entities.ClaimStatusMissingInfo

// ValidateTransition checks a requested claim status change.
func ValidateTransition(current, requested entities.ClaimStatus) error {
	return Claims.Validate(current, requested)
}

// AllowedTransitions lists the legal next statuses of a claim.
func AllowedTransitions(current entities.ClaimStatus) []entities.ClaimStatus {
	return Claims.Next(current)
}

// ApplyTransition validates the change and returns the claim with the new status and stamps.
// On error the returned claim is the zero value and the input is left as it was.
//
// CompletedAt is only ever set here, on entering completed.
func ApplyTransition(c entities.Claim, to entities.ClaimStatus, now time.Time) (entities.Claim, error) {
	if err := ValidateTransition(c.Status, to); err != nil {
		return entities.Claim{}, err
	}
	c.Status = to
	c.StatusChangedAt = now
	c.LastActivityAt = now
	if to == entities.ClaimStatusCompleted {
		completed := now
		c.CompletedAt = &completed
	}
	return c, nil
}
