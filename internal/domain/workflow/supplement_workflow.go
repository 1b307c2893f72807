package workflow

import "supplement_tracker/internal/domain/entities"

// supplementTransitions covers submission, the insurer's decision and later corrections of it.
// A decided supplement may be decided again with the same outcome, e.g. an approval re-entered as a
// partial for the full amount.
var supplementTransitions = map[entities.SupplementStatus][]entities.SupplementStatus{
	entities.SupplementStatusDraft: {
		entities.SupplementStatusSubmitted,
	},
	entities.SupplementStatusSubmitted: {
		entities.SupplementStatusPending,
		entities.SupplementStatusApproved,
		entities.SupplementStatusPartial,
		entities.SupplementStatusDenied,
	},
	entities.SupplementStatusPending: {
		entities.SupplementStatusApproved,
		entities.SupplementStatusPartial,
		entities.SupplementStatusDenied,
	},
	entities.SupplementStatusApproved: {
		entities.SupplementStatusPending,
		entities.SupplementStatusApproved,
		entities.SupplementStatusPartial,
		entities.SupplementStatusDenied,
	},
	entities.SupplementStatusPartial: {
		entities.SupplementStatusPending,
		entities.SupplementStatusApproved,
		entities.SupplementStatusPartial,
		entities.SupplementStatusDenied,
	},
	entities.SupplementStatusDenied: {
		entities.SupplementStatusPending,
		entities.SupplementStatusApproved,
		entities.SupplementStatusPartial,
		entities.SupplementStatusDenied,
	},
}

// Supplements is the supplement status machine.
var Supplements = NewMachine("supplement", supplementTransitions)

// ValidateSupplementTransition checks a requested supplement status change.
func ValidateSupplementTransition(current, requested entities.SupplementStatus) error {
	return Supplements.Validate(current, requested)
}
