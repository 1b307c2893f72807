package interfaces

import (
	"context"
	"errors"
	"supplement_tracker/internal/domain/entities"
)

// ErrConcurrentModification is returned when a claim changed between read and write.
var ErrConcurrentModification = errors.New("claim was modified concurrently")

// IClaimRepository abstracts DynamoDB persistence for Claim.
//
// Writes are conditional on the version read by the caller, which is how the service guarantees
// at most one mutation per claim at a time:
//   - Update writes the claim alone (status changes, unit updates, recalculation)
//   - UpdateWithSupplement writes the claim and one supplement atomically (supplement decisions)
//   - AddSupplement stores a new supplement together with the claim that now lists it
//   - RemoveDraftSupplement deletes a draft supplement together with the claim that no longer lists it,
//     and reports false when the supplement is no longer a draft
//
// Every supplement write goes through the claim, so the supplement ids and sequence counter kept on
// the claim are authoritative for the version that was read.
//
// Reads return the zero Claim when the id does not exist.

type IClaimRepository interface {
	Create(ctx context.Context, c entities.Claim) (entities.Claim, error)
	GetByID(ctx context.Context, id string) (entities.Claim, error)
	List(ctx context.Context) ([]entities.Claim, error)
	Update(ctx context.Context, c entities.Claim, expectedVersion int64) (entities.Claim, error)
	UpdateWithSupplement(ctx context.Context, c entities.Claim, expectedVersion int64, s entities.Supplement) (entities.Claim, error)
	AddSupplement(ctx context.Context, c entities.Claim, expectedVersion int64, s entities.Supplement) (entities.Claim, error)
	RemoveDraftSupplement(ctx context.Context, c entities.Claim, expectedVersion int64, supplementID string) (bool, error)
}
