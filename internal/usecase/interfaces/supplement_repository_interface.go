package interfaces

import (
	"context"
	"supplement_tracker/internal/domain/entities"
)

// ISupplementRepository abstracts DynamoDB persistence for Supplement.
//
// Both reads are strongly consistent. ListByIDs takes the ids a claim lists and returns them ordered
// by sequence; ids that no longer exist are skipped. Writes go through IClaimRepository.

type ISupplementRepository interface {
	GetByID(ctx context.Context, id string) (entities.Supplement, error)
	ListByIDs(ctx context.Context, ids []string) ([]entities.Supplement, error)
}
