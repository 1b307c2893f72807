package interfaces

import (
	"context"
	"supplement_tracker/internal/domain/entities"
)

// IPartyRepository abstracts DynamoDB persistence for contractors and estimators.

type IPartyRepository interface {
	Upsert(ctx context.Context, p entities.Party) (entities.Party, error)
	GetByID(ctx context.Context, id string) (entities.Party, error)
}
