package interfaces

import (
	"context"
	"supplement_tracker/internal/domain/entities"
)

// IBillingPaymentRepository abstracts DynamoDB persistence for BillingPayment.

type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByClaimID(ctx context.Context, claimID string) ([]entities.BillingPayment, error)
}
