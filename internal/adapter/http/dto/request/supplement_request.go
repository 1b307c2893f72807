package request

import (
	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/usecase"
)

// CreateSupplementRequest adds a supplement to a claim. The squares pair is optional and only
// meaningful when both sides are present.
type CreateSupplementRequest struct {
	Description   string   `json:"description"`
	Amount        float64  `json:"amount" binding:"required"`
	SquaresBefore *float64 `json:"squares_before"`
	SquaresAfter  *float64 `json:"squares_after"`
}

func (r CreateSupplementRequest) ToNewSupplement(actor string) usecase.NewSupplement {
	return usecase.NewSupplement{
		Description:   r.Description,
		Amount:        r.Amount,
		SquaresBefore: r.SquaresBefore,
		SquaresAfter:  r.SquaresAfter,
		Actor:         actor,
	}
}

type SupplementStatusRequest struct {
	Status         string   `json:"status" binding:"required"`
	ApprovedAmount *float64 `json:"approved_amount"`
}

func (r SupplementStatusRequest) ToDecision(actor string) usecase.SupplementDecision {
	return usecase.SupplementDecision{
		Status:         entities.SupplementStatus(normalizeEnum(r.Status)),
		ApprovedAmount: r.ApprovedAmount,
		Actor:          actor,
	}
}
