package response

import (
	"time"

	"supplement_tracker/internal/domain/entities"
)

type SupplementResponse struct {
	ID             string     `json:"id"`
	ClaimID        string     `json:"claim_id"`
	Sequence       int        `json:"sequence"`
	Description    string     `json:"description,omitempty"`
	Amount         float64    `json:"amount"`
	ApprovedAmount *float64   `json:"approved_amount,omitempty"`
	Status         string     `json:"status"`
	SquaresBefore  *float64   `json:"squares_before,omitempty"`
	SquaresAfter   *float64   `json:"squares_after,omitempty"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SupplementDecisionResponse returns the supplement together with the claim it recomputed.
type SupplementDecisionResponse struct {
	Supplement SupplementResponse `json:"supplement"`
	Claim      ClaimResponse      `json:"claim"`
}

func FromSupplement(s entities.Supplement) SupplementResponse {
	return SupplementResponse{
		ID:             s.ID,
		ClaimID:        s.ClaimID,
		Sequence:       s.Sequence,
		Description:    s.Description,
		Amount:         s.Amount,
		ApprovedAmount: s.ApprovedAmount,
		Status:         string(s.Status),
		SquaresBefore:  s.SquaresBefore,
		SquaresAfter:   s.SquaresAfter,
		SubmittedAt:    s.SubmittedAt,
		DecidedAt:      s.DecidedAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromSupplements(ss []entities.Supplement) []SupplementResponse {
	out := make([]SupplementResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSupplement(s))
	}
	return out
}
