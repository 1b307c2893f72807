package entities

import "time"

type SupplementStatus string

const (
	SupplementStatusDraft     SupplementStatus = "draft"
	SupplementStatusSubmitted SupplementStatus = "submitted"
	SupplementStatusPending   SupplementStatus = "pending"
	SupplementStatusApproved  SupplementStatus = "approved"
	SupplementStatusDenied    SupplementStatus = "denied"
	SupplementStatusPartial   SupplementStatus = "partial"
)

// CountsTowardTotal reports whether a supplement in this status adds to the claim value.
func (s SupplementStatus) CountsTowardTotal() bool {
	return s == SupplementStatusApproved || s == SupplementStatusPartial
}

// Supplement is a dollar request attached to a claim.
//
// Storage model (DynamoDB):
//   - PK: id
//   - the owning claim lists the ids (Claim.SupplementIDs); reads by claim go through that list
//
// SquaresBefore/SquaresAfter are the insurer's measurements around a reinspection; both must be
// present for the pair to mean anything.
type Supplement struct {
	ID             string           `json:"id"`
	ClaimID        string           `json:"claim_id"`
	Sequence       int              `json:"sequence"`
	Description    string           `json:"description"`
	Amount         float64          `json:"amount"`
	ApprovedAmount *float64         `json:"approved_amount,omitempty"`
	Status         SupplementStatus `json:"status"`
	SquaresBefore  *float64         `json:"squares_before,omitempty"`
	SquaresAfter   *float64         `json:"squares_after,omitempty"`
	SubmittedAt    *time.Time       `json:"submitted_at,omitempty"`
	DecidedAt      *time.Time       `json:"decided_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
