package entities

import "time"

// ClaimStatus is the workflow position of a claim.
//
// The set is closed: anything outside the constants below is rejected by the workflow package.

type ClaimStatus string

const (
	ClaimStatusMissingInfo              ClaimStatus = "missing_info"
	ClaimStatusContractorReview         ClaimStatus = "contractor_review"
	ClaimStatusSupplementSent           ClaimStatus = "supplement_sent"
	ClaimStatusSupplementReceived       ClaimStatus = "supplement_received"
	ClaimStatusCounterargumentSubmitted ClaimStatus = "counterargument_submitted"
	ClaimStatusEscalated                ClaimStatus = "escalated"
	ClaimStatusContractorAdvance        ClaimStatus = "contractor_advance"
	ClaimStatusWaitingOnBuild           ClaimStatus = "waiting_on_build"
	ClaimStatusLineItemsConfirmed       ClaimStatus = "line_items_confirmed"
	ClaimStatusRebuttalPosted           ClaimStatus = "rebuttal_posted"
	ClaimStatusFinalInvoiceSent         ClaimStatus = "final_invoice_sent"
	ClaimStatusFinalInvoiceReceived     ClaimStatus = "final_invoice_received"
	ClaimStatusMoneyReleased            ClaimStatus = "money_released"
	ClaimStatusWorkSuspended            ClaimStatus = "work_suspended"
	ClaimStatusCompleted                ClaimStatus = "completed"
)

// JobType is the user-declared kind of work behind a claim.
type JobType string

const (
	JobTypeSupplement   JobType = "supplement"
	JobTypeReinspection JobType = "reinspection"
	JobTypeEstimate     JobType = "estimate"
	JobTypeFinalInvoice JobType = "final_invoice"
)

// PropertyType selects between residential and commercial rates.
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeCommercial  PropertyType = "commercial"
)

// ClaimMetrics are the money figures derived from the initial value and the approved supplements.
type ClaimMetrics struct {
	CurrentTotalValue  float64 `json:"current_total_value" dynamodbav:"current_total_value"`
	TotalIncrease      float64 `json:"total_increase" dynamodbav:"total_increase"`
	PercentageIncrease float64 `json:"percentage_increase" dynamodbav:"percentage_increase"`
	UnitPrice          float64 `json:"unit_price" dynamodbav:"unit_price"`
}

// Claim is the aggregate root tracked through the supplement workflow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version is bumped on every write and used as an optimistic lock, so two concurrent
//     mutations of the same claim cannot interleave.
//   - supplement_ids and last_supplement_sequence index the claim's supplements; they change only
//     in the same transaction that creates or deletes a supplement.
//
// Monetary representation:
//   - InitialValue is the replacement-cost value the insurer started from.
//   - Metrics and Commission are always derived, never edited directly.
type Claim struct {
	ID               string       `json:"id"`
	ClaimNumber      string       `json:"claim_number"`
	InsuredName      string       `json:"insured_name"`
	InsuranceCompany string       `json:"insurance_company"`
	ContractorID     string       `json:"contractor_id"`
	EstimatorID      string       `json:"estimator_id"`
	JobType          JobType      `json:"job_type"`
	PropertyType     PropertyType `json:"property_type"`

	InitialValue float64 `json:"initial_value"`
	// TotalUnits is the measured scope of work (roof squares).
	TotalUnits float64      `json:"total_units"`
	Metrics    ClaimMetrics `json:"metrics"`

	Commission CommissionResult `json:"commission"`

	Status          ClaimStatus `json:"status"`
	StatusChangedAt time.Time   `json:"status_changed_at"`
	LastActivityAt  time.Time   `json:"last_activity_at"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`

	SupplementIDs          []string `json:"supplement_ids,omitempty"`
	LastSupplementSequence int      `json:"last_supplement_sequence"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
