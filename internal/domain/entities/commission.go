package entities

// CommissionType is the classified commission event of a claim.
type CommissionType string

const (
	CommissionTypeReinspection CommissionType = "reinspection"
	CommissionTypeSupplement   CommissionType = "supplement"
	CommissionTypeEstimate     CommissionType = "estimate"
	CommissionTypeFinalInvoice CommissionType = "final_invoice"
)

// CommissionLine is one party's share of a commission result.
type CommissionLine struct {
	Rate             float64 `json:"rate" dynamodbav:"rate"`
	FlatFee          float64 `json:"flat_fee" dynamodbav:"flat_fee"`
	PercentageAmount float64 `json:"percentage_amount" dynamodbav:"percentage_amount"`
	Total            float64 `json:"total" dynamodbav:"total"`
}

// CommissionResult keeps the provenance of every amount so reports can show how it was reached.
//
// Contractor.Total is what the contractor is billed; Estimator.Total is the estimator commission.
type CommissionResult struct {
	Type       CommissionType `json:"type" dynamodbav:"type"`
	BaseAmount float64        `json:"base_amount" dynamodbav:"base_amount"`
	Contractor CommissionLine `json:"contractor" dynamodbav:"contractor"`
	Estimator  CommissionLine `json:"estimator" dynamodbav:"estimator"`
}
