package response

import (
	"time"

	"supplement_tracker/internal/domain/entities"
)

type CommissionLineResponse struct {
	Rate             float64 `json:"rate"`
	FlatFee          float64 `json:"flat_fee"`
	PercentageAmount float64 `json:"percentage_amount"`
	Total            float64 `json:"total"`
}

// CommissionResponse keeps the full breakdown so reports can show how each total was reached.
type CommissionResponse struct {
	Type              string                 `json:"type"`
	BaseAmount        float64                `json:"base_amount"`
	ContractorBilling float64                `json:"contractor_billing"`
	EstimatorAmount   float64                `json:"estimator_commission"`
	Contractor        CommissionLineResponse `json:"contractor"`
	Estimator         CommissionLineResponse `json:"estimator"`
}

type ClaimMetricsResponse struct {
	InitialValue       float64 `json:"initial_value"`
	CurrentTotalValue  float64 `json:"current_total_value"`
	TotalIncrease      float64 `json:"total_increase"`
	PercentageIncrease float64 `json:"percentage_increase"`
	UnitPrice          float64 `json:"unit_price"`
	TotalUnits         float64 `json:"total_units"`
}

type ClaimResponse struct {
	ID               string               `json:"id"`
	ClaimNumber      string               `json:"claim_number"`
	InsuredName      string               `json:"insured_name,omitempty"`
	InsuranceCompany string               `json:"insurance_company,omitempty"`
	ContractorID     string               `json:"contractor_id,omitempty"`
	EstimatorID      string               `json:"estimator_id,omitempty"`
	JobType          string               `json:"job_type"`
	PropertyType     string               `json:"property_type"`
	Status           string               `json:"status"`
	Metrics          ClaimMetricsResponse `json:"metrics"`
	Commission       CommissionResponse   `json:"commission"`
	StatusChangedAt  time.Time            `json:"status_changed_at"`
	LastActivityAt   time.Time            `json:"last_activity_at"`
	CompletedAt      *time.Time           `json:"completed_at,omitempty"`
	Version          int64                `json:"version"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

type ClaimTransitionsResponse struct {
	ClaimID             string   `json:"claim_id"`
	Status              string   `json:"status"`
	AllowedNextStatuses []string `json:"allowed_next_statuses"`
	Terminal            bool     `json:"terminal"`
}

func FromCommission(r entities.CommissionResult) CommissionResponse {
	return CommissionResponse{
		Type:              string(r.Type),
		BaseAmount:        r.BaseAmount,
		ContractorBilling: r.Contractor.Total,
		EstimatorAmount:   r.Estimator.Total,
		Contractor:        fromLine(r.Contractor),
		Estimator:         fromLine(r.Estimator),
	}
}

func fromLine(l entities.CommissionLine) CommissionLineResponse {
	return CommissionLineResponse{
		Rate:             l.Rate,
		FlatFee:          l.FlatFee,
		PercentageAmount: l.PercentageAmount,
		Total:            l.Total,
	}
}

func FromClaim(c entities.Claim) ClaimResponse {
	return ClaimResponse{
		ID:               c.ID,
		ClaimNumber:      c.ClaimNumber,
		InsuredName:      c.InsuredName,
		InsuranceCompany: c.InsuranceCompany,
		ContractorID:     c.ContractorID,
		EstimatorID:      c.EstimatorID,
		JobType:          string(c.JobType),
		PropertyType:     string(c.PropertyType),
		Status:           string(c.Status),
		Metrics: ClaimMetricsResponse{
			InitialValue:       c.InitialValue,
			CurrentTotalValue:  c.Metrics.CurrentTotalValue,
			TotalIncrease:      c.Metrics.TotalIncrease,
			PercentageIncrease: c.Metrics.PercentageIncrease,
			UnitPrice:          c.Metrics.UnitPrice,
			TotalUnits:         c.TotalUnits,
		},
		Commission:      FromCommission(c.Commission),
		StatusChangedAt: c.StatusChangedAt,
		LastActivityAt:  c.LastActivityAt,
		CompletedAt:     c.CompletedAt,
		Version:         c.Version,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func FromClaims(cs []entities.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClaim(c))
	}
	return out
}

func FromTransitions(c entities.Claim, next []entities.ClaimStatus) ClaimTransitionsResponse {
	allowed := make([]string, 0, len(next))
	for _, s := range next {
		allowed = append(allowed, string(s))
	}
	return ClaimTransitionsResponse{
		ClaimID:             c.ID,
		Status:              string(c.Status),
		AllowedNextStatuses: allowed,
		Terminal:            len(allowed) == 0,
	}
}
