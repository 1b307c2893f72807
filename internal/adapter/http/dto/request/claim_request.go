package request

import (
	"strings"

	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/usecase"
)

// CreateClaimRequest opens a claim. InitialValue is a pointer so a missing value is told apart
// from an explicit zero.
type CreateClaimRequest struct {
	ClaimNumber      string   `json:"claim_number" binding:"required"`
	InsuredName      string   `json:"insured_name"`
	InsuranceCompany string   `json:"insurance_company"`
	ContractorID     string   `json:"contractor_id"`
	EstimatorID      string   `json:"estimator_id"`
	JobType          string   `json:"job_type" binding:"required"`
	PropertyType     string   `json:"property_type"`
	InitialValue     *float64 `json:"initial_value" binding:"required"`
	TotalUnits       float64  `json:"total_units"`
}

func (r CreateClaimRequest) ToNewClaim(actor string) usecase.NewClaim {
	var initial float64
	if r.InitialValue != nil {
		initial = *r.InitialValue
	}
	return usecase.NewClaim{
		ClaimNumber:      r.ClaimNumber,
		InsuredName:      r.InsuredName,
		InsuranceCompany: r.InsuranceCompany,
		ContractorID:     r.ContractorID,
		EstimatorID:      r.EstimatorID,
		JobType:          entities.JobType(normalizeEnum(r.JobType)),
		PropertyType:     entities.PropertyType(normalizeEnum(r.PropertyType)),
		InitialValue:     initial,
		TotalUnits:       r.TotalUnits,
		Actor:            actor,
	}
}

type ChangeClaimStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ChangeClaimStatusRequest) ClaimStatus() entities.ClaimStatus {
	return entities.ClaimStatus(normalizeEnum(r.Status))
}

type UpdateUnitsRequest struct {
	TotalUnits *float64 `json:"total_units" binding:"required"`
}

// normalizeEnum accepts "Final Invoice", "final-invoice" and "final_invoice" alike.
func normalizeEnum(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(v)
}
