package response

import (
	"time"

	"supplement_tracker/internal/domain/entities"
)

type RateConfigResponse struct {
	DefaultRate      string `json:"default_rate,omitempty"`
	ResidentialRate  string `json:"residential_rate,omitempty"`
	CommercialRate   string `json:"commercial_rate,omitempty"`
	ReinspectionRate string `json:"reinspection_rate,omitempty"`
	FlatFee          string `json:"flat_fee,omitempty"`
}

type PartyResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name,omitempty"`
	Email     string             `json:"email,omitempty"`
	Role      string             `json:"role"`
	Rates     RateConfigResponse `json:"rates"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func FromParty(p entities.Party) PartyResponse {
	return PartyResponse{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
		Role:  string(p.Role),
		Rates: RateConfigResponse{
			DefaultRate:      p.Rates.DefaultRate,
			ResidentialRate:  p.Rates.ResidentialRate,
			CommercialRate:   p.Rates.CommercialRate,
			ReinspectionRate: p.Rates.ReinspectionRate,
			FlatFee:          p.Rates.FlatFee,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// RateProfileResponse is a party's rates as the calculator reads them. Unset rates are omitted and
// fall back to default_rate.
type RateProfileResponse struct {
	PartyID          string   `json:"party_id"`
	DefaultRate      *float64 `json:"default_rate,omitempty"`
	ResidentialRate  *float64 `json:"residential_rate,omitempty"`
	CommercialRate   *float64 `json:"commercial_rate,omitempty"`
	ReinspectionRate *float64 `json:"reinspection_rate,omitempty"`
	FlatFee          *float64 `json:"flat_fee,omitempty"`
}

func FromRateProfile(partyID string, rp entities.RateProfile) RateProfileResponse {
	return RateProfileResponse{
		PartyID:          partyID,
		DefaultRate:      rp.DefaultRate,
		ResidentialRate:  rp.ResidentialRate,
		CommercialRate:   rp.CommercialRate,
		ReinspectionRate: rp.ReinspectionRate,
		FlatFee:          rp.FlatFee,
	}
}
