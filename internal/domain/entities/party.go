package entities

import "time"

// PartyRole tells whether a party bills the claim (contractor) or earns commission on it (estimator).
type PartyRole string

const (
	PartyRoleContractor PartyRole = "contractor"
	PartyRoleEstimator  PartyRole = "estimator"
)

// PartyRateConfig is the rate configuration exactly as stored.
//
// Values are decimal strings (e.g. "0.125"); an empty string means "not configured".
// DefaultRate is the legacy single rate kept for parties created before the specialized rates existed.
type PartyRateConfig struct {
	DefaultRate      string `json:"default_rate" dynamodbav:"default_rate,omitempty"`
	ResidentialRate  string `json:"residential_rate" dynamodbav:"residential_rate,omitempty"`
	CommercialRate   string `json:"commercial_rate" dynamodbav:"commercial_rate,omitempty"`
	ReinspectionRate string `json:"reinspection_rate" dynamodbav:"reinspection_rate,omitempty"`
	FlatFee          string `json:"flat_fee" dynamodbav:"flat_fee,omitempty"`
}

// Party is a contractor or estimator with its commission configuration.
type Party struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      PartyRole       `json:"role"`
	Rates     PartyRateConfig `json:"rates"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RateProfile is the normalized form of PartyRateConfig. A nil field is "not configured";
// zero is a real configured rate.
type RateProfile struct {
	DefaultRate      *float64 `json:"default_rate,omitempty"`
	ResidentialRate  *float64 `json:"residential_rate,omitempty"`
	CommercialRate   *float64 `json:"commercial_rate,omitempty"`
	ReinspectionRate *float64 `json:"reinspection_rate,omitempty"`
	FlatFee          *float64 `json:"flat_fee,omitempty"`
}
