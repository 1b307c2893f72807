package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"supplement_tracker/internal/domain/entities"
)

var ErrInvalidRateValue = errors.New("rate must be a number or a numeric string")

// RateValue accepts a JSON number, a numeric string or null and keeps the literal text, so
// "0.125" and 0.125 both end up as "0.125" and an absent rate stays empty.
type RateValue string

func (v *RateValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = RateValue(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidRateValue
	}
	*v = RateValue(n.String())
	return nil
}

type RateConfigRequest struct {
	DefaultRate      RateValue `json:"default_rate" swaggertype:"string"`
	ResidentialRate  RateValue `json:"residential_rate" swaggertype:"string"`
	CommercialRate   RateValue `json:"commercial_rate" swaggertype:"string"`
	ReinspectionRate RateValue `json:"reinspection_rate" swaggertype:"string"`
	FlatFee          RateValue `json:"flat_fee" swaggertype:"string"`
}

func (r RateConfigRequest) ToEntity() entities.PartyRateConfig {
	return entities.PartyRateConfig{
		DefaultRate:      string(r.DefaultRate),
		ResidentialRate:  string(r.ResidentialRate),
		CommercialRate:   string(r.CommercialRate),
		ReinspectionRate: string(r.ReinspectionRate),
		FlatFee:          string(r.FlatFee),
	}
}

type UpsertPartyRequest struct {
	Name  string            `json:"name"`
	Email string            `json:"email"`
	Role  string            `json:"role" binding:"required"`
	Rates RateConfigRequest `json:"rates"`
}

func (r UpsertPartyRequest) ToEntity(id string) entities.Party {
	return entities.Party{
		ID:    strings.TrimSpace(id),
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Role:  entities.PartyRole(normalizeEnum(r.Role)),
		Rates: r.Rates.ToEntity(),
	}
}
