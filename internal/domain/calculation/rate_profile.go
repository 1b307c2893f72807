package calculation

import (
	"strings"

	"supplement_tracker/internal/domain/entities"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
)

// BuildRateProfile normalizes a stored rate configuration.
//
// Blank values stay nil. A configured "0" becomes a pointer to 0, which is a real rate and
// wins over the default in FirstConfigured.
func BuildRateProfile(cfg entities.PartyRateConfig) (entities.RateProfile, error) {
	var p entities.RateProfile
	fields := []struct {
		name string
		raw  string
		dst  **float64
	}{
		{"default_rate", cfg.DefaultRate, &p.DefaultRate},
		{"residential_rate", cfg.ResidentialRate, &p.ResidentialRate},
		{"commercial_rate", cfg.CommercialRate, &p.CommercialRate},
		{"reinspection_rate", cfg.ReinspectionRate, &p.ReinspectionRate},
		{"flat_fee", cfg.FlatFee, &p.FlatFee},
	}
	for _, f := range fields {
		v, err := parseOptional(f.name, f.raw)
		if err != nil {
			return entities.RateProfile{}, err
		}
		*f.dst = v
	}
	return p, nil
}

func parseOptional(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, eris.Wrapf(ErrInvalidInput, "%s: %q is not a number", name, raw)
	}
	if d.IsNegative() {
		return nil, eris.Wrapf(ErrInvalidInput, "%s: %s must not be negative", name, raw)
	}
	v := d.InexactFloat64()
	return &v, nil
}

// FirstConfigured walks rates in precedence order and returns the first one that is set.
// When none is set the result is 0.
func FirstConfigured(rates ...*float64) float64 {
	for _, r := range rates {
		if r != nil {
			return *r
		}
	}
	return 0
}
