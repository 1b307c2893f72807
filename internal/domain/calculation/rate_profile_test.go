package calculation

import (
	"testing"

	"supplement_tracker/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestBuildRateProfile(t *testing.T) {
	p, err := BuildRateProfile(entities.PartyRateConfig{
		DefaultRate:     "0.10",
		ResidentialRate: " 0.125 ",
		CommercialRate:  "0",
		FlatFee:         "150",
	})
	require.NoError(t, err)

	require.NotNil(t, p.DefaultRate)
	assert.Equal(t, 0.10, *p.DefaultRate)
	require.NotNil(t, p.ResidentialRate)
	assert.Equal(t, 0.125, *p.ResidentialRate)
	require.NotNil(t, p.CommercialRate, "configured zero must not be treated as missing")
	assert.Equal(t, 0.0, *p.CommercialRate)
	assert.Nil(t, p.ReinspectionRate)
	require.NotNil(t, p.FlatFee)
	assert.Equal(t, 150.0, *p.FlatFee)
}

func TestBuildRateProfile_Empty(t *testing.T) {
	p, err := BuildRateProfile(entities.PartyRateConfig{})
	require.NoError(t, err)
	assert.Equal(t, entities.RateProfile{}, p)
}

func TestBuildRateProfile_Invalid(t *testing.T) {
	cases := map[string]entities.PartyRateConfig{
		"not a number": {DefaultRate: "ten percent"},
		"negative":     {ReinspectionRate: "-0.05"},
		"nan":          {FlatFee: "NaN"},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := BuildRateProfile(cfg)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestFirstConfigured(t *testing.T) {
	assert.Equal(t, 0.2, FirstConfigured(ptr(0.2), ptr(0.1)))
	assert.Equal(t, 0.1, FirstConfigured(nil, ptr(0.1)))
	assert.Equal(t, 0.0, FirstConfigured(ptr(0), ptr(0.1)))
	assert.Equal(t, 0.0, FirstConfigured(nil, nil))
	assert.Equal(t, 0.0, FirstConfigured())
}
