package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"supplement_tracker/internal/domain/calculation"
	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPartyNotFound    = errors.New("party not found")
	ErrInvalidPartyID   = errors.New("invalid party id")
	ErrInvalidPartyRole = errors.New("invalid party role")
)

// IPartyUseCase manages contractor and estimator rate configuration.

type IPartyUseCase interface {
	Upsert(ctx context.Context, p entities.Party, actor string) (entities.Party, error)
	GetByID(ctx context.Context, id string) (entities.Party, error)
	RateProfile(ctx context.Context, id string) (entities.RateProfile, error)
}

type PartyUseCase struct {
	repo  interfaces.IPartyRepository
	audit interfaces.IAuditRecorder
	now   func() time.Time
}

var _ IPartyUseCase = (*PartyUseCase)(nil)

func NewPartyUseCase(repo interfaces.IPartyRepository, audit interfaces.IAuditRecorder) *PartyUseCase {
	return &PartyUseCase{repo: repo, audit: audit, now: func() time.Time { return time.Now().UTC() }}
}

// Upsert stores a party after checking that its rates parse. The stored configuration keeps the
// raw strings so an unset rate stays distinguishable from a zero rate.
func (u *PartyUseCase) Upsert(ctx context.Context, p entities.Party, actor string) (entities.Party, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Party{}, ErrInvalidPartyID
	}
	if p.Role != entities.PartyRoleContractor && p.Role != entities.PartyRoleEstimator {
		return entities.Party{}, ErrInvalidPartyRole
	}
	p.Rates = trimRates(p.Rates)
	if _, err := calculation.BuildRateProfile(p.Rates); err != nil {
		return entities.Party{}, err
	}

	existing, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Party{}, err
	}
	now := u.now()
	p.CreatedAt = now
	if existing.ID != "" {
		p.CreatedAt = existing.CreatedAt
	}
	p.UpdatedAt = now

	saved, err := u.repo.Upsert(ctx, p)
	if err != nil {
		zap.L().Error("[party][usecase] upsert failed", zap.String("party_id", p.ID), zap.Error(err))
		return entities.Party{}, err
	}
	zap.L().Info("[party][usecase] party saved", zap.String("party_id", saved.ID), zap.String("role", string(saved.Role)))

	entry := entities.AuditEntry{
		EntityType: entities.AuditEntityParty,
		EntityID:   saved.ID,
		Action:     "upsert",
		Actor:      actor,
		NewValues:  rateValues(saved.Rates),
	}
	if existing.ID != "" {
		entry.OldValues = rateValues(existing.Rates)
	}
	recordAudit(ctx, u.audit, entry)
	return saved, nil
}

func (u *PartyUseCase) GetByID(ctx context.Context, id string) (entities.Party, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Party{}, ErrInvalidPartyID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Party{}, err
	}
	if p.ID == "" {
		return entities.Party{}, ErrPartyNotFound
	}
	return p, nil
}

func (u *PartyUseCase) RateProfile(ctx context.Context, id string) (entities.RateProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RateProfile{}, ErrInvalidPartyID
	}
	return resolveRateProfile(ctx, u.repo, id)
}

func trimRates(r entities.PartyRateConfig) entities.PartyRateConfig {
	return entities.PartyRateConfig{
		DefaultRate:      strings.TrimSpace(r.DefaultRate),
		ResidentialRate:  strings.TrimSpace(r.ResidentialRate),
		CommercialRate:   strings.TrimSpace(r.CommercialRate),
		ReinspectionRate: strings.TrimSpace(r.ReinspectionRate),
		FlatFee:          strings.TrimSpace(r.FlatFee),
	}
}

func rateValues(r entities.PartyRateConfig) map[string]any {
	return map[string]any{
		"default_rate":      r.DefaultRate,
		"residential_rate":  r.ResidentialRate,
		"commercial_rate":   r.CommercialRate,
		"reinspection_rate": r.ReinspectionRate,
		"flat_fee":          r.FlatFee,
	}
}
