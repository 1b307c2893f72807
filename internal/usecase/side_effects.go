package usecase

import (
	"context"
	"time"

	"supplement_tracker/internal/domain/calculation"
	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// recordAudit stores an audit entry. A failure never undoes the mutation it describes.
func recordAudit(ctx context.Context, rec interfaces.IAuditRecorder, e entities.AuditEntry) {
	if rec == nil {
		return
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	}
	if err := rec.Record(ctx, e); err != nil {
		zap.L().Warn("[audit] record failed",
			zap.String("entity_type", e.EntityType),
			zap.String("entity_id", e.EntityID),
			zap.String("action", e.Action),
			zap.Error(err),
		)
	}
}

// notify hands a notification to the dispatcher; failures are logged and dropped.
func notify(ctx context.Context, n interfaces.INotifier, msg entities.Notification) {
	if n == nil {
		return
	}
	if msg.OccurredAt.IsZero() {
		msg.OccurredAt = time.Now().UTC()
	}
	if err := n.Notify(ctx, msg); err != nil {
		zap.L().Warn("[notification] dispatch failed",
			zap.String("kind", string(msg.Kind)),
			zap.String("claim_id", msg.ClaimID),
			zap.Error(err),
		)
	}
}

// resolveRateProfile loads a party and normalizes its rates. An empty id yields an empty
// profile, so a claim without an estimator simply earns no estimator commission.
func resolveRateProfile(ctx context.Context, repo interfaces.IPartyRepository, id string) (entities.RateProfile, error) {
	if id == "" {
		return entities.RateProfile{}, nil
	}
	if repo == nil {
		return entities.RateProfile{}, ErrPartyNotFound
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.RateProfile{}, err
	}
	if p.ID == "" {
		return entities.RateProfile{}, ErrPartyNotFound
	}
	return calculation.BuildRateProfile(p.Rates)
}

// claimProfiles resolves the contractor and estimator profiles of a claim.
func claimProfiles(ctx context.Context, repo interfaces.IPartyRepository, c entities.Claim) (contractor, estimator entities.RateProfile, err error) {
	contractor, err = resolveRateProfile(ctx, repo, c.ContractorID)
	if err != nil {
		return entities.RateProfile{}, entities.RateProfile{}, err
	}
	estimator, err = resolveRateProfile(ctx, repo, c.EstimatorID)
	if err != nil {
		return entities.RateProfile{}, entities.RateProfile{}, err
	}
	return contractor, estimator, nil
}

func metricsValues(c entities.Claim) map[string]any {
	return map[string]any{
		"current_total_value": c.Metrics.CurrentTotalValue,
		"total_increase":      c.Metrics.TotalIncrease,
		"percentage_increase": c.Metrics.PercentageIncrease,
		"unit_price":          c.Metrics.UnitPrice,
		"commission_type":     string(c.Commission.Type),
		"contractor_total":    c.Commission.Contractor.Total,
		"estimator_total":     c.Commission.Estimator.Total,
	}
}
