package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"supplement_tracker/internal/domain/calculation"
	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/domain/workflow"
	"supplement_tracker/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrClaimNotFound       = errors.New("claim not found")
	ErrInvalidClaimID      = errors.New("invalid claim id")
	ErrInvalidClaimNumber  = errors.New("invalid claim number")
	ErrInvalidInitialValue = errors.New("invalid initial value")
	ErrInvalidTotalUnits   = errors.New("invalid total units")
	ErrInvalidJobType      = errors.New("invalid job type")
	ErrInvalidPropertyType = errors.New("invalid property type")
)

// NewClaim carries the facts a claim is opened with.
type NewClaim struct {
	ClaimNumber      string
	InsuredName      string
	InsuranceCompany string
	ContractorID     string
	EstimatorID      string
	JobType          entities.JobType
	PropertyType     entities.PropertyType
	InitialValue     float64
	TotalUnits       float64
	Actor            string
}

// IClaimUseCase exposes the claim workflow.
//
// Every mutation is written in a single conditional repository call, so a rejected transition or
// an invalid input leaves the stored claim untouched:
//   - ChangeStatus validates against the claim state machine before writing
//   - Recalculate and UpdateUnits rebuild metrics and commission from the full supplement set

type IClaimUseCase interface {
	CreateClaim(ctx context.Context, in NewClaim) (entities.Claim, error)
	GetByID(ctx context.Context, id string) (entities.Claim, error)
	List(ctx context.Context) ([]entities.Claim, error)
	ChangeStatus(ctx context.Context, claimID string, to entities.ClaimStatus, actor string) (entities.Claim, error)
	AllowedTransitions(ctx context.Context, claimID string) ([]entities.ClaimStatus, error)
	Recalculate(ctx context.Context, claimID string, actor string) (entities.Claim, error)
	UpdateUnits(ctx context.Context, claimID string, totalUnits float64, actor string) (entities.Claim, error)
}

type ClaimUseCase struct {
	repo        interfaces.IClaimRepository
	supplements interfaces.ISupplementRepository
	parties     interfaces.IPartyRepository
	audit       interfaces.IAuditRecorder
	notifier    interfaces.INotifier
	now         func() time.Time
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(
	repo interfaces.IClaimRepository,
	supplements interfaces.ISupplementRepository,
	parties interfaces.IPartyRepository,
	audit interfaces.IAuditRecorder,
	notifier interfaces.INotifier,
) *ClaimUseCase {
	return &ClaimUseCase{
		repo:        repo,
		supplements: supplements,
		parties:     parties,
		audit:       audit,
		notifier:    notifier,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *ClaimUseCase) CreateClaim(ctx context.Context, in NewClaim) (entities.Claim, error) {
	in.ClaimNumber = strings.TrimSpace(in.ClaimNumber)
	if in.ClaimNumber == "" {
		return entities.Claim{}, ErrInvalidClaimNumber
	}
	if err := calculation.CheckAmount("initial value", in.InitialValue); err != nil {
		return entities.Claim{}, fmt.Errorf("%w: %v", ErrInvalidInitialValue, err)
	}
	if err := calculation.CheckAmount("total units", in.TotalUnits); err != nil {
		return entities.Claim{}, fmt.Errorf("%w: %v", ErrInvalidTotalUnits, err)
	}
	if !calculation.ValidJobType(in.JobType) {
		return entities.Claim{}, ErrInvalidJobType
	}
	if in.PropertyType == "" {
		in.PropertyType = entities.PropertyTypeResidential
	}
	if !calculation.ValidPropertyType(in.PropertyType) {
		return entities.Claim{}, ErrInvalidPropertyType
	}

	now := u.now()
	c := entities.Claim{
		ID:               uuid.NewString(),
		ClaimNumber:      in.ClaimNumber,
		InsuredName:      strings.TrimSpace(in.InsuredName),
		InsuranceCompany: strings.TrimSpace(in.InsuranceCompany),
		ContractorID:     strings.TrimSpace(in.ContractorID),
		EstimatorID:      strings.TrimSpace(in.EstimatorID),
		JobType:          in.JobType,
		PropertyType:     in.PropertyType,
		InitialValue:     calculation.Round2(in.InitialValue),
		TotalUnits:       in.TotalUnits,
		Status:           workflow.InitialClaimStatus,
		StatusChangedAt:  now,
		LastActivityAt:   now,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	contractor, estimator, err := claimProfiles(ctx, u.parties, c)
	if err != nil {
		return entities.Claim{}, err
	}
	c, err = calculation.Recalculate(c, nil, contractor, estimator)
	if err != nil {
		return entities.Claim{}, err
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		zap.L().Error("[claim][usecase] create failed", zap.String("claim_number", c.ClaimNumber), zap.Error(err))
		return entities.Claim{}, err
	}
	zap.L().Info("[claim][usecase] claim created",
		zap.String("claim_id", created.ID),
		zap.String("claim_number", created.ClaimNumber),
		zap.Float64("initial_value", created.InitialValue),
	)

	recordAudit(ctx, u.audit, entities.AuditEntry{
		EntityType: entities.AuditEntityClaim,
		EntityID:   created.ID,
		ClaimID:    created.ID,
		Action:     "create",
		Actor:      in.Actor,
		NewValues: map[string]any{
			"status":        string(created.Status),
			"initial_value": created.InitialValue,
			"job_type":      string(created.JobType),
			"property_type": string(created.PropertyType),
		},
	})
	return created, nil
}

func (u *ClaimUseCase) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Claim{}, ErrInvalidClaimID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	if c.ID == "" {
		return entities.Claim{}, ErrClaimNotFound
	}
	return c, nil
}

func (u *ClaimUseCase) List(ctx context.Context) ([]entities.Claim, error) {
	return u.repo.List(ctx)
}

func (u *ClaimUseCase) ChangeStatus(ctx context.Context, claimID string, to entities.ClaimStatus, actor string) (entities.Claim, error) {
	current, err := u.GetByID(ctx, claimID)
	if err != nil {
		return entities.Claim{}, err
	}

	next, err := workflow.ApplyTransition(current, to, u.now())
	if err != nil {
		zap.L().Info("[claim][usecase] transition rejected",
			zap.String("claim_id", current.ID),
			zap.String("from", string(current.Status)),
			zap.String("to", string(to)),
			zap.Error(err),
		)
		return entities.Claim{}, err
	}
	next.UpdatedAt = next.StatusChangedAt

	saved, err := u.repo.Update(ctx, next, current.Version)
	if err != nil {
		zap.L().Error("[claim][usecase] status update failed", zap.String("claim_id", current.ID), zap.Error(err))
		return entities.Claim{}, err
	}
	zap.L().Info("[claim][usecase] status changed",
		zap.String("claim_id", saved.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(saved.Status)),
	)

	recordAudit(ctx, u.audit, entities.AuditEntry{
		EntityType: entities.AuditEntityClaim,
		EntityID:   saved.ID,
		ClaimID:    saved.ID,
		Action:     "status_change",
		Actor:      actor,
		OldValues:  map[string]any{"status": string(current.Status)},
		NewValues:  map[string]any{"status": string(saved.Status)},
	})
	notify(ctx, u.notifier, entities.Notification{
		Kind:       entities.NotificationClaimStatusChanged,
		ClaimID:    saved.ID,
		Subject:    fmt.Sprintf("Claim %s moved to %s", saved.ClaimNumber, saved.Status),
		Fields:     map[string]string{"from": string(current.Status), "to": string(saved.Status)},
		OccurredAt: saved.StatusChangedAt,
	})
	if saved.Status == entities.ClaimStatusFinalInvoiceReceived {
		notify(ctx, u.notifier, entities.Notification{
			Kind:    entities.NotificationContractorBillingDue,
			ClaimID: saved.ID,
			Subject: fmt.Sprintf("Contractor billing due for claim %s", saved.ClaimNumber),
			Fields: map[string]string{
				"contractor_id": saved.ContractorID,
				"amount":        fmt.Sprintf("%.2f", saved.Commission.Contractor.Total),
			},
			OccurredAt: saved.StatusChangedAt,
		})
	}
	return saved, nil
}

func (u *ClaimUseCase) AllowedTransitions(ctx context.Context, claimID string) ([]entities.ClaimStatus, error) {
	c, err := u.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	return workflow.AllowedTransitions(c.Status), nil
}

func (u *ClaimUseCase) Recalculate(ctx context.Context, claimID string, actor string) (entities.Claim, error) {
	current, err := u.GetByID(ctx, claimID)
	if err != nil {
		return entities.Claim{}, err
	}
	return u.recalculateAndSave(ctx, current, current, "recalculate", actor)
}

func (u *ClaimUseCase) UpdateUnits(ctx context.Context, claimID string, totalUnits float64, actor string) (entities.Claim, error) {
	if err := calculation.CheckAmount("total units", totalUnits); err != nil {
		return entities.Claim{}, fmt.Errorf("%w: %v", ErrInvalidTotalUnits, err)
	}
	current, err := u.GetByID(ctx, claimID)
	if err != nil {
		return entities.Claim{}, err
	}
	next := current
	next.TotalUnits = totalUnits
	return u.recalculateAndSave(ctx, current, next, "update_units", actor)
}

// recalculateAndSave rebuilds next from the full supplement set and writes it against the
// version of current.
func (u *ClaimUseCase) recalculateAndSave(ctx context.Context, current, next entities.Claim, action, actor string) (entities.Claim, error) {
	supplements, err := u.supplements.ListByIDs(ctx, current.SupplementIDs)
	if err != nil {
		return entities.Claim{}, err
	}
	contractor, estimator, err := claimProfiles(ctx, u.parties, next)
	if err != nil {
		return entities.Claim{}, err
	}
	next, err = calculation.Recalculate(next, supplements, contractor, estimator)
	if err != nil {
		return entities.Claim{}, err
	}
	now := u.now()
	next.LastActivityAt = now
	next.UpdatedAt = now

	saved, err := u.repo.Update(ctx, next, current.Version)
	if err != nil {
		zap.L().Error("[claim][usecase] recalculation write failed", zap.String("claim_id", current.ID), zap.Error(err))
		return entities.Claim{}, err
	}
	zap.L().Info("[claim][usecase] claim recalculated",
		zap.String("claim_id", saved.ID),
		zap.Float64("current_total_value", saved.Metrics.CurrentTotalValue),
		zap.String("commission_type", string(saved.Commission.Type)),
	)

	oldValues := metricsValues(current)
	newValues := metricsValues(saved)
	if current.TotalUnits != saved.TotalUnits {
		oldValues["total_units"] = current.TotalUnits
		newValues["total_units"] = saved.TotalUnits
	}
	recordAudit(ctx, u.audit, entities.AuditEntry{
		EntityType: entities.AuditEntityClaim,
		EntityID:   saved.ID,
		ClaimID:    saved.ID,
		Action:     action,
		Actor:      actor,
		OldValues:  oldValues,
		NewValues:  newValues,
	})
	return saved, nil
}
