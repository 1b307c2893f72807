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
	ErrSupplementNotFound      = errors.New("supplement not found")
	ErrInvalidSupplementID     = errors.New("invalid supplement id")
	ErrInvalidSupplementAmount = errors.New("invalid supplement amount")
	ErrInvalidSquares          = errors.New("invalid roof squares")
	ErrInvalidApprovedAmount   = errors.New("invalid approved amount")
	ErrSupplementNotDraft      = errors.New("only draft supplements can be deleted")
)

// NewSupplement carries a supplement request as entered.
type NewSupplement struct {
	Description   string
	Amount        float64
	SquaresBefore *float64
	SquaresAfter  *float64
	Actor         string
}

// SupplementDecision moves a supplement to another status. ApprovedAmount is read only for partial.
type SupplementDecision struct {
	Status         entities.SupplementStatus
	ApprovedAmount *float64
	Actor          string
}

// ISupplementUseCase exposes the supplement lifecycle.
//
// A status change that moves a supplement into or out of approved/partial recomputes the
// owning claim from every supplement it has, and both records are written together.

type ISupplementUseCase interface {
	Create(ctx context.Context, claimID string, in NewSupplement) (entities.Supplement, error)
	GetByID(ctx context.Context, id string) (entities.Supplement, error)
	ListByClaim(ctx context.Context, claimID string) ([]entities.Supplement, error)
	ChangeStatus(ctx context.Context, supplementID string, d SupplementDecision) (entities.Supplement, entities.Claim, error)
	Delete(ctx context.Context, supplementID string, actor string) error
}

type SupplementUseCase struct {
	repo     interfaces.ISupplementRepository
	claims   interfaces.IClaimRepository
	parties  interfaces.IPartyRepository
	audit    interfaces.IAuditRecorder
	notifier interfaces.INotifier
	now      func() time.Time
}

var _ ISupplementUseCase = (*SupplementUseCase)(nil)

func NewSupplementUseCase(
	repo interfaces.ISupplementRepository,
	claims interfaces.IClaimRepository,
	parties interfaces.IPartyRepository,
	audit interfaces.IAuditRecorder,
	notifier interfaces.INotifier,
) *SupplementUseCase {
	return &SupplementUseCase{
		repo:     repo,
		claims:   claims,
		parties:  parties,
		audit:    audit,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *SupplementUseCase) Create(ctx context.Context, claimID string, in NewSupplement) (entities.Supplement, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.Supplement{}, ErrInvalidClaimID
	}
	if err := calculation.CheckAmount("supplement amount", in.Amount); err != nil || in.Amount == 0 {
		return entities.Supplement{}, ErrInvalidSupplementAmount
	}
	for _, sq := range []*float64{in.SquaresBefore, in.SquaresAfter} {
		if sq == nil {
			continue
		}
		if err := calculation.CheckAmount("roof squares", *sq); err != nil {
			return entities.Supplement{}, ErrInvalidSquares
		}
	}

	claim, err := u.claims.GetByID(ctx, claimID)
	if err != nil {
		return entities.Supplement{}, err
	}
	if claim.ID == "" {
		return entities.Supplement{}, ErrClaimNotFound
	}

	now := u.now()
	s := entities.Supplement{
		ID:            uuid.NewString(),
		ClaimID:       claimID,
		Sequence:      claim.LastSupplementSequence + 1,
		Description:   strings.TrimSpace(in.Description),
		Amount:        calculation.Round2(in.Amount),
		Status:        entities.SupplementStatusDraft,
		SquaresBefore: in.SquaresBefore,
		SquaresAfter:  in.SquaresAfter,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	next := claim
	next.LastSupplementSequence = s.Sequence
	next.SupplementIDs = append(append([]string(nil), claim.SupplementIDs...), s.ID)
	next.UpdatedAt = now
	if _, err := u.claims.AddSupplement(ctx, next, claim.Version, s); err != nil {
		zap.L().Error("[supplement][usecase] create failed", zap.String("claim_id", claimID), zap.Error(err))
		return entities.Supplement{}, err
	}
	created := s
	zap.L().Info("[supplement][usecase] supplement created",
		zap.String("claim_id", claimID),
		zap.String("supplement_id", created.ID),
		zap.Int("sequence", created.Sequence),
		zap.Float64("amount", created.Amount),
	)

	recordAudit(ctx, u.audit, entities.AuditEntry{
		EntityType: entities.AuditEntitySupplement,
		EntityID:   created.ID,
		ClaimID:    claimID,
		Action:     "create",
		Actor:      in.Actor,
		NewValues: map[string]any{
			"status":   string(created.Status),
			"amount":   created.Amount,
			"sequence": created.Sequence,
		},
	})
	return created, nil
}

func (u *SupplementUseCase) GetByID(ctx context.Context, id string) (entities.Supplement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supplement{}, ErrInvalidSupplementID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Supplement{}, err
	}
	if s.ID == "" {
		return entities.Supplement{}, ErrSupplementNotFound
	}
	return s, nil
}

func (u *SupplementUseCase) ListByClaim(ctx context.Context, claimID string) ([]entities.Supplement, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return nil, ErrInvalidClaimID
	}
	claim, err := u.claims.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim.ID == "" {
		return nil, ErrClaimNotFound
	}
	return u.repo.ListByIDs(ctx, claim.SupplementIDs)
}

func (u *SupplementUseCase) ChangeStatus(ctx context.Context, supplementID string, d SupplementDecision) (entities.Supplement, entities.Claim, error) {
	current, err := u.GetByID(ctx, supplementID)
	if err != nil {
		return entities.Supplement{}, entities.Claim{}, err
	}

	next, err := applyDecision(current, d, u.now())
	if err != nil {
		zap.L().Info("[supplement][usecase] decision rejected",
			zap.String("supplement_id", current.ID),
			zap.String("from", string(current.Status)),
			zap.String("to", string(d.Status)),
			zap.Error(err),
		)
		return entities.Supplement{}, entities.Claim{}, err
	}

	claim, err := u.claims.GetByID(ctx, current.ClaimID)
	if err != nil {
		return entities.Supplement{}, entities.Claim{}, err
	}
	if claim.ID == "" {
		return entities.Supplement{}, entities.Claim{}, ErrClaimNotFound
	}

	// Every supplement write bumps the claim version, so supplements read after the claim are the
	// state the version condition below protects.
	all, err := u.repo.ListByIDs(ctx, claim.SupplementIDs)
	if err != nil {
		return entities.Supplement{}, entities.Claim{}, err
	}
	fresh, ok := findSupplement(all, current.ID)
	if !ok {
		return entities.Supplement{}, entities.Claim{}, ErrSupplementNotFound
	}
	current = fresh
	if next, err = applyDecision(current, d, u.now()); err != nil {
		return entities.Supplement{}, entities.Claim{}, err
	}

	updatedClaim := claim
	affectsTotals := current.Status.CountsTowardTotal() || next.Status.CountsTowardTotal()
	if affectsTotals {
		all = replaceSupplement(all, next)

		contractor, estimator, err := claimProfiles(ctx, u.parties, claim)
		if err != nil {
			return entities.Supplement{}, entities.Claim{}, err
		}
		updatedClaim, err = calculation.Recalculate(claim, all, contractor, estimator)
		if err != nil {
			return entities.Supplement{}, entities.Claim{}, err
		}
	}
	updatedClaim.LastActivityAt = next.UpdatedAt
	updatedClaim.UpdatedAt = next.UpdatedAt

	savedClaim, err := u.claims.UpdateWithSupplement(ctx, updatedClaim, claim.Version, next)
	if err != nil {
		zap.L().Error("[supplement][usecase] decision write failed",
			zap.String("supplement_id", next.ID),
			zap.String("claim_id", claim.ID),
			zap.Error(err),
		)
		return entities.Supplement{}, entities.Claim{}, err
	}
	zap.L().Info("[supplement][usecase] status changed",
		zap.String("supplement_id", next.ID),
		zap.String("claim_id", savedClaim.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(next.Status)),
		zap.Bool("recalculated", affectsTotals),
	)

	recordAudit(ctx, u.audit, entities.AuditEntry{
		EntityType: entities.AuditEntitySupplement,
		EntityID:   next.ID,
		ClaimID:    savedClaim.ID,
		Action:     "status_change",
		Actor:      d.Actor,
		OldValues:  supplementValues(current),
		NewValues:  supplementValues(next),
	})
	if affectsTotals {
		recordAudit(ctx, u.audit, entities.AuditEntry{
			EntityType: entities.AuditEntityClaim,
			EntityID:   savedClaim.ID,
			ClaimID:    savedClaim.ID,
			Action:     "recalculate",
			Actor:      d.Actor,
			OldValues:  metricsValues(claim),
			NewValues:  metricsValues(savedClaim),
		})
	}
	if isDecision(next.Status) {
		notify(ctx, u.notifier, entities.Notification{
			Kind:         entities.NotificationSupplementDecided,
			ClaimID:      savedClaim.ID,
			SupplementID: next.ID,
			Subject:      fmt.Sprintf("Supplement #%d on claim %s is %s", next.Sequence, savedClaim.ClaimNumber, next.Status),
			Fields: map[string]string{
				"status":              string(next.Status),
				"amount":              fmt.Sprintf("%.2f", next.Amount),
				"current_total_value": fmt.Sprintf("%.2f", savedClaim.Metrics.CurrentTotalValue),
			},
			OccurredAt: next.UpdatedAt,
		})
	}
	return next, savedClaim, nil
}

func (u *SupplementUseCase) Delete(ctx context.Context, supplementID string, actor string) error {
	s, err := u.GetByID(ctx, supplementID)
	if err != nil {
		return err
	}
	if s.Status != entities.SupplementStatusDraft {
		return ErrSupplementNotDraft
	}

	claim, err := u.claims.GetByID(ctx, s.ClaimID)
	if err != nil {
		return err
	}
	if claim.ID == "" {
		return ErrClaimNotFound
	}
	next := claim
	next.SupplementIDs = make([]string, 0, len(claim.SupplementIDs))
	for _, id := range claim.SupplementIDs {
		if id != s.ID {
			next.SupplementIDs = append(next.SupplementIDs, id)
		}
	}
	next.UpdatedAt = u.now()

	deleted, err := u.claims.RemoveDraftSupplement(ctx, next, claim.Version, s.ID)
	if err != nil {
		zap.L().Error("[supplement][usecase] delete failed", zap.String("supplement_id", s.ID), zap.Error(err))
		return err
	}
	if !deleted {
		// Submitted between the read and the delete.
		return ErrSupplementNotDraft
	}
	zap.L().Info("[supplement][usecase] draft deleted", zap.String("supplement_id", s.ID), zap.String("claim_id", s.ClaimID))

	recordAudit(ctx, u.audit, entities.AuditEntry{
		EntityType: entities.AuditEntitySupplement,
		EntityID:   s.ID,
		ClaimID:    s.ClaimID,
		Action:     "delete",
		Actor:      actor,
		OldValues:  supplementValues(s),
	})
	return nil
}

// applyDecision validates a decision against the supplement state machine and returns the
// supplement as it will be stored.
//
// A partial approval must lie in (0, requested]. One that matches the requested amount to the
// cent is stored as a full approval.
func applyDecision(s entities.Supplement, d SupplementDecision, now time.Time) (entities.Supplement, error) {
	to := d.Status
	var approved *float64

	switch to {
	case entities.SupplementStatusPartial:
		if d.ApprovedAmount == nil {
			return entities.Supplement{}, ErrInvalidApprovedAmount
		}
		if err := calculation.CheckAmount("approved amount", *d.ApprovedAmount); err != nil {
			return entities.Supplement{}, ErrInvalidApprovedAmount
		}
		amt := calculation.Round2(*d.ApprovedAmount)
		if amt <= 0 {
			return entities.Supplement{}, ErrInvalidApprovedAmount
		}
		if calculation.CentsEqual(amt, s.Amount) {
			to = entities.SupplementStatusApproved
			amt = s.Amount
		} else if amt > s.Amount {
			return entities.Supplement{}, ErrInvalidApprovedAmount
		}
		approved = &amt
	case entities.SupplementStatusApproved:
		amt := s.Amount
		approved = &amt
	}

	if err := workflow.ValidateSupplementTransition(s.Status, to); err != nil {
		return entities.Supplement{}, err
	}

	s.Status = to
	s.ApprovedAmount = approved
	s.UpdatedAt = now
	if to == entities.SupplementStatusSubmitted {
		s.SubmittedAt = &now
	}
	if isDecision(to) {
		s.DecidedAt = &now
	} else {
		s.DecidedAt = nil
	}
	return s, nil
}

func isDecision(s entities.SupplementStatus) bool {
	return s == entities.SupplementStatusApproved || s == entities.SupplementStatusPartial || s == entities.SupplementStatusDenied
}

func findSupplement(all []entities.Supplement, id string) (entities.Supplement, bool) {
	for _, s := range all {
		if s.ID == id {
			return s, true
		}
	}
	return entities.Supplement{}, false
}

func replaceSupplement(all []entities.Supplement, s entities.Supplement) []entities.Supplement {
	out := make([]entities.Supplement, 0, len(all)+1)
	found := false
	for _, cur := range all {
		if cur.ID == s.ID {
			out = append(out, s)
			found = true
			continue
		}
		out = append(out, cur)
	}
	if !found {
		out = append(out, s)
	}
	return out
}

func supplementValues(s entities.Supplement) map[string]any {
	v := map[string]any{
		"status": string(s.Status),
		"amount": s.Amount,
	}
	if s.ApprovedAmount != nil {
		v["approved_amount"] = *s.ApprovedAmount
	}
	return v
}
