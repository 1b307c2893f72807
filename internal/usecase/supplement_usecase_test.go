package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/domain/workflow"
	"supplement_tracker/internal/usecase/interfaces"
	mock_interfaces "supplement_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type supplementMocks struct {
	repo     *mock_interfaces.MockISupplementRepository
	claims   *mock_interfaces.MockIClaimRepository
	parties  *mock_interfaces.MockIPartyRepository
	audit    *mock_interfaces.MockIAuditRecorder
	notifier *mock_interfaces.MockINotifier
}

func newSupplementUseCaseWithMocks(ctrl *gomock.Controller) (*SupplementUseCase, supplementMocks) {
	m := supplementMocks{
		repo:     mock_interfaces.NewMockISupplementRepository(ctrl),
		claims:   mock_interfaces.NewMockIClaimRepository(ctrl),
		parties:  mock_interfaces.NewMockIPartyRepository(ctrl),
		audit:    mock_interfaces.NewMockIAuditRecorder(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewSupplementUseCase(m.repo, m.claims, m.parties, m.audit, m.notifier)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func f64(v float64) *float64 { return &v }

func TestSupplementUseCase_Create(t *testing.T) {
	t.Run("invalid claim id", func(t *testing.T) {
		uc := NewSupplementUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "", NewSupplement{Amount: 10})
		if !errors.Is(err, ErrInvalidClaimID) {
			t.Fatalf("expected ErrInvalidClaimID, got %v", err)
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		uc := NewSupplementUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "claim-1", NewSupplement{Amount: 0})
		if !errors.Is(err, ErrInvalidSupplementAmount) {
			t.Fatalf("expected ErrInvalidSupplementAmount, got %v", err)
		}
	})

	t.Run("negative squares", func(t *testing.T) {
		uc := NewSupplementUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "claim-1", NewSupplement{Amount: 10, SquaresAfter: f64(-1)})
		if !errors.Is(err, ErrInvalidSquares) {
			t.Fatalf("expected ErrInvalidSquares, got %v", err)
		}
	})

	t.Run("claim not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(entities.Claim{}, nil)

		_, err := uc.Create(context.Background(), "claim-1", NewSupplement{Amount: 10})
		if !errors.Is(err, ErrClaimNotFound) {
			t.Fatalf("expected ErrClaimNotFound, got %v", err)
		}
	})

	t.Run("next sequence as draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(entities.Claim{
			ID: "claim-1", Version: 5, LastSupplementSequence: 3, SupplementIDs: []string{"sup-1", "sup-3"},
		}, nil)
		m.claims.EXPECT().AddSupplement(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Claim, _ int64, s entities.Supplement) (entities.Claim, error) {
				if s.Sequence != 4 || s.Status != entities.SupplementStatusDraft || s.Amount != 4200.13 {
					t.Fatalf("unexpected supplement: %+v", s)
				}
				if c.LastSupplementSequence != 4 || len(c.SupplementIDs) != 3 || c.SupplementIDs[2] != s.ID {
					t.Fatalf("claim must list the new supplement: %+v", c)
				}
				return c, nil
			},
		)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		created, err := uc.Create(context.Background(), "claim-1", NewSupplement{Amount: 4200.125, Description: " ridge cap "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Sequence != 4 || created.Description != "ridge cap" {
			t.Fatalf("unexpected supplement: %+v", created)
		}
	})

	t.Run("sequence taken by a concurrent create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(entities.Claim{ID: "claim-1", Version: 5, LastSupplementSequence: 3}, nil)
		m.claims.EXPECT().AddSupplement(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).
			Return(entities.Claim{}, interfaces.ErrConcurrentModification)

		_, err := uc.Create(context.Background(), "claim-1", NewSupplement{Amount: 100})
		if !errors.Is(err, interfaces.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestSupplementUseCase_ListByClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newSupplementUseCaseWithMocks(ctrl)

	m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(entities.Claim{ID: "claim-1", SupplementIDs: []string{"sup-1", "sup-2"}}, nil)
	m.repo.EXPECT().ListByIDs(gomock.Any(), []string{"sup-1", "sup-2"}).Return([]entities.Supplement{{ID: "sup-1"}, {ID: "sup-2"}}, nil)

	got, err := uc.ListByClaim(context.Background(), "claim-1")
	if err != nil || len(got) != 2 {
		t.Fatalf("unexpected result: %+v err=%v", got, err)
	}

	m.claims.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Claim{}, nil)
	if _, err := uc.ListByClaim(context.Background(), "missing"); !errors.Is(err, ErrClaimNotFound) {
		t.Fatalf("expected ErrClaimNotFound, got %v", err)
	}
}

func TestSupplementUseCase_ChangeStatus(t *testing.T) {
	claim := entities.Claim{
		ID:            "claim-1",
		ClaimNumber:   "CLM-1",
		JobType:       entities.JobTypeSupplement,
		PropertyType:  entities.PropertyTypeResidential,
		ContractorID:  "ctr-1",
		InitialValue:  18500,
		Status:        entities.ClaimStatusSupplementSent,
		Version:       2,
		SupplementIDs: []string{"sup-1"},
	}
	pending := entities.Supplement{ID: "sup-1", ClaimID: "claim-1", Sequence: 1, Amount: 4200, Status: entities.SupplementStatusPending}

	t.Run("approval recomputes the claim in the same write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(pending, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(claim, nil)
		m.repo.EXPECT().ListByIDs(gomock.Any(), []string{"sup-1"}).Return([]entities.Supplement{pending}, nil)
		m.parties.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(entities.Party{
			ID: "ctr-1", Rates: entities.PartyRateConfig{ResidentialRate: "0.125"},
		}, nil)
		m.claims.EXPECT().UpdateWithSupplement(gomock.Any(), gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Claim, _ int64, s entities.Supplement) (entities.Claim, error) {
				if s.Status != entities.SupplementStatusApproved || s.DecidedAt == nil {
					t.Fatalf("unexpected supplement: %+v", s)
				}
				if c.Metrics.CurrentTotalValue != 22700 || c.Metrics.TotalIncrease != 4200 {
					t.Fatalf("unexpected metrics: %+v", c.Metrics)
				}
				if c.Commission.Contractor.Total != 525 {
					t.Fatalf("unexpected contractor billing: %+v", c.Commission.Contractor)
				}
				return c, nil
			},
		)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Times(2).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) error {
				if n.Kind != entities.NotificationSupplementDecided || n.SupplementID != "sup-1" {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return nil
			},
		)

		s, c, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{Status: entities.SupplementStatusApproved, Actor: "ops"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ApprovedAmount == nil || *s.ApprovedAmount != 4200 {
			t.Fatalf("approved amount should be the requested amount, got %v", s.ApprovedAmount)
		}
		if c.Metrics.CurrentTotalValue != 22700 {
			t.Fatalf("unexpected claim: %+v", c.Metrics)
		}
	})

	t.Run("partial equal to requested is stored as approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		c := claim
		c.ContractorID = ""
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(pending, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(c, nil)
		m.repo.EXPECT().ListByIDs(gomock.Any(), []string{"sup-1"}).Return([]entities.Supplement{pending}, nil)
		m.claims.EXPECT().UpdateWithSupplement(gomock.Any(), gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Claim, _ int64, _ entities.Supplement) (entities.Claim, error) {
				return c, nil
			},
		)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Times(2).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		s, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{
			Status:         entities.SupplementStatusPartial,
			ApprovedAmount: f64(4200.001),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.SupplementStatusApproved {
			t.Fatalf("expected approved, got %s", s.Status)
		}
	})

	t.Run("partial counts its approved amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		c := claim
		c.ContractorID = ""
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(pending, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(c, nil)
		m.repo.EXPECT().ListByIDs(gomock.Any(), []string{"sup-1"}).Return([]entities.Supplement{pending}, nil)
		m.claims.EXPECT().UpdateWithSupplement(gomock.Any(), gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Claim, _ int64, _ entities.Supplement) (entities.Claim, error) {
				if c.Metrics.CurrentTotalValue != 21000 {
					t.Fatalf("unexpected metrics: %+v", c.Metrics)
				}
				return c, nil
			},
		)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Times(2).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		s, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{
			Status:         entities.SupplementStatusPartial,
			ApprovedAmount: f64(2500),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.SupplementStatusPartial || *s.ApprovedAmount != 2500 {
			t.Fatalf("unexpected supplement: %+v", s)
		}
	})

	t.Run("partial above requested is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(pending, nil)

		_, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{
			Status:         entities.SupplementStatusPartial,
			ApprovedAmount: f64(5000),
		})
		if !errors.Is(err, ErrInvalidApprovedAmount) {
			t.Fatalf("expected ErrInvalidApprovedAmount, got %v", err)
		}
	})

	t.Run("partial rounding to zero cents is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(pending, nil)

		_, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{
			Status:         entities.SupplementStatusPartial,
			ApprovedAmount: f64(0.004),
		})
		if !errors.Is(err, ErrInvalidApprovedAmount) {
			t.Fatalf("expected ErrInvalidApprovedAmount, got %v", err)
		}
	})

	t.Run("partial without amount is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(pending, nil)

		_, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{Status: entities.SupplementStatusPartial})
		if !errors.Is(err, ErrInvalidApprovedAmount) {
			t.Fatalf("expected ErrInvalidApprovedAmount, got %v", err)
		}
	})

	t.Run("draft cannot be approved directly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		draft := pending
		draft.Status = entities.SupplementStatusDraft
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(draft, nil)

		_, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{Status: entities.SupplementStatusApproved})
		if !errors.Is(err, workflow.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("submission does not recalculate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		draft := pending
		draft.Status = entities.SupplementStatusDraft
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(draft, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(claim, nil)
		m.repo.EXPECT().ListByIDs(gomock.Any(), []string{"sup-1"}).Return([]entities.Supplement{draft}, nil)
		m.claims.EXPECT().UpdateWithSupplement(gomock.Any(), gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Claim, _ int64, s entities.Supplement) (entities.Claim, error) {
				if s.SubmittedAt == nil || !s.SubmittedAt.Equal(fixedNow) {
					t.Fatalf("submitted_at not stamped: %+v", s)
				}
				if !c.LastActivityAt.Equal(fixedNow) {
					t.Fatalf("claim activity not bumped")
				}
				return c, nil
			},
		)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Times(1).Return(nil)

		if _, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{Status: entities.SupplementStatusSubmitted}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reverting an approval removes it from the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		approved := pending
		approved.Status = entities.SupplementStatusApproved
		c := claim
		c.ContractorID = ""
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(approved, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(c, nil)
		m.repo.EXPECT().ListByIDs(gomock.Any(), []string{"sup-1"}).Return([]entities.Supplement{approved}, nil)
		m.claims.EXPECT().UpdateWithSupplement(gomock.Any(), gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Claim, _ int64, _ entities.Supplement) (entities.Claim, error) {
				if c.Metrics.CurrentTotalValue != 18500 || c.Metrics.TotalIncrease != 0 {
					t.Fatalf("denied supplement must not count: %+v", c.Metrics)
				}
				return c, nil
			},
		)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Times(2).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		s, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{Status: entities.SupplementStatusDenied})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ApprovedAmount != nil {
			t.Fatalf("denied supplement keeps no approved amount")
		}
	})

	t.Run("totals include approvals committed before the claim read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		first := entities.Supplement{ID: "sup-0", ClaimID: "claim-1", Sequence: 1, Amount: 4200, ApprovedAmount: f64(4200), Status: entities.SupplementStatusApproved}
		second := entities.Supplement{ID: "sup-1", ClaimID: "claim-1", Sequence: 2, Amount: 1000, Status: entities.SupplementStatusSubmitted}
		c := claim
		c.ContractorID = ""
		c.Version = 3
		c.SupplementIDs = []string{"sup-0", "sup-1"}
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(second, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(c, nil)
		m.repo.EXPECT().ListByIDs(gomock.Any(), []string{"sup-0", "sup-1"}).Return([]entities.Supplement{first, second}, nil)
		m.claims.EXPECT().UpdateWithSupplement(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Claim, _ int64, _ entities.Supplement) (entities.Claim, error) {
				if c.Metrics.CurrentTotalValue != 23700 || c.Metrics.TotalIncrease != 5200 {
					t.Fatalf("both approvals must count: %+v", c.Metrics)
				}
				return c, nil
			},
		)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Times(2).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		if _, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{Status: entities.SupplementStatusApproved}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("decision is checked against the supplement read after the claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		approved := pending
		approved.Status = entities.SupplementStatusApproved
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(approved, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(claim, nil)
		m.repo.EXPECT().ListByIDs(gomock.Any(), []string{"sup-1"}).Return([]entities.Supplement{pending}, nil)

		_, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{Status: entities.SupplementStatusPending})
		if !errors.Is(err, workflow.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("supplement no longer listed on the claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(pending, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(claim, nil)
		m.repo.EXPECT().ListByIDs(gomock.Any(), []string{"sup-1"}).Return(nil, nil)

		_, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{Status: entities.SupplementStatusApproved})
		if !errors.Is(err, ErrSupplementNotFound) {
			t.Fatalf("expected ErrSupplementNotFound, got %v", err)
		}
	})

	t.Run("full partial on an approved supplement keeps it approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		approved := pending
		approved.Status = entities.SupplementStatusApproved
		approved.ApprovedAmount = f64(4200)
		c := claim
		c.ContractorID = ""
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(approved, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(c, nil)
		m.repo.EXPECT().ListByIDs(gomock.Any(), []string{"sup-1"}).Return([]entities.Supplement{approved}, nil)
		m.claims.EXPECT().UpdateWithSupplement(gomock.Any(), gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Claim, _ int64, _ entities.Supplement) (entities.Claim, error) {
				if c.Metrics.CurrentTotalValue != 22700 {
					t.Fatalf("unexpected metrics: %+v", c.Metrics)
				}
				return c, nil
			},
		)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Times(2).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		s, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{
			Status:         entities.SupplementStatusPartial,
			ApprovedAmount: f64(4200),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.SupplementStatusApproved || *s.ApprovedAmount != 4200 {
			t.Fatalf("unexpected supplement: %+v", s)
		}
	})

	t.Run("write failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)

		draft := pending
		draft.Status = entities.SupplementStatusDraft
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(draft, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(claim, nil)
		m.repo.EXPECT().ListByIDs(gomock.Any(), []string{"sup-1"}).Return([]entities.Supplement{draft}, nil)
		m.claims.EXPECT().UpdateWithSupplement(gomock.Any(), gomock.Any(), int64(2), gomock.Any()).Return(entities.Claim{}, errors.New("tx"))

		_, _, err := uc.ChangeStatus(context.Background(), "sup-1", SupplementDecision{Status: entities.SupplementStatusSubmitted})
		if err == nil || err.Error() != "tx" {
			t.Fatalf("expected tx error, got %v", err)
		}
	})
}

func TestSupplementUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplement{}, nil)

		if err := uc.Delete(context.Background(), "sup-1", "ops"); !errors.Is(err, ErrSupplementNotFound) {
			t.Fatalf("expected ErrSupplementNotFound, got %v", err)
		}
	})

	t.Run("only drafts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(entities.Supplement{ID: "sup-1", Status: entities.SupplementStatusSubmitted}, nil)

		if err := uc.Delete(context.Background(), "sup-1", "ops"); !errors.Is(err, ErrSupplementNotDraft) {
			t.Fatalf("expected ErrSupplementNotDraft, got %v", err)
		}
	})

	draftClaim := entities.Claim{ID: "claim-1", Version: 4, SupplementIDs: []string{"sup-1", "sup-2"}}
	draft := entities.Supplement{ID: "sup-1", ClaimID: "claim-1", Status: entities.SupplementStatusDraft}

	t.Run("lost race to submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(draft, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(draftClaim, nil)
		m.claims.EXPECT().RemoveDraftSupplement(gomock.Any(), gomock.Any(), int64(4), "sup-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "sup-1", "ops"); !errors.Is(err, ErrSupplementNotDraft) {
			t.Fatalf("expected ErrSupplementNotDraft, got %v", err)
		}
	})

	t.Run("claim changed concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(draft, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(draftClaim, nil)
		m.claims.EXPECT().RemoveDraftSupplement(gomock.Any(), gomock.Any(), int64(4), "sup-1").
			Return(false, interfaces.ErrConcurrentModification)

		if err := uc.Delete(context.Background(), "sup-1", "ops"); !errors.Is(err, interfaces.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSupplementUseCaseWithMocks(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "sup-1").Return(draft, nil)
		m.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(draftClaim, nil)
		m.claims.EXPECT().RemoveDraftSupplement(gomock.Any(), gomock.Any(), int64(4), "sup-1").DoAndReturn(
			func(_ context.Context, c entities.Claim, _ int64, _ string) (bool, error) {
				if len(c.SupplementIDs) != 1 || c.SupplementIDs[0] != "sup-2" {
					t.Fatalf("claim must stop listing the draft: %v", c.SupplementIDs)
				}
				return true, nil
			},
		)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		if err := uc.Delete(context.Background(), "sup-1", "ops"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(draftClaim.SupplementIDs) != 2 {
			t.Fatalf("the claim read must not be modified in place")
		}
	})
}
