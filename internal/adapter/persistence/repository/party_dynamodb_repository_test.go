package repository

import (
	"context"
	"errors"
	"testing"

	"supplement_tracker/internal/adapter/persistence/repository/mocks"
	"supplement_tracker/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/mock/gomock"
)

func TestPartyDynamoRepository_UpsertThenGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ddb := mocks.NewMockDynamoAPI(ctrl)
	repo := NewPartyDynamoRepository(ddb, "parties")

	var stored map[string]types.AttributeValue
	ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
	)
	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: stored}, nil
		},
	)

	p := entities.Party{
		ID:        "ctr-1",
		Name:      "Acme Roofing",
		Role:      entities.PartyRoleContractor,
		Rates:     entities.PartyRateConfig{ResidentialRate: "0.125", CommercialRate: "0"},
		CreatedAt: repoNow,
		UpdatedAt: repoNow,
	}
	if _, err := repo.Upsert(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rates := stored["rates"].(*types.AttributeValueMemberM).Value
	if _, ok := rates["default_rate"]; ok {
		t.Fatalf("unset rates must not be stored: %+v", rates)
	}

	got, err := repo.GetByID(context.Background(), "ctr-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Rates != p.Rates || got.Role != p.Role || !got.CreatedAt.Equal(repoNow) {
		t.Fatalf("unexpected party: %+v", got)
	}
}

func TestAuditDynamoRecorder_Record(t *testing.T) {
	t.Run("stores entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ddb := mocks.NewMockDynamoAPI(ctrl)
		rec := NewAuditDynamoRecorder(ddb, "audit_log")

		ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
				if aws.ToString(in.TableName) != "audit_log" {
					t.Fatalf("unexpected table: %s", aws.ToString(in.TableName))
				}
				old := in.Item["old_values"].(*types.AttributeValueMemberM).Value
				if old["status"].(*types.AttributeValueMemberS).Value != "missing_info" {
					t.Fatalf("unexpected old values: %+v", old)
				}
				return &dynamodb.PutItemOutput{}, nil
			},
		)

		err := rec.Record(context.Background(), entities.AuditEntry{
			ID:         "a1",
			EntityType: entities.AuditEntityClaim,
			EntityID:   "claim-1",
			ClaimID:    "claim-1",
			Action:     "status_changed",
			Actor:      "maria",
			OldValues:  map[string]any{"status": "missing_info"},
			NewValues:  map[string]any{"status": "contractor_review"},
			RecordedAt: repoNow,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("client error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ddb := mocks.NewMockDynamoAPI(ctrl)
		rec := NewAuditDynamoRecorder(ddb, "audit_log")

		boom := errors.New("unavailable")
		ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).Return(nil, boom)

		if err := rec.Record(context.Background(), entities.AuditEntry{ID: "a1"}); !errors.Is(err, boom) {
			t.Fatalf("expected wrapped error, got %v", err)
		}
	})
}
