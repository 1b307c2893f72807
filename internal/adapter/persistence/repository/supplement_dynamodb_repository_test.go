package repository

import (
	"context"
	"fmt"
	"testing"

	"supplement_tracker/internal/adapter/persistence/repository/mocks"
	"supplement_tracker/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/mock/gomock"
)

func TestSupplementDynamoRepository_ListByIDs(t *testing.T) {
	before, after := 20.0, 25.0
	second, _ := attributevalue.MarshalMap(toSupplementItem(entities.Supplement{ID: "s2", ClaimID: "claim-1", Sequence: 2, Amount: 300, Status: entities.SupplementStatusDraft}))
	first, _ := attributevalue.MarshalMap(toSupplementItem(entities.Supplement{
		ID: "s1", ClaimID: "claim-1", Sequence: 1, Amount: 1000, Status: entities.SupplementStatusSubmitted,
		SquaresBefore: &before, SquaresAfter: &after, SubmittedAt: &repoNow,
	}))

	t.Run("consistent read ordered by sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ddb := mocks.NewMockDynamoAPI(ctrl)
		repo := NewSupplementDynamoRepository(ddb, "supplements")

		ddb.EXPECT().BatchGetItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
				req, ok := in.RequestItems["supplements"]
				if !ok || len(req.Keys) != 2 {
					t.Fatalf("unexpected request: %+v", in.RequestItems)
				}
				if !aws.ToBool(req.ConsistentRead) {
					t.Fatalf("supplements must be read consistently")
				}
				return &dynamodb.BatchGetItemOutput{
					Responses: map[string][]map[string]types.AttributeValue{"supplements": {second, first}},
				}, nil
			},
		)

		got, err := repo.ListByIDs(context.Background(), []string{"s1", "s2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "s1" || got[1].ID != "s2" {
			t.Fatalf("expected sequence order, got %+v", got)
		}
		if got[0].SquaresBefore == nil || *got[0].SquaresBefore != 20 || got[0].SubmittedAt == nil {
			t.Fatalf("optional fields not restored: %+v", got[0])
		}
		if got[1].ApprovedAmount != nil || got[1].SquaresAfter != nil || got[1].DecidedAt != nil {
			t.Fatalf("unset optional fields must stay nil: %+v", got[1])
		}
	})

	t.Run("unprocessed keys are requested again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ddb := mocks.NewMockDynamoAPI(ctrl)
		repo := NewSupplementDynamoRepository(ddb, "supplements")

		leftover := map[string]types.KeysAndAttributes{
			"supplements": {Keys: []map[string]types.AttributeValue{idKey("s2")}, ConsistentRead: aws.Bool(true)},
		}
		gomock.InOrder(
			ddb.EXPECT().BatchGetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.BatchGetItemOutput{
				Responses:       map[string][]map[string]types.AttributeValue{"supplements": {first}},
				UnprocessedKeys: leftover,
			}, nil),
			ddb.EXPECT().BatchGetItem(gomock.Any(), &dynamodb.BatchGetItemInput{RequestItems: leftover}).Return(&dynamodb.BatchGetItemOutput{
				Responses: map[string][]map[string]types.AttributeValue{"supplements": {second}},
			}, nil),
		)

		got, err := repo.ListByIDs(context.Background(), []string{"s1", "s2"})
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("requests are split at the batch limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ddb := mocks.NewMockDynamoAPI(ctrl)
		repo := NewSupplementDynamoRepository(ddb, "supplements")

		ids := make([]string, batchGetLimit+1)
		for i := range ids {
			ids[i] = fmt.Sprintf("s%d", i)
		}
		sizes := []int{}
		ddb.EXPECT().BatchGetItem(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
				sizes = append(sizes, len(in.RequestItems["supplements"].Keys))
				return &dynamodb.BatchGetItemOutput{}, nil
			},
		)

		if _, err := repo.ListByIDs(context.Background(), ids); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sizes) != 2 || sizes[0] != batchGetLimit || sizes[1] != 1 {
			t.Fatalf("unexpected batch sizes: %v", sizes)
		}
	})

	t.Run("no ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := NewSupplementDynamoRepository(mocks.NewMockDynamoAPI(ctrl), "supplements")

		got, err := repo.ListByIDs(context.Background(), nil)
		if err != nil || len(got) != 0 {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}

func TestSupplementDynamoRepository_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ddb := mocks.NewMockDynamoAPI(ctrl)
	repo := NewSupplementDynamoRepository(ddb, "supplements")

	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{}, nil)

	got, err := repo.GetByID(context.Background(), "missing")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero supplement, got %+v err=%v", got, err)
	}
}
