package repository

import (
	"context"
	"sort"

	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
)

// batchGetLimit is the DynamoDB cap on keys per BatchGetItem request.
const batchGetLimit = 100

// maxUnprocessedRetries bounds how often keys DynamoDB left unprocessed are requested again.
const maxUnprocessedRetries = 5

type supplementItem struct {
	ID             string   `dynamodbav:"id"`
	ClaimID        string   `dynamodbav:"claim_id"`
	Sequence       int      `dynamodbav:"sequence"`
	Description    string   `dynamodbav:"description,omitempty"`
	Amount         float64  `dynamodbav:"amount"`
	ApprovedAmount *float64 `dynamodbav:"approved_amount,omitempty"`
	Status         string   `dynamodbav:"status"`
	SquaresBefore  *float64 `dynamodbav:"squares_before,omitempty"`
	SquaresAfter   *float64 `dynamodbav:"squares_after,omitempty"`
	SubmittedAt    string   `dynamodbav:"submitted_at,omitempty"`
	DecidedAt      string   `dynamodbav:"decided_at,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// SupplementDynamoRepository persists Supplement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Supplements are read by the ids their claim lists, with consistent reads, so a recompute sees every
// write committed before the claim version it started from. All writes are made together with the
// claim by ClaimDynamoRepository.
type SupplementDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISupplementRepository = (*SupplementDynamoRepository)(nil)

func NewSupplementDynamoRepository(ddb DynamoAPI, tableName string) *SupplementDynamoRepository {
	return &SupplementDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SupplementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Supplement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Supplement{}, eris.Wrap(err, "supplement repository: get item")
	}
	if len(out.Item) == 0 {
		return entities.Supplement{}, nil
	}

	var it supplementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Supplement{}, eris.Wrap(err, "supplement repository: unmarshal")
	}
	return fromSupplementItem(it), nil
}

// ListByIDs returns the supplements with the given ids ordered by sequence.
func (r *SupplementDynamoRepository) ListByIDs(ctx context.Context, ids []string) ([]entities.Supplement, error) {
	items := make([]entities.Supplement, 0, len(ids))
	for start := 0; start < len(ids); start += batchGetLimit {
		end := min(start+batchGetLimit, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, idKey(id))
		}

		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt > maxUnprocessedRetries {
				return nil, eris.New("supplement repository: batch get left keys unprocessed")
			}
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, eris.Wrap(err, "supplement repository: batch get")
			}
			for _, raw := range out.Responses[r.tableName] {
				var it supplementItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, eris.Wrap(err, "supplement repository: unmarshal")
				}
				items = append(items, fromSupplementItem(it))
			}
			request = out.UnprocessedKeys
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Sequence < items[j].Sequence })
	return items, nil
}

func toSupplementItem(s entities.Supplement) supplementItem {
	return supplementItem{
		ID:             s.ID,
		ClaimID:        s.ClaimID,
		Sequence:       s.Sequence,
		Description:    s.Description,
		Amount:         s.Amount,
		ApprovedAmount: s.ApprovedAmount,
		Status:         string(s.Status),
		SquaresBefore:  s.SquaresBefore,
		SquaresAfter:   s.SquaresAfter,
		SubmittedAt:    formatTimePtr(s.SubmittedAt),
		DecidedAt:      formatTimePtr(s.DecidedAt),
		CreatedAt:      formatTime(s.CreatedAt),
		UpdatedAt:      formatTime(s.UpdatedAt),
	}
}

func fromSupplementItem(it supplementItem) entities.Supplement {
	return entities.Supplement{
		ID:             it.ID,
		ClaimID:        it.ClaimID,
		Sequence:       it.Sequence,
		Description:    it.Description,
		Amount:         it.Amount,
		ApprovedAmount: it.ApprovedAmount,
		Status:         entities.SupplementStatus(it.Status),
		SquaresBefore:  it.SquaresBefore,
		SquaresAfter:   it.SquaresAfter,
		SubmittedAt:    parseTimePtr(it.SubmittedAt),
		DecidedAt:      parseTimePtr(it.DecidedAt),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
