package repository

import (
	"context"
	"sort"
	"strconv"

	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

type claimItem struct {
	ID               string                    `dynamodbav:"id"`
	ClaimNumber      string                    `dynamodbav:"claim_number"`
	InsuredName      string                    `dynamodbav:"insured_name,omitempty"`
	InsuranceCompany string                    `dynamodbav:"insurance_company,omitempty"`
	ContractorID     string                    `dynamodbav:"contractor_id,omitempty"`
	EstimatorID      string                    `dynamodbav:"estimator_id,omitempty"`
	JobType          string                    `dynamodbav:"job_type"`
	PropertyType     string                    `dynamodbav:"property_type"`
	InitialValue     float64                   `dynamodbav:"initial_value"`
	TotalUnits       float64                   `dynamodbav:"total_units"`
	Metrics          entities.ClaimMetrics     `dynamodbav:"metrics"`
	Commission       entities.CommissionResult `dynamodbav:"commission"`
	Status           string                    `dynamodbav:"status"`
	StatusChangedAt  string                    `dynamodbav:"status_changed_at"`
	LastActivityAt   string                    `dynamodbav:"last_activity_at"`
	CompletedAt      string                    `dynamodbav:"completed_at,omitempty"`
	SupplementIDs    []string                  `dynamodbav:"supplement_ids,omitempty"`
	LastSequence     int                       `dynamodbav:"last_supplement_sequence"`
	Version          int64                     `dynamodbav:"version"`
	CreatedAt        string                    `dynamodbav:"created_at"`
	UpdatedAt        string                    `dynamodbav:"updated_at"`
}

// ClaimDynamoRepository persists Claim aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every write after Create is conditional on the stored version, and bumps it by one.
type ClaimDynamoRepository struct {
	ddb              DynamoAPI
	tableName        string
	supplementsTable string
}

var _ interfaces.IClaimRepository = (*ClaimDynamoRepository)(nil)

func NewClaimDynamoRepository(ddb DynamoAPI, tableName, supplementsTable string) *ClaimDynamoRepository {
	return &ClaimDynamoRepository{ddb: ddb, tableName: tableName, supplementsTable: supplementsTable}
}

func (r *ClaimDynamoRepository) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	av, err := attributevalue.MarshalMap(toClaimItem(c))
	if err != nil {
		return entities.Claim{}, eris.Wrap(err, "claim repository: marshal")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Claim{}, eris.Wrap(err, "claim repository: put item")
	}
	return c, nil
}

func (r *ClaimDynamoRepository) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Claim{}, eris.Wrap(err, "claim repository: get item")
	}
	if len(out.Item) == 0 {
		return entities.Claim{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Claim{}, eris.Wrap(err, "claim repository: unmarshal")
	}
	return fromClaimItem(it), nil
}

// List returns every claim, newest first.
func (r *ClaimDynamoRepository) List(ctx context.Context) ([]entities.Claim, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})

	claims := make([]entities.Claim, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, eris.Wrap(err, "claim repository: scan")
		}
		for _, raw := range page.Items {
			var it claimItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, eris.Wrap(err, "claim repository: unmarshal")
			}
			claims = append(claims, fromClaimItem(it))
		}
	}
	sort.SliceStable(claims, func(i, j int) bool { return claims[i].CreatedAt.After(claims[j].CreatedAt) })
	return claims, nil
}

func (r *ClaimDynamoRepository) Update(ctx context.Context, c entities.Claim, expectedVersion int64) (entities.Claim, error) {
	c.Version = expectedVersion + 1
	put, err := r.versionedPut(c, expectedVersion)
	if err != nil {
		return entities.Claim{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	})
	if err != nil {
		if isConditionFailed(err) {
			zap.L().Info("[claim][repository] version conflict",
				zap.String("claim_id", c.ID),
				zap.Int64("expected_version", expectedVersion),
			)
			return entities.Claim{}, interfaces.ErrConcurrentModification
		}
		return entities.Claim{}, eris.Wrap(err, "claim repository: conditional put")
	}
	return c, nil
}

// UpdateWithSupplement writes the claim and one of its supplements in a single transaction.
// The supplement must already exist.
func (r *ClaimDynamoRepository) UpdateWithSupplement(ctx context.Context, c entities.Claim, expectedVersion int64, s entities.Supplement) (entities.Claim, error) {
	return r.writeWithSupplement(ctx, c, expectedVersion, s, "attribute_exists(#id)")
}

// AddSupplement stores a new supplement and the claim listing it in a single transaction.
func (r *ClaimDynamoRepository) AddSupplement(ctx context.Context, c entities.Claim, expectedVersion int64, s entities.Supplement) (entities.Claim, error) {
	return r.writeWithSupplement(ctx, c, expectedVersion, s, "attribute_not_exists(#id)")
}

func (r *ClaimDynamoRepository) writeWithSupplement(ctx context.Context, c entities.Claim, expectedVersion int64, s entities.Supplement, supplementCondition string) (entities.Claim, error) {
	c.Version = expectedVersion + 1
	claimPut, err := r.versionedPut(c, expectedVersion)
	if err != nil {
		return entities.Claim{}, err
	}

	supAV, err := attributevalue.MarshalMap(toSupplementItem(s))
	if err != nil {
		return entities.Claim{}, eris.Wrap(err, "claim repository: marshal supplement")
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: claimPut},
			{Put: &types.Put{
				TableName:           aws.String(r.supplementsTable),
				Item:                supAV,
				ConditionExpression: aws.String(supplementCondition),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
		},
	})
	if err != nil {
		if isTransactionConflict(err) {
			zap.L().Info("[claim][repository] supplement transaction cancelled",
				zap.String("claim_id", c.ID),
				zap.String("supplement_id", s.ID),
				zap.Int64("expected_version", expectedVersion),
				zap.Error(err),
			)
			return entities.Claim{}, interfaces.ErrConcurrentModification
		}
		return entities.Claim{}, eris.Wrap(err, "claim repository: transact write")
	}
	return c, nil
}

// RemoveDraftSupplement deletes a draft supplement and writes the claim in a single transaction.
// It returns false, and writes nothing, when only the draft condition failed.
func (r *ClaimDynamoRepository) RemoveDraftSupplement(ctx context.Context, c entities.Claim, expectedVersion int64, supplementID string) (bool, error) {
	c.Version = expectedVersion + 1
	claimPut, err := r.versionedPut(c, expectedVersion)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: claimPut},
			{Delete: &types.Delete{
				TableName:           aws.String(r.supplementsTable),
				Key:                 idKey(supplementID),
				ConditionExpression: aws.String("#status = :draft"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":draft": &types.AttributeValueMemberS{Value: string(entities.SupplementStatusDraft)},
				},
			}},
		},
	})
	if err != nil {
		if failed, ok := cancelledConditions(err); ok {
			if failed[1] && !failed[0] {
				return false, nil
			}
			zap.L().Info("[claim][repository] supplement delete cancelled",
				zap.String("claim_id", c.ID),
				zap.String("supplement_id", supplementID),
				zap.Int64("expected_version", expectedVersion),
			)
			return false, interfaces.ErrConcurrentModification
		}
		return false, eris.Wrap(err, "claim repository: transact delete")
	}
	return true, nil
}

func (r *ClaimDynamoRepository) versionedPut(c entities.Claim, expectedVersion int64) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toClaimItem(c))
	if err != nil {
		return nil, eris.Wrap(err, "claim repository: marshal")
	}
	return &types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	}, nil
}

func toClaimItem(c entities.Claim) claimItem {
	return claimItem{
		ID:               c.ID,
		ClaimNumber:      c.ClaimNumber,
		InsuredName:      c.InsuredName,
		InsuranceCompany: c.InsuranceCompany,
		ContractorID:     c.ContractorID,
		EstimatorID:      c.EstimatorID,
		JobType:          string(c.JobType),
		PropertyType:     string(c.PropertyType),
		InitialValue:     c.InitialValue,
		TotalUnits:       c.TotalUnits,
		Metrics:          c.Metrics,
		Commission:       c.Commission,
		Status:           string(c.Status),
		StatusChangedAt:  formatTime(c.StatusChangedAt),
		LastActivityAt:   formatTime(c.LastActivityAt),
		CompletedAt:      formatTimePtr(c.CompletedAt),
		SupplementIDs:    c.SupplementIDs,
		LastSequence:     c.LastSupplementSequence,
		Version:          c.Version,
		CreatedAt:        formatTime(c.CreatedAt),
		UpdatedAt:        formatTime(c.UpdatedAt),
	}
}

func fromClaimItem(it claimItem) entities.Claim {
	return entities.Claim{
		ID:                     it.ID,
		ClaimNumber:            it.ClaimNumber,
		InsuredName:            it.InsuredName,
		InsuranceCompany:       it.InsuranceCompany,
		ContractorID:           it.ContractorID,
		EstimatorID:            it.EstimatorID,
		JobType:                entities.JobType(it.JobType),
		PropertyType:           entities.PropertyType(it.PropertyType),
		InitialValue:           it.InitialValue,
		TotalUnits:             it.TotalUnits,
		Metrics:                it.Metrics,
		Commission:             it.Commission,
		Status:                 entities.ClaimStatus(it.Status),
		StatusChangedAt:        parseTime(it.StatusChangedAt),
		LastActivityAt:         parseTime(it.LastActivityAt),
		CompletedAt:            parseTimePtr(it.CompletedAt),
		SupplementIDs:          it.SupplementIDs,
		LastSupplementSequence: it.LastSequence,
		Version:                it.Version,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
	}
}
