package repository

import (
	"context"

	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rotisserie/eris"
)

type auditItem struct {
	ID         string         `dynamodbav:"id"`
	EntityType string         `dynamodbav:"entity_type"`
	EntityID   string         `dynamodbav:"entity_id"`
	ClaimID    string         `dynamodbav:"claim_id,omitempty"`
	Action     string         `dynamodbav:"action"`
	Actor      string         `dynamodbav:"actor,omitempty"`
	OldValues  map[string]any `dynamodbav:"old_values,omitempty"`
	NewValues  map[string]any `dynamodbav:"new_values,omitempty"`
	RecordedAt string         `dynamodbav:"recorded_at"`
}

// AuditDynamoRecorder appends entries to the audit_log table.
//
// Table requirements:
//   - PK: id (string)
type AuditDynamoRecorder struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAuditRecorder = (*AuditDynamoRecorder)(nil)

func NewAuditDynamoRecorder(ddb DynamoAPI, tableName string) *AuditDynamoRecorder {
	return &AuditDynamoRecorder{ddb: ddb, tableName: tableName}
}

func (r *AuditDynamoRecorder) Record(ctx context.Context, e entities.AuditEntry) error {
	av, err := attributevalue.MarshalMap(auditItem{
		ID:         e.ID,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		ClaimID:    e.ClaimID,
		Action:     e.Action,
		Actor:      e.Actor,
		OldValues:  e.OldValues,
		NewValues:  e.NewValues,
		RecordedAt: formatTime(e.RecordedAt),
	})
	if err != nil {
		return eris.Wrap(err, "audit recorder: marshal")
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
		return eris.Wrap(err, "audit recorder: put item")
	}
	return nil
}
