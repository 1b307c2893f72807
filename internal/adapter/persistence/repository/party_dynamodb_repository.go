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

type partyItem struct {
	ID        string                   `dynamodbav:"id"`
	Name      string                   `dynamodbav:"name,omitempty"`
	Email     string                   `dynamodbav:"email,omitempty"`
	Role      string                   `dynamodbav:"role"`
	Rates     entities.PartyRateConfig `dynamodbav:"rates"`
	CreatedAt string                   `dynamodbav:"created_at"`
	UpdatedAt string                   `dynamodbav:"updated_at"`
}

// PartyDynamoRepository persists contractors and estimators. Rates are stored as the decimal
// strings they were configured with.
type PartyDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPartyRepository = (*PartyDynamoRepository)(nil)

func NewPartyDynamoRepository(ddb DynamoAPI, tableName string) *PartyDynamoRepository {
	return &PartyDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PartyDynamoRepository) Upsert(ctx context.Context, p entities.Party) (entities.Party, error) {
	av, err := attributevalue.MarshalMap(partyItem{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Role:      string(p.Role),
		Rates:     p.Rates,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	})
	if err != nil {
		return entities.Party{}, eris.Wrap(err, "party repository: marshal")
	}

	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Party{}, eris.Wrap(err, "party repository: put item")
	}
	return p, nil
}

func (r *PartyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Party, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.Party{}, eris.Wrap(err, "party repository: get item")
	}
	if len(out.Item) == 0 {
		return entities.Party{}, nil
	}

	var it partyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Party{}, eris.Wrap(err, "party repository: unmarshal")
	}
	return entities.Party{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Role:      entities.PartyRole(it.Role),
		Rates:     it.Rates,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}
