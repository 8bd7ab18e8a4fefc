package repository

import (
	"context"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"
)

type agreementItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Type            string `dynamodbav:"type"`
	LastModified    string `dynamodbav:"last_modified"`
	TemplateContent string `dynamodbav:"template_content"`
}

// AgreementDynamoRepository persists agreement templates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type AgreementDynamoRepository struct {
	t table
}

var _ interfaces.IAgreementRepository = (*AgreementDynamoRepository)(nil)

func NewAgreementDynamoRepository(ddb DynamoAPI, tableName string) *AgreementDynamoRepository {
	return &AgreementDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *AgreementDynamoRepository) Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	if err := putNew(ctx, r.t, toAgreementItem(a)); err != nil {
		return entities.Agreement{}, err
	}
	return a, nil
}

func (r *AgreementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	it, found, err := getItem[agreementItem](ctx, r.t, id)
	if err != nil || !found {
		return entities.Agreement{}, err
	}
	return fromAgreementItem(it), nil
}

func (r *AgreementDynamoRepository) List(ctx context.Context) ([]entities.Agreement, error) {
	items, err := scanAll[agreementItem](ctx, r.t)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Agreement, 0, len(items))
	for _, it := range items {
		out = append(out, fromAgreementItem(it))
	}
	return out, nil
}

func (r *AgreementDynamoRepository) Update(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	ok, err := replaceExisting(ctx, r.t, toAgreementItem(a))
	if err != nil || !ok {
		return entities.Agreement{}, err
	}
	return a, nil
}

func (r *AgreementDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.t, id)
}

func toAgreementItem(a entities.Agreement) agreementItem {
	return agreementItem{
		ID:              a.ID,
		Name:            a.Name,
		Type:            a.Type,
		LastModified:    formatTime(a.LastModified),
		TemplateContent: a.TemplateContent,
	}
}

func fromAgreementItem(it agreementItem) entities.Agreement {
	return entities.Agreement{
		ID:              it.ID,
		Name:            it.Name,
		Type:            it.Type,
		LastModified:    parseTime(it.LastModified),
		TemplateContent: it.TemplateContent,
	}
}
