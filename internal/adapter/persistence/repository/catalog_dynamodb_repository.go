package repository

import (
	"context"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"
)

type lineItemItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Category    string  `dynamodbav:"category"`
	Unit        string  `dynamodbav:"unit"`
	Rate        float64 `dynamodbav:"rate"`
	Description string  `dynamodbav:"description,omitempty"`
}

// LineItemDynamoRepository persists catalog line items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type LineItemDynamoRepository struct {
	t table
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb DynamoAPI, tableName string) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *LineItemDynamoRepository) Create(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	if err := putNew(ctx, r.t, toLineItemItem(li)); err != nil {
		return entities.LineItem{}, err
	}
	return li, nil
}

func (r *LineItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.LineItem, error) {
	it, found, err := getItem[lineItemItem](ctx, r.t, id)
	if err != nil || !found {
		return entities.LineItem{}, err
	}
	return fromLineItemItem(it), nil
}

func (r *LineItemDynamoRepository) List(ctx context.Context) ([]entities.LineItem, error) {
	items, err := scanAll[lineItemItem](ctx, r.t)
	if err != nil {
		return nil, err
	}
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, fromLineItemItem(it))
	}
	return out, nil
}

func (r *LineItemDynamoRepository) Update(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	ok, err := replaceExisting(ctx, r.t, toLineItemItem(li))
	if err != nil || !ok {
		return entities.LineItem{}, err
	}
	return li, nil
}

func (r *LineItemDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.t, id)
}

func toLineItemItem(li entities.LineItem) lineItemItem {
	return lineItemItem{
		ID:          li.ID,
		Name:        li.Name,
		Category:    li.Category,
		Unit:        li.Unit,
		Rate:        li.Rate,
		Description: li.Description,
	}
}

func fromLineItemItem(it lineItemItem) entities.LineItem {
	return entities.LineItem{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		Unit:        it.Unit,
		Rate:        it.Rate,
		Description: it.Description,
	}
}

type templateItemAttr struct {
	ID         string  `dynamodbav:"id"`
	LineItemID string  `dynamodbav:"line_item_id"`
	Quantity   float64 `dynamodbav:"quantity"`
	Notes      string  `dynamodbav:"notes,omitempty"`
}

type estimationTemplateItem struct {
	ID           string             `dynamodbav:"id"`
	Name         string             `dynamodbav:"name"`
	Category     string             `dynamodbav:"category"`
	Items        []templateItemAttr `dynamodbav:"items"`
	ItemsCount   int                `dynamodbav:"items_count"`
	LastModified string             `dynamodbav:"last_modified"`
}

// EstimationTemplateDynamoRepository persists templates with their items
// embedded as a list attribute.
//
// Table requirements:
//   - PK: id (string)
type EstimationTemplateDynamoRepository struct {
	t table
}

var _ interfaces.IEstimationTemplateRepository = (*EstimationTemplateDynamoRepository)(nil)

func NewEstimationTemplateDynamoRepository(ddb DynamoAPI, tableName string) *EstimationTemplateDynamoRepository {
	return &EstimationTemplateDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *EstimationTemplateDynamoRepository) Create(ctx context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error) {
	if err := putNew(ctx, r.t, toTemplateItem(t)); err != nil {
		return entities.EstimationTemplate{}, err
	}
	return t, nil
}

func (r *EstimationTemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimationTemplate, error) {
	it, found, err := getItem[estimationTemplateItem](ctx, r.t, id)
	if err != nil || !found {
		return entities.EstimationTemplate{}, err
	}
	return fromTemplateItem(it), nil
}

func (r *EstimationTemplateDynamoRepository) List(ctx context.Context) ([]entities.EstimationTemplate, error) {
	items, err := scanAll[estimationTemplateItem](ctx, r.t)
	if err != nil {
		return nil, err
	}
	out := make([]entities.EstimationTemplate, 0, len(items))
	for _, it := range items {
		out = append(out, fromTemplateItem(it))
	}
	return out, nil
}

func (r *EstimationTemplateDynamoRepository) Update(ctx context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error) {
	ok, err := replaceExisting(ctx, r.t, toTemplateItem(t))
	if err != nil || !ok {
		return entities.EstimationTemplate{}, err
	}
	return t, nil
}

func (r *EstimationTemplateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.t, id)
}

func toTemplateItem(t entities.EstimationTemplate) estimationTemplateItem {
	items := make([]templateItemAttr, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, templateItemAttr{ID: it.ID, LineItemID: it.LineItemID, Quantity: it.Quantity, Notes: it.Notes})
	}
	return estimationTemplateItem{
		ID:           t.ID,
		Name:         t.Name,
		Category:     t.Category,
		Items:        items,
		ItemsCount:   t.ItemsCount,
		LastModified: formatTime(t.LastModified),
	}
}

func fromTemplateItem(it estimationTemplateItem) entities.EstimationTemplate {
	items := make([]entities.EstimationTemplateItem, 0, len(it.Items))
	for _, ti := range it.Items {
		items = append(items, entities.EstimationTemplateItem{ID: ti.ID, LineItemID: ti.LineItemID, Quantity: ti.Quantity, Notes: ti.Notes})
	}
	return entities.EstimationTemplate{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		Items:        items,
		ItemsCount:   it.ItemsCount,
		LastModified: parseTime(it.LastModified),
	}
}
