package usecase

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/catalog_usecase_mock.go -package=mocks

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ICatalogUseCase exposes the catalog store: line items and estimation templates.
// It carries no business logic beyond identity lookup and write-time validation.

type ICatalogUseCase interface {
	CreateLineItem(ctx context.Context, li entities.LineItem) (entities.LineItem, error)
	GetLineItem(ctx context.Context, id string) (entities.LineItem, error)
	ListLineItems(ctx context.Context) ([]entities.LineItem, error)
	UpdateLineItem(ctx context.Context, li entities.LineItem) (entities.LineItem, error)
	DeleteLineItem(ctx context.Context, id string) error

	CreateTemplate(ctx context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error)
	GetTemplate(ctx context.Context, id string) (entities.EstimationTemplate, error)
	ListTemplates(ctx context.Context) ([]entities.EstimationTemplate, error)
	UpdateTemplate(ctx context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	lineItems interfaces.ILineItemRepository
	templates interfaces.IEstimationTemplateRepository
	now       func() time.Time
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(lineItems interfaces.ILineItemRepository, templates interfaces.IEstimationTemplateRepository) *CatalogUseCase {
	return &CatalogUseCase{lineItems: lineItems, templates: templates, now: utcNow}
}

func (u *CatalogUseCase) CreateLineItem(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	li = normalizeLineItem(li)
	if err := validateLineItem(li); err != nil {
		return entities.LineItem{}, err
	}
	if li.ID == "" {
		li.ID = uuid.NewString()
	}
	created, err := u.lineItems.Create(ctx, li)
	if err != nil {
		return entities.LineItem{}, err
	}
	log.Printf("[catalog][usecase] line item created line_item_id=%s rate=%.2f", created.ID, created.Rate)
	return created, nil
}

func (u *CatalogUseCase) GetLineItem(ctx context.Context, id string) (entities.LineItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LineItem{}, ErrInvalidID
	}
	li, err := u.lineItems.GetByID(ctx, id)
	if err != nil {
		return entities.LineItem{}, err
	}
	if li.ID == "" {
		return entities.LineItem{}, ErrLineItemNotFound
	}
	return li, nil
}

func (u *CatalogUseCase) ListLineItems(ctx context.Context) ([]entities.LineItem, error) {
	items, err := u.lineItems.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (u *CatalogUseCase) UpdateLineItem(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	li = normalizeLineItem(li)
	if li.ID == "" {
		return entities.LineItem{}, ErrInvalidID
	}
	if err := validateLineItem(li); err != nil {
		return entities.LineItem{}, err
	}
	updated, err := u.lineItems.Update(ctx, li)
	if err != nil {
		return entities.LineItem{}, err
	}
	if updated.ID == "" {
		return entities.LineItem{}, ErrLineItemNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteLineItem(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	deleted, err := u.lineItems.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLineItemNotFound
	}
	log.Printf("[catalog][usecase] line item deleted line_item_id=%s", id)
	return nil
}

func (u *CatalogUseCase) CreateTemplate(ctx context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error) {
	t, err := u.prepareTemplate(ctx, t)
	if err != nil {
		return entities.EstimationTemplate{}, err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	created, err := u.templates.Create(ctx, t)
	if err != nil {
		return entities.EstimationTemplate{}, err
	}
	log.Printf("[catalog][usecase] template created template_id=%s items=%d", created.ID, created.ItemsCount)
	return created, nil
}

func (u *CatalogUseCase) GetTemplate(ctx context.Context, id string) (entities.EstimationTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimationTemplate{}, ErrInvalidID
	}
	t, err := u.templates.GetByID(ctx, id)
	if err != nil {
		return entities.EstimationTemplate{}, err
	}
	if t.ID == "" {
		return entities.EstimationTemplate{}, ErrTemplateNotFound
	}
	return t, nil
}

func (u *CatalogUseCase) ListTemplates(ctx context.Context) ([]entities.EstimationTemplate, error) {
	templates, err := u.templates.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates, nil
}

func (u *CatalogUseCase) UpdateTemplate(ctx context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error) {
	t.ID = strings.TrimSpace(t.ID)
	if t.ID == "" {
		return entities.EstimationTemplate{}, ErrInvalidID
	}
	t, err := u.prepareTemplate(ctx, t)
	if err != nil {
		return entities.EstimationTemplate{}, err
	}
	updated, err := u.templates.Update(ctx, t)
	if err != nil {
		return entities.EstimationTemplate{}, err
	}
	if updated.ID == "" {
		return entities.EstimationTemplate{}, ErrTemplateNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteTemplate(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	deleted, err := u.templates.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTemplateNotFound
	}
	return nil
}

// prepareTemplate validates a template, checks that every referenced line item
// exists, assigns item ids and refreshes the derived fields.
func (u *CatalogUseCase) prepareTemplate(ctx context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Category = strings.TrimSpace(t.Category)
	if t.Name == "" {
		return entities.EstimationTemplate{}, ErrInvalidName
	}

	items := make([]entities.EstimationTemplateItem, 0, len(t.Items))
	for _, it := range t.Items {
		it.LineItemID = strings.TrimSpace(it.LineItemID)
		if it.LineItemID == "" {
			return entities.EstimationTemplate{}, ErrInvalidID
		}
		if it.Quantity <= 0 {
			return entities.EstimationTemplate{}, ErrInvalidQuantity
		}
		li, err := u.lineItems.GetByID(ctx, it.LineItemID)
		if err != nil {
			return entities.EstimationTemplate{}, err
		}
		if li.ID == "" {
			return entities.EstimationTemplate{}, ErrLineItemNotFound
		}
		if strings.TrimSpace(it.ID) == "" {
			it.ID = uuid.NewString()
		}
		items = append(items, it)
	}

	t.Items = items
	t.ItemsCount = len(items)
	t.LastModified = u.now()
	return t, nil
}

func normalizeLineItem(li entities.LineItem) entities.LineItem {
	li.ID = strings.TrimSpace(li.ID)
	li.Name = strings.TrimSpace(li.Name)
	li.Category = strings.TrimSpace(li.Category)
	li.Unit = strings.TrimSpace(li.Unit)
	li.Description = strings.TrimSpace(li.Description)
	return li
}

func validateLineItem(li entities.LineItem) error {
	switch {
	case li.Name == "":
		return ErrInvalidName
	case li.Unit == "":
		return ErrInvalidUnit
	case li.Rate <= 0:
		return ErrInvalidRate
	}
	return nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
