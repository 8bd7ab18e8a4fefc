package interfaces

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_interface_mock.go -package=mock_interfaces

import (
	"construction_dashboard/internal/domain/entities"
	"context"
)

// ILineItemRepository abstracts persistence for catalog line items.
// Lookups return a zero-value entity (ID == "") when nothing matches.

type ILineItemRepository interface {
	Create(ctx context.Context, li entities.LineItem) (entities.LineItem, error)
	GetByID(ctx context.Context, id string) (entities.LineItem, error)
	List(ctx context.Context) ([]entities.LineItem, error)
	Update(ctx context.Context, li entities.LineItem) (entities.LineItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IEstimationTemplateRepository abstracts persistence for estimation templates.
// Template items are stored with the template.

type IEstimationTemplateRepository interface {
	Create(ctx context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error)
	GetByID(ctx context.Context, id string) (entities.EstimationTemplate, error)
	List(ctx context.Context) ([]entities.EstimationTemplate, error)
	Update(ctx context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error)
	Delete(ctx context.Context, id string) (bool, error)
}
