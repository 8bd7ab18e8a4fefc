package interfaces

//go:generate mockgen -source=agreement_repository_interface.go -destination=mocks/agreement_repository_interface_mock.go -package=mock_interfaces

import (
	"construction_dashboard/internal/domain/entities"
	"context"
)

// IAgreementRepository abstracts persistence for agreement templates.

type IAgreementRepository interface {
	Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error)
	GetByID(ctx context.Context, id string) (entities.Agreement, error)
	List(ctx context.Context) ([]entities.Agreement, error)
	Update(ctx context.Context, a entities.Agreement) (entities.Agreement, error)
	Delete(ctx context.Context, id string) (bool, error)
}
