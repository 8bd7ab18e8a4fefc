package interfaces

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_interface_mock.go -package=mock_interfaces

import (
	"construction_dashboard/internal/domain/entities"
	"context"
)

// IPaymentRepository abstracts persistence for project payments.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Payment, error)
}
