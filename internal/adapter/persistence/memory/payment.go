package memory

import (
	"context"
	"fmt"
	"sync"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"
)

type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]entities.Payment
	order    []string
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{payments: map[string]entities.Payment{}}
}

func (r *PaymentRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[p.ID]; ok {
		return entities.Payment{}, fmt.Errorf("payment %s already exists", p.ID)
	}
	r.payments[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.payments[id], nil
}

func (r *PaymentRepository) ListByProjectID(_ context.Context, projectID string) ([]entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Payment{}
	for _, id := range r.order {
		if p := r.payments[id]; p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out, nil
}
