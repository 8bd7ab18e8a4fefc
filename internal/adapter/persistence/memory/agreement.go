package memory

import (
	"context"
	"fmt"
	"sync"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"
)

type AgreementRepository struct {
	mu         sync.RWMutex
	agreements map[string]entities.Agreement
}

var _ interfaces.IAgreementRepository = (*AgreementRepository)(nil)

func NewAgreementRepository() *AgreementRepository {
	return &AgreementRepository{agreements: map[string]entities.Agreement{}}
}

func (r *AgreementRepository) Create(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agreements[a.ID]; ok {
		return entities.Agreement{}, fmt.Errorf("agreement %s already exists", a.ID)
	}
	r.agreements[a.ID] = a
	return a, nil
}

func (r *AgreementRepository) GetByID(_ context.Context, id string) (entities.Agreement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.agreements[id], nil
}

func (r *AgreementRepository) List(_ context.Context) ([]entities.Agreement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Agreement, 0, len(r.agreements))
	for _, a := range r.agreements {
		out = append(out, a)
	}
	return out, nil
}

func (r *AgreementRepository) Update(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agreements[a.ID]; !ok {
		return entities.Agreement{}, nil
	}
	r.agreements[a.ID] = a
	return a, nil
}

func (r *AgreementRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agreements[id]; !ok {
		return false, nil
	}
	delete(r.agreements, id)
	return true, nil
}
