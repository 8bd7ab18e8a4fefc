// Package memory keeps every aggregate in process memory. It backs the
// STORAGE_DRIVER=memory mode and the use case tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"
)

type LineItemRepository struct {
	mu    sync.RWMutex
	items map[string]entities.LineItem
}

var _ interfaces.ILineItemRepository = (*LineItemRepository)(nil)

func NewLineItemRepository() *LineItemRepository {
	return &LineItemRepository{items: map[string]entities.LineItem{}}
}

func (r *LineItemRepository) Create(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[li.ID]; ok {
		return entities.LineItem{}, fmt.Errorf("line item %s already exists", li.ID)
	}
	r.items[li.ID] = li
	return li, nil
}

func (r *LineItemRepository) GetByID(_ context.Context, id string) (entities.LineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *LineItemRepository) List(_ context.Context) ([]entities.LineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.LineItem, 0, len(r.items))
	for _, li := range r.items {
		out = append(out, li)
	}
	return out, nil
}

func (r *LineItemRepository) Update(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[li.ID]; !ok {
		return entities.LineItem{}, nil
	}
	r.items[li.ID] = li
	return li, nil
}

func (r *LineItemRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type EstimationTemplateRepository struct {
	mu        sync.RWMutex
	templates map[string]entities.EstimationTemplate
}

var _ interfaces.IEstimationTemplateRepository = (*EstimationTemplateRepository)(nil)

func NewEstimationTemplateRepository() *EstimationTemplateRepository {
	return &EstimationTemplateRepository{templates: map[string]entities.EstimationTemplate{}}
}

func (r *EstimationTemplateRepository) Create(_ context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[t.ID]; ok {
		return entities.EstimationTemplate{}, fmt.Errorf("estimation template %s already exists", t.ID)
	}
	r.templates[t.ID] = copyTemplate(t)
	return copyTemplate(t), nil
}

func (r *EstimationTemplateRepository) GetByID(_ context.Context, id string) (entities.EstimationTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[id]
	if !ok {
		return entities.EstimationTemplate{}, nil
	}
	return copyTemplate(t), nil
}

func (r *EstimationTemplateRepository) List(_ context.Context) ([]entities.EstimationTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.EstimationTemplate, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, copyTemplate(t))
	}
	return out, nil
}

func (r *EstimationTemplateRepository) Update(_ context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[t.ID]; !ok {
		return entities.EstimationTemplate{}, nil
	}
	r.templates[t.ID] = copyTemplate(t)
	return copyTemplate(t), nil
}

func (r *EstimationTemplateRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[id]; !ok {
		return false, nil
	}
	delete(r.templates, id)
	return true, nil
}

func copyTemplate(t entities.EstimationTemplate) entities.EstimationTemplate {
	t.Items = append([]entities.EstimationTemplateItem(nil), t.Items...)
	return t
}
