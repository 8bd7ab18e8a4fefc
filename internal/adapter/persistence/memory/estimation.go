package memory

import (
	"context"
	"fmt"
	"sync"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"
)

// ProjectEstimationRepository applies every multi-record change under a
// single lock, which is what makes CreateActive, SetActive and Delete atomic.
type ProjectEstimationRepository struct {
	mu          sync.RWMutex
	estimations map[string]entities.ProjectEstimation
	order       []string
	sequences   map[string]int
}

var _ interfaces.IProjectEstimationRepository = (*ProjectEstimationRepository)(nil)

func NewProjectEstimationRepository() *ProjectEstimationRepository {
	return &ProjectEstimationRepository{
		estimations: map[string]entities.ProjectEstimation{},
		sequences:   map[string]int{},
	}
}

func (r *ProjectEstimationRepository) CreateActive(_ context.Context, e entities.ProjectEstimation) (entities.ProjectEstimation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.estimations[e.ID]; ok {
		return entities.ProjectEstimation{}, fmt.Errorf("estimation %s already exists", e.ID)
	}
	r.deactivateLocked(e.ProjectID)
	e.IsActive = true
	r.estimations[e.ID] = e.Clone()
	r.order = append(r.order, e.ID)
	if e.Version > r.sequences[e.ProjectID] {
		r.sequences[e.ProjectID] = e.Version
	}
	return e.Clone(), nil
}

func (r *ProjectEstimationRepository) GetByID(_ context.Context, id string) (entities.ProjectEstimation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.estimations[id]
	if !ok {
		return entities.ProjectEstimation{}, nil
	}
	return e.Clone(), nil
}

// ListByProjectID returns estimations in insertion order.
func (r *ProjectEstimationRepository) ListByProjectID(_ context.Context, projectID string) ([]entities.ProjectEstimation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.ProjectEstimation{}
	for _, id := range r.order {
		if e := r.estimations[id]; e.ProjectID == projectID {
			out = append(out, e.Clone())
		}
	}
	return out, nil
}

func (r *ProjectEstimationRepository) Update(_ context.Context, e entities.ProjectEstimation) (entities.ProjectEstimation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.estimations[e.ID]
	if !ok {
		return entities.ProjectEstimation{}, nil
	}
	// Activation only moves through CreateActive, SetActive and Delete.
	e.IsActive = cur.IsActive
	r.estimations[e.ID] = e.Clone()
	return e.Clone(), nil
}

func (r *ProjectEstimationRepository) SetActive(_ context.Context, projectID, estimationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	target, ok := r.estimations[estimationID]
	if !ok || target.ProjectID != projectID {
		return fmt.Errorf("estimation %s not found in project %s", estimationID, projectID)
	}
	r.deactivateLocked(projectID)
	target = r.estimations[estimationID]
	target.IsActive = true
	r.estimations[estimationID] = target
	return nil
}

func (r *ProjectEstimationRepository) Delete(_ context.Context, id, promoteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	target, ok := r.estimations[id]
	if !ok {
		return fmt.Errorf("estimation %s not found", id)
	}
	if r.countLocked(target.ProjectID) <= 1 {
		return interfaces.ErrLastStoredEstimation
	}
	if promoteID != "" {
		p, ok := r.estimations[promoteID]
		if !ok {
			return fmt.Errorf("estimation %s not found", promoteID)
		}
		p.IsActive = true
		r.estimations[promoteID] = p
	}
	delete(r.estimations, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProjectEstimationRepository) NextVersion(_ context.Context, projectID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sequences[projectID]++
	return r.sequences[projectID], nil
}

func (r *ProjectEstimationRepository) deactivateLocked(projectID string) {
	for id, e := range r.estimations {
		if e.ProjectID == projectID && e.IsActive {
			e.IsActive = false
			r.estimations[id] = e
		}
	}
}

func (r *ProjectEstimationRepository) countLocked(projectID string) int {
	n := 0
	for _, e := range r.estimations {
		if e.ProjectID == projectID {
			n++
		}
	}
	return n
}
