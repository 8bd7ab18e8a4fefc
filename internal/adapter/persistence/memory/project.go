package memory

import (
	"context"
	"fmt"
	"sync"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"
)

type ProjectRepository struct {
	mu       sync.RWMutex
	projects map[string]entities.Project
}

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{projects: map[string]entities.Project{}}
}

func (r *ProjectRepository) Create(_ context.Context, p entities.Project) (entities.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[p.ID]; ok {
		return entities.Project{}, fmt.Errorf("project %s already exists", p.ID)
	}
	r.projects[p.ID] = copyProject(p)
	return copyProject(p), nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id string) (entities.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[id]
	if !ok {
		return entities.Project{}, nil
	}
	return copyProject(p), nil
}

func (r *ProjectRepository) List(_ context.Context) ([]entities.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, copyProject(p))
	}
	return out, nil
}

func (r *ProjectRepository) Update(_ context.Context, p entities.Project) (entities.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[p.ID]; !ok {
		return entities.Project{}, nil
	}
	r.projects[p.ID] = copyProject(p)
	return copyProject(p), nil
}

func copyProject(p entities.Project) entities.Project {
	p.Timeline = append([]entities.TimelineEvent(nil), p.Timeline...)
	return p
}
