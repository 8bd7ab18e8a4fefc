package interfaces

//go:generate mockgen -source=project_repository_interface.go -destination=mocks/project_repository_interface_mock.go -package=mock_interfaces

import (
	"construction_dashboard/internal/domain/entities"
	"context"
)

// IProjectRepository abstracts persistence for projects; the timeline is stored
// with its project.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
}

// IProjectRegistry is the slice of the project registry the estimation, agreement
// and payment use cases depend on.

type IProjectRegistry interface {
	GetProject(ctx context.Context, id string) (entities.Project, error)
	AppendTimelineEvent(ctx context.Context, projectID string, ev entities.TimelineEvent) (entities.Project, error)
}
