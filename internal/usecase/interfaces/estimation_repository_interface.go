package interfaces

//go:generate mockgen -source=estimation_repository_interface.go -destination=mocks/estimation_repository_interface_mock.go -package=mock_interfaces

import (
	"construction_dashboard/internal/domain/entities"
	"context"
	"errors"
)

var (
	// ErrLastStoredEstimation is returned by Delete when the estimation is the
	// only one its project has.
	ErrLastStoredEstimation = errors.New("estimation is the last one of its project")
	// ErrEstimationWriteConflict is returned when a conditional write lost a
	// race with another writer on the same project; nothing was applied.
	ErrEstimationWriteConflict = errors.New("concurrent estimation write")
)

// IProjectEstimationRepository abstracts persistence for versioned project estimations.
//
// Every method that touches more than one record must apply its changes atomically:
//   - CreateActive deactivates the project's other estimations and inserts e as active
//   - SetActive deactivates all estimations of the project, then activates the target
//   - Delete removes an estimation and, when promoteID is set, activates promoteID
//
// The single-active rule and the last-estimation rule are enforced by the store
// itself inside those writes: a write that would break either one is rejected
// whole with ErrLastStoredEstimation or ErrEstimationWriteConflict.
//
// NextVersion allocates from a per-project sequence seeded from the highest stored
// version; values handed out are never returned again, even after deletions.

type IProjectEstimationRepository interface {
	CreateActive(ctx context.Context, e entities.ProjectEstimation) (entities.ProjectEstimation, error)
	GetByID(ctx context.Context, id string) (entities.ProjectEstimation, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ProjectEstimation, error)
	Update(ctx context.Context, e entities.ProjectEstimation) (entities.ProjectEstimation, error)
	SetActive(ctx context.Context, projectID, estimationID string) error
	Delete(ctx context.Context, id, promoteID string) error
	NextVersion(ctx context.Context, projectID string) (int, error)
}
