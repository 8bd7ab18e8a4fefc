package usecase

//go:generate mockgen -source=project_usecase.go -destination=../adapter/http/handlers/mocks/project_usecase_mock.go -package=mocks

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ClientInfo carries the client contact fields edited together from the
// project page.
type ClientInfo struct {
	ClientName    string
	ClientAddress string
	PhoneNumber   string
	Email         string
}

// ProjectPatch is a partial project update; nil fields are left untouched.
type ProjectPatch struct {
	Name            *string
	ClientName      *string
	ClientAddress   *string
	ProjectAddress  *string
	PhoneNumber     *string
	Email           *string
	AgreementDate   *time.Time
	ProjectType     *string
	NumberOfFloors  *int
	ProjectDuration *string
	EstimatedBudget *float64
	Status          *entities.ProjectStatus
}

// IProjectUseCase is the project registry. It owns projects and their timelines
// and records one timeline event per status change or client-info edit.
type IProjectUseCase interface {
	interfaces.IProjectRegistry
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, id string, patch ProjectPatch) (entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	UpdateClientInfo(ctx context.Context, id string, info ClientInfo) (entities.Project, error)
	Timeline(ctx context.Context, id string) ([]entities.TimelineEvent, error)
}

type ProjectUseCase struct {
	repo  interfaces.IProjectRepository
	locks *keyedMutex
	now   func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, locks: newKeyedMutex(), now: utcNow}
}

func (u *ProjectUseCase) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.ClientName = strings.TrimSpace(p.ClientName)
	if p.Status == "" {
		p.Status = entities.ProjectStatusNew
	}
	if err := validateProject(p); err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	now := u.now()
	if p.DateCreated.IsZero() {
		p.DateCreated = now
	}
	p.Timeline = []entities.TimelineEvent{{
		ID:     uuid.NewString(),
		Title:  "Project created",
		Date:   now,
		Status: entities.TimelineEventCompleted,
	}}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	log.Printf("[project][usecase] created project_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	projects, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].DateCreated.After(projects[j].DateCreated)
	})
	return projects, nil
}

// Update merges patch onto the stored project. A status change and a change to
// any client field each append one timeline event.
func (u *ProjectUseCase) Update(ctx context.Context, id string, patch ProjectPatch) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidID
	}
	unlock := u.locks.Lock(id)
	defer unlock()

	p, err := u.GetProject(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	prevStatus := p.Status
	clientChanged := applyPatch(&p, patch)
	if err := validateProject(p); err != nil {
		return entities.Project{}, err
	}

	now := u.now()
	if p.Status != prevStatus {
		p.Timeline = insertEvent(p.Timeline, entities.TimelineEvent{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("Status changed to %s", p.Status),
			Date:        now,
			Status:      entities.TimelineEventCompleted,
			Description: fmt.Sprintf("Status changed from %s to %s", prevStatus, p.Status),
		})
	}
	if clientChanged {
		p.Timeline = insertEvent(p.Timeline, entities.TimelineEvent{
			ID:     uuid.NewString(),
			Title:  "Client information updated",
			Date:   now,
			Status: entities.TimelineEventCompleted,
		})
	}

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	if !status.Valid() {
		return entities.Project{}, ErrInvalidStatus
	}
	return u.Update(ctx, id, ProjectPatch{Status: &status})
}

func (u *ProjectUseCase) UpdateClientInfo(ctx context.Context, id string, info ClientInfo) (entities.Project, error) {
	return u.Update(ctx, id, ProjectPatch{
		ClientName:    &info.ClientName,
		ClientAddress: &info.ClientAddress,
		PhoneNumber:   &info.PhoneNumber,
		Email:         &info.Email,
	})
}

// AppendTimelineEvent inserts ev and keeps the timeline sorted newest first.
// Missing id, date and status are filled in.
func (u *ProjectUseCase) AppendTimelineEvent(ctx context.Context, projectID string, ev entities.TimelineEvent) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidID
	}
	ev.Title = strings.TrimSpace(ev.Title)
	if ev.Title == "" {
		return entities.Project{}, ErrInvalidName
	}
	if ev.Status == "" {
		ev.Status = entities.TimelineEventCompleted
	}
	if !ev.Status.Valid() {
		return entities.Project{}, ErrInvalidStatus
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Date.IsZero() {
		ev.Date = u.now()
	}

	unlock := u.locks.Lock(projectID)
	defer unlock()

	p, err := u.GetProject(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	p.Timeline = insertEvent(p.Timeline, ev)

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	log.Printf("[project][usecase] timeline event project_id=%s title=%q", projectID, ev.Title)
	return updated, nil
}

func (u *ProjectUseCase) Timeline(ctx context.Context, id string) ([]entities.TimelineEvent, error) {
	p, err := u.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	events := append([]entities.TimelineEvent(nil), p.Timeline...)
	entities.SortTimeline(events)
	return events, nil
}

// insertEvent puts ev in front so it wins ties on date, then re-sorts.
func insertEvent(timeline []entities.TimelineEvent, ev entities.TimelineEvent) []entities.TimelineEvent {
	out := make([]entities.TimelineEvent, 0, len(timeline)+1)
	out = append(out, ev)
	out = append(out, timeline...)
	entities.SortTimeline(out)
	return out
}

func applyPatch(p *entities.Project, patch ProjectPatch) (clientChanged bool) {
	setString := func(dst *string, v *string, client bool) {
		if v == nil {
			return
		}
		nv := strings.TrimSpace(*v)
		if nv != *dst && client {
			clientChanged = true
		}
		*dst = nv
	}
	setString(&p.Name, patch.Name, false)
	setString(&p.ClientName, patch.ClientName, true)
	setString(&p.ClientAddress, patch.ClientAddress, true)
	setString(&p.PhoneNumber, patch.PhoneNumber, true)
	setString(&p.Email, patch.Email, true)
	setString(&p.ProjectAddress, patch.ProjectAddress, false)
	setString(&p.ProjectType, patch.ProjectType, false)
	setString(&p.ProjectDuration, patch.ProjectDuration, false)
	if patch.AgreementDate != nil {
		p.AgreementDate = *patch.AgreementDate
	}
	if patch.NumberOfFloors != nil {
		p.NumberOfFloors = *patch.NumberOfFloors
	}
	if patch.EstimatedBudget != nil {
		p.EstimatedBudget = *patch.EstimatedBudget
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	return clientChanged
}

func validateProject(p entities.Project) error {
	switch {
	case p.Name == "", p.ClientName == "":
		return ErrInvalidName
	case !p.Status.Valid():
		return ErrInvalidStatus
	case p.NumberOfFloors < 0, p.EstimatedBudget < 0:
		return ErrNegativeValue
	}
	return nil
}
