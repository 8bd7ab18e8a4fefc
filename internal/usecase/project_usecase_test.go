package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"construction_dashboard/internal/adapter/persistence/memory"
	"construction_dashboard/internal/domain/entities"
	mock_interfaces "construction_dashboard/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uc := NewProjectUseCase(memory.NewProjectRepository())

	if _, err := uc.Create(ctx, entities.Project{Name: "Villa"}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := uc.Create(ctx, entities.Project{Name: "Villa", ClientName: "Asha", Status: "Demolished"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	p, err := uc.Create(ctx, entities.Project{Name: "Villa", ClientName: "Asha"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" || p.Status != entities.ProjectStatusNew || len(p.Timeline) != 1 {
		t.Fatalf("unexpected project %+v", p)
	}
	if _, err := uc.GetProject(ctx, "nope"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectUseCase_UpdateEvents(t *testing.T) {
	ctx := context.Background()
	uc := NewProjectUseCase(memory.NewProjectRepository())
	p, _ := uc.Create(ctx, entities.Project{ID: "PRJ001", Name: "Villa", ClientName: "Asha"})

	t.Run("status change appends one event", func(t *testing.T) {
		got, err := uc.UpdateStatus(ctx, p.ID, entities.ProjectStatusUnderConstruction)
		if err != nil {
			t.Fatalf("update status: %v", err)
		}
		if got.Status != entities.ProjectStatusUnderConstruction || len(got.Timeline) != 2 {
			t.Fatalf("unexpected project %+v", got)
		}
		if got.Timeline[0].Title != "Status changed to Under Construction" {
			t.Fatalf("unexpected newest event %q", got.Timeline[0].Title)
		}
	})

	t.Run("same status adds nothing", func(t *testing.T) {
		got, err := uc.UpdateStatus(ctx, p.ID, entities.ProjectStatusUnderConstruction)
		if err != nil || len(got.Timeline) != 2 {
			t.Fatalf("expected no new event, got %d err=%v", len(got.Timeline), err)
		}
	})

	t.Run("client info edit appends one event", func(t *testing.T) {
		got, err := uc.UpdateClientInfo(ctx, p.ID, ClientInfo{ClientName: "Asha Rao", PhoneNumber: "98450 00000"})
		if err != nil {
			t.Fatalf("update client: %v", err)
		}
		if got.ClientName != "Asha Rao" || len(got.Timeline) != 3 || got.Timeline[0].Title != "Client information updated" {
			t.Fatalf("unexpected project %+v", got)
		}
	})

	t.Run("non-client fields add nothing", func(t *testing.T) {
		floors := 3
		got, err := uc.Update(ctx, p.ID, ProjectPatch{NumberOfFloors: &floors})
		if err != nil || got.NumberOfFloors != 3 || len(got.Timeline) != 3 {
			t.Fatalf("unexpected update result %+v err=%v", got, err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		if _, err := uc.UpdateStatus(ctx, p.ID, "Demolished"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestProjectUseCase_AppendTimelineEvent(t *testing.T) {
	ctx := context.Background()
	uc := NewProjectUseCase(memory.NewProjectRepository())
	p, _ := uc.Create(ctx, entities.Project{ID: "PRJ001", Name: "Villa", ClientName: "Asha"})

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := uc.AppendTimelineEvent(ctx, p.ID, entities.TimelineEvent{Title: "Site survey", Date: old}); err != nil {
		t.Fatalf("append: %v", err)
	}
	future := time.Now().UTC().Add(24 * time.Hour)
	if _, err := uc.AppendTimelineEvent(ctx, p.ID, entities.TimelineEvent{Title: "Handover", Date: future, Status: entities.TimelineEventPending}); err != nil {
		t.Fatalf("append: %v", err)
	}

	timeline, err := uc.Timeline(ctx, p.ID)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(timeline) != 3 || timeline[0].Title != "Handover" || timeline[2].Title != "Site survey" {
		t.Fatalf("timeline not sorted newest first: %+v", timeline)
	}
	for i := 1; i < len(timeline); i++ {
		if timeline[i].Date.After(timeline[i-1].Date) {
			t.Fatalf("timeline out of order at %d", i)
		}
	}

	if _, err := uc.AppendTimelineEvent(ctx, p.ID, entities.TimelineEvent{Title: " "}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := uc.AppendTimelineEvent(ctx, p.ID, entities.TimelineEvent{Title: "x", Status: "done"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := uc.AppendTimelineEvent(ctx, "nope", entities.TimelineEvent{Title: "x"}); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectUseCase_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProjectRepository(ctrl)
	uc := NewProjectUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Project{ID: "p1", Name: "Villa", ClientName: "Asha", Status: entities.ProjectStatusNew}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Project{}, errors.New("db"))

	_, err := uc.AppendTimelineEvent(context.Background(), "p1", entities.TimelineEvent{Title: "x"})
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}
