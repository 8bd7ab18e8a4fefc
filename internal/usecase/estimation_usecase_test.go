package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"construction_dashboard/internal/adapter/persistence/memory"
	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"
	mock_interfaces "construction_dashboard/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type estimationFixture struct {
	uc          *EstimationUseCase
	projects    *ProjectUseCase
	estimations *memory.ProjectEstimationRepository
	lineItems   *memory.LineItemRepository
	templates   *memory.EstimationTemplateRepository
}

func newEstimationFixture(t *testing.T) estimationFixture {
	t.Helper()
	ctx := context.Background()

	lineItems := memory.NewLineItemRepository()
	templates := memory.NewEstimationTemplateRepository()
	estimations := memory.NewProjectEstimationRepository()
	projects := NewProjectUseCase(memory.NewProjectRepository())

	for _, li := range []entities.LineItem{
		{ID: "LI001", Name: "Excavation", Category: "Earthwork", Unit: "cu.m", Rate: 350},
		{ID: "LI002", Name: "Cement", Category: "Materials", Unit: "bag", Rate: 5000},
	} {
		if _, err := lineItems.Create(ctx, li); err != nil {
			t.Fatalf("seed line item: %v", err)
		}
	}
	_, err := templates.Create(ctx, entities.EstimationTemplate{
		ID:   "ET001",
		Name: "Basic House",
		Items: []entities.EstimationTemplateItem{
			{ID: "ETI1", LineItemID: "LI001", Quantity: 100},
			{ID: "ETI2", LineItemID: "LI002", Quantity: 8},
		},
		ItemsCount: 2,
	})
	if err != nil {
		t.Fatalf("seed template: %v", err)
	}
	if _, err := projects.Create(ctx, entities.Project{ID: "PRJ001", Name: "Villa", ClientName: "Asha", EstimatedBudget: 1000000}); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	return estimationFixture{
		uc:          NewEstimationUseCase(estimations, lineItems, templates, projects),
		projects:    projects,
		estimations: estimations,
		lineItems:   lineItems,
		templates:   templates,
	}
}

func activeCount(t *testing.T, f estimationFixture, projectID string) int {
	t.Helper()
	list, err := f.estimations.ListByProjectID(context.Background(), projectID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	n := 0
	for _, e := range list {
		if e.IsActive {
			n++
		}
	}
	return n
}

func TestEstimationUseCase_VersionLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newEstimationFixture(t)

	v1, err := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "First")
	if err != nil {
		t.Fatalf("create v1: %v", err)
	}
	if v1.Version != 1 || !v1.IsActive || v1.TotalAmount != 75000 {
		t.Fatalf("unexpected v1: version=%d active=%v total=%v", v1.Version, v1.IsActive, v1.TotalAmount)
	}

	var excavation string
	for _, it := range v1.Items {
		if it.LineItemID == "LI001" {
			excavation = it.ID
		}
	}
	qty := 200.0
	v1, err = f.uc.UpdateItem(ctx, v1.ID, excavation, ItemUpdate{Quantity: &qty})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if v1.TotalAmount != 110000 {
		t.Fatalf("expected total 110000, got %v", v1.TotalAmount)
	}

	v2, err := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "Second")
	if err != nil {
		t.Fatalf("create v2: %v", err)
	}
	if v2.Version != 2 || !v2.IsActive {
		t.Fatalf("expected active v2, got version=%d active=%v", v2.Version, v2.IsActive)
	}
	old, _ := f.uc.GetByID(ctx, v1.ID)
	if old.IsActive {
		t.Fatalf("v1 should have been deactivated")
	}

	ok, err := f.uc.DeleteEstimation(ctx, v1.ID)
	if err != nil || !ok {
		t.Fatalf("delete v1: ok=%v err=%v", ok, err)
	}

	ok, err = f.uc.DeleteEstimation(ctx, v2.ID)
	if ok || !errors.Is(err, ErrLastEstimation) || !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected last estimation rejection, got ok=%v err=%v", ok, err)
	}
	if activeCount(t, f, "PRJ001") != 1 {
		t.Fatalf("expected exactly one active estimation")
	}
}

func TestEstimationUseCase_CreateFromTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		f := newEstimationFixture(t)
		if _, err := f.uc.CreateFromTemplate(ctx, " ", "ET001", "x"); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		f := newEstimationFixture(t)
		if _, err := f.uc.CreateFromTemplate(ctx, "nope", "ET001", "x"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		f := newEstimationFixture(t)
		_, err := f.uc.CreateFromTemplate(ctx, "PRJ001", "nope", "x")
		if !errors.Is(err, ErrTemplateNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
	})

	t.Run("missing line item falls back to rate zero", func(t *testing.T) {
		f := newEstimationFixture(t)
		if _, err := f.lineItems.Delete(ctx, "LI002"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		e, err := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "x")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if e.TotalAmount != 35000 || len(e.Items) != 2 {
			t.Fatalf("unexpected estimation: total=%v items=%d", e.TotalAmount, len(e.Items))
		}
	})

	t.Run("rates are captured at creation", func(t *testing.T) {
		f := newEstimationFixture(t)
		e, err := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "x")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, err := f.lineItems.Update(ctx, entities.LineItem{ID: "LI001", Name: "Excavation", Unit: "cu.m", Rate: 999}); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := f.uc.GetByID(ctx, e.ID)
		if got.TotalAmount != 75000 {
			t.Fatalf("catalog change leaked into estimation: %v", got.TotalAmount)
		}
	})

	t.Run("default name and timeline event", func(t *testing.T) {
		f := newEstimationFixture(t)
		e, err := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "  ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if e.Name != "Basic House v1" {
			t.Fatalf("unexpected default name %q", e.Name)
		}
		timeline, _ := f.projects.Timeline(ctx, "PRJ001")
		if len(timeline) != 2 || timeline[0].Title != "Estimation created" {
			t.Fatalf("unexpected timeline: %+v", timeline)
		}
	})
}

func TestEstimationUseCase_Items(t *testing.T) {
	ctx := context.Background()

	t.Run("negative values rejected", func(t *testing.T) {
		f := newEstimationFixture(t)
		e, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "x")
		neg := -1.0
		_, err := f.uc.UpdateItem(ctx, e.ID, e.Items[0].ID, ItemUpdate{Rate: &neg})
		if !errors.Is(err, ErrNegativeValue) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrNegativeValue, got %v", err)
		}
		got, _ := f.uc.GetByID(ctx, e.ID)
		if got.TotalAmount != 75000 {
			t.Fatalf("estimation changed after rejected update")
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newEstimationFixture(t)
		e, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "x")
		notes := "n"
		if _, err := f.uc.UpdateItem(ctx, e.ID, "nope", ItemUpdate{Notes: &notes}); !errors.Is(err, ErrEstimationItemNotFound) {
			t.Fatalf("expected ErrEstimationItemNotFound, got %v", err)
		}
		if _, err := f.uc.DeleteItem(ctx, e.ID, "nope"); !errors.Is(err, ErrEstimationItemNotFound) {
			t.Fatalf("expected ErrEstimationItemNotFound, got %v", err)
		}
	})

	t.Run("unknown estimation", func(t *testing.T) {
		f := newEstimationFixture(t)
		notes := "n"
		if _, err := f.uc.UpdateItem(ctx, "nope", "x", ItemUpdate{Notes: &notes}); !errors.Is(err, ErrEstimationNotFound) {
			t.Fatalf("expected ErrEstimationNotFound, got %v", err)
		}
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		f := newEstimationFixture(t)
		e, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "x")
		rate := 400.0
		got, err := f.uc.UpdateItem(ctx, e.ID, e.Items[0].ID, ItemUpdate{Rate: &rate})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		it := got.Items[0]
		if it.Quantity != 100 || it.Rate != 400 || it.Amount != 40000 || got.TotalAmount != 80000 {
			t.Fatalf("unexpected item after update: %+v total=%v", it, got.TotalAmount)
		}
	})

	t.Run("delete all items", func(t *testing.T) {
		f := newEstimationFixture(t)
		e, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "x")
		for _, it := range e.Items {
			var err error
			e, err = f.uc.DeleteItem(ctx, e.ID, it.ID)
			if err != nil {
				t.Fatalf("delete item: %v", err)
			}
		}
		if len(e.Items) != 0 || e.TotalAmount != 0 {
			t.Fatalf("expected empty estimation, got %+v", e)
		}
	})

	t.Run("add item uses catalog rate", func(t *testing.T) {
		f := newEstimationFixture(t)
		e, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "x")
		got, err := f.uc.AddItem(ctx, e.ID, "LI002", 2, "extra")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got.Items) != 3 || got.TotalAmount != 85000 {
			t.Fatalf("unexpected estimation after add: items=%d total=%v", len(got.Items), got.TotalAmount)
		}
		if _, err := f.uc.AddItem(ctx, e.ID, "nope", 1, ""); !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
		if _, err := f.uc.AddItem(ctx, e.ID, "LI001", 0, ""); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestEstimationUseCase_SetActive(t *testing.T) {
	ctx := context.Background()
	f := newEstimationFixture(t)
	v1, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "a")
	v2, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "b")

	ok, err := f.uc.SetActive(ctx, "PRJ001", "nope")
	if ok || err != nil {
		t.Fatalf("expected silent no-op, got ok=%v err=%v", ok, err)
	}
	if got, _ := f.uc.GetActive(ctx, "PRJ001"); got.ID != v2.ID {
		t.Fatalf("no-op changed the active estimation")
	}

	ok, err = f.uc.SetActive(ctx, "PRJ001", v1.ID)
	if !ok || err != nil {
		t.Fatalf("set active: ok=%v err=%v", ok, err)
	}
	before, _ := f.projects.Timeline(ctx, "PRJ001")
	ok, err = f.uc.SetActive(ctx, "PRJ001", v1.ID)
	if !ok || err != nil {
		t.Fatalf("repeat set active: ok=%v err=%v", ok, err)
	}
	after, _ := f.projects.Timeline(ctx, "PRJ001")
	if len(after) != len(before) {
		t.Fatalf("repeated activation should not add timeline events")
	}
	if got, _ := f.uc.GetActive(ctx, "PRJ001"); got.ID != v1.ID {
		t.Fatalf("expected v1 active, got %s", got.ID)
	}
	if activeCount(t, f, "PRJ001") != 1 {
		t.Fatalf("expected exactly one active estimation")
	}

	if ok, _ := f.uc.SetActive(ctx, "other-project", v1.ID); ok {
		t.Fatalf("estimation of another project must not be activated")
	}
}

func TestEstimationUseCase_Duplicate(t *testing.T) {
	ctx := context.Background()
	f := newEstimationFixture(t)
	src, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "Base")

	dup, err := f.uc.Duplicate(ctx, src.ID, "")
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dup.Version != 2 || !dup.IsActive || dup.Name != "Base (Copy)" {
		t.Fatalf("unexpected duplicate: %+v", dup)
	}
	if dup.TotalAmount != src.TotalAmount || dup.TemplateID != src.TemplateID || len(dup.Items) != len(src.Items) {
		t.Fatalf("duplicate did not preserve content")
	}
	for i := range dup.Items {
		if dup.Items[i].ID == src.Items[i].ID {
			t.Fatalf("item ids must be fresh")
		}
	}
	if activeCount(t, f, "PRJ001") != 1 {
		t.Fatalf("expected exactly one active estimation")
	}

	if _, err := f.uc.Duplicate(ctx, "nope", "x"); !errors.Is(err, ErrEstimationNotFound) {
		t.Fatalf("expected ErrEstimationNotFound, got %v", err)
	}
}

func TestEstimationUseCase_DeleteEstimation(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting the active one promotes the most recent", func(t *testing.T) {
		f := newEstimationFixture(t)
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		clock := base
		f.uc.now = func() time.Time { return clock }

		a, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "a")
		clock = base.Add(time.Hour)
		b, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "b")
		c, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "c")
		if _, err := f.uc.SetActive(ctx, "PRJ001", a.ID); err != nil {
			t.Fatalf("set active: %v", err)
		}

		ok, err := f.uc.DeleteEstimation(ctx, a.ID)
		if !ok || err != nil {
			t.Fatalf("delete: ok=%v err=%v", ok, err)
		}
		active, _ := f.uc.GetActive(ctx, "PRJ001")
		if active.ID != c.ID {
			t.Fatalf("expected later insert %s to win the tie, got %s (b=%s)", c.ID, active.ID, b.ID)
		}
	})

	t.Run("deleting an inactive one keeps the active", func(t *testing.T) {
		f := newEstimationFixture(t)
		a, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "a")
		b, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "b")
		if ok, err := f.uc.DeleteEstimation(ctx, a.ID); !ok || err != nil {
			t.Fatalf("delete: ok=%v err=%v", ok, err)
		}
		active, _ := f.uc.GetActive(ctx, "PRJ001")
		if active.ID != b.ID {
			t.Fatalf("expected %s active, got %s", b.ID, active.ID)
		}
	})

	t.Run("versions are never reused", func(t *testing.T) {
		f := newEstimationFixture(t)
		f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "a")
		b, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "b")
		if ok, err := f.uc.DeleteEstimation(ctx, b.ID); !ok || err != nil {
			t.Fatalf("delete: ok=%v err=%v", ok, err)
		}
		c, _ := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "c")
		if c.Version != 3 {
			t.Fatalf("expected version 3, got %d", c.Version)
		}
	})

	t.Run("unknown estimation", func(t *testing.T) {
		f := newEstimationFixture(t)
		if ok, err := f.uc.DeleteEstimation(ctx, "nope"); ok || !errors.Is(err, ErrEstimationNotFound) {
			t.Fatalf("expected ErrEstimationNotFound, got ok=%v err=%v", ok, err)
		}
	})
}

func TestEstimationUseCase_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	f := newEstimationFixture(t)

	const n = 20
	var wg sync.WaitGroup
	versions := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "")
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			versions <- e.Version
		}()
	}
	wg.Wait()
	close(versions)

	seen := map[int]bool{}
	for v := range versions {
		if seen[v] {
			t.Fatalf("duplicate version %d", v)
		}
		seen[v] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d versions, got %d", n, len(seen))
	}
	if activeCount(t, f, "PRJ001") != 1 {
		t.Fatalf("expected exactly one active estimation")
	}
}

func TestEstimationUseCase_RepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("next version fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectEstimationRepository(ctrl)
		lineItems := mock_interfaces.NewMockILineItemRepository(ctrl)
		templates := mock_interfaces.NewMockIEstimationTemplateRepository(ctrl)
		registry := mock_interfaces.NewMockIProjectRegistry(ctrl)
		uc := NewEstimationUseCase(repo, lineItems, templates, registry)

		registry.EXPECT().GetProject(gomock.Any(), "p1").Return(entities.Project{ID: "p1"}, nil)
		templates.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.EstimationTemplate{ID: "t1", Name: "T"}, nil)
		repo.EXPECT().NextVersion(gomock.Any(), "p1").Return(0, errors.New("db"))

		_, err := uc.CreateFromTemplate(ctx, "p1", "t1", "x")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("timeline failure does not fail the operation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectEstimationRepository(ctrl)
		lineItems := mock_interfaces.NewMockILineItemRepository(ctrl)
		templates := mock_interfaces.NewMockIEstimationTemplateRepository(ctrl)
		registry := mock_interfaces.NewMockIProjectRegistry(ctrl)
		uc := NewEstimationUseCase(repo, lineItems, templates, registry)

		registry.EXPECT().GetProject(gomock.Any(), "p1").Return(entities.Project{ID: "p1"}, nil)
		templates.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.EstimationTemplate{
			ID: "t1", Name: "T", Items: []entities.EstimationTemplateItem{{ID: "i1", LineItemID: "li1", Quantity: 2}},
		}, nil)
		lineItems.EXPECT().GetByID(gomock.Any(), "li1").Return(entities.LineItem{ID: "li1", Rate: 10}, nil)
		repo.EXPECT().NextVersion(gomock.Any(), "p1").Return(1, nil)
		repo.EXPECT().CreateActive(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ProjectEstimation) (entities.ProjectEstimation, error) {
				return e, nil
			})
		registry.EXPECT().AppendTimelineEvent(gomock.Any(), "p1", gomock.Any()).Return(entities.Project{}, errors.New("timeline down"))

		e, err := uc.CreateFromTemplate(ctx, "p1", "t1", "x")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if e.TotalAmount != 20 {
			t.Fatalf("expected total 20, got %v", e.TotalAmount)
		}
	})

	t.Run("set-active conflict is reported and not re-read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo, nil, nil, nil)

		gomock.InOrder(
			repo.EXPECT().ListByProjectID(gomock.Any(), "p1").Return([]entities.ProjectEstimation{
				{ID: "e1", ProjectID: "p1", IsActive: true}, {ID: "e2", ProjectID: "p1"},
			}, nil),
			repo.EXPECT().SetActive(gomock.Any(), "p1", "e2").
				Return(fmt.Errorf("estimation transaction: %w", interfaces.ErrEstimationWriteConflict)),
		)

		ok, err := uc.SetActive(ctx, "p1", "e2")
		if ok || !errors.Is(err, ErrConcurrentUpdate) || !errors.Is(err, ErrInvariantViolation) {
			t.Fatalf("expected ErrConcurrentUpdate, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("duplicate conflict returns no estimation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo, nil, nil, nil)

		src := entities.ProjectEstimation{ID: "e1", ProjectID: "p1", Name: "Base", Version: 1, IsActive: true}
		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(src, nil).Times(2)
		repo.EXPECT().NextVersion(gomock.Any(), "p1").Return(2, nil)
		repo.EXPECT().CreateActive(gomock.Any(), gomock.Any()).Return(entities.ProjectEstimation{}, interfaces.ErrEstimationWriteConflict)

		dup, err := uc.Duplicate(ctx, "e1", "")
		if !errors.Is(err, ErrConcurrentUpdate) || dup.ID != "" {
			t.Fatalf("expected ErrConcurrentUpdate and empty result, got %+v err=%v", dup, err)
		}
	})

	t.Run("store refuses to delete the last estimation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo, nil, nil, nil)

		target := entities.ProjectEstimation{ID: "e2", ProjectID: "p1", Version: 2}
		repo.EXPECT().GetByID(gomock.Any(), "e2").Return(target, nil).Times(2)
		// the listing still shows a sibling the store has already removed
		repo.EXPECT().ListByProjectID(gomock.Any(), "p1").Return([]entities.ProjectEstimation{
			{ID: "e1", ProjectID: "p1", Version: 1, IsActive: true}, target,
		}, nil)
		repo.EXPECT().Delete(gomock.Any(), "e2", "").Return(interfaces.ErrLastStoredEstimation)

		ok, err := uc.DeleteEstimation(ctx, "e2")
		if ok || !errors.Is(err, ErrLastEstimation) {
			t.Fatalf("expected ErrLastEstimation, got ok=%v err=%v", ok, err)
		}
	})
}
