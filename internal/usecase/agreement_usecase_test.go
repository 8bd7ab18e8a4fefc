package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"construction_dashboard/internal/adapter/persistence/memory"
	"construction_dashboard/internal/domain/entities"
	mock_interfaces "construction_dashboard/internal/usecase/interfaces/mocks"
	"construction_dashboard/internal/usecase/merge"

	"go.uber.org/mock/gomock"
)

const testAgreementContent = `<h1>{{PROJECT_NAME}}</h1><p>{{CLIENT_NAME}} agrees to {{ESTIMATED_BUDGET}}.</p>{{ESTIMATION_TABLE}}`

func newAgreementFixture(t *testing.T) (*AgreementUseCase, estimationFixture) {
	t.Helper()
	f := newEstimationFixture(t)
	agreements := memory.NewAgreementRepository()
	uc := NewAgreementUseCase(agreements, f.projects, f.estimations, f.lineItems, merge.NewFormatter("₹", "en"))
	if _, err := uc.Create(context.Background(), entities.Agreement{ID: "AGR001", Name: "Standard", Type: "Construction", TemplateContent: testAgreementContent}); err != nil {
		t.Fatalf("seed agreement: %v", err)
	}
	return uc, f
}

func TestAgreementUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAgreementFixture(t)

	if _, err := uc.Create(ctx, entities.Agreement{Name: "x"}); !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("expected ErrInvalidContent, got %v", err)
	}
	if _, err := uc.Create(ctx, entities.Agreement{TemplateContent: "x"}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}

	a, _ := uc.GetByID(ctx, "AGR001")
	before := a.LastModified
	a.Name = "Standard v2"
	updated, err := uc.Update(ctx, a)
	if err != nil || updated.Name != "Standard v2" || updated.LastModified.Before(before) {
		t.Fatalf("update: %+v err=%v", updated, err)
	}
	if _, err := uc.Update(ctx, entities.Agreement{ID: "nope", Name: "x", TemplateContent: "x"}); !errors.Is(err, ErrAgreementNotFound) {
		t.Fatalf("expected ErrAgreementNotFound, got %v", err)
	}

	list, _ := uc.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected 1 agreement, got %d", len(list))
	}
	if err := uc.Delete(ctx, "AGR001"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Delete(ctx, "AGR001"); !errors.Is(err, ErrAgreementNotFound) {
		t.Fatalf("expected ErrAgreementNotFound, got %v", err)
	}
}

func TestAgreementUseCase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("with active estimation", func(t *testing.T) {
		uc, f := newAgreementFixture(t)
		if _, err := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "v1"); err != nil {
			t.Fatalf("create estimation: %v", err)
		}
		out, err := uc.Generate(ctx, "PRJ001", "AGR001")
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		for _, want := range []string{"<h1>Villa</h1>", "Asha agrees to ₹75,000.", "Excavation", "₹35,000", "<strong>₹75,000</strong>"} {
			if !strings.Contains(out, want) {
				t.Fatalf("expected %q in output:\n%s", want, out)
			}
		}
		if strings.Contains(out, "{{") {
			t.Fatalf("unreplaced token in output:\n%s", out)
		}
		timeline, _ := f.projects.Timeline(ctx, "PRJ001")
		if timeline[0].Title != "Agreement generated" {
			t.Fatalf("expected agreement event, got %q", timeline[0].Title)
		}
	})

	t.Run("fallback without estimation", func(t *testing.T) {
		uc, _ := newAgreementFixture(t)
		out, err := uc.Generate(ctx, "PRJ001", "AGR001")
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		for _, want := range []string{"Material Cost", "₹600,000", "Labor Cost", "₹300,000", "Other Expenses", "₹100,000", "₹1,000,000"} {
			if !strings.Contains(out, want) {
				t.Fatalf("expected %q in output:\n%s", want, out)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, _ := newAgreementFixture(t)
		if _, err := uc.Generate(ctx, "nope", "AGR001"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
		if _, err := uc.Generate(ctx, "PRJ001", "nope"); !errors.Is(err, ErrAgreementNotFound) {
			t.Fatalf("expected ErrAgreementNotFound, got %v", err)
		}
	})

	t.Run("missing line item", func(t *testing.T) {
		uc, f := newAgreementFixture(t)
		if _, err := f.uc.CreateFromTemplate(ctx, "PRJ001", "ET001", "v1"); err != nil {
			t.Fatalf("create estimation: %v", err)
		}
		if _, err := f.lineItems.Delete(ctx, "LI001"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := uc.Generate(ctx, "PRJ001", "AGR001"); !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})
}

func TestAgreementUseCase_PrintAndPreview(t *testing.T) {
	ctx := context.Background()
	uc, f := newAgreementFixture(t)

	before, _ := f.projects.Timeline(ctx, "PRJ001")
	doc, err := uc.Print(ctx, "PRJ001", "AGR001")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.HasPrefix(doc, "<!DOCTYPE html>") || !strings.Contains(doc, "<title>Standard</title>") || !strings.Contains(doc, "<h1>Villa</h1>") {
		t.Fatalf("unexpected printable document:\n%s", doc)
	}
	after, _ := f.projects.Timeline(ctx, "PRJ001")
	if len(after) != len(before) {
		t.Fatalf("print must not add timeline events")
	}

	preview, err := uc.Preview(ctx, "AGR001")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if preview.BudgetInWords != "Twenty Five Lakh Only" {
		t.Fatalf("unexpected words %q", preview.BudgetInWords)
	}
	if !strings.Contains(preview.HTML, "Sample Residence") {
		t.Fatalf("preview not rendered with sample data:\n%s", preview.HTML)
	}
}

func TestAgreementUseCase_EstimationLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	agreements := mock_interfaces.NewMockIAgreementRepository(ctrl)
	registry := mock_interfaces.NewMockIProjectRegistry(ctrl)
	estimations := mock_interfaces.NewMockIProjectEstimationRepository(ctrl)
	uc := NewAgreementUseCase(agreements, registry, estimations, nil, merge.DefaultFormatter())

	registry.EXPECT().GetProject(gomock.Any(), "p1").Return(entities.Project{ID: "p1"}, nil)
	agreements.EXPECT().GetByID(gomock.Any(), "a1").Return(entities.Agreement{ID: "a1", TemplateContent: "x"}, nil)
	estimations.EXPECT().ListByProjectID(gomock.Any(), "p1").Return(nil, errors.New("db"))

	if _, err := uc.Generate(context.Background(), "p1", "a1"); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}
