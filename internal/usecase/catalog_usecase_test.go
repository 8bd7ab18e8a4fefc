package usecase

import (
	"context"
	"errors"
	"testing"

	"construction_dashboard/internal/adapter/persistence/memory"
	"construction_dashboard/internal/domain/entities"
	mock_interfaces "construction_dashboard/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_LineItems(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		uc := NewCatalogUseCase(memory.NewLineItemRepository(), memory.NewEstimationTemplateRepository())
		cases := []struct {
			name string
			li   entities.LineItem
			want error
		}{
			{"missing name", entities.LineItem{Unit: "bag", Rate: 1}, ErrInvalidName},
			{"missing unit", entities.LineItem{Name: "Cement", Rate: 1}, ErrInvalidUnit},
			{"zero rate", entities.LineItem{Name: "Cement", Unit: "bag"}, ErrInvalidRate},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.CreateLineItem(ctx, tc.li); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("crud", func(t *testing.T) {
		uc := NewCatalogUseCase(memory.NewLineItemRepository(), memory.NewEstimationTemplateRepository())
		created, err := uc.CreateLineItem(ctx, entities.LineItem{Name: " Cement ", Category: "Materials", Unit: "bag", Rate: 420})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ID == "" || created.Name != "Cement" {
			t.Fatalf("unexpected line item %+v", created)
		}
		if _, err := uc.CreateLineItem(ctx, entities.LineItem{Name: "Bricks", Category: "Materials", Unit: "nos", Rate: 9}); err != nil {
			t.Fatalf("create: %v", err)
		}
		list, _ := uc.ListLineItems(ctx)
		if len(list) != 2 || list[0].Name != "Bricks" {
			t.Fatalf("expected sorted list, got %+v", list)
		}

		created.Rate = 450
		updated, err := uc.UpdateLineItem(ctx, created)
		if err != nil || updated.Rate != 450 {
			t.Fatalf("update: %+v %v", updated, err)
		}
		if _, err := uc.UpdateLineItem(ctx, entities.LineItem{ID: "nope", Name: "x", Unit: "x", Rate: 1}); !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
		if err := uc.DeleteLineItem(ctx, created.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := uc.GetLineItem(ctx, created.ID); !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
		if err := uc.DeleteLineItem(ctx, created.ID); !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_Templates(t *testing.T) {
	ctx := context.Background()
	lineItems := memory.NewLineItemRepository()
	if _, err := lineItems.Create(ctx, entities.LineItem{ID: "LI001", Name: "Excavation", Unit: "cu.m", Rate: 350}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := NewCatalogUseCase(lineItems, memory.NewEstimationTemplateRepository())

	t.Run("unknown line item", func(t *testing.T) {
		_, err := uc.CreateTemplate(ctx, entities.EstimationTemplate{
			Name:  "Basic",
			Items: []entities.EstimationTemplateItem{{LineItemID: "nope", Quantity: 1}},
		})
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := uc.CreateTemplate(ctx, entities.EstimationTemplate{
			Name:  "Basic",
			Items: []entities.EstimationTemplateItem{{LineItemID: "LI001"}},
		})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("create and update", func(t *testing.T) {
		created, err := uc.CreateTemplate(ctx, entities.EstimationTemplate{
			Name:  "Basic",
			Items: []entities.EstimationTemplateItem{{LineItemID: "LI001", Quantity: 10}},
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ItemsCount != 1 || created.Items[0].ID == "" || created.LastModified.IsZero() {
			t.Fatalf("derived fields not set: %+v", created)
		}

		created.Items = append(created.Items, entities.EstimationTemplateItem{LineItemID: "LI001", Quantity: 5})
		updated, err := uc.UpdateTemplate(ctx, created)
		if err != nil || updated.ItemsCount != 2 {
			t.Fatalf("update: %+v %v", updated, err)
		}
		if err := uc.DeleteTemplate(ctx, created.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := uc.GetTemplate(ctx, created.ID); !errors.Is(err, ErrTemplateNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lineItems := mock_interfaces.NewMockILineItemRepository(ctrl)
	templates := mock_interfaces.NewMockIEstimationTemplateRepository(ctrl)
	uc := NewCatalogUseCase(lineItems, templates)

	lineItems.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))
	if _, err := uc.ListLineItems(context.Background()); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}
