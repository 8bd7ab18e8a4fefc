package request

import (
	"testing"
	"time"

	"construction_dashboard/internal/domain/entities"
)

func TestUpdateItemRequest(t *testing.T) {
	if !(UpdateItemRequest{}).IsEmpty() {
		t.Fatalf("expected empty request")
	}
	q := 200.0
	upd := UpdateItemRequest{Quantity: &q}.ToItemUpdate()
	if upd.Quantity == nil || *upd.Quantity != 200 || upd.Rate != nil || upd.Notes != nil {
		t.Fatalf("unexpected update: %+v", upd)
	}
}

func TestProjectPatchRequest_ToPatch(t *testing.T) {
	status := "On Hold"
	name := "Renamed"
	patch := ProjectPatchRequest{Name: &name, Status: &status}.ToPatch()
	if patch.Name == nil || *patch.Name != "Renamed" {
		t.Fatalf("unexpected name: %v", patch.Name)
	}
	if patch.Status == nil || *patch.Status != entities.ProjectStatusOnHold {
		t.Fatalf("unexpected status: %v", patch.Status)
	}
	if patch.ClientName != nil || patch.EstimatedBudget != nil {
		t.Fatalf("unset fields must stay nil")
	}
}

func TestEstimationTemplateRequest_ToEntity(t *testing.T) {
	r := EstimationTemplateRequest{
		Name: "Residential",
		Items: []TemplateItemRequest{
			{LineItemID: "LI001", Quantity: 100},
			{LineItemID: "LI002", Quantity: 8, Notes: "columns"},
		},
	}
	tpl := r.ToEntity("ET001")
	if tpl.ID != "ET001" || len(tpl.Items) != 2 || tpl.Items[1].Notes != "columns" {
		t.Fatalf("unexpected template: %+v", tpl)
	}
}

func TestTimelineEventRequest_ToEntity(t *testing.T) {
	ev := TimelineEventRequest{Title: "Site visit", Status: "pending"}.ToEntity()
	if !ev.Date.IsZero() || ev.Status != entities.TimelineEventPending {
		t.Fatalf("unexpected event: %+v", ev)
	}

	d := time.Date(2024, 5, 1, 9, 0, 0, 0, time.FixedZone("IST", 19800))
	ev = TimelineEventRequest{Title: "Site visit", Date: &d}.ToEntity()
	if ev.Date.Location() != time.UTC || !ev.Date.Equal(d) {
		t.Fatalf("expected UTC date, got %v", ev.Date)
	}
}

func TestDuplicateEstimationRequest_ResolveName(t *testing.T) {
	if got := (DuplicateEstimationRequest{NewName: "  Revised  "}).ResolveName(); got != "Revised" {
		t.Fatalf("unexpected name %q", got)
	}
}
