package response

import (
	"encoding/json"
	"testing"
	"time"

	"construction_dashboard/internal/domain/entities"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.Payment{
		ID:                 "pay-1",
		ProjectID:          "PRJ001",
		EstimationID:       "est-1",
		Amount:             1500,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: raw,
		ProviderPayload:    payload,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.ProjectID != "PRJ001" || res.EstimationID != "est-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "approved" || res.Amount != 1500 || !res.Date.Equal(now) {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.ProviderPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.ProviderPayloadRaw)
	}
	if res.ProviderPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.ProviderPayload)
	}
}

func TestFromEstimation(t *testing.T) {
	e := entities.ProjectEstimation{
		ID: "e1", ProjectID: "PRJ001", Name: "v1", IsActive: true, Version: 1, TotalAmount: 75000,
		Items: []entities.ProjectEstimationItem{{ID: "i1", LineItemID: "LI001", Quantity: 100, Rate: 350, Amount: 35000}},
	}
	res := FromEstimation(e)
	if !res.IsActive || res.Version != 1 || res.TotalAmount != 75000 {
		t.Fatalf("unexpected estimation: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Amount != 35000 || res.Items[0].LineItemID != "LI001" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"isActive", "totalAmount", "createdDate", "projectId"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("missing key %s in %s", key, b)
		}
	}
}

func TestFromProject_AgreementDate(t *testing.T) {
	res := FromProject(entities.Project{ID: "PRJ001", Status: entities.ProjectStatusNew})
	if res.AgreementDate != nil {
		t.Fatalf("zero agreement date must be omitted")
	}
	if res.Timeline == nil {
		t.Fatalf("timeline must serialize as an empty list")
	}

	d := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	res = FromProject(entities.Project{ID: "PRJ001", AgreementDate: d})
	if res.AgreementDate == nil || !res.AgreementDate.Equal(d) {
		t.Fatalf("unexpected agreement date: %v", res.AgreementDate)
	}
}
