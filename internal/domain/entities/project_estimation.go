package entities

import "time"

// ProjectEstimationItem is a snapshot of a line item inside an estimation.
// Rate is captured when the item is created or edited, never looked up live.
type ProjectEstimationItem struct {
	ID         string  `json:"id"`
	LineItemID string  `json:"line_item_id"`
	Quantity   float64 `json:"quantity"`
	Rate       float64 `json:"rate"`
	Amount     float64 `json:"amount"`
	Notes      string  `json:"notes,omitempty"`
}

// ProjectEstimation is a named, versioned estimation snapshot of a project.
//
// Invariants kept by the estimation use case:
//   - at most one estimation per project has IsActive set
//   - Version is allocated from a per-project sequence and never reused
//   - TotalAmount is the sum of Items[].Amount, Amount is Quantity * Rate
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
type ProjectEstimation struct {
	ID          string                  `json:"id"`
	ProjectID   string                  `json:"project_id"`
	TemplateID  string                  `json:"template_id"`
	Name        string                  `json:"name"`
	TotalAmount float64                 `json:"total_amount"`
	CreatedDate time.Time               `json:"created_date"`
	UpdatedDate time.Time               `json:"updated_date"`
	IsActive    bool                    `json:"is_active"`
	Version     int                     `json:"version"`
	Items       []ProjectEstimationItem `json:"items"`
}

// LineAmount returns quantity * rate. Amounts are stored unrounded; rounding
// happens only when they are rendered.
func LineAmount(quantity, rate float64) float64 {
	return quantity * rate
}

// Recalculate refreshes every item amount and sets the total to their sum,
// accumulated in item order.
func (e *ProjectEstimation) Recalculate() {
	var total float64
	for i := range e.Items {
		e.Items[i].Amount = LineAmount(e.Items[i].Quantity, e.Items[i].Rate)
		total += e.Items[i].Amount
	}
	e.TotalAmount = total
}

// FindItem returns the index of the item with the given id, or -1.
func (e *ProjectEstimation) FindItem(itemID string) int {
	for i := range e.Items {
		if e.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy; the items slice is not shared.
func (e ProjectEstimation) Clone() ProjectEstimation {
	out := e
	if e.Items != nil {
		out.Items = make([]ProjectEstimationItem, len(e.Items))
		copy(out.Items, e.Items)
	}
	return out
}
