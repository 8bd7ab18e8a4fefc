package request

import (
	"strings"

	"construction_dashboard/internal/usecase"
)

// CreateEstimationRequest starts a new estimation version from a template.
// An empty name falls back to "<template> v<version>".
type CreateEstimationRequest struct {
	TemplateID string `json:"templateId" binding:"required"`
	Name       string `json:"name"`
}

// UpdateItemRequest is a partial item update; omitted fields keep their value.
type UpdateItemRequest struct {
	Quantity *float64 `json:"quantity"`
	Rate     *float64 `json:"rate"`
	Notes    *string  `json:"notes"`
}

func (r UpdateItemRequest) ToItemUpdate() usecase.ItemUpdate {
	return usecase.ItemUpdate{Quantity: r.Quantity, Rate: r.Rate, Notes: r.Notes}
}

func (r UpdateItemRequest) IsEmpty() bool {
	return r.Quantity == nil && r.Rate == nil && r.Notes == nil
}

type AddItemRequest struct {
	LineItemID string  `json:"lineItemId" binding:"required"`
	Quantity   float64 `json:"quantity"`
	Notes      string  `json:"notes"`
}

type DuplicateEstimationRequest struct {
	NewName string `json:"newName"`
}

func (r DuplicateEstimationRequest) ResolveName() string {
	return strings.TrimSpace(r.NewName)
}
