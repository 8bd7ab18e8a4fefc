package response

import (
	"time"

	"construction_dashboard/internal/domain/entities"
)

type EstimationItemResponse struct {
	ID         string  `json:"id"`
	LineItemID string  `json:"lineItemId"`
	Quantity   float64 `json:"quantity"`
	Rate       float64 `json:"rate"`
	Amount     float64 `json:"amount"`
	Notes      string  `json:"notes,omitempty"`
}

type EstimationResponse struct {
	ID          string                   `json:"id"`
	ProjectID   string                   `json:"projectId"`
	TemplateID  string                   `json:"templateId"`
	Name        string                   `json:"name"`
	TotalAmount float64                  `json:"totalAmount"`
	CreatedDate time.Time                `json:"createdDate"`
	UpdatedDate time.Time                `json:"updatedDate"`
	IsActive    bool                     `json:"isActive"`
	Version     int                      `json:"version"`
	Items       []EstimationItemResponse `json:"items"`
}

func FromEstimation(e entities.ProjectEstimation) EstimationResponse {
	items := make([]EstimationItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, EstimationItemResponse{
			ID:         it.ID,
			LineItemID: it.LineItemID,
			Quantity:   it.Quantity,
			Rate:       it.Rate,
			Amount:     it.Amount,
			Notes:      it.Notes,
		})
	}
	return EstimationResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		TemplateID:  e.TemplateID,
		Name:        e.Name,
		TotalAmount: e.TotalAmount,
		CreatedDate: e.CreatedDate,
		UpdatedDate: e.UpdatedDate,
		IsActive:    e.IsActive,
		Version:     e.Version,
		Items:       items,
	}
}

func FromEstimations(list []entities.ProjectEstimation) []EstimationResponse {
	out := make([]EstimationResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimation(e))
	}
	return out
}

// SuccessResponse answers operations that report a boolean outcome.
type SuccessResponse struct {
	Success bool `json:"success"`
}
