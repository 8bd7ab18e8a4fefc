package response

import (
	"time"

	"construction_dashboard/internal/domain/entities"
)

type LineItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
	Description string  `json:"description,omitempty"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          li.ID,
		Name:        li.Name,
		Category:    li.Category,
		Unit:        li.Unit,
		Rate:        li.Rate,
		Description: li.Description,
	}
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, li := range items {
		out = append(out, FromLineItem(li))
	}
	return out
}

type TemplateItemResponse struct {
	ID         string  `json:"id"`
	LineItemID string  `json:"lineItemId"`
	Quantity   float64 `json:"quantity"`
	Notes      string  `json:"notes,omitempty"`
}

type EstimationTemplateResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Category     string                 `json:"category"`
	Items        []TemplateItemResponse `json:"items"`
	ItemsCount   int                    `json:"itemsCount"`
	LastModified time.Time              `json:"lastModified"`
}

func FromTemplate(t entities.EstimationTemplate) EstimationTemplateResponse {
	items := make([]TemplateItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, TemplateItemResponse{
			ID:         it.ID,
			LineItemID: it.LineItemID,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
		})
	}
	return EstimationTemplateResponse{
		ID:           t.ID,
		Name:         t.Name,
		Category:     t.Category,
		Items:        items,
		ItemsCount:   t.ItemsCount,
		LastModified: t.LastModified,
	}
}

func FromTemplates(list []entities.EstimationTemplate) []EstimationTemplateResponse {
	out := make([]EstimationTemplateResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTemplate(t))
	}
	return out
}
