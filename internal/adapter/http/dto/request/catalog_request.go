package request

import "construction_dashboard/internal/domain/entities"

type LineItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit" binding:"required"`
	Rate        float64 `json:"rate"`
	Description string  `json:"description"`
}

func (r LineItemRequest) ToEntity(id string) entities.LineItem {
	return entities.LineItem{
		ID:          id,
		Name:        r.Name,
		Category:    r.Category,
		Unit:        r.Unit,
		Rate:        r.Rate,
		Description: r.Description,
	}
}

type TemplateItemRequest struct {
	LineItemID string  `json:"lineItemId" binding:"required"`
	Quantity   float64 `json:"quantity"`
	Notes      string  `json:"notes"`
}

type EstimationTemplateRequest struct {
	Name     string                `json:"name" binding:"required"`
	Category string                `json:"category"`
	Items    []TemplateItemRequest `json:"items" binding:"dive"`
}

func (r EstimationTemplateRequest) ToEntity(id string) entities.EstimationTemplate {
	items := make([]entities.EstimationTemplateItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.EstimationTemplateItem{
			LineItemID: it.LineItemID,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
		})
	}
	return entities.EstimationTemplate{
		ID:       id,
		Name:     r.Name,
		Category: r.Category,
		Items:    items,
	}
}
