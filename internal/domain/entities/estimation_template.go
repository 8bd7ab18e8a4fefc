package entities

import "time"

// EstimationTemplateItem references a catalog line item with a default quantity.
type EstimationTemplateItem struct {
	ID         string  `json:"id"`
	LineItemID string  `json:"line_item_id"`
	Quantity   float64 `json:"quantity"`
	Notes      string  `json:"notes,omitempty"`
}

// EstimationTemplate is a reusable blueprint for project estimations.
//
// Items are copied into a ProjectEstimation at creation time; editing a template
// never touches estimations already derived from it.
type EstimationTemplate struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Category     string                   `json:"category"`
	Items        []EstimationTemplateItem `json:"items"`
	ItemsCount   int                      `json:"items_count"`
	LastModified time.Time                `json:"last_modified"`
}
