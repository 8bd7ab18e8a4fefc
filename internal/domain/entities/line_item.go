package entities

// LineItem is a priced catalog unit (material, labor rate, equipment hire...).
//
// Rate is the current price. Estimations copy it when an item is added, so later
// catalog edits never change existing estimations.
type LineItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
	Description string  `json:"description,omitempty"`
}
