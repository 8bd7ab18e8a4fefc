package entities

import "time"

// Agreement is a contract template: HTML with placeholder tokens such as
// {{PROJECT_NAME}} or {{ESTIMATION_TABLE}}.
type Agreement struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	LastModified    time.Time `json:"last_modified"`
	TemplateContent string    `json:"template_content"`
}
