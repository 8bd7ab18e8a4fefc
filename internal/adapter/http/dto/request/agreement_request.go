package request

import "construction_dashboard/internal/domain/entities"

type AgreementRequest struct {
	Name            string `json:"name" binding:"required"`
	Type            string `json:"type"`
	TemplateContent string `json:"templateContent" binding:"required"`
}

func (r AgreementRequest) ToEntity(id string) entities.Agreement {
	return entities.Agreement{
		ID:              id,
		Name:            r.Name,
		Type:            r.Type,
		TemplateContent: r.TemplateContent,
	}
}
