package response

import (
	"time"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase"
)

type AgreementResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	LastModified    time.Time `json:"lastModified"`
	TemplateContent string    `json:"templateContent"`
}

func FromAgreement(a entities.Agreement) AgreementResponse {
	return AgreementResponse{
		ID:              a.ID,
		Name:            a.Name,
		Type:            a.Type,
		LastModified:    a.LastModified,
		TemplateContent: a.TemplateContent,
	}
}

func FromAgreements(list []entities.Agreement) []AgreementResponse {
	out := make([]AgreementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAgreement(a))
	}
	return out
}

type GeneratedAgreementResponse struct {
	HTML string `json:"html"`
}

type AgreementPreviewResponse struct {
	HTML          string `json:"html"`
	BudgetInWords string `json:"budgetInWords"`
}

func FromAgreementPreview(p usecase.AgreementPreview) AgreementPreviewResponse {
	return AgreementPreviewResponse{HTML: p.HTML, BudgetInWords: p.BudgetInWords}
}
