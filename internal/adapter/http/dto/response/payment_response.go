package response

import (
	"time"

	"construction_dashboard/internal/domain/entities"
)

type PaymentResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	EstimationID string    `json:"estimationId"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`

	ProviderPayloadRaw string                 `json:"providerPayloadRaw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"providerPayload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		ProjectID:          p.ProjectID,
		EstimationID:       p.EstimationID,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}
