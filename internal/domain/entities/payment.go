package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment is a client payment collected against a project's active estimation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// ProviderPayloadRaw keeps the gateway response body for traceability;
// ProviderPayload is the parsed form, useful for querying and debugging.
type Payment struct {
	ID           string        `json:"id"`
	ProjectID    string        `json:"project_id"`
	EstimationID string        `json:"estimation_id"`
	Amount       float64       `json:"amount"`
	Date         time.Time     `json:"date"`
	Status       PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
