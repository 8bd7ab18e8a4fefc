package request

import "encoding/json"

// PaymentCreateRequest wraps a Mercado Pago payment request. The body may
// also be the bare provider payload; `mp_payload` is stored as-is.
type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
