package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrPaymentRequestRejected is wrapped by gateways that refuse a payload
// before contacting the provider.
var ErrPaymentRequestRejected = errors.New("payment request rejected by gateway")

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The payment use case uses it to process a client payment and persist the
// provider response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
