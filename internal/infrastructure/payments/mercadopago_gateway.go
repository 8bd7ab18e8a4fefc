package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"construction_dashboard/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// ErrInvalidPaymentRequest reports a payload the gateway refuses to send.
var ErrInvalidPaymentRequest = fmt.Errorf("invalid payment request: %w", interfaces.ErrPaymentRequestRejected)

// MercadoPagoGateway charges project payments through the Mercado Pago SDK.
type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// CreatePayment charges one project payment. external_reference carries the
// project id and is required so provider records can be traced back.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, fmt.Errorf("%w: %v", ErrInvalidPaymentRequest, err)
	}
	if req.ExternalReference == "" || req.TransactionAmount <= 0 {
		log.Printf("[payment][gateway] rejected project_id=%q amount=%.2f", req.ExternalReference, req.TransactionAmount)
		return "", "", nil, ErrInvalidPaymentRequest
	}
	if req.Description == "" {
		req.Description = "Construction project " + req.ExternalReference
	}
	log.Printf("[payment][gateway] create start project_id=%s amount=%.2f", req.ExternalReference, req.TransactionAmount)

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed project_id=%s err=%v", req.ExternalReference, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, fmt.Errorf("marshal provider response: %w", err)
	}
	id := fmt.Sprintf("%d", resp.ID)
	log.Printf("[payment][gateway] create success project_id=%s provider_payment_id=%s provider_status=%s", req.ExternalReference, id, resp.Status)
	return id, resp.Status, b, nil
}
