package usecase

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentOptions configures how payments reach the gateway.
//
// In mock mode the gateway is never called and every payment is approved.
// The sandbox fields let Mercado Pago test users pay without a real payer.
type PaymentOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IPaymentUseCase collects client payments against a project's active estimation.
//
// Requested behavior:
//   - The amount defaults to the outstanding balance of the active estimation.
//   - Each processed payment is persisted and recorded on the project timeline.

type IPaymentUseCase interface {
	CreateForProject(ctx context.Context, projectID string, payload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRepository
	estimations interfaces.IProjectEstimationRepository
	projects    interfaces.IProjectRegistry
	gateway     interfaces.IPaymentGateway
	opts        PaymentOptions
	now         func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	estimations interfaces.IProjectEstimationRepository,
	projects interfaces.IProjectRegistry,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:        repo,
		estimations: estimations,
		projects:    projects,
		gateway:     gateway,
		opts:        opts,
		now:         utcNow,
	}
}

func (u *PaymentUseCase) CreateForProject(ctx context.Context, projectID string, payload json.RawMessage) (entities.Payment, error) {
	log.Printf("[payment][usecase] create start raw_project_id=%q payload_len=%d", projectID, len(payload))
	mockMode := u.opts.MockMode
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Payment{}, ErrInvalidID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload project_id=%s", projectID)
			return entities.Payment{}, ErrInvalidPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		log.Printf("[payment][usecase] gateway not configured project_id=%s", projectID)
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	project, err := u.projects.GetProject(ctx, projectID)
	if err != nil {
		return entities.Payment{}, err
	}
	estimations, err := u.estimations.ListByProjectID(ctx, projectID)
	if err != nil {
		return entities.Payment{}, err
	}
	active, ok := findActive(estimations)
	if !ok {
		log.Printf("[payment][usecase] no active estimation project_id=%s", projectID)
		return entities.Payment{}, ErrNoActiveEstimation
	}
	previous, err := u.repo.ListByProjectID(ctx, projectID)
	if err != nil {
		return entities.Payment{}, err
	}
	outstanding := outstandingBalance(active, previous)
	if !outstanding.IsPositive() {
		log.Printf("[payment][usecase] nothing outstanding project_id=%s estimation_id=%s", projectID, active.ID)
		return entities.Payment{}, ErrNothingOutstanding
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.Payment{}, ErrInvalidPayload
		}
		reqMap = map[string]any{}
	}

	amount := outstanding
	if v, ok := reqMap["transaction_amount"].(float64); ok && v > 0 {
		requested := decimal.NewFromFloat(v).Round(2)
		if requested.GreaterThan(outstanding) {
			log.Printf("[payment][usecase] amount exceeds balance project_id=%s amount=%s outstanding=%s", projectID, requested, outstanding)
			return entities.Payment{}, ErrInvalidPayload
		}
		amount = requested
	}

	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id project_id=%s", projectID)
			return entities.Payment{}, ErrInvalidPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer project_id=%s", projectID)
			return entities.Payment{}, ErrInvalidPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = projectID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("%s - %s (v%d)", project.Name, active.Name, active.Version)
	}
	amountF, _ := amount.Float64()
	reqMap["transaction_amount"] = amountF

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway project_id=%s", projectID)
		providerPaymentID = "mock-" + uuid.NewString()
		providerStatus = "approved"
		ts := u.now().Format(time.RFC3339Nano)
		reqMap["id"] = providerPaymentID
		reqMap["status"] = providerStatus
		reqMap["status_detail"] = "accredited"
		reqMap["date_created"] = ts
		reqMap["date_approved"] = ts
		b, err := json.Marshal(reqMap)
		if err != nil {
			return entities.Payment{}, err
		}
		providerResp = b
	} else {
		body, err := json.Marshal(reqMap)
		if err != nil {
			return entities.Payment{}, err
		}
		log.Printf("[payment][usecase] calling payment gateway project_id=%s amount=%s", projectID, amount)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, body)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed project_id=%s err=%v", projectID, err)
			return entities.Payment{}, classifyGatewayError(err)
		}
	}
	log.Printf("[payment][usecase] payment gateway success project_id=%s provider_payment_id=%s provider_status=%s", projectID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed project_id=%s err=%v", projectID, err)
	}
	if providerPaymentID == "" {
		providerPaymentID = uuid.NewString()
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		ProjectID:          projectID,
		EstimationID:       active.ID,
		Amount:             amountF,
		Date:               u.now(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed project_id=%s payment_id=%s err=%v", projectID, p.ID, err)
		return entities.Payment{}, err
	}

	ev := entities.TimelineEvent{
		Title:       "Payment received",
		Status:      entities.TimelineEventCompleted,
		Description: fmt.Sprintf("Payment %s of %s against %s (v%d)", created.ID, amount.StringFixed(2), active.Name, active.Version),
	}
	if created.Status != entities.PaymentStatusApproved {
		ev.Title = fmt.Sprintf("Payment %s", created.Status)
		ev.Status = entities.TimelineEventInProgress
	}
	if _, err := u.projects.AppendTimelineEvent(ctx, projectID, ev); err != nil {
		log.Printf("[payment][usecase] timeline append failed project_id=%s err=%v", projectID, err)
	}

	log.Printf("[payment][usecase] create success project_id=%s payment_id=%s status=%s", projectID, created.ID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.Payment, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidID
	}
	if _, err := u.projects.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	list, err := u.repo.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

// outstandingBalance is the active total minus the approved payments made
// against that same estimation.
func outstandingBalance(active entities.ProjectEstimation, payments []entities.Payment) decimal.Decimal {
	balance := decimal.NewFromFloat(active.TotalAmount)
	for _, p := range payments {
		if p.EstimationID == active.ID && p.Status == entities.PaymentStatusApproved {
			balance = balance.Sub(decimal.NewFromFloat(p.Amount))
		}
	}
	return balance.Round(2)
}

func paymentStatusFromProvider(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	if errors.Is(err, interfaces.ErrPaymentRequestRejected) {
		return ErrPaymentGatewayBadRequest
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"),
		strings.Contains(msg, "invalid users involved"), strings.Contains(msg, "customer not found"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	// Sandbox accepts either payer.id or payer.email; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.opts.TestPayerEmail != "" {
			payer["email"] = u.opts.TestPayerEmail
		} else if u.sandbox() {
			payer["email"] = "test_user_in@testuser.com"
		}
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email.
func (u *PaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}
	if u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.TestPayerUserID {
		return
	}
	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}
