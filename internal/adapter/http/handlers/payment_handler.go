package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "construction_dashboard/internal/adapter/http/dto/request"
	response "construction_dashboard/internal/adapter/http/dto/response"
	"construction_dashboard/internal/usecase"
	"construction_dashboard/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for project payments.

type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	mockMode bool
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, mockMode bool) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreateForProject charges the project's outstanding balance, or the
// transaction_amount in the payload.
// @Summary     Create payment for project
// @Tags        Payments
// @Accept      json
// @Produce     json
// @Param       id path string true "Project ID"
// @Param       payload body request.PaymentCreateRequest true "Request body"
// @Success     201 {object} response.PaymentResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /projects/{id}/payments [post]
func (h *PaymentHandler) CreateForProject(c *gin.Context) {
	projectID := c.Param("id")
	log.Printf("[payment][handler] create start project_id=%s", projectID)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload project_id=%s err=%v", projectID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload project_id=%s err=%v", projectID, err)
			respondError(c, errInvalidRequest)
			return
		}
	}

	created, err := h.usecase.CreateForProject(c.Request.Context(), projectID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed project_id=%s err=%v", projectID, err)
		respondError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] create success project_id=%s payment_id=%s status=%s", projectID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// @Summary     List project payments
// @Tags        Payments
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {array} response.PaymentResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /projects/{id}/payments [get]
func (h *PaymentHandler) ListByProject(c *gin.Context) {
	list, err := h.usecase.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(list))
}

func (h *PaymentHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// readMPPayload accepts either the bare provider payload or {"mp_payload": ...}.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.PaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.MPPayload != nil {
		if strings.TrimSpace(string(envelope.MPPayload)) == "null" {
			return nil, errors.New("mp_payload cannot be empty")
		}
		return envelope.MPPayload, nil
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	default:
		return mapDomainError(err)
	}
}
