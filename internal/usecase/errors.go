package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one of them, so callers
// can branch on the kind with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvariantViolation = errors.New("invariant violation")
)

var (
	ErrProjectNotFound        = fmt.Errorf("project %w", ErrNotFound)
	ErrEstimationNotFound     = fmt.Errorf("estimation %w", ErrNotFound)
	ErrEstimationItemNotFound = fmt.Errorf("estimation item %w", ErrNotFound)
	ErrTemplateNotFound       = fmt.Errorf("estimation template %w", ErrNotFound)
	ErrLineItemNotFound       = fmt.Errorf("line item %w", ErrNotFound)
	ErrAgreementNotFound      = fmt.Errorf("agreement %w", ErrNotFound)
	ErrPaymentNotFound        = fmt.Errorf("payment %w", ErrNotFound)

	ErrInvalidID       = fmt.Errorf("invalid id: %w", ErrValidation)
	ErrInvalidName     = fmt.Errorf("name is required: %w", ErrValidation)
	ErrInvalidUnit     = fmt.Errorf("unit is required: %w", ErrValidation)
	ErrInvalidRate     = fmt.Errorf("rate must be positive: %w", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("quantity must be positive: %w", ErrValidation)
	ErrNegativeValue   = fmt.Errorf("quantity and rate cannot be negative: %w", ErrValidation)
	ErrInvalidContent  = fmt.Errorf("template content is required: %w", ErrValidation)
	ErrInvalidStatus   = fmt.Errorf("invalid status: %w", ErrValidation)
	ErrInvalidPayload  = fmt.Errorf("invalid payment payload: %w", ErrValidation)

	ErrLastEstimation     = fmt.Errorf("cannot delete the last estimation of a project: %w", ErrInvariantViolation)
	ErrConcurrentUpdate   = fmt.Errorf("project estimations changed concurrently, retry: %w", ErrInvariantViolation)
	ErrNoActiveEstimation = fmt.Errorf("project has no active estimation: %w", ErrInvariantViolation)
	ErrNothingOutstanding = fmt.Errorf("active estimation is fully paid: %w", ErrInvariantViolation)
)

// Payment gateway failures.
var (
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)
