package handlers

import (
	"errors"
	"net/http"

	"construction_dashboard/internal/usecase"
	"construction_dashboard/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// specificErrors maps use case errors to stable API codes. Order matters only
// for readability; every entry is a distinct sentinel.
var specificErrors = []struct {
	err     error
	code    string
	message string
	status  int
}{
	{usecase.ErrProjectNotFound, "PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound},
	{usecase.ErrEstimationNotFound, "ESTIMATION_NOT_FOUND", "Estimation not found", http.StatusNotFound},
	{usecase.ErrEstimationItemNotFound, "ESTIMATION_ITEM_NOT_FOUND", "Estimation item not found", http.StatusNotFound},
	{usecase.ErrTemplateNotFound, "TEMPLATE_NOT_FOUND", "Estimation template not found", http.StatusNotFound},
	{usecase.ErrLineItemNotFound, "LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound},
	{usecase.ErrAgreementNotFound, "AGREEMENT_NOT_FOUND", "Agreement not found", http.StatusNotFound},
	{usecase.ErrPaymentNotFound, "PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound},
	{usecase.ErrLastEstimation, "LAST_ESTIMATION", "Cannot delete the last estimation of a project", http.StatusConflict},
	{usecase.ErrConcurrentUpdate, "CONCURRENT_UPDATE", "Project estimations changed concurrently, retry the request", http.StatusConflict},
	{usecase.ErrNoActiveEstimation, "NO_ACTIVE_ESTIMATION", "Project has no active estimation", http.StatusConflict},
	{usecase.ErrNothingOutstanding, "NOTHING_OUTSTANDING", "Active estimation is fully paid", http.StatusConflict},
}

// mapDomainError turns a use case error into the API error envelope. Unknown
// errors become a 500 that keeps the cause for logs only.
func mapDomainError(err error) *pkg.AppError {
	for _, s := range specificErrors {
		if errors.Is(err, s.err) {
			return pkg.NewDomainError(s.code, s.message, err, s.status)
		}
	}
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvariantViolation):
		return pkg.NewDomainError("INVARIANT_VIOLATION", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
