package handlers

import (
	"log"
	"net/http"

	request "construction_dashboard/internal/adapter/http/dto/request"
	response "construction_dashboard/internal/adapter/http/dto/response"
	"construction_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimationHandler handles HTTP requests for versioned project estimations.
type EstimationHandler struct {
	usecase usecase.IEstimationUseCase
}

func NewEstimationHandler(uc usecase.IEstimationUseCase) *EstimationHandler {
	return &EstimationHandler{usecase: uc}
}

// @Summary     List project estimations
// @Tags        Estimations
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {array} response.EstimationResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /projects/{id}/estimations [get]
func (h *EstimationHandler) ListByProject(c *gin.Context) {
	list, err := h.usecase.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimations(list))
}

// CreateFromTemplate adds a new active version to the project.
// @Summary     Create estimation from template
// @Tags        Estimations
// @Accept      json
// @Produce     json
// @Param       id path string true "Project ID"
// @Param       payload body request.CreateEstimationRequest true "Request body"
// @Success     201 {object} response.EstimationResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /projects/{id}/estimations [post]
func (h *EstimationHandler) CreateFromTemplate(c *gin.Context) {
	projectID := c.Param("id")
	var payload request.CreateEstimationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	created, err := h.usecase.CreateFromTemplate(c.Request.Context(), projectID, payload.TemplateID, payload.Name)
	if err != nil {
		log.Printf("[estimation][handler] create failed project_id=%s template_id=%s err=%v", projectID, payload.TemplateID, err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimation(created))
}

// @Summary     Get active estimation
// @Tags        Estimations
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.EstimationResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /projects/{id}/estimations/active [get]
func (h *EstimationHandler) GetActive(c *gin.Context) {
	e, err := h.usecase.GetActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimation(e))
}

// @Summary     Get estimation
// @Tags        Estimations
// @Produce     json
// @Param       id path string true "Estimation ID"
// @Success     200 {object} response.EstimationResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /estimations/{id} [get]
func (h *EstimationHandler) GetByID(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimation(e))
}

// @Summary     Add line item to estimation
// @Tags        Estimations
// @Accept      json
// @Produce     json
// @Param       id path string true "Estimation ID"
// @Param       payload body request.AddItemRequest true "Request body"
// @Success     200 {object} response.EstimationResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /estimations/{id}/items [post]
func (h *EstimationHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	e, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.LineItemID, payload.Quantity, payload.Notes)
	if err != nil {
		log.Printf("[estimation][handler] add item failed estimation_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimation(e))
}

// @Summary     Update estimation item
// @Tags        Estimations
// @Accept      json
// @Produce     json
// @Param       id path string true "Estimation ID"
// @Param       itemId path string true "Item ID"
// @Param       payload body request.UpdateItemRequest true "Request body"
// @Success     200 {object} response.EstimationResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /estimations/{id}/items/{itemId} [patch]
func (h *EstimationHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsEmpty() {
		respondError(c, errInvalidRequest)
		return
	}
	e, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("itemId"), payload.ToItemUpdate())
	if err != nil {
		log.Printf("[estimation][handler] update item failed estimation_id=%s item_id=%s err=%v", c.Param("id"), c.Param("itemId"), err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimation(e))
}

// @Summary     Delete estimation item
// @Tags        Estimations
// @Produce     json
// @Param       id path string true "Estimation ID"
// @Param       itemId path string true "Item ID"
// @Success     200 {object} response.EstimationResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /estimations/{id}/items/{itemId} [delete]
func (h *EstimationHandler) DeleteItem(c *gin.Context) {
	e, err := h.usecase.DeleteItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimation(e))
}

// SetActive answers 200 with success=false when the estimation is not part
// of the project, so UI toggles stay idempotent.
// @Summary     Activate estimation
// @Tags        Estimations
// @Produce     json
// @Param       id path string true "Project ID"
// @Param       estimationId path string true "Estimation ID"
// @Success     200 {object} response.SuccessResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /projects/{id}/estimations/{estimationId}/activate [post]
func (h *EstimationHandler) SetActive(c *gin.Context) {
	ok, err := h.usecase.SetActive(c.Request.Context(), c.Param("id"), c.Param("estimationId"))
	if err != nil {
		log.Printf("[estimation][handler] set active failed project_id=%s estimation_id=%s err=%v", c.Param("id"), c.Param("estimationId"), err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: ok})
}

// @Summary     Duplicate estimation
// @Tags        Estimations
// @Accept      json
// @Produce     json
// @Param       id path string true "Estimation ID"
// @Param       payload body request.DuplicateEstimationRequest true "Request body"
// @Success     201 {object} response.EstimationResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /estimations/{id}/duplicate [post]
func (h *EstimationHandler) Duplicate(c *gin.Context) {
	var payload request.DuplicateEstimationRequest
	// An empty body is allowed; the copy is then named "<name> (Copy)".
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidRequest)
			return
		}
	}
	dup, err := h.usecase.Duplicate(c.Request.Context(), c.Param("id"), payload.ResolveName())
	if err != nil {
		log.Printf("[estimation][handler] duplicate failed estimation_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimation(dup))
}

// @Summary     Delete estimation
// @Tags        Estimations
// @Produce     json
// @Param       id path string true "Estimation ID"
// @Success     200 {object} response.SuccessResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /estimations/{id} [delete]
func (h *EstimationHandler) DeleteEstimation(c *gin.Context) {
	ok, err := h.usecase.DeleteEstimation(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[estimation][handler] delete failed estimation_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: ok})
}
