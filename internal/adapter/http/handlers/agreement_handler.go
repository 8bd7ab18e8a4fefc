package handlers

import (
	"log"
	"net/http"

	request "construction_dashboard/internal/adapter/http/dto/request"
	response "construction_dashboard/internal/adapter/http/dto/response"
	"construction_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AgreementHandler manages agreement templates and renders them for projects.
type AgreementHandler struct {
	usecase usecase.IAgreementUseCase
}

func NewAgreementHandler(uc usecase.IAgreementUseCase) *AgreementHandler {
	return &AgreementHandler{usecase: uc}
}

func (h *AgreementHandler) Create(c *gin.Context) {
	var payload request.AgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		log.Printf("[agreement][handler] create failed err=%v", err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAgreement(created))
}

func (h *AgreementHandler) Get(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(a))
}

func (h *AgreementHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAgreements(list))
}

func (h *AgreementHandler) Update(c *gin.Context) {
	var payload request.AgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		log.Printf("[agreement][handler] update failed agreement_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(updated))
}

func (h *AgreementHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Generate merges the agreement with the project's data and active estimation.
// @Summary     Generate agreement for project
// @Tags        Agreements
// @Produce     json
// @Param       id path string true "Project ID"
// @Param       agreementId path string true "Agreement ID"
// @Success     200 {object} response.GeneratedAgreementResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /projects/{id}/agreements/{agreementId}/generate [post]
func (h *AgreementHandler) Generate(c *gin.Context) {
	projectID, agreementID := c.Param("id"), c.Param("agreementId")
	html, err := h.usecase.Generate(c.Request.Context(), projectID, agreementID)
	if err != nil {
		log.Printf("[agreement][handler] generate failed project_id=%s agreement_id=%s err=%v", projectID, agreementID, err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.GeneratedAgreementResponse{HTML: html})
}

// @Summary     Printable agreement document
// @Tags        Agreements
// @Produce     html
// @Param       id path string true "Project ID"
// @Param       agreementId path string true "Agreement ID"
// @Success     200 {string} string
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /projects/{id}/agreements/{agreementId}/print [get]
func (h *AgreementHandler) Print(c *gin.Context) {
	projectID, agreementID := c.Param("id"), c.Param("agreementId")
	doc, err := h.usecase.Print(c.Request.Context(), projectID, agreementID)
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

func (h *AgreementHandler) Preview(c *gin.Context) {
	p, err := h.usecase.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAgreementPreview(p))
}
