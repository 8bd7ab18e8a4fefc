package handlers

import (
	"log"
	"net/http"

	request "construction_dashboard/internal/adapter/http/dto/request"
	response "construction_dashboard/internal/adapter/http/dto/response"
	"construction_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves line items and estimation templates.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	created, err := h.usecase.CreateLineItem(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		log.Printf("[catalog][handler] create line item failed err=%v", err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLineItem(created))
}

func (h *CatalogHandler) GetLineItem(c *gin.Context) {
	li, err := h.usecase.GetLineItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLineItem(li))
}

func (h *CatalogHandler) ListLineItems(c *gin.Context) {
	items, err := h.usecase.ListLineItems(c.Request.Context())
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLineItems(items))
}

func (h *CatalogHandler) UpdateLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.UpdateLineItem(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		log.Printf("[catalog][handler] update line item failed line_item_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLineItem(updated))
}

func (h *CatalogHandler) DeleteLineItem(c *gin.Context) {
	if err := h.usecase.DeleteLineItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) CreateTemplate(c *gin.Context) {
	var payload request.EstimationTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	created, err := h.usecase.CreateTemplate(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		log.Printf("[catalog][handler] create template failed err=%v", err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTemplate(created))
}

func (h *CatalogHandler) GetTemplate(c *gin.Context) {
	t, err := h.usecase.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(t))
}

func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	list, err := h.usecase.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTemplates(list))
}

func (h *CatalogHandler) UpdateTemplate(c *gin.Context) {
	var payload request.EstimationTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.UpdateTemplate(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		log.Printf("[catalog][handler] update template failed template_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(updated))
}

func (h *CatalogHandler) DeleteTemplate(c *gin.Context) {
	if err := h.usecase.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
