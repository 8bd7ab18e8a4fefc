package routes

import (
	"construction_dashboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLineItems           = "/line-items"
	PathEstimationTemplates = "/estimation-templates"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	lineItems := rg.Group(PathLineItems)
	{
		lineItems.POST("", h.CreateLineItem)
		lineItems.GET("", h.ListLineItems)
		lineItems.GET("/:id", h.GetLineItem)
		lineItems.PUT("/:id", h.UpdateLineItem)
		lineItems.DELETE("/:id", h.DeleteLineItem)
	}

	templates := rg.Group(PathEstimationTemplates)
	{
		templates.POST("", h.CreateTemplate)
		templates.GET("", h.ListTemplates)
		templates.GET("/:id", h.GetTemplate)
		templates.PUT("/:id", h.UpdateTemplate)
		templates.DELETE("/:id", h.DeleteTemplate)
	}
}
