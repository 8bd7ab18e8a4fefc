package routes

import (
	"construction_dashboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAgreements = "/agreements"

func addAgreementRoutes(rg *gin.RouterGroup, h *handlers.AgreementHandler) {
	agreements := rg.Group(PathAgreements)
	{
		agreements.POST("", h.Create)
		agreements.GET("", h.List)
		agreements.GET("/:id", h.Get)
		agreements.PUT("/:id", h.Update)
		agreements.DELETE("/:id", h.Delete)
		agreements.GET("/:id/preview", h.Preview)
	}

	merged := rg.Group(PathProjects + "/:id" + PathAgreements)
	{
		merged.POST("/:agreementId/generate", h.Generate)
		merged.GET("/:agreementId/print", h.Print)
	}
}
