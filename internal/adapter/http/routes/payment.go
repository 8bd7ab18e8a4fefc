package routes

import (
	"construction_dashboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	byProject := rg.Group(PathProjects + "/:id" + PathPayments)
	{
		byProject.POST("", h.CreateForProject)
		byProject.GET("", h.ListByProject)
	}

	rg.GET(PathPayments+"/:id", h.GetByID)
}
