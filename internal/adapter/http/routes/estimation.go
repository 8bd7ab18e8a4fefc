package routes

import (
	"construction_dashboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathEstimations = "/estimations"

func addEstimationRoutes(rg *gin.RouterGroup, h *handlers.EstimationHandler) {
	byProject := rg.Group(PathProjects + "/:id" + PathEstimations)
	{
		byProject.GET("", h.ListByProject)
		byProject.POST("", h.CreateFromTemplate)
		byProject.GET("/active", h.GetActive)
		byProject.POST("/:estimationId/activate", h.SetActive)
	}

	estimations := rg.Group(PathEstimations)
	{
		estimations.GET("/:id", h.GetByID)
		estimations.DELETE("/:id", h.DeleteEstimation)
		estimations.POST("/:id/duplicate", h.Duplicate)
		estimations.POST("/:id/items", h.AddItem)
		estimations.PATCH("/:id/items/:itemId", h.UpdateItem)
		estimations.DELETE("/:id/items/:itemId", h.DeleteItem)
	}
}
