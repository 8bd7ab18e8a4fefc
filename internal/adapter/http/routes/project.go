package routes

import (
	"construction_dashboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathProjects = "/projects"

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Get)
		projects.PATCH("/:id", h.Update)
		projects.PATCH("/:id/status", h.UpdateStatus)
		projects.PATCH("/:id/client", h.UpdateClientInfo)
		projects.GET("/:id/timeline", h.Timeline)
		projects.POST("/:id/timeline", h.AppendTimelineEvent)
	}
}
