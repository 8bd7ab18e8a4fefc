package handlers

import (
	"log"
	"net/http"

	request "construction_dashboard/internal/adapter/http/dto/request"
	response "construction_dashboard/internal/adapter/http/dto/response"
	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[project][handler] create failed err=%v", err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(created))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(list))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var payload request.ProjectPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		log.Printf("[project][handler] update failed project_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(updated))
}

func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var payload request.ProjectStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.ProjectStatus(payload.Status))
	if err != nil {
		log.Printf("[project][handler] status update failed project_id=%s status=%q err=%v", c.Param("id"), payload.Status, err)
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(updated))
}

func (h *ProjectHandler) UpdateClientInfo(c *gin.Context) {
	var payload request.ClientInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.UpdateClientInfo(c.Request.Context(), c.Param("id"), payload.ToClientInfo())
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(updated))
}

func (h *ProjectHandler) Timeline(c *gin.Context) {
	events, err := h.usecase.Timeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTimeline(events))
}

func (h *ProjectHandler) AppendTimelineEvent(c *gin.Context) {
	var payload request.TimelineEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	p, err := h.usecase.AppendTimelineEvent(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTimeline(p.Timeline))
}
