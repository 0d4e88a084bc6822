package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelforge/modelforge/internal/application"
	"github.com/modelforge/modelforge/internal/interface/middleware"
	"github.com/modelforge/modelforge/pkg/response"
	"github.com/modelforge/modelforge/pkg/validation"
)

type AutonomousAgentHandler struct {
	Svc *application.AutonomousAgentService
}

func NewAutonomousAgentHandler(svc *application.AutonomousAgentService) *AutonomousAgentHandler {
	return &AutonomousAgentHandler{Svc: svc}
}

func (h *AutonomousAgentHandler) List(c *gin.Context) {
	skip, take, page, limit, search := pageParams(c)
	items, total, err := h.Svc.List(c.Request.Context(), skip, take, search)
	if err != nil {
		crudError(c, err, "agent")
		return
	}
	response.Success(c, http.StatusOK, items, "agents", response.Pagination{Page: page, Limit: limit, Total: total})
}

func (h *AutonomousAgentHandler) Get(c *gin.Context) {
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		crudError(c, err, "agent")
		return
	}
	response.Success(c, http.StatusOK, a, "agent", nil)
}

type createAgentRequest struct {
	Name  string `json:"name" binding:"required,max=120"`
	LLMID string `json:"llm_id" binding:"required,uuid"`
}

func (h *AutonomousAgentHandler) Create(c *gin.Context) {
	var req createAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.Name, req.LLMID)
	if err != nil {
		crudError(c, err, "agent")
		return
	}
	response.Success(c, http.StatusCreated, a, "agent created", nil)
}

type updateAgentRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=120"`
	LLMID *string `json:"llm_id" binding:"omitempty,uuid"`
}

func (h *AutonomousAgentHandler) Update(c *gin.Context) {
	var req updateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Name, req.LLMID)
	if err != nil {
		crudError(c, err, "agent")
		return
	}
	response.Success(c, http.StatusOK, a, "agent updated", nil)
}

func (h *AutonomousAgentHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		crudError(c, err, "agent")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "agent deleted", nil)
}

func (h *AutonomousAgentHandler) Dropdown(c *gin.Context) {
	fields, keyword := dropdownParams(c)
	rows, err := h.Svc.Dropdown(c.Request.Context(), fields, keyword)
	if err != nil {
		crudError(c, err, "agent")
		return
	}
	response.Success(c, http.StatusOK, rows, "agent options", nil)
}
