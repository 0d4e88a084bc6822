package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelforge/modelforge/internal/application"
	"github.com/modelforge/modelforge/internal/interface/middleware"
	"github.com/modelforge/modelforge/pkg/response"
	"github.com/modelforge/modelforge/pkg/validation"
)

type LLMAPIHandler struct {
	Svc *application.LLMAPIService
}

func NewLLMAPIHandler(svc *application.LLMAPIService) *LLMAPIHandler {
	return &LLMAPIHandler{Svc: svc}
}

func (h *LLMAPIHandler) List(c *gin.Context) {
	skip, take, page, limit, search := pageParams(c)
	items, total, err := h.Svc.List(c.Request.Context(), skip, take, search)
	if err != nil {
		crudError(c, err, "llm api")
		return
	}
	response.Success(c, http.StatusOK, items, "llm apis", response.Pagination{Page: page, Limit: limit, Total: total})
}

func (h *LLMAPIHandler) Get(c *gin.Context) {
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		crudError(c, err, "llm api")
		return
	}
	response.Success(c, http.StatusOK, a, "llm api", nil)
}

type createLLMAPIRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Endpoint string `json:"endpoint" binding:"required,url"`
}

func (h *LLMAPIHandler) Create(c *gin.Context) {
	var req createLLMAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.Name, req.Endpoint)
	if err != nil {
		crudError(c, err, "llm api")
		return
	}
	response.Success(c, http.StatusCreated, a, "llm api created", nil)
}

type updateLLMAPIRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=120"`
	Endpoint *string `json:"endpoint" binding:"omitempty,url"`
}

func (h *LLMAPIHandler) Update(c *gin.Context) {
	var req updateLLMAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Name, req.Endpoint)
	if err != nil {
		crudError(c, err, "llm api")
		return
	}
	response.Success(c, http.StatusOK, a, "llm api updated", nil)
}

func (h *LLMAPIHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		crudError(c, err, "llm api")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "llm api deleted", nil)
}

func (h *LLMAPIHandler) Dropdown(c *gin.Context) {
	fields, keyword := dropdownParams(c)
	rows, err := h.Svc.Dropdown(c.Request.Context(), fields, keyword)
	if err != nil {
		crudError(c, err, "llm api")
		return
	}
	response.Success(c, http.StatusOK, rows, "llm api options", nil)
}
