package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelforge/modelforge/internal/application"
	"github.com/modelforge/modelforge/pkg/response"
	"github.com/modelforge/modelforge/pkg/validation"
)

type LLMAdapterHandler struct {
	Svc *application.LLMAdapterService
}

func NewLLMAdapterHandler(svc *application.LLMAdapterService) *LLMAdapterHandler {
	return &LLMAdapterHandler{Svc: svc}
}

func (h *LLMAdapterHandler) List(c *gin.Context) {
	skip, take, page, limit, search := pageParams(c)
	items, total, err := h.Svc.List(c.Request.Context(), skip, take, search)
	if err != nil {
		crudError(c, err, "adapter")
		return
	}
	response.Success(c, http.StatusOK, items, "adapters", response.Pagination{Page: page, Limit: limit, Total: total})
}

func (h *LLMAdapterHandler) Get(c *gin.Context) {
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		crudError(c, err, "adapter")
		return
	}
	response.Success(c, http.StatusOK, a, "adapter", nil)
}

type createLLMAdapterRequest struct {
	Name      string `json:"name" binding:"required,max=120"`
	ModelType string `json:"model_type" binding:"required,max=120"`
}

func (h *LLMAdapterHandler) Create(c *gin.Context) {
	var req createLLMAdapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), req.Name, req.ModelType)
	if err != nil {
		crudError(c, err, "adapter")
		return
	}
	response.Success(c, http.StatusCreated, a, "adapter created", nil)
}

type updateLLMAdapterRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=120"`
	ModelType *string `json:"model_type" binding:"omitempty,max=120"`
}

func (h *LLMAdapterHandler) Update(c *gin.Context) {
	var req updateLLMAdapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Name, req.ModelType)
	if err != nil {
		crudError(c, err, "adapter")
		return
	}
	response.Success(c, http.StatusOK, a, "adapter updated", nil)
}

func (h *LLMAdapterHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		crudError(c, err, "adapter")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "adapter deleted", nil)
}

func (h *LLMAdapterHandler) Dropdown(c *gin.Context) {
	fields, keyword := dropdownParams(c)
	rows, err := h.Svc.Dropdown(c.Request.Context(), fields, keyword)
	if err != nil {
		crudError(c, err, "adapter")
		return
	}
	response.Success(c, http.StatusOK, rows, "adapter options", nil)
}
