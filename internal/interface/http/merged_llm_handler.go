package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelforge/modelforge/internal/application"
	"github.com/modelforge/modelforge/pkg/response"
	"github.com/modelforge/modelforge/pkg/validation"
)

type MergedLLMHandler struct {
	Svc *application.MergedLLMService
}

func NewMergedLLMHandler(svc *application.MergedLLMService) *MergedLLMHandler {
	return &MergedLLMHandler{Svc: svc}
}

func (h *MergedLLMHandler) List(c *gin.Context) {
	skip, take, page, limit, search := pageParams(c)
	items, total, err := h.Svc.List(c.Request.Context(), skip, take, search)
	if err != nil {
		crudError(c, err, "merged llm")
		return
	}
	response.Success(c, http.StatusOK, items, "merged llms", response.Pagination{Page: page, Limit: limit, Total: total})
}

func (h *MergedLLMHandler) Get(c *gin.Context) {
	m, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		crudError(c, err, "merged llm")
		return
	}
	response.Success(c, http.StatusOK, m, "merged llm", nil)
}

type createMergedLLMRequest struct {
	LLM1ID string `json:"llm1_id" binding:"required,uuid"`
	LLM2ID string `json:"llm2_id" binding:"required,uuid"`
}

func (h *MergedLLMHandler) Create(c *gin.Context) {
	var req createMergedLLMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Svc.Create(c.Request.Context(), req.LLM1ID, req.LLM2ID)
	if err != nil {
		crudError(c, err, "merged llm")
		return
	}
	response.Success(c, http.StatusCreated, m, "merged llm created", nil)
}

type updateMergedLLMRequest struct {
	LLM1ID *string `json:"llm1_id" binding:"omitempty,uuid"`
	LLM2ID *string `json:"llm2_id" binding:"omitempty,uuid"`
}

func (h *MergedLLMHandler) Update(c *gin.Context) {
	var req updateMergedLLMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.LLM1ID, req.LLM2ID)
	if err != nil {
		crudError(c, err, "merged llm")
		return
	}
	response.Success(c, http.StatusOK, m, "merged llm updated", nil)
}

func (h *MergedLLMHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		crudError(c, err, "merged llm")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "merged llm deleted", nil)
}

func (h *MergedLLMHandler) Dropdown(c *gin.Context) {
	fields, keyword := dropdownParams(c)
	rows, err := h.Svc.Dropdown(c.Request.Context(), fields, keyword)
	if err != nil {
		crudError(c, err, "merged llm")
		return
	}
	response.Success(c, http.StatusOK, rows, "merged llm options", nil)
}
