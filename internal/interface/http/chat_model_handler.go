package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelforge/modelforge/internal/application"
	"github.com/modelforge/modelforge/pkg/response"
	"github.com/modelforge/modelforge/pkg/validation"
)

type ChatModelHandler struct {
	Svc *application.ChatModelService
}

func NewChatModelHandler(svc *application.ChatModelService) *ChatModelHandler {
	return &ChatModelHandler{Svc: svc}
}

func (h *ChatModelHandler) List(c *gin.Context) {
	skip, take, page, limit, search := pageParams(c)
	items, total, err := h.Svc.List(c.Request.Context(), skip, take, search)
	if err != nil {
		crudError(c, err, "chat model")
		return
	}
	response.Success(c, http.StatusOK, items, "chat models", response.Pagination{Page: page, Limit: limit, Total: total})
}

func (h *ChatModelHandler) Get(c *gin.Context) {
	m, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		crudError(c, err, "chat model")
		return
	}
	response.Success(c, http.StatusOK, m, "chat model", nil)
}

type createChatModelRequest struct {
	ModelName    string `json:"model_name" binding:"required,max=120"`
	ModelVersion string `json:"model_version" binding:"required,max=60"`
	APIKeyID     string `json:"api_key_id" binding:"required,uuid"`
}

func (h *ChatModelHandler) Create(c *gin.Context) {
	var req createChatModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Svc.Create(c.Request.Context(), req.ModelName, req.ModelVersion, req.APIKeyID)
	if err != nil {
		crudError(c, err, "chat model")
		return
	}
	response.Success(c, http.StatusCreated, m, "chat model created", nil)
}

type updateChatModelRequest struct {
	ModelName    *string `json:"model_name" binding:"omitempty,max=120"`
	ModelVersion *string `json:"model_version" binding:"omitempty,max=60"`
	APIKeyID     *string `json:"api_key_id" binding:"omitempty,uuid"`
}

func (h *ChatModelHandler) Update(c *gin.Context) {
	var req updateChatModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.ModelName, req.ModelVersion, req.APIKeyID)
	if err != nil {
		crudError(c, err, "chat model")
		return
	}
	response.Success(c, http.StatusOK, m, "chat model updated", nil)
}

func (h *ChatModelHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		crudError(c, err, "chat model")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "chat model deleted", nil)
}

func (h *ChatModelHandler) Dropdown(c *gin.Context) {
	fields, keyword := dropdownParams(c)
	rows, err := h.Svc.Dropdown(c.Request.Context(), fields, keyword)
	if err != nil {
		crudError(c, err, "chat model")
		return
	}
	response.Success(c, http.StatusOK, rows, "chat model options", nil)
}
