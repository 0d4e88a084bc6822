package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelforge/modelforge/internal/application"
	"github.com/modelforge/modelforge/internal/interface/middleware"
	"github.com/modelforge/modelforge/pkg/response"
	"github.com/modelforge/modelforge/pkg/validation"
)

type OpenAIKeyHandler struct {
	Svc *application.OpenAIKeyService
}

func NewOpenAIKeyHandler(svc *application.OpenAIKeyService) *OpenAIKeyHandler {
	return &OpenAIKeyHandler{Svc: svc}
}

func (h *OpenAIKeyHandler) List(c *gin.Context) {
	skip, take, page, limit, search := pageParams(c)
	items, total, err := h.Svc.List(c.Request.Context(), skip, take, search)
	if err != nil {
		crudError(c, err, "api key")
		return
	}
	response.Success(c, http.StatusOK, items, "api keys", response.Pagination{Page: page, Limit: limit, Total: total})
}

func (h *OpenAIKeyHandler) Get(c *gin.Context) {
	k, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		crudError(c, err, "api key")
		return
	}
	response.Success(c, http.StatusOK, k, "api key", nil)
}

type createOpenAIKeyRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

func (h *OpenAIKeyHandler) Create(c *gin.Context) {
	var req createOpenAIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	k, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.APIKey)
	if err != nil {
		crudError(c, err, "api key")
		return
	}
	response.Success(c, http.StatusCreated, k, "api key created", nil)
}

type updateOpenAIKeyRequest struct {
	APIKey *string `json:"api_key"`
}

func (h *OpenAIKeyHandler) Update(c *gin.Context) {
	var req updateOpenAIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	k, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.APIKey)
	if err != nil {
		crudError(c, err, "api key")
		return
	}
	response.Success(c, http.StatusOK, k, "api key updated", nil)
}

func (h *OpenAIKeyHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		crudError(c, err, "api key")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "api key deleted", nil)
}

func (h *OpenAIKeyHandler) Dropdown(c *gin.Context) {
	fields, keyword := dropdownParams(c)
	rows, err := h.Svc.Dropdown(c.Request.Context(), fields, keyword)
	if err != nil {
		crudError(c, err, "api key")
		return
	}
	response.Success(c, http.StatusOK, rows, "api key options", nil)
}
