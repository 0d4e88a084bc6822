package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelforge/modelforge/internal/application"
	"github.com/modelforge/modelforge/internal/interface/middleware"
	"github.com/modelforge/modelforge/pkg/response"
	"github.com/modelforge/modelforge/pkg/validation"
)

type ExportedCodeHandler struct {
	Svc *application.ExportedCodeService
}

func NewExportedCodeHandler(svc *application.ExportedCodeService) *ExportedCodeHandler {
	return &ExportedCodeHandler{Svc: svc}
}

func (h *ExportedCodeHandler) List(c *gin.Context) {
	skip, take, page, limit, search := pageParams(c)
	items, total, err := h.Svc.List(c.Request.Context(), skip, take, search)
	if err != nil {
		crudError(c, err, "exported code")
		return
	}
	response.Success(c, http.StatusOK, items, "exported codes", response.Pagination{Page: page, Limit: limit, Total: total})
}

func (h *ExportedCodeHandler) Get(c *gin.Context) {
	e, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		crudError(c, err, "exported code")
		return
	}
	response.Success(c, http.StatusOK, e, "exported code", nil)
}

type createExportedCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *ExportedCodeHandler) Create(c *gin.Context) {
	var req createExportedCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.Code)
	if err != nil {
		crudError(c, err, "exported code")
		return
	}
	response.Success(c, http.StatusCreated, e, "exported code created", nil)
}

type updateExportedCodeRequest struct {
	Code *string `json:"code"`
}

func (h *ExportedCodeHandler) Update(c *gin.Context) {
	var req updateExportedCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Code)
	if err != nil {
		crudError(c, err, "exported code")
		return
	}
	response.Success(c, http.StatusOK, e, "exported code updated", nil)
}

func (h *ExportedCodeHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		crudError(c, err, "exported code")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "exported code deleted", nil)
}

func (h *ExportedCodeHandler) Dropdown(c *gin.Context) {
	fields, keyword := dropdownParams(c)
	rows, err := h.Svc.Dropdown(c.Request.Context(), fields, keyword)
	if err != nil {
		crudError(c, err, "exported code")
		return
	}
	response.Success(c, http.StatusOK, rows, "exported code options", nil)
}
