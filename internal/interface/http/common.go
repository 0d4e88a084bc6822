package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/modelforge/modelforge/internal/domain/repository"
	"github.com/modelforge/modelforge/pkg/response"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// pageParams reads ?page=&limit=&search= and converts to offset terms.
func pageParams(c *gin.Context) (skip, take, page, limit int, search string) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return (page - 1) * limit, limit, page, limit, c.Query("search")
}

// dropdownParams reads ?fields=a,b&keyword= for dropdown endpoints.
func dropdownParams(c *gin.Context) (fields []string, keyword string) {
	raw := c.Query("fields")
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields, c.Query("keyword")
}

// crudError maps repository errors onto an HTTP error response.
func crudError(c *gin.Context, err error, what string) {
	if errors.Is(err, repository.ErrNotFound) {
		response.Error[any](c, http.StatusNotFound, what+" not found", nil)
		return
	}
	response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
}
