package router

import "github.com/gin-gonic/gin"

// Module is a feature area that mounts its routes on the shared /api
// group. Name identifies the module in startup logs.
type Module interface {
	Name() string
	Register(rg *gin.RouterGroup)
}
