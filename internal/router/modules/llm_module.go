package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/modelforge/modelforge/internal/container"
	handlers "github.com/modelforge/modelforge/internal/interface/http"
	"github.com/modelforge/modelforge/internal/interface/middleware"
	"github.com/modelforge/modelforge/pkg/helpers"
)

// crudHandler is the shape every entity handler exposes.
type crudHandler interface {
	List(*gin.Context)
	Get(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
	Dropdown(*gin.Context)
}

func registerCRUD(rg *gin.RouterGroup, base string, h crudHandler) {
	rg.GET(base, h.List)
	rg.GET(base+"/dropdown", h.Dropdown)
	rg.GET(base+"/:id", h.Get)
	rg.POST(base, h.Create)
	rg.PUT(base+"/:id", h.Update)
	rg.DELETE(base+"/:id", h.Delete)
}

// LLMModule registers the model-configuration CRUD surface.
type LLMModule struct {
	Keys      *handlers.OpenAIKeyHandler
	APIs      *handlers.LLMAPIHandler
	Adapters  *handlers.LLMAdapterHandler
	Merged    *handlers.MergedLLMHandler
	ChatModel *handlers.ChatModelHandler
	Agents    *handlers.AutonomousAgentHandler
	Exports   *handlers.ExportedCodeHandler
	JWT       *helpers.JWTManager
}

func NewLLMModule(
	keys *handlers.OpenAIKeyHandler,
	apis *handlers.LLMAPIHandler,
	adapters *handlers.LLMAdapterHandler,
	merged *handlers.MergedLLMHandler,
	chatModels *handlers.ChatModelHandler,
	agents *handlers.AutonomousAgentHandler,
	exports *handlers.ExportedCodeHandler,
	jwt *helpers.JWTManager,
) *LLMModule {
	return &LLMModule{
		Keys:      keys,
		APIs:      apis,
		Adapters:  adapters,
		Merged:    merged,
		ChatModel: chatModels,
		Agents:    agents,
		Exports:   exports,
		JWT:       jwt,
	}
}

func (m *LLMModule) Name() string { return "llm" }

func (m *LLMModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 240, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))

	registerCRUD(auth, "/open-ai-keys", m.Keys)
	registerCRUD(auth, "/llm-apis", m.APIs)
	registerCRUD(auth, "/llm-adapters", m.Adapters)
	registerCRUD(auth, "/merged-llms", m.Merged)
	registerCRUD(auth, "/chat-models", m.ChatModel)
	registerCRUD(auth, "/autonomous-agents", m.Agents)
	registerCRUD(auth, "/exported-codes", m.Exports)
}
