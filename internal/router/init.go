package router

import (
	"github.com/modelforge/modelforge/internal/application"
	"github.com/modelforge/modelforge/internal/container"
	pginfra "github.com/modelforge/modelforge/internal/infrastructure/postgres"
	handlers "github.com/modelforge/modelforge/internal/interface/http"
	"github.com/modelforge/modelforge/internal/router/modules"
	"github.com/modelforge/modelforge/pkg/mailer"
)

// InitModules wires repositories, services and handlers from the
// container singletons and registers every feature module.
// Call once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	log := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	tokenRepo := pginfra.NewTokenRepository(pool)

	authMailer := mailer.NewAuthMailer(cfg, container.GetMailgun(), log)

	// RabbitPublisher may be nil when the broker is unavailable; services
	// treat a nil publisher as "skip async mail".
	var queue application.Publisher
	if pub := container.GetRabbitPub(); pub != nil {
		queue = pub
	}

	userSvc := application.NewUserService(userRepo, container.GetRedis(), container.GetES(), cfg.ESUsersIndex, log)
	authSvc := application.NewAuthService(cfg, userRepo, tokenRepo, jwt, authMailer, queue, log)

	authHandler := handlers.NewAuthHandler(authSvc, userSvc, log)
	userHandler := handlers.NewUserHandler(userSvc, log)

	r.Add(modules.NewAuthModule(authHandler, jwt))
	r.Add(modules.NewUserModule(userHandler, jwt))

	if queue != nil {
		emailSvc := application.NewEmailService(queue)
		r.Add(modules.NewEmailModule(handlers.NewEmailHandler(emailSvc, log), jwt))
	}

	keysSvc := application.NewOpenAIKeyService(pginfra.NewOpenAIKeyRepository(pool))
	apisSvc := application.NewLLMAPIService(pginfra.NewLLMAPIRepository(pool))
	adaptersSvc := application.NewLLMAdapterService(pginfra.NewLLMAdapterRepository(pool))
	mergedSvc := application.NewMergedLLMService(pginfra.NewMergedLLMRepository(pool))
	chatSvc := application.NewChatModelService(pginfra.NewChatModelRepository(pool))
	agentsSvc := application.NewAutonomousAgentService(pginfra.NewAutonomousAgentRepository(pool))
	exportsSvc := application.NewExportedCodeService(pginfra.NewExportedCodeRepository(pool), container.GetGCS(), cfg.GCSBucket, log)

	r.Add(modules.NewLLMModule(
		handlers.NewOpenAIKeyHandler(keysSvc),
		handlers.NewLLMAPIHandler(apisSvc),
		handlers.NewLLMAdapterHandler(adaptersSvc),
		handlers.NewMergedLLMHandler(mergedSvc),
		handlers.NewChatModelHandler(chatSvc),
		handlers.NewAutonomousAgentHandler(agentsSvc),
		handlers.NewExportedCodeHandler(exportsSvc),
		jwt,
	))

	r.Add(modules.NewDebugModule())
}
