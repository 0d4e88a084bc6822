package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/modelforge/modelforge/internal/container"
	handlers "github.com/modelforge/modelforge/internal/interface/http"
	"github.com/modelforge/modelforge/internal/interface/middleware"
	"github.com/modelforge/modelforge/pkg/helpers"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Name() string { return "auth" }

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits. The 3-minute token
	// throttle lives in the service; these just blunt brute force.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), nil)
	issueLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	redeemLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/refresh-token", loginLimiter, m.Handler.RefreshToken)
	rg.POST("/auth/resend-verification-email", issueLimiter, m.Handler.ResendVerification)
	rg.POST("/auth/forgot-password", issueLimiter, m.Handler.ForgotPassword)
	rg.GET("/auth/email-verify/:token", redeemLimiter, m.Handler.VerifyEmail)
	rg.POST("/auth/reset-password/:token", redeemLimiter, m.Handler.ResetPassword)

	// Protected change-password with user-based rate limit
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.PUT("/auth/change-password", m.Handler.ChangePassword)
	}
}
