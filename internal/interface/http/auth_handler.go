package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/modelforge/modelforge/internal/application"
	"github.com/modelforge/modelforge/internal/domain/entity"
	"github.com/modelforge/modelforge/internal/interface/middleware"
	"github.com/modelforge/modelforge/pkg/response"
	"github.com/modelforge/modelforge/pkg/validation"
)

type AuthHandler struct {
	Auth   *application.AuthService
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, users *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Users: users, Logger: logger}
}

type registerRequest struct {
	Name            string `json:"name" binding:"required,max=120"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,pwd"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		h.authError(c, err)
		return
	}
	h.Users.Index(c.Request.Context(), u)
	response.Success(c, http.StatusCreated, gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}, "registered, please verify your email", nil)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	pair, u, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password, clientIP(c), c.GetHeader("User-Agent"))
	if err != nil {
		h.authError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{"id": u.ID, "name": u.Name, "email": u.Email},
		"tokens": gin.H{
			"access_token":  pair.AccessToken,
			"refresh_token": pair.RefreshToken,
		},
	}, "login successful", gin.H{
		"access_expires_at":  pair.AccessExpiresAt,
		"refresh_expires_at": pair.RefreshExpiresAt,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshToken POST /api/auth/refresh-token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	pair, err := h.Auth.RefreshTokens(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.authError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, "token refreshed", gin.H{
		"access_expires_at":  pair.AccessExpiresAt,
		"refresh_expires_at": pair.RefreshExpiresAt,
	})
}

type emailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResendVerification POST /api/auth/resend-verification-email
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Auth.IssueToken(c.Request.Context(), req.Email, entity.PurposeEmailVerify); err != nil {
		h.authError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "verification email sent", nil)
}

// VerifyEmail GET /api/auth/email-verify/:token
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	email, err := h.Auth.VerifyEmail(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.authError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"email": email}, "email verified", nil)
}

// ForgotPassword POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Auth.IssueToken(c.Request.Context(), req.Email, entity.PurposeForgotPassword); err != nil {
		h.authError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password reset email sent", nil)
}

type resetPasswordRequest struct {
	Password        string `json:"password" binding:"required,pwd"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// ResetPassword POST /api/auth/reset-password/:token
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Auth.ResetPassword(c.Request.Context(), c.Param("token"), req.Password, req.ConfirmPassword); err != nil {
		h.authError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password reset successful", nil)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,pwd"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ChangePassword PUT /api/auth/change-password (auth required)
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	err := h.Auth.ChangePassword(c.Request.Context(), uid, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		h.authError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password changed", nil)
}

// authError maps service sentinels onto HTTP statuses. Unknown errors
// are logged and reported as a bare 500.
func (h *AuthHandler) authError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrTokenRecentlySent):
		response.Error[any](c, http.StatusTooManyRequests, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidToken),
		errors.Is(err, application.ErrAlreadyVerified):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrEmailNotVerified),
		errors.Is(err, application.ErrInvalidRefreshToken),
		errors.Is(err, application.ErrPasswordMismatch),
		errors.Is(err, application.ErrSamePassword),
		errors.Is(err, application.ErrPasswordConfirm):
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrMailDelivery):
		response.Error[any](c, http.StatusBadGateway, application.ErrMailDelivery.Error(), nil)
	default:
		h.Logger.WithError(err).Error("auth request failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
