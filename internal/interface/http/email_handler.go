package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/modelforge/modelforge/internal/application"
	"github.com/modelforge/modelforge/pkg/mailer"
	"github.com/modelforge/modelforge/pkg/response"
	"github.com/modelforge/modelforge/pkg/validation"
)

type EmailHandler struct {
	Emails *application.EmailService
	Logger *logrus.Logger
}

func NewEmailHandler(emails *application.EmailService, logger *logrus.Logger) *EmailHandler {
	return &EmailHandler{Emails: emails, Logger: logger}
}

type sendEmailRequest struct {
	To       string         `json:"to" binding:"required,email"`
	Subject  string         `json:"subject" binding:"required_without=Template"`
	Text     string         `json:"text"`
	HTML     string         `json:"html"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
}

// Send POST /api/email/send (auth required). Queues the mail for the
// worker; does not wait for delivery.
func (h *EmailHandler) Send(c *gin.Context) {
	var req sendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	job := mailer.EmailJob{
		To:       req.To,
		Subject:  req.Subject,
		Text:     req.Text,
		HTML:     req.HTML,
		Template: req.Template,
		Data:     req.Data,
	}
	if err := h.Emails.Enqueue(c.Request.Context(), job); err != nil {
		h.Logger.WithError(err).Error("email enqueue failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to queue email", nil)
		return
	}
	response.Success[any](c, http.StatusAccepted, nil, "email queued", nil)
}
