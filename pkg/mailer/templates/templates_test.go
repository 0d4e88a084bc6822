package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelforge/modelforge/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AppName:     "ModelForge",
		FrontEndURL: "https://app.test",
	}
}

func TestRenderVerifyEmail(t *testing.T) {
	data := NewVerifyEmailData(testConfig(), "Ada", "ada@example.com",
		"https://app.test/verify-email?token=abc123",
		WithExpiresIn(24*time.Hour))

	subject, text, html, err := Render(VerifyEmail, data)
	require.NoError(t, err)
	assert.NotEmpty(t, subject)
	assert.Contains(t, text, "https://app.test/verify-email?token=abc123")
	assert.Contains(t, html, "https://app.test/verify-email?token=abc123")
	assert.Contains(t, text, "Ada")
}

func TestRenderForgotPassword(t *testing.T) {
	data := NewForgotPasswordData(testConfig(), "Ada", "ada@example.com",
		"https://app.test/reset-password?token=abc123",
		WithExpiresIn(24*time.Hour))

	subject, text, html, err := Render(ForgotPassword, data)
	require.NoError(t, err)
	assert.NotEmpty(t, subject)
	assert.Contains(t, text, "https://app.test/reset-password?token=abc123")
	assert.Contains(t, html, "https://app.test/reset-password?token=abc123")
}

func TestRenderLoginNotification(t *testing.T) {
	when := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	data := NewLoginNotificationData(testConfig(), "Ada", "ada@example.com",
		WithIP("203.0.113.7"),
		WithUserAgent("test-agent/1.0"),
		WithTime(when))

	subject, text, html, err := Render(LoginNotification, data)
	require.NoError(t, err)
	assert.NotEmpty(t, subject)
	assert.Contains(t, text, "203.0.113.7")
	assert.Contains(t, html, "203.0.113.7")
	assert.Contains(t, text, "test-agent/1.0")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("no_such_template", map[string]any{})
	assert.Error(t, err)
}

func TestToMapKeepsFieldNames(t *testing.T) {
	m := ToMap(EmailData{Name: "Ada", AppName: "ModelForge"})
	assert.Equal(t, "Ada", m["Name"])
	assert.Equal(t, "ModelForge", m["AppName"])
}
