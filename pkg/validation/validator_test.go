package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required,pwd" validate:"required,pwd"`
	Name     string `json:"name" binding:"max=10" validate:"max=10"`
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestToDetailsFieldMessages(t *testing.T) {
	v := newTestValidator(t)

	err := v.Struct(signupPayload{
		Email:    "not-an-email",
		Password: "short",
		Name:     "a-name-that-is-too-long",
	})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be at least 8 characters", details["password"])
	assert.Equal(t, "must be at most 10 characters", details["name"])
}

func TestToDetailsRequired(t *testing.T) {
	v := newTestValidator(t)

	err := v.Struct(signupPayload{})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["email"])
	assert.Equal(t, "is required", details["password"])
	_, hasName := details["name"]
	assert.False(t, hasName)
}

func TestToDetailsBadJSON(t *testing.T) {
	var dst signupPayload
	err := json.Unmarshal([]byte("{nope"), &dst)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	err = json.Unmarshal([]byte(`{"email": 12}`), &dst)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetailsFallback(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("boom")))
}
