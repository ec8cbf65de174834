package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("name", "", Required).
		Field("provider", "smalltalk", ProviderName([]string{"openai", "ollama"})).
		Field("model", "gpt-4o", Required)

	require.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	assert.Contains(t, v.ErrorMessage(), "name")
	assert.Contains(t, v.ErrorMessage(), "provider")
	assert.NotContains(t, v.ErrorMessage(), "model")
}

func TestValidatorClean(t *testing.T) {
	v := NewValidator().
		Field("name", "invoices", Required).
		Field("provider", "OpenAI", ProviderName([]string{"openai"}))

	assert.False(t, v.HasErrors())
	require.NoError(t, ValidateAndReturnError(v))
}

func TestValidateAndReturnErrorStatus(t *testing.T) {
	v := NewValidator().Field("name", "  ", Required)
	err := ValidateAndReturnError(v)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUUIDRule(t *testing.T) {
	assert.Nil(t, UUID("id", uuid.NewString()))
	assert.NotNil(t, UUID("id", "not-a-uuid"))
	assert.NotNil(t, UUID("id", 42))
}
