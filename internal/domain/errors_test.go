package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderErrorTagMatching(t *testing.T) {
	err := NewProviderError(ErrRateLimited, "rate_limit", "Too many requests", "req_1", 429, nil)

	assert.True(t, errors.Is(err, ErrRateLimited))
	assert.False(t, errors.Is(err, ErrAuth))
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestProviderErrorTagSurvivesWrapping(t *testing.T) {
	inner := NewProviderError(ErrAuth, "api_key_invalid", "Invalid API Key", "req_2", 401, nil)
	wrapped := fmt.Errorf("create session: %w", inner)

	assert.True(t, errors.Is(wrapped, ErrAuth))

	var providerErr *ProviderError
	require.True(t, errors.As(wrapped, &providerErr))
	assert.Equal(t, "api_key_invalid", providerErr.Code)
	assert.Equal(t, 401, providerErr.StatusCode)
}

func TestProviderErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewProviderError(ErrUpstream, "", "request failed", "", 0, cause)

	assert.True(t, errors.Is(err, cause))
}

func TestValidationErrorsMatchTag(t *testing.T) {
	var errs ValidationErrors
	errs.Add("priceId", "is required")
	errs.Add("customerEmail", "must be a valid email address")

	assert.True(t, errors.Is(errs, ErrValidation))
	assert.True(t, errs.HasErrors())
	assert.Equal(t, []string{"priceId", "customerEmail"}, errs.Fields())
	assert.Contains(t, errs.Error(), "2 errors")
}

func TestFailEnvelopeInvariant(t *testing.T) {
	res := Fail(errors.New("boom"))
	assert.False(t, res.Success)
	assert.Equal(t, "boom", res.Error)

	res = Fail(nil)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)

	ok := OK(map[string]string{"id": "x"})
	assert.True(t, ok.Success)
	assert.Empty(t, ok.Error)
}
