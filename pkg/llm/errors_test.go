package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
	}{
		{"cancelled", context.Canceled, KindFatal},
		{"deadline", context.DeadlineExceeded, KindTransient},
		{"unauthorized", &openai.APIError{HTTPStatusCode: 401}, KindConfiguration},
		{"forbidden", &openai.APIError{HTTPStatusCode: 403}, KindConfiguration},
		{"unknown model", &openai.APIError{HTTPStatusCode: 404}, KindConfiguration},
		{"rate limited", &openai.APIError{HTTPStatusCode: 429}, KindTransient},
		{"server error", &openai.APIError{HTTPStatusCode: 500}, KindTransient},
		{"gateway timeout", &openai.APIError{HTTPStatusCode: 504}, KindTransient},
		{"bad request", &openai.APIError{HTTPStatusCode: 400}, KindFatal},
		{"dns failure", &url.Error{Op: "Post", URL: "https://api.example.com", Err: &net.DNSError{Name: "api.example.com"}}, KindTransient},
		{"wrapped api error", fmt.Errorf("call failed: %w", &openai.APIError{HTTPStatusCode: 429}), KindTransient},
		{"unknown error", errors.New("weird"), KindTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyProviderError("test-provider", tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, "test-provider", got.Provider)
			assert.True(t, errors.Is(got, tt.err))
		})
	}
}

func TestClassifyProviderError_Nil(t *testing.T) {
	assert.Nil(t, classifyProviderError("p", nil))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindTransient, KindOf(&Error{Kind: KindTransient}))
	assert.Equal(t, KindSchema, KindOf(fmt.Errorf("wrapped: %w", &Error{Kind: KindSchema})))
	assert.Equal(t, KindFatal, KindOf(errors.New("plain")))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&Error{Kind: KindTransient}))
	assert.False(t, IsRetryable(&Error{Kind: KindConfiguration}))
	assert.False(t, IsRetryable(&Error{Kind: KindSchema}))
	assert.False(t, IsRetryable(errors.New("plain")))
}

func TestError_MessageAndUnwrap(t *testing.T) {
	inner := errors.New("boom")
	e := &Error{Kind: KindTransient, Provider: "p1", Message: "provider unavailable", Err: inner}

	assert.Contains(t, e.Error(), "transient")
	assert.Contains(t, e.Error(), "p1")
	assert.Contains(t, e.Error(), "boom")
	assert.True(t, errors.Is(e, inner))

	noCause := &Error{Kind: KindConfiguration, Provider: "p2", Message: "no key"}
	assert.Contains(t, noCause.Error(), "no key")
	assert.NoError(t, noCause.Unwrap())
}
