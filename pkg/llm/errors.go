package llm

import (
	"context"
	"errors"
	"fmt"
	"net"

	openai "github.com/sashabaranov/go-openai"
)

// Kind classifies dispatcher errors so callers can decide between retrying,
// failing the mission, or degrading the step.
type Kind string

const (
	// KindConfiguration covers missing/invalid API keys, unknown models, and
	// missing endpoints. Not retried; the mission fails at the first call that
	// needs the broken provider, with a user-facing message.
	KindConfiguration Kind = "configuration"

	// KindTransient covers 5xx, 429, and network failures. Retried with
	// exponential backoff and jitter.
	KindTransient Kind = "transient"

	// KindSchema means the model's output could not be parsed into the
	// requested schema after every repair pass. Treated as a step failure;
	// the caller degrades rather than failing the mission.
	KindSchema Kind = "schema"

	// KindFatal covers programmer errors and invariant violations.
	KindFatal Kind = "fatal"
)

// Error is the typed error returned by the Dispatcher.
type Error struct {
	Kind     Kind
	Provider string // provider name from llm-providers.yaml
	Message  string // user-facing for KindConfiguration
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm %s error (provider %s): %s: %v", e.Kind, e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("llm %s error (provider %s): %s", e.Kind, e.Provider, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from an error chain. Unclassified errors are fatal.
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindFatal
}

// IsRetryable reports whether the error kind warrants another attempt.
func IsRetryable(err error) bool {
	return KindOf(err) == KindTransient
}

// classifyProviderError maps a go-openai error to a dispatcher Error.
func classifyProviderError(provider string, err error) *Error {
	if err == nil {
		return nil
	}

	// Context cancellation is not a provider failure; let the cancellation
	// unwind, but keep it transient so a deadline inside a retry loop is
	// retried only while the parent context is still live.
	if errors.Is(err, context.Canceled) {
		return &Error{Kind: KindFatal, Provider: provider, Message: "call cancelled", Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTransient, Provider: provider, Message: "call timed out", Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 401 || apiErr.HTTPStatusCode == 403:
			return &Error{
				Kind:     KindConfiguration,
				Provider: provider,
				Message:  "the provider rejected the API key; update your model settings",
				Err:      err,
			}
		case apiErr.HTTPStatusCode == 404:
			return &Error{
				Kind:     KindConfiguration,
				Provider: provider,
				Message:  "unknown model or endpoint; update your model settings",
				Err:      err,
			}
		case apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500:
			return &Error{Kind: KindTransient, Provider: provider, Message: "provider unavailable", Err: err}
		default:
			return &Error{Kind: KindFatal, Provider: provider, Message: "provider request rejected", Err: err}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return &Error{Kind: KindTransient, Provider: provider, Message: "network failure", Err: err}
	}

	// go-openai wraps transport errors in *url.Error which implements
	// net.Error, so anything left here is unexpected.
	return &Error{Kind: KindTransient, Provider: provider, Message: "request failed", Err: err}
}
