// Package llm provides LLM provider abstractions for single-shot text
// generation.
//
// Each provider implementation hides:
// - API client initialization and authentication
// - Request/response format conversion
// - Provider-specific error handling
package llm

import (
	"context"
)

// Request is a single text-generation request. Nil pointer fields mean
// "unset": the provider omits them and the upstream default applies.
type Request struct {
	Prompt      string
	System      string
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
	// Stop is nil when the caller supplied no stop sequences; an explicit
	// empty list is never passed through.
	Stop []string
}

// Response is the normalized result of a generation request.
type Response struct {
	Text  string
	Usage *TokenUsage
}

// TokenUsage contains token usage statistics, when the provider reports them.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Provider defines the abstract interface for LLM providers. Implementations
// hide provider-specific details while exposing a consistent interface for
// one-shot generation.
type Provider interface {
	// Name returns the provider name (for logging/debugging).
	Name() string

	// Model returns the model the provider is bound to.
	Model() string

	// Generate issues exactly one generation request. Implementations must
	// observe ctx cancellation.
	Generate(ctx context.Context, req Request) (Response, error)
}
