// Local Provider implementation using go-openai library.
//
// Information Hiding:
// - Works against any OpenAI-compatible endpoint at a caller-supplied base
//   URL (Ollama, LM Studio, vLLM and the like)
// - API key is optional; local endpoints are commonly unauthenticated

package llm

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	openai "github.com/sashabaranov/go-openai"
)

// LocalProvider implements the Provider interface for generic
// OpenAI-compatible endpoints.
type LocalProvider struct {
	client *openai.Client
	model  string
}

// NewLocalProvider creates a provider for the OpenAI-compatible endpoint at
// baseURL. The URL should include the API prefix, e.g.
// "http://localhost:11434/v1". An empty apiKey is accepted.
func NewLocalProvider(apiKey, baseURL, model string) *LocalProvider {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = strings.TrimRight(baseURL, "/")

	return &LocalProvider{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "local"
}

// Model returns the current model.
func (p *LocalProvider) Model() string {
	return p.model
}

// Generate sends a single chat completion request.
func (p *LocalProvider) Generate(ctx context.Context, req Request) (Response, error) {
	resp, err := p.client.CreateChatCompletion(ctx, chatCompletionRequest(p.model, req))
	if err != nil {
		return Response{}, errors.Wrap(err, "chat completion failed")
	}
	return chatCompletionResponse(resp), nil
}

// Verify LocalProvider implements Provider
var _ Provider = (*LocalProvider)(nil)
