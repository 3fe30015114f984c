// DeepSeek Provider implementation using go-openai library.
//
// Information Hiding:
// - Uses OpenAI-compatible API with different base URL

package llm

import (
	"context"

	"github.com/cockroachdb/errors"
	openai "github.com/sashabaranov/go-openai"
)

const deepseekBaseURL = "https://api.deepseek.com/v1"

// DeepSeekProvider implements the Provider interface for DeepSeek.
type DeepSeekProvider struct {
	client *openai.Client
	model  string
}

// NewDeepSeekProvider creates a new DeepSeek provider.
func NewDeepSeekProvider(apiKey, model string) *DeepSeekProvider {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = deepseekBaseURL

	return &DeepSeekProvider{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Name returns the provider name.
func (p *DeepSeekProvider) Name() string {
	return "deepseek"
}

// Model returns the current model.
func (p *DeepSeekProvider) Model() string {
	return p.model
}

// Generate sends a single chat completion request.
func (p *DeepSeekProvider) Generate(ctx context.Context, req Request) (Response, error) {
	resp, err := p.client.CreateChatCompletion(ctx, chatCompletionRequest(p.model, req))
	if err != nil {
		return Response{}, errors.Wrap(err, "chat completion failed")
	}
	return chatCompletionResponse(resp), nil
}

// Verify DeepSeekProvider implements Provider
var _ Provider = (*DeepSeekProvider)(nil)
