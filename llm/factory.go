package llm

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Options configures provider construction. Model is the bare model name,
// already stripped of any provider prefix.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Factory constructs a provider bound to the given options.
type Factory func(ctx context.Context, opts Options) (Provider, error)

// factories maps canonical provider names to constructors. Adding a provider
// means adding one entry here and one row to the config table.
var factories = map[string]Factory{
	"openai": func(_ context.Context, opts Options) (Provider, error) {
		return NewOpenAIProvider(opts.APIKey, opts.Model), nil
	},
	"anthropic": func(_ context.Context, opts Options) (Provider, error) {
		return NewAnthropicProvider(opts.APIKey, opts.Model), nil
	},
	"gemini": func(ctx context.Context, opts Options) (Provider, error) {
		return NewGeminiProvider(ctx, opts.APIKey, opts.Model)
	},
	"deepseek": func(_ context.Context, opts Options) (Provider, error) {
		return NewDeepSeekProvider(opts.APIKey, opts.Model), nil
	},
	"local": func(_ context.Context, opts Options) (Provider, error) {
		return NewLocalProvider(opts.APIKey, opts.BaseURL, opts.Model), nil
	},
}

// New constructs the provider registered under name.
func New(ctx context.Context, name string, opts Options) (Provider, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, errors.Newf("no factory registered for provider %q", name)
	}
	return factory(ctx, opts)
}
