package plugin

import (
	"context"
	"strings"

	"github.com/pixlcore/xyplug-ai/config"
	"github.com/pixlcore/xyplug-ai/llm"
)

// providerFactory matches llm.New; tests substitute stubs.
type providerFactory = func(ctx context.Context, name string, opts llm.Options) (llm.Provider, error)

// resolveProvider validates the provider selection, resolves the credential,
// and constructs the client through the given factory.
func resolveProvider(ctx context.Context, rp requestParams, newProvider providerFactory) (llm.Provider, error) {
	info, ok := config.Lookup(rp.Provider)
	if !ok {
		return nil, failf(ErrParams, "unknown provider %q (supported: %s)",
			rp.Provider, strings.Join(config.SupportedProviders(), ", "))
	}

	if info.Name == config.ProviderLocal && rp.BaseURL == "" {
		return nil, failf(ErrParams, "base_url is required for provider 'local'")
	}

	key := info.APIKey()
	if key == "" && rp.BaseURL == "" && info.RequiresKey {
		return nil, failf(ErrEnv, "no API key found for provider %q: set %s or %s",
			info.Name, info.APIKeyEnv, config.GenericKeyEnv)
	}

	// Construction failures fall through to the catch-all kind.
	return newProvider(ctx, info.Name, llm.Options{
		APIKey:  key,
		BaseURL: rp.BaseURL,
		Model:   rp.Model,
	})
}
