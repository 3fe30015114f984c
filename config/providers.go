// Package config holds the provider credential table and API key resolution.
//
// The table is the single place a provider's environment variable and key
// requirements live; adding a provider means adding one row here and one
// factory entry in the llm package.
package config

import (
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// GenericKeyEnv is the cross-provider fallback API key variable, consulted
// when the provider-specific variable is unset.
const GenericKeyEnv = "AI_API_KEY"

// ProviderLocal is the generic OpenAI-compatible provider, selected whenever
// the job supplies a base URL. Local endpoints may be keyless.
const ProviderLocal = "local"

// Info describes a provider's credential requirements.
type Info struct {
	Name        string
	APIKeyEnv   string
	RequiresKey bool
}

// providerInfo holds per-provider credential configuration.
type providerInfo struct {
	apiKeyEnv   string
	requiresKey bool
}

// Supported providers and their credential configuration.
var providers = map[string]providerInfo{
	"openai":      {apiKeyEnv: "OPENAI_API_KEY", requiresKey: true},
	"anthropic":   {apiKeyEnv: "ANTHROPIC_API_KEY", requiresKey: true},
	"gemini":      {apiKeyEnv: "GEMINI_API_KEY", requiresKey: true},
	"deepseek":    {apiKeyEnv: "DEEPSEEK_API_KEY", requiresKey: true},
	ProviderLocal: {},
}

// Provider aliases map to canonical names.
var providerAliases = map[string]string{
	"claude": "anthropic",
	"google": "gemini",
	"gpt":    "openai",
}

// Lookup resolves a provider name (aliases and any letter case accepted) to
// its credential info. The second return value is false for unknown names.
func Lookup(provider string) (Info, bool) {
	name := normalizeProvider(provider)

	info, ok := providers[name]
	if !ok {
		return Info{}, false
	}
	return Info{Name: name, APIKeyEnv: info.apiKeyEnv, RequiresKey: info.requiresKey}, true
}

// APIKey resolves the key for this provider: the provider-specific variable
// first, then GenericKeyEnv, then the empty string.
func (i Info) APIKey() string {
	if i.APIKeyEnv != "" {
		if key := os.Getenv(i.APIKeyEnv); key != "" {
			return key
		}
	}
	return os.Getenv(GenericKeyEnv)
}

// SupportedProviders returns all canonical provider names, sorted.
func SupportedProviders() []string {
	names := lo.Keys(providers)
	sort.Strings(names)
	return names
}

// normalizeProvider converts provider aliases to canonical names.
func normalizeProvider(provider string) string {
	provider = strings.ToLower(provider)
	if canonical, ok := providerAliases[provider]; ok {
		return canonical
	}
	return provider
}
