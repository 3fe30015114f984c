package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNormalize(t *testing.T, doc string) requestParams {
	t.Helper()
	rp, err := normalizeParams(doc)
	require.NoError(t, err)
	return rp
}

func TestNormalizeMinimal(t *testing.T) {
	rp := mustNormalize(t, `{"params":{"model":"openai/gpt-4o","prompt":"hi"}}`)

	assert.Equal(t, "openai", rp.Provider)
	assert.Equal(t, "gpt-4o", rp.Model)
	assert.Equal(t, "hi", rp.Prompt)
	assert.Equal(t, defaultTimeoutMs, rp.TimeoutMs)
	assert.Nil(t, rp.Temperature)
	assert.Nil(t, rp.TopP)
	assert.Nil(t, rp.MaxTokens)
	assert.Nil(t, rp.Stop)
	assert.False(t, rp.ExpectJSON)
}

func TestNormalizeMissingPrompt(t *testing.T) {
	_, err := normalizeParams(`{"params":{"model":"openai/gpt-4o"}}`)
	require.Error(t, err)
	assert.Equal(t, "params", kindOf(err))
}

func TestNormalizeBlankPrompt(t *testing.T) {
	_, err := normalizeParams(`{"params":{"model":"openai/gpt-4o","prompt":"  \n\t "}}`)
	require.Error(t, err)
	assert.Equal(t, "params", kindOf(err))
}

func TestNormalizeMissingModel(t *testing.T) {
	_, err := normalizeParams(`{"params":{"prompt":"hi"}}`)
	require.Error(t, err)
	assert.Equal(t, "params", kindOf(err))
}

func TestNormalizeModelWithoutSlash(t *testing.T) {
	_, err := normalizeParams(`{"params":{"model":"gpt-4o","prompt":"hi"}}`)
	require.Error(t, err)
	assert.Equal(t, "params", kindOf(err))
}

func TestNormalizeProviderLowercased(t *testing.T) {
	rp := mustNormalize(t, `{"params":{"model":"OpenAI/gpt-4o","prompt":"hi"}}`)
	assert.Equal(t, "openai", rp.Provider)
}

func TestNormalizeModelKeepsEmbeddedSlashes(t *testing.T) {
	rp := mustNormalize(t, `{"params":{"model":"local/meta/llama-3","prompt":"hi","base_url":"http://localhost:11434/v1"}}`)
	assert.Equal(t, "local", rp.Provider)
	assert.Equal(t, "meta/llama-3", rp.Model)
}

func TestNormalizeBaseURLForcesLocal(t *testing.T) {
	rp := mustNormalize(t, `{"params":{"model":"openai/gpt-4o","prompt":"hi","base_url":"http://localhost:8080/v1"}}`)
	assert.Equal(t, "local", rp.Provider)
	// No local/ prefix on the model string, so it is used verbatim.
	assert.Equal(t, "openai/gpt-4o", rp.Model)
	assert.Equal(t, "http://localhost:8080/v1", rp.BaseURL)
}

func TestNormalizeLocalPrefixStrippedOnce(t *testing.T) {
	rp := mustNormalize(t, `{"params":{"model":"Local/local/foo","prompt":"hi","base_url":"http://localhost:8080/v1"}}`)
	assert.Equal(t, "local/foo", rp.Model)
}

func TestNormalizeModelWithoutSlashAllowedWithBaseURL(t *testing.T) {
	rp := mustNormalize(t, `{"params":{"model":"llama3","prompt":"hi","base_url":"http://localhost:11434/v1"}}`)
	assert.Equal(t, "local", rp.Provider)
	assert.Equal(t, "llama3", rp.Model)
}

func TestNormalizeSamplingParams(t *testing.T) {
	rp := mustNormalize(t, `{"params":{"model":"openai/gpt-4o","prompt":"hi",
		"temperature":0.5,"top_p":0.9,"max_tokens":256,"timeout_ms":1000,
		"system_prompt":"be terse"}}`)

	require.NotNil(t, rp.Temperature)
	assert.Equal(t, 0.5, *rp.Temperature)
	require.NotNil(t, rp.TopP)
	assert.Equal(t, 0.9, *rp.TopP)
	require.NotNil(t, rp.MaxTokens)
	assert.Equal(t, 256, *rp.MaxTokens)
	assert.Equal(t, 1000, rp.TimeoutMs)
	assert.Equal(t, "be terse", rp.SystemPrompt)
}

func TestNormalizeNumericStrings(t *testing.T) {
	rp := mustNormalize(t, `{"params":{"model":"openai/gpt-4o","prompt":"hi","temperature":"0.3","max_tokens":"128"}}`)

	require.NotNil(t, rp.Temperature)
	assert.Equal(t, 0.3, *rp.Temperature)
	require.NotNil(t, rp.MaxTokens)
	assert.Equal(t, 128, *rp.MaxTokens)
}

func TestNormalizeUnparsableNumbersUnset(t *testing.T) {
	rp := mustNormalize(t, `{"params":{"model":"openai/gpt-4o","prompt":"hi","temperature":"warm","top_p":"","max_tokens":null}}`)

	assert.Nil(t, rp.Temperature)
	assert.Nil(t, rp.TopP)
	assert.Nil(t, rp.MaxTokens)
}

func TestNormalizeStopSequencesString(t *testing.T) {
	rp := mustNormalize(t, `{"params":{"model":"openai/gpt-4o","prompt":"hi","stop_sequences":"a, b\nc"}}`)
	assert.Equal(t, []string{"a", "b", "c"}, rp.Stop)
}

func TestNormalizeStopSequencesArray(t *testing.T) {
	rp := mustNormalize(t, `{"params":{"model":"openai/gpt-4o","prompt":"hi","stop_sequences":["END", "", 7]}}`)
	assert.Equal(t, []string{"END", "7"}, rp.Stop)
}

func TestNormalizeStopSequencesEmptyMeansUnset(t *testing.T) {
	for _, doc := range []string{
		`{"params":{"model":"openai/gpt-4o","prompt":"hi"}}`,
		`{"params":{"model":"openai/gpt-4o","prompt":"hi","stop_sequences":""}}`,
		`{"params":{"model":"openai/gpt-4o","prompt":"hi","stop_sequences":[]}}`,
		`{"params":{"model":"openai/gpt-4o","prompt":"hi","stop_sequences":[" ", ""]}}`,
		`{"params":{"model":"openai/gpt-4o","prompt":"hi","stop_sequences":", ,\n"}}`,
	} {
		rp := mustNormalize(t, doc)
		assert.Nil(t, rp.Stop, "doc: %s", doc)
	}
}

func TestNormalizeExpectJSON(t *testing.T) {
	truthy := []string{`true`, `"true"`, `"TRUE"`, `"True"`}
	for _, v := range truthy {
		rp := mustNormalize(t, `{"params":{"model":"openai/gpt-4o","prompt":"hi","expect_json":`+v+`}}`)
		assert.True(t, rp.ExpectJSON, "value: %s", v)
	}

	falsy := []string{`false`, `1`, `"1"`, `"yes"`, `"truthy"`, `null`}
	for _, v := range falsy {
		rp := mustNormalize(t, `{"params":{"model":"openai/gpt-4o","prompt":"hi","expect_json":`+v+`}}`)
		assert.False(t, rp.ExpectJSON, "value: %s", v)
	}
}

func TestNormalizeNonPositiveTimeoutUsesDefault(t *testing.T) {
	rp := mustNormalize(t, `{"params":{"model":"openai/gpt-4o","prompt":"hi","timeout_ms":0}}`)
	assert.Equal(t, defaultTimeoutMs, rp.TimeoutMs)

	rp = mustNormalize(t, `{"params":{"model":"openai/gpt-4o","prompt":"hi","timeout_ms":-5}}`)
	assert.Equal(t, defaultTimeoutMs, rp.TimeoutMs)
}
