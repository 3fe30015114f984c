package plugin

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/pixlcore/xyplug-ai/config"
)

const defaultTimeoutMs = 60000

// requestParams is the normalized view of the job's params object. Derived
// once per invocation, never mutated.
type requestParams struct {
	Prompt       string
	Provider     string
	Model        string
	BaseURL      string
	SystemPrompt string
	Temperature  *float64
	TopP         *float64
	MaxTokens    *int
	Stop         []string
	ExpectJSON   bool
	TimeoutMs    int
}

// normalizeParams extracts and type-coerces the request parameters from the
// raw job document.
func normalizeParams(doc string) (requestParams, error) {
	params := gjson.Get(doc, "params")

	prompt := params.Get("prompt").String()
	if strings.TrimSpace(prompt) == "" {
		return requestParams{}, failf(ErrParams, "prompt is required")
	}

	model := strings.TrimSpace(params.Get("model").String())
	if model == "" {
		return requestParams{}, failf(ErrParams, "model is required")
	}

	rp := requestParams{
		Prompt:       prompt,
		BaseURL:      strings.TrimSpace(params.Get("base_url").String()),
		SystemPrompt: params.Get("system_prompt").String(),
		Temperature:  floatParam(params.Get("temperature")),
		TopP:         floatParam(params.Get("top_p")),
		MaxTokens:    intParam(params.Get("max_tokens")),
		Stop:         stopSequences(params.Get("stop_sequences")),
		ExpectJSON:   expectJSON(params.Get("expect_json")),
		TimeoutMs:    defaultTimeoutMs,
	}
	if t := intParam(params.Get("timeout_ms")); t != nil && *t > 0 {
		rp.TimeoutMs = *t
	}

	if rp.BaseURL != "" {
		// A base URL always targets the generic OpenAI-compatible provider,
		// whatever prefix the model string carries.
		rp.Provider = config.ProviderLocal
		rp.Model = stripLocalPrefix(model)
		return rp, nil
	}

	provider, modelName, found := strings.Cut(model, "/")
	if !found {
		return requestParams{}, failf(ErrParams,
			"model must be of the form provider/model, got %q", model)
	}
	rp.Provider = strings.ToLower(provider)
	rp.Model = modelName
	return rp, nil
}

// stripLocalPrefix removes a redundant "local/" prefix from the model name,
// exactly once, case-insensitively.
func stripLocalPrefix(model string) string {
	const prefix = "local/"
	if len(model) >= len(prefix) && strings.EqualFold(model[:len(prefix)], prefix) {
		return model[len(prefix):]
	}
	return model
}

// floatParam coerces an optional numeric parameter. Absent values, empty
// strings and non-finite numbers yield nil ("unset").
func floatParam(result gjson.Result) *float64 {
	f, ok := finiteNumber(result)
	if !ok {
		return nil
	}
	return &f
}

func intParam(result gjson.Result) *int {
	f, ok := finiteNumber(result)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}

func finiteNumber(result gjson.Result) (float64, bool) {
	var f float64
	switch result.Type {
	case gjson.Number:
		f = result.Float()
	case gjson.String:
		s := strings.TrimSpace(result.Str)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// stopSequences accepts either an array of values or a single string split
// on newlines or commas. Blank entries are dropped; a fully empty result is
// nil so downstream can distinguish "unset" from "explicit empty".
func stopSequences(result gjson.Result) []string {
	var raw []string
	switch {
	case result.IsArray():
		raw = lo.Map(result.Array(), func(r gjson.Result, _ int) string {
			return r.String()
		})
	case result.Type == gjson.String:
		raw = strings.FieldsFunc(result.Str, func(r rune) bool {
			return r == '\n' || r == ','
		})
	default:
		return nil
	}

	stops := lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
	if len(stops) == 0 {
		return nil
	}
	return stops
}

// expectJSON is satisfied only by boolean true or the exact string "true"
// (case-insensitive). Other truthy-looking values such as 1 do not count.
func expectJSON(result gjson.Result) bool {
	switch result.Type {
	case gjson.True:
		return true
	case gjson.String:
		return strings.EqualFold(result.Str, "true")
	}
	return false
}
