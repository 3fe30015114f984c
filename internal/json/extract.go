// Package json provides JSON extraction utilities for parsing LLM responses.
//
// Models asked for structured output frequently wrap it in markdown fences
// or surround it with commentary. Extraction is best effort: it picks a
// candidate region, attempts a parse, and keeps the candidate around even
// when the parse fails so that callers can distinguish "invalid JSON" from
// "no JSON at all".
package json

import (
	"encoding/json"
	"strings"
)

// Extraction is the outcome of scanning a model response for JSON.
type Extraction struct {
	// Value is the parsed JSON value when Parsed is true.
	Value any
	// Candidate is the trimmed region that looked like JSON, whether or not
	// it parsed. Empty when no candidate was found.
	Candidate string
	// Parsed reports whether Candidate parsed successfully.
	Parsed bool
}

// Extract scans a model response for an embedded JSON document.
//
// The candidate region is the inner content of the first triple-backtick
// fenced block (an optional "json" language tag is ignored), or the whole
// trimmed response when no fence is present. A candidate is only parsed when
// its outer characters form a matching {...} or [...] pair; anything else is
// treated as "no JSON found" without a parse attempt.
func Extract(text string) Extraction {
	candidate := strings.TrimSpace(text)
	if inner, ok := firstFencedBlock(candidate); ok {
		candidate = inner
	}

	if !looksLikeJSON(candidate) {
		return Extraction{}
	}

	var value any
	if err := json.Unmarshal([]byte(candidate), &value); err != nil {
		return Extraction{Candidate: candidate}
	}
	return Extraction{Value: value, Candidate: candidate, Parsed: true}
}

// firstFencedBlock returns the trimmed inner content of the first complete
// ``` ... ``` block. An unterminated fence does not count as a block.
func firstFencedBlock(s string) (string, bool) {
	start := strings.Index(s, "```")
	if start < 0 {
		return "", false
	}

	rest := s[start+3:]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}

	inner := rest[:end]
	if len(inner) >= 4 && strings.EqualFold(inner[:4], "json") {
		inner = inner[4:]
	}
	return strings.TrimSpace(inner), true
}

// looksLikeJSON reports whether the outer characters form a matching object
// or array pair.
func looksLikeJSON(s string) bool {
	if len(s) < 2 {
		return false
	}
	switch s[0] {
	case '{':
		return s[len(s)-1] == '}'
	case '[':
		return s[len(s)-1] == ']'
	}
	return false
}
