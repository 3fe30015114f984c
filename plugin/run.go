// Package plugin implements the stdin-to-stdout job pipeline: read one JSON
// job, issue one bounded generation request, write one result envelope.
//
// Control flows strictly top to bottom. Any stage failure short-circuits to
// the envelope writer; there are no retries anywhere.
package plugin

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	jsonutil "github.com/pixlcore/xyplug-ai/internal/json"
	"github.com/pixlcore/xyplug-ai/llm"
)

// Options configures a single pipeline run. Verbosity lives here, as an
// explicit value, rather than in any process-wide flag.
type Options struct {
	// Logger receives diagnostics on stderr. Nil discards them; stdout is
	// reserved for the envelope either way.
	Logger *slog.Logger

	// NewProvider constructs the provider for a resolved selection. Nil uses
	// the registry in the llm package; tests substitute stubs.
	NewProvider providerFactory
}

// Run executes one job read from stdin and writes exactly one envelope to
// stdout. Job failures are reported inside the envelope; the returned error
// covers envelope I/O only.
func Run(ctx context.Context, stdin io.Reader, stdout io.Writer, opts Options) error {
	return writeEnvelope(stdout, run(ctx, stdin, opts))
}

func run(ctx context.Context, stdin io.Reader, opts Options) Envelope {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	newProvider := opts.NewProvider
	if newProvider == nil {
		newProvider = llm.New
	}
	runID := uuid.NewString()

	doc, err := readJob(stdin)
	if err != nil {
		return failureEnvelope(err)
	}

	rp, err := normalizeParams(doc)
	if err != nil {
		return failureEnvelope(err)
	}
	logger.Debug("job accepted",
		"run_id", runID,
		"provider", rp.Provider,
		"model", rp.Model,
		"timeout_ms", rp.TimeoutMs)

	provider, err := resolveProvider(ctx, rp, newProvider)
	if err != nil {
		return failureEnvelope(err)
	}

	response, err := execute(ctx, provider, rp)
	if err != nil {
		logger.Warn("generation failed",
			"run_id", runID,
			"provider", provider.Name(),
			"error", err)
		return failureEnvelope(err)
	}
	if response.Usage != nil {
		logger.Debug("generation complete",
			"run_id", runID,
			"total_tokens", response.Usage.TotalTokens)
	}

	data, err := interpret(response.Text, rp.ExpectJSON)
	if err != nil {
		return failureEnvelope(err)
	}
	return successEnvelope(data)
}

// execute issues the single generation request under the job's wall-clock
// timeout. The deferred cancel releases the timer on every path.
func execute(ctx context.Context, provider llm.Provider, rp requestParams) (llm.Response, error) {
	timeout := time.Duration(rp.TimeoutMs) * time.Millisecond
	ctx, cancel := context.WithTimeoutCause(ctx, timeout,
		errors.Newf("request timed out after %d ms", rp.TimeoutMs))
	defer cancel()

	response, err := provider.Generate(ctx, llm.Request{
		Prompt:      rp.Prompt,
		System:      rp.SystemPrompt,
		Temperature: rp.Temperature,
		TopP:        rp.TopP,
		MaxTokens:   rp.MaxTokens,
		Stop:        rp.Stop,
	})
	if err != nil {
		// Surface the timeout cause instead of the SDK's wrapping of the
		// context error.
		if ctx.Err() != nil {
			if cause := context.Cause(ctx); cause != nil {
				err = cause
			}
		}
		return llm.Response{}, err
	}
	return response, nil
}

// interpret decides between structured data and plain text, honoring the
// caller's expect_json flag.
func interpret(text string, expectJSON bool) (any, error) {
	extraction := jsonutil.Extract(text)
	if extraction.Parsed {
		return extraction.Value, nil
	}

	if expectJSON {
		if extraction.Candidate != "" {
			return nil, failf(ErrJSON, "Invalid JSON returned in model response")
		}
		return nil, failf(ErrJSON, "No JSON returned in model response")
	}
	return textPayload{Text: text}, nil
}
