package plugin

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
)

// Envelope is the single JSON object written to stdout for every invocation.
// Success carries code 0 and a data payload; failure carries the error kind
// as a string code plus a description. The process exits 0 either way: the
// host inspects the envelope, not the exit status.
type Envelope struct {
	XY          int    `json:"xy"`
	Code        any    `json:"code"`
	Data        any    `json:"data,omitempty"`
	Description string `json:"description,omitempty"`
}

// textPayload wraps a plain-text model response when no JSON was extracted.
type textPayload struct {
	Text string `json:"text"`
}

func successEnvelope(data any) Envelope {
	return Envelope{XY: 1, Code: 0, Data: data}
}

func failureEnvelope(err error) Envelope {
	return Envelope{XY: 1, Code: kindOf(err), Description: err.Error()}
}

// WriteFailure writes a single catch-all failure envelope for err. It covers
// failures outside the pipeline itself, such as flag parsing, so that every
// invocation still produces exactly one envelope.
func WriteFailure(w io.Writer, err error) error {
	return writeEnvelope(w, failureEnvelope(err))
}

// writeEnvelope serializes exactly one envelope as a single line.
func writeEnvelope(w io.Writer, env Envelope) error {
	line, err := json.Marshal(env)
	if err != nil {
		return errors.Wrap(err, "failed to marshal envelope")
	}

	line = append(line, '\n')
	if _, err := w.Write(line); err != nil {
		return errors.Wrap(err, "failed to write envelope")
	}
	return nil
}
