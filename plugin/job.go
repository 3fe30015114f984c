package plugin

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// readJob consumes the whole input stream and validates it as a JSON
// document. The raw document is returned for field access by the normalizer.
func readJob(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fail(ErrInput, errors.Wrap(err, "failed to read input"))
	}

	doc := strings.TrimSpace(string(raw))
	if doc == "" {
		return "", failf(ErrInput, "No JSON input received")
	}

	var parsed any
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		return "", fail(ErrInput, errors.Wrap(err, "invalid JSON input"))
	}
	return doc, nil
}
