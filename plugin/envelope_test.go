package plugin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeSuccessShape(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeEnvelope(&out, successEnvelope(map[string]any{"a": 1})))

	assert.Equal(t, `{"xy":1,"code":0,"data":{"a":1}}`+"\n", out.String())
}

func TestEnvelopeSuccessTextShape(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeEnvelope(&out, successEnvelope(textPayload{Text: "hello"})))

	assert.Equal(t, `{"xy":1,"code":0,"data":{"text":"hello"}}`+"\n", out.String())
}

func TestEnvelopeFailureShape(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeEnvelope(&out, failureEnvelope(failf(ErrEnv, "no key"))))

	assert.Equal(t, `{"xy":1,"code":"env","description":"no key"}`+"\n", out.String())
}

func TestKindOfUnmarkedErrorIsCatchAll(t *testing.T) {
	assert.Equal(t, "error", kindOf(assert.AnError))
}
