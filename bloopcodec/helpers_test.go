package bloopcodec_test

import (
	"bytes"
	"encoding/json/jsontext"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikeschinkel/bloopcfg/bloopcodec"
)

func encodeString[T any](t *testing.T, c bloopcodec.Codec[T], v T) string {
	t.Helper()
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	require.NoError(t, c.Encode(enc, v))
	return strings.TrimSpace(buf.String())
}

func decodeString[T any](c bloopcodec.Codec[T], s string) (T, error) {
	dec := jsontext.NewDecoder(strings.NewReader(s))
	return c.Decode(dec)
}

func ptr[T any](v T) *T {
	return &v
}

func newDiscardEncoder() *jsontext.Encoder {
	return jsontext.NewEncoder(&bytes.Buffer{})
}
