package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/taxclarity/backend/src/logger"
)

func TestSendJSONError(t *testing.T) {
	logger.InitLogger("error")

	rec := httptest.NewRecorder()
	SendJSONError(rec, "something went wrong", 422)

	assert.Equal(t, 422, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "something went wrong", body["error"])
}

func TestGenerateETag(t *testing.T) {
	type payload struct {
		A string `json:"a"`
		B int    `json:"b"`
	}

	first, err := GenerateETag(payload{A: "x", B: 1})
	require.NoError(t, err)
	second, err := GenerateETag(payload{A: "x", B: 1})
	require.NoError(t, err)
	changed, err := GenerateETag(payload{A: "x", B: 2})
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical payloads must hash identically")
	assert.NotEqual(t, first, changed)

	// Strong ETag format: a quoted hex digest.
	assert.Regexp(t, `^"[0-9a-f]{64}"$`, first)

	_, err = GenerateETag(func() {})
	assert.Error(t, err, "unmarshalable values must surface the error")
}
