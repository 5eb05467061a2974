package node

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	v, err := ParsePayload(`{"name":"ACME","tags":["a"]}`, "Various Address Data")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "ACME", "tags": []any{"a"}}, v)

	v, err = ParsePayload(`[1,2]`, "Batch Data")
	require.NoError(t, err)
	assert.Equal(t, []any{json.Number("1"), json.Number("2")}, v)
}

func TestParsePayload_PassesThroughNonStrings(t *testing.T) {
	pre := map[string]any{"amount": 10}
	v, err := ParsePayload(pre, "Internal Cost Service Data")
	require.NoError(t, err)
	assert.Equal(t, pre, v)

	v, err = ParsePayload(nil, "Batch Data")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestParsePayload_InvalidJSON(t *testing.T) {
	for _, raw := range []string{"{not json", ""} {
		_, err := ParsePayload(raw, "Batch Data")
		require.Error(t, err)
		assert.True(t, IsFailureKind(err, InvalidJSON))
		assert.Contains(t, err.Error(), "Batch Data")
	}
}

func TestRequireObject(t *testing.T) {
	m, err := RequireObject(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, m)

	for _, v := range []any{nil, []any{}, "text", float64(3)} {
		_, err := RequireObject(v)
		require.Error(t, err)
		assert.True(t, IsFailureKind(err, InvalidPayloadShape))
	}
}

func TestPayloadLabel(t *testing.T) {
	assert.Equal(t, "Batch Data", payloadLabel("batchData"))
	assert.Equal(t, "Internal Cost Service Data", payloadLabel("internalCostServiceData"))
}
