package resume

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with surrounding space", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"plain text untouched", "not json at all", "not json at all"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFence(tc.in))
		})
	}
}

func TestDecodeModelJSON(t *testing.T) {
	fenced := "```json\n{\"personalInfo\":{\"firstName\":\"John\"}}\n```"
	bare := `{"personalInfo":{"firstName":"John"}}`

	gotFenced, ok := DecodeModelJSON(fenced)
	require.True(t, ok)
	gotBare, ok := DecodeModelJSON(bare)
	require.True(t, ok)

	// Fenced and fence-free replies must parse to the same document.
	var a, b map[string]any
	require.NoError(t, json.Unmarshal([]byte(gotFenced), &a))
	require.NoError(t, json.Unmarshal([]byte(gotBare), &b))
	assert.Equal(t, b, a)

	// Non-JSON replies pass through unchanged with ok=false.
	raw, ok := DecodeModelJSON("the model rambled instead")
	assert.False(t, ok)
	assert.Equal(t, "the model rambled instead", raw)
}
