package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUnmarshalDistinguishesMissingFromNull(t *testing.T) {
	type payload struct {
		Summary Optional[*string] `json:"summary"`
	}

	t.Run("missing key stays unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Summary.IsSet())
	})

	t.Run("explicit null is set to nil", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"summary": null}`), &p))
		got, ok := p.Summary.Get()
		assert.True(t, ok)
		assert.Nil(t, got)
	})

	t.Run("value is set", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"summary": "hello"}`), &p))
		got, ok := p.Summary.Get()
		require.True(t, ok)
		require.NotNil(t, got)
		assert.Equal(t, "hello", *got)
	})
}

func TestOptionalGetZeroValueWhenUnset(t *testing.T) {
	var o Optional[int]
	v, ok := o.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
}
