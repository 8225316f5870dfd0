package sonarr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	monitored := map[string]bool{
		"severance": true,
		"dark":      false,
	}

	t.Run("monitored show", func(t *testing.T) {
		got := Lookup(monitored, "Severance")
		require.NotNil(t, got)
		assert.True(t, *got)
	})

	t.Run("unmonitored show", func(t *testing.T) {
		got := Lookup(monitored, "DARK")
		require.NotNil(t, got)
		assert.False(t, *got)
	})

	t.Run("unknown show", func(t *testing.T) {
		assert.Nil(t, Lookup(monitored, "The Wire"))
	})

	t.Run("nil map", func(t *testing.T) {
		assert.Nil(t, Lookup(nil, "Severance"))
	})
}
