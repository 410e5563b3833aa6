package swiftresolv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadUnloadIdempotent(t *testing.T) {
	require.NoError(t, Load())
	require.True(t, Loaded())

	// A second load is a no-op.
	require.NoError(t, Load())
	require.True(t, Loaded())

	Unload()
	require.False(t, Loaded())

	// Extra unloads stay silent.
	Unload()
	require.False(t, Loaded())

	// The module can be reattached.
	require.NoError(t, Load())
	Unload()
}

func TestUnloadWithoutLoad(t *testing.T) {
	require.NotPanics(t, Unload)
	require.False(t, Loaded())
}
