package protover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The numeric encoding crosses process boundaries and must never change.
func TestProtocolWireEncodingIsStable(t *testing.T) {
	wire := map[uint32]Protocol{
		0: Link,
		1: LinkAuth,
		2: Relay,
		3: DirCache,
		4: HSDir,
		5: HSIntro,
		6: HSRend,
		7: Desc,
		8: Microdesc,
		9: Cons,
	}

	for id, want := range wire {
		got, err := ProtocolByID(id)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, id, want.ID())
	}
}

func TestProtocolByIDUnknown(t *testing.T) {
	for _, id := range []uint32{10, 100, ^uint32(0)} {
		_, err := ProtocolByID(id)
		require.ErrorIs(t, err, ErrUnknownProtocolID)
	}
}

func TestProtocolByName(t *testing.T) {
	p, ok := ProtocolByName("Relay")
	require.True(t, ok)
	require.Equal(t, Relay, p)

	// Exact match only: unknown or differently-cased names never coerce.
	for _, name := range []string{"relay", "RELAY", "Rela", "Quorum", ""} {
		_, ok := ProtocolByName(name)
		require.False(t, ok, "%q must not resolve", name)
	}
}

func TestProtocolString(t *testing.T) {
	require.Equal(t, "Microdesc", Microdesc.String())
	require.Equal(t, "Protocol(42)", Protocol(42).String())

	for p := Protocol(0); p < numProtocols; p++ {
		roundTrip, ok := ProtocolByName(p.String())
		require.True(t, ok)
		require.Equal(t, p, roundTrip)
	}
}
