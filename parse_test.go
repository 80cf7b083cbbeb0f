package protover

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEntryValid(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		canonical string
	}{
		{"single version", "Relay=1", "Relay=1"},
		{"single range", "Relay=1-3", "Relay=1-3"},
		{"multiple protocols", "Link=1-4,Relay=1-2", "Link=1-4,Relay=1-2"},
		{"ranges and singletons", "Link=1,3-5", "Link=1,3-5"},
		{"out of order ranges sorted", "Link=5,1-2", "Link=1-2,5"},
		{"touching ranges coalesced", "Relay=1-2,3-4", "Relay=1-4"},
		{"singleton runs coalesced", "Relay=1,2,3", "Relay=1-3"},
		{"protocol order canonicalized", "Relay=1,Cons=1,Link=2", "Cons=1,Link=2,Relay=1"},
		{"unknown name preserved", "Quorum=7,Relay=1", "Quorum=7,Relay=1"},
		{"zero version", "Relay=0", "Relay=0"},
		{"max version", "Relay=63", "Relay=63"},
		{"empty list", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ParseEntry(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.canonical, e.String())
		})
	}
}

func TestParseEntryRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
	}{
		{"missing separator", "Relay 1", ErrMalformedEntry},
		{"bare name", "Relay=", ErrMalformedEntry},
		{"range before name", "1-2,Relay=1", ErrMalformedEntry},
		{"empty name", "=1-2", ErrMalformedEntry},
		{"bad name alphabet", "Re lay=1", ErrMalformedEntry},
		{"non-numeric version", "Relay=x", ErrMalformedEntry},
		{"negative version", "Relay=-1", ErrMalformedEntry},
		{"open-ended range", "Relay=1-", ErrMalformedEntry},
		{"empty range item", "Relay=1,,2", ErrMalformedEntry},
		{"inverted range", "Relay=3-1", ErrInvalidRange},
		{"version above max", "Relay=64", ErrExceedsMax},
		{"range end above max", "Relay=1-100", ErrExceedsMax},
		{"huge version", "Relay=4294967296", ErrExceedsMax},
		{"duplicate protocol", "Relay=1,Relay=5", ErrDuplicateProtocol},
		{"duplicate with overlap", "Relay=1-3,Relay=2-4", ErrOverlappingRanges},
		{"overlap within entry", "Relay=1-3,2-4", ErrOverlappingRanges},
		{"exact duplicate range", "Relay=1,1", ErrOverlappingRanges},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ParseEntry(tt.input)
			require.Nil(t, e)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestParseEntryRejectsOversizedInput(t *testing.T) {
	list := "Relay=" + strings.Repeat("1,", MaxListLength)
	_, err := ParseEntry(list)
	require.ErrorIs(t, err, ErrListTooLong)
}

func TestParseEntryCoalescingEquivalence(t *testing.T) {
	a, err := ParseEntry("Relay=1,2,3")
	require.NoError(t, err)
	b, err := ParseEntry("Relay=1-3")
	require.NoError(t, err)
	require.Equal(t, b.String(), a.String())

	setA, ok := a.VersionSet("Relay")
	require.True(t, ok)
	setB, ok := b.VersionSet("Relay")
	require.True(t, ok)
	require.Equal(t, setB.Ranges(), setA.Ranges())
}

func TestParseEntryRoundTrip(t *testing.T) {
	inputs := []string{
		"Cons=1-2,Desc=1-2,Link=1-5,LinkAuth=1,3,Relay=1-2",
		"Link=5,1-2,Quorum=0,63",
		"HSIntro=3-4",
		SupportedProtocols,
	}
	for _, input := range inputs {
		e, err := ParseEntry(input)
		require.NoError(t, err)

		reparsed, err := ParseEntry(e.String())
		require.NoError(t, err)

		// Canonical form is a fixed point.
		require.Equal(t, e.String(), reparsed.String())

		// And the covered sets are identical.
		require.Equal(t, e.Names(), reparsed.Names())
		for _, name := range e.Names() {
			want, _ := e.VersionSet(name)
			got, _ := reparsed.VersionSet(name)
			require.Equal(t, want, got, "protocol %s", name)
		}
	}
}

func TestMustParseEntryPanicsOnBadInput(t *testing.T) {
	require.Panics(t, func() { MustParseEntry("Relay=3-1") })
}
