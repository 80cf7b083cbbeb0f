package protover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseAll(t *testing.T, lists ...string) []*Entry {
	t.Helper()
	entries := make([]*Entry, len(lists))
	for i, list := range lists {
		e, err := ParseEntry(list)
		require.NoError(t, err)
		entries[i] = e
	}
	return entries
}

func TestComputeVoteThreshold(t *testing.T) {
	entries := parseAll(t, "Relay=1-2", "Relay=2-3", "Relay=2")

	// Version 1 has one vote, version 2 has three, version 3 has one.
	require.Equal(t, "Relay=2", ComputeVote(entries, 2).String())
	require.Equal(t, "Relay=2", ComputeVote(entries, 3).String())
	require.Equal(t, "Relay=1-3", ComputeVote(entries, 1).String())
}

func TestComputeVoteZeroThreshold(t *testing.T) {
	entries := parseAll(t, "Relay=1-2,Link=1", "Relay=4,Cons=1")

	// Zero (and negative) thresholds mean "include everything": the union
	// of all inputs, not an error.
	union := "Cons=1,Link=1,Relay=1-2,4"
	require.Equal(t, union, ComputeVote(entries, 0).String())
	require.Equal(t, union, ComputeVote(entries, -5).String())
}

func TestComputeVoteThresholdAboveInputCount(t *testing.T) {
	entries := parseAll(t, "Relay=1-2", "Relay=1-2")
	vote := ComputeVote(entries, 3)
	require.Equal(t, 0, vote.Len())
	require.Equal(t, "", vote.String())
}

func TestComputeVoteNoInputs(t *testing.T) {
	require.Equal(t, "", ComputeVote(nil, 1).String())
}

func TestComputeVoteCountsWholeRanges(t *testing.T) {
	// A range covers every integer in it, not just its endpoints.
	entries := parseAll(t, "Link=1-5", "Link=2-4")
	require.Equal(t, "Link=2-4", ComputeVote(entries, 2).String())
}

func TestComputeVoteUnknownProtocols(t *testing.T) {
	// Authorities can reach quorum on a protocol none of them recognizes,
	// as long as enough inputs advertise the same literal name.
	entries := parseAll(t, "Quorum=1-2,Relay=1", "Quorum=2-3", "Relay=1")
	require.Equal(t, "Quorum=2,Relay=1", ComputeVote(entries, 2).String())
}

func TestComputeVoteMonotonicity(t *testing.T) {
	entries := parseAll(t,
		"Relay=1-4,Link=1-2",
		"Relay=2-5,Link=2",
		"Relay=3,Link=1-3",
		"Relay=2-3",
	)

	for t1 := 0; t1 <= len(entries)+1; t1++ {
		for t2 := t1; t2 <= len(entries)+1; t2++ {
			wide := ComputeVote(entries, t1)
			narrow := ComputeVote(entries, t2)
			for _, name := range narrow.Names() {
				narrowSet, _ := narrow.VersionSet(name)
				for v := Version(0); v <= MaxVersion; v++ {
					if narrowSet.Contains(v) {
						require.True(t, wide.Supports(name, v),
							"vote at threshold %d must contain vote at %d: %s=%d", t1, t2, name, v)
					}
				}
			}
		}
	}
}

func TestComputeVoteDeterministic(t *testing.T) {
	entries := parseAll(t,
		"Zebra=1,Alpha=2,Relay=1-2",
		"Alpha=2,Relay=2,Zebra=1",
		"Relay=2-3,Alpha=1-2",
	)

	first := ComputeVote(entries, 2).String()
	for i := 0; i < 50; i++ {
		require.Equal(t, first, ComputeVote(entries, 2).String())
	}
	require.Equal(t, "Alpha=2,Relay=2,Zebra=1", first)
}

func TestComputeVoteFromList(t *testing.T) {
	lists := []string{"Relay=1-2", "Relay=2-3", "Relay=2"}
	require.Equal(t, "Relay=2", ComputeVoteFromList(lists, 2))

	// Malformed lists are skipped, not fatal.
	withGarbage := []string{"Relay=1-2", "not a protocol list", "Relay=2-3", "Relay=2"}
	require.Equal(t, "Relay=2", ComputeVoteFromList(withGarbage, 2))

	require.Equal(t, "", ComputeVoteFromList(nil, 1))
}
