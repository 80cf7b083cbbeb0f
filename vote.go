package protover

import "sort"

// ComputeVote aggregates many entries into one: a (protocol, version) pair
// is included in the result iff at least threshold of the input entries
// cover it. Every integer a range covers counts, not just its endpoints.
//
// A threshold of zero or below yields the union of all inputs; a threshold
// greater than the number of inputs yields the empty entry. Protocol names
// outside the compiled-in enumeration participate like any other name, so
// quorum can form on a subprotocol no single authority recognizes.
//
// The result is deterministic for a fixed input sequence: counting and
// assembly walk sorted protocol names and version bits in order, never a
// map. Independently-running authorities must produce byte-identical
// serializations for identical inputs.
func ComputeVote(entries []*Entry, threshold int) *Entry {
	// "Include everything" rather than an error; a version still needs at
	// least one vote to exist at all.
	if threshold < 1 {
		threshold = 1
	}

	counts := make(map[string]*[MaxVersion + 1]int)
	for _, e := range entries {
		if e == nil {
			continue
		}
		for name, set := range e.supported {
			c := counts[name]
			if c == nil {
				c = new([MaxVersion + 1]int)
				counts[name] = c
			}
			for v := Version(0); v <= MaxVersion; v++ {
				if set.Contains(v) {
					c[v]++
				}
			}
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	supported := make(map[string]VersionSet)
	for _, name := range names {
		var mask uint64
		for v := Version(0); v <= MaxVersion; v++ {
			if counts[name][v] >= threshold {
				mask |= uint64(1) << v
			}
		}
		if mask != 0 {
			supported[name] = setFromMask(mask)
		}
	}
	return newEntry(supported)
}

// ComputeVoteFromList is ComputeVote over raw protocol list strings, the
// shape the boundary receives votes in. Malformed lists are skipped rather
// than failing the whole vote, matching how authorities treat unparseable
// advertisements. The result is the canonical serialization of the vote.
func ComputeVoteFromList(lists []string, threshold int) string {
	entries := make([]*Entry, 0, len(lists))
	for _, list := range lists {
		e, err := ParseEntry(list)
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return ComputeVote(entries, threshold).String()
}
