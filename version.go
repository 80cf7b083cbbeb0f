package protover

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Version identifies one revision of a subprotocol's wire behavior.
type Version = uint32

const (
	// MaxVersion is the highest representable protocol version. Versions
	// index a 64-bit support bitfield elsewhere in the wire protocol, so
	// anything above 63 is a parse error rather than silently truncated.
	MaxVersion Version = 63

	// MaxListLength bounds the protocol list strings ParseEntry accepts.
	// Advertised lists are small; anything larger is rejected up front
	// instead of allocated for.
	MaxListLength = 4096
)

// VersionRange is a closed interval [Low, High] of supported versions.
// Invariant: Low <= High.
type VersionRange struct {
	Low  Version `json:"low"`
	High Version `json:"high"`
}

// Contains reports whether v falls within the range.
func (r VersionRange) Contains(v Version) bool {
	return r.Low <= v && v <= r.High
}

// String renders the range in wire form: a bare integer for a single
// version, low-high otherwise.
func (r VersionRange) String() string {
	if r.Low == r.High {
		return strconv.FormatUint(uint64(r.Low), 10)
	}
	return strconv.FormatUint(uint64(r.Low), 10) + "-" + strconv.FormatUint(uint64(r.High), 10)
}

// bitmask returns the range as a bitfield with bit v set for every covered
// version. Requires High <= MaxVersion.
func (r VersionRange) bitmask() uint64 {
	width := r.High - r.Low + 1
	if width == 64 {
		return ^uint64(0)
	}
	return (uint64(1)<<width - 1) << r.Low
}

// VersionSet is the canonical set of versions supported for one protocol:
// sorted ascending, non-overlapping, maximally coalesced. The zero value is
// the empty set ("protocol named but supports nothing").
//
// With versions bounded by MaxVersion the set is held as a 64-bit bitfield,
// which keeps membership tests, gap computation and vote assembly
// deterministic and allocation-free.
type VersionSet struct {
	mask uint64
}

// NewVersionSet builds a canonical set from the given ranges. It rejects
// inverted ranges, versions above MaxVersion, and ranges that overlap an
// earlier one; touching but disjoint ranges are coalesced.
func NewVersionSet(ranges ...VersionRange) (VersionSet, error) {
	var s VersionSet
	for _, r := range ranges {
		if r.Low > r.High {
			return VersionSet{}, fmt.Errorf("%w: %d-%d", ErrInvalidRange, r.Low, r.High)
		}
		if r.High > MaxVersion {
			return VersionSet{}, fmt.Errorf("%w: %d > %d", ErrExceedsMax, r.High, MaxVersion)
		}
		m := r.bitmask()
		if s.mask&m != 0 {
			return VersionSet{}, fmt.Errorf("%w: %s", ErrOverlappingRanges, r)
		}
		s.mask |= m
	}
	return s, nil
}

// setFromMask wraps a bitfield as a VersionSet. Internal constructor for
// vote assembly and gap computation.
func setFromMask(mask uint64) VersionSet {
	return VersionSet{mask: mask}
}

// IsEmpty reports whether the set covers no versions.
func (s VersionSet) IsEmpty() bool {
	return s.mask == 0
}

// Contains reports whether version v is in the set.
func (s VersionSet) Contains(v Version) bool {
	return v <= MaxVersion && s.mask&(uint64(1)<<v) != 0
}

// Max returns the highest version in the set, and false if the set is
// empty.
func (s VersionSet) Max() (Version, bool) {
	if s.mask == 0 {
		return 0, false
	}
	return Version(bits.Len64(s.mask) - 1), true
}

// Len returns the number of versions the set covers.
func (s VersionSet) Len() int {
	return bits.OnesCount64(s.mask)
}

// Ranges returns the set as its canonical range sequence.
func (s VersionSet) Ranges() []VersionRange {
	var ranges []VersionRange
	mask := s.mask
	for mask != 0 {
		low := Version(bits.TrailingZeros64(mask))
		high := low
		for high < MaxVersion && mask&(uint64(1)<<(high+1)) != 0 {
			high++
		}
		ranges = append(ranges, VersionRange{Low: low, High: high})
		mask &^= VersionRange{Low: low, High: high}.bitmask()
	}
	return ranges
}

// String renders the set in canonical wire form, e.g. "1,3-5". The empty
// set renders as the empty string.
func (s VersionSet) String() string {
	ranges := s.Ranges()
	if len(ranges) == 0 {
		return ""
	}
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}
