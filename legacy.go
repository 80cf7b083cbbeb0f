package protover

import (
	"strconv"
	"strings"
)

// Legacy release versions predate the protocol-list mechanism, so the
// subprotocols those releases support are implied by a fixed historical
// table rather than advertised.

// legacyRelease is a parsed old-style release version "x.y.z[.w][-status]".
type legacyRelease struct {
	major, minor, micro, patch uint32
	status                     int
}

// Status tag ranks within one numeric release, oldest first.
const (
	statusAlpha = iota
	statusBeta
	statusRC
	statusStable
)

// parseLegacyRelease parses an old-style release version. The status tag is
// ranked by its leading word; unrecognized tags (and suffixes like
// "-alpha-dev") rank as their base tag or as stable when the base is
// unknown.
func parseLegacyRelease(s string) (legacyRelease, bool) {
	numeric, tag, _ := strings.Cut(s, "-")
	parts := strings.Split(numeric, ".")
	if len(parts) < 3 || len(parts) > 4 {
		return legacyRelease{}, false
	}

	var fields [4]uint32
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return legacyRelease{}, false
		}
		fields[i] = uint32(n)
	}

	r := legacyRelease{
		major:  fields[0],
		minor:  fields[1],
		micro:  fields[2],
		patch:  fields[3],
		status: statusStable,
	}
	switch base, _, _ := strings.Cut(tag, "-"); base {
	case "alpha":
		r.status = statusAlpha
	case "beta":
		r.status = statusBeta
	case "rc":
		r.status = statusRC
	}
	return r, true
}

// atLeast reports whether r is the same release as other or newer.
func (r legacyRelease) atLeast(other legacyRelease) bool {
	a := [5]uint32{r.major, r.minor, r.micro, r.patch, uint32(r.status)}
	b := [5]uint32{other.major, other.minor, other.micro, other.patch, uint32(other.status)}
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return true
}

// legacyProtocols maps "release at least X" thresholds, newest first, to
// the protocol list that historical release line is known to support. A
// release new enough to advertise its own list maps to nothing extra.
var legacyProtocols = []struct {
	min       legacyRelease
	protocols *Entry
}{
	{mustLegacyRelease("0.2.9.3-alpha"), MustParseEntry("")},
	{mustLegacyRelease("0.2.7.5"), MustParseEntry(
		"Cons=1-2,Desc=1-2,DirCache=1,HSDir=1,HSIntro=3,HSRend=1,Link=1-4,LinkAuth=1,Microdesc=1-2,Relay=1-2")},
	{mustLegacyRelease("0.2.4.19"), MustParseEntry(
		"Cons=1,Desc=1,DirCache=1,HSDir=1,HSIntro=3,HSRend=1,Link=1-4,LinkAuth=1,Microdesc=1,Relay=1-2")},
}

var emptyEntry = MustParseEntry("")

func mustLegacyRelease(s string) legacyRelease {
	r, ok := parseLegacyRelease(s)
	if !ok {
		panic("protover: bad compiled-in release version " + s)
	}
	return r
}

// ComputeForOldTor returns the entry implied for a relay that reports only
// a legacy release version. Unrecognized, malformed or ancient versions
// yield the empty entry — implying no assumed support — never an error;
// absence of a match is an expected outcome for future or unknown version
// strings. The same version string always yields the same entry.
func ComputeForOldTor(version string) *Entry {
	r, ok := parseLegacyRelease(version)
	if !ok {
		return emptyEntry
	}
	for _, row := range legacyProtocols {
		if r.atLeast(row.min) {
			return row.protocols
		}
	}
	return emptyEntry
}
