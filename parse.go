package protover

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseEntry parses a protocol list of the grammar
//
//	List      = Entry (',' Entry)*
//	Entry     = Name '=' RangeList
//	RangeList = Range (',' Range)*
//	Range     = Integer | Integer '-' Integer
//
// into an Entry. A comma-separated token containing '=' opens a new
// protocol entry; a token without '=' extends the current entry's range
// list, so "Relay=1-3,5,Link=2" names Relay versions {1,2,3,5} and Link
// version 2.
//
// ParseEntry rejects malformed tokens, inverted ranges, versions above
// MaxVersion, duplicate protocol names, overlapping ranges for one
// protocol, and inputs longer than MaxListLength. Failures are typed
// (errors.Is against the package sentinels) and never produce a partial
// entry. The empty string parses to the empty entry.
func ParseEntry(list string) (*Entry, error) {
	if len(list) > MaxListLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrListTooLong, len(list))
	}

	supported := make(map[string]VersionSet)
	if list == "" {
		return newEntry(supported), nil
	}

	current := ""
	for _, token := range strings.Split(list, ",") {
		rangeToken := token
		if name, rest, found := strings.Cut(token, "="); found {
			if err := checkProtocolName(name); err != nil {
				return nil, err
			}
			if existing, dup := supported[name]; dup {
				// Report the more specific failure when the duplicate
				// also collides with already-registered versions.
				if r, err := parseRange(rest); err == nil && existing.mask&r.bitmask() != 0 {
					return nil, fmt.Errorf("%w: %q=%s", ErrOverlappingRanges, name, rest)
				}
				return nil, fmt.Errorf("%w: %q", ErrDuplicateProtocol, name)
			}
			supported[name] = VersionSet{}
			current = name
			rangeToken = rest
		} else if current == "" {
			return nil, fmt.Errorf("%w: version range %q before any protocol name", ErrMalformedEntry, token)
		}

		r, err := parseRange(rangeToken)
		if err != nil {
			return nil, err
		}
		set := supported[current]
		if set.mask&r.bitmask() != 0 {
			return nil, fmt.Errorf("%w: %q=%s", ErrOverlappingRanges, current, rangeToken)
		}
		set.mask |= r.bitmask()
		supported[current] = set
	}

	return newEntry(supported), nil
}

// MustParseEntry is ParseEntry for compiled-in protocol lists; it panics on
// malformed input.
func MustParseEntry(list string) *Entry {
	e, err := ParseEntry(list)
	if err != nil {
		panic(fmt.Sprintf("protover: bad compiled-in protocol list %q: %v", list, err))
	}
	return e
}

// parseRange parses "7" or "3-5" into a validated VersionRange.
func parseRange(token string) (VersionRange, error) {
	lowStr, highStr, isPair := strings.Cut(token, "-")
	low, err := parseVersion(lowStr)
	if err != nil {
		return VersionRange{}, err
	}
	high := low
	if isPair {
		high, err = parseVersion(highStr)
		if err != nil {
			return VersionRange{}, err
		}
	}
	if low > high {
		return VersionRange{}, fmt.Errorf("%w: %d-%d", ErrInvalidRange, low, high)
	}
	return VersionRange{Low: low, High: high}, nil
}

// parseVersion parses one version number, enforcing MaxVersion.
func parseVersion(s string) (Version, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrExceedsMax, s)
		}
		return 0, fmt.Errorf("%w: bad version %q", ErrMalformedEntry, s)
	}
	if Version(v) > MaxVersion {
		return 0, fmt.Errorf("%w: %d > %d", ErrExceedsMax, v, MaxVersion)
	}
	return Version(v), nil
}

// checkProtocolName enforces the identifier alphabet for protocol names:
// ASCII letters, digits and '-', non-empty. Unknown names that satisfy the
// alphabet are accepted and carried verbatim.
func checkProtocolName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty protocol name", ErrMalformedEntry)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return fmt.Errorf("%w: bad protocol name %q", ErrMalformedEntry, name)
		}
	}
	return nil
}
