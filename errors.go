package protover

import "errors"

// Parse and boundary errors. Parsing failures are always one of these,
// wrapped with position context; the query, vote and legacy-lookup
// operations are total over well-formed entries and never fail.
var (
	// ErrMalformedEntry reports a protocol list that does not match the
	// Name=Range(,Range)* grammar: empty or illegal names, missing '=',
	// unparseable integers, or a range before any protocol name.
	ErrMalformedEntry = errors.New("protover: malformed protocol entry")

	// ErrInvalidRange reports a range whose low bound exceeds its high bound.
	ErrInvalidRange = errors.New("protover: invalid version range")

	// ErrExceedsMax reports a version number above MaxVersion.
	ErrExceedsMax = errors.New("protover: version exceeds maximum")

	// ErrDuplicateProtocol reports a protocol name appearing twice in one
	// list. Duplicates are ambiguous and rejected, never merged.
	ErrDuplicateProtocol = errors.New("protover: duplicate protocol name")

	// ErrOverlappingRanges reports two ranges for the same protocol that
	// cover a common version. Overlap is a caller error; only disjoint
	// touching ranges are coalesced.
	ErrOverlappingRanges = errors.New("protover: overlapping version ranges")

	// ErrListTooLong reports a protocol list longer than MaxListLength.
	ErrListTooLong = errors.New("protover: protocol list too long")

	// ErrUnknownProtocol reports a protocol name outside the compiled-in
	// enumeration where a validated entry was required.
	ErrUnknownProtocol = errors.New("protover: unknown protocol name")

	// ErrUnknownProtocolID reports a numeric protocol identifier outside
	// the fixed wire encoding.
	ErrUnknownProtocolID = errors.New("protover: unknown protocol identifier")
)
