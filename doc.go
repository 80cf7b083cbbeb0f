// Package protover implements the subprotocol version registry and
// negotiation engine used by directory authorities and relays to describe,
// parse, compare, and vote on which named subprotocols and version numbers
// are supported across the network.
//
// # Protocol lists
//
// A relay advertises its capabilities as a compact protocol list string:
//
//	Cons=1-2,Desc=1-2,Link=1-5,LinkAuth=1,3,Relay=1-2
//
// Each entry names a subprotocol and the version ranges the relay
// implements. ParseEntry turns such a string into an Entry, a validated,
// immutable mapping from protocol names to canonical version sets. Entries
// round-trip back to text through String, which always emits the canonical
// form: protocol names in lexicographic order, ranges ascending and
// maximally coalesced, single versions as bare integers. Canonical output
// is byte-stable across independent processes, which directory authorities
// rely on to reach byte-identical consensus documents.
//
// # Queries
//
// Entry answers the two membership questions relays need during
// negotiation: Supports ("do they implement protocol X at version V") and
// SupportsOrLater ("is their newest version of X at least V"). The
// compiled-in table of what this implementation supports backs
// IsSupportedHere and AllSupported, which a node uses to decide whether it
// can keep operating under the requirements the network currently
// advertises.
//
// # Voting
//
// ComputeVote aggregates many entries into one: a (protocol, version) pair
// is included iff at least threshold entries cover it. The computation is
// deterministic for a fixed input sequence; it never depends on map
// iteration order. Protocol names outside the compiled-in enumeration vote
// like any other name, so authorities can reach quorum on a subprotocol
// they do not individually recognize.
//
// # Legacy relays
//
// Relays older than the protocol-list mechanism never advertise one.
// ComputeForOldTor maps their release version onto the set of subprotocols
// those historical releases are known to implement.
//
// All operations are pure and safe for concurrent use; the only shared
// state is the pair of compiled-in read-only tables.
package protover
