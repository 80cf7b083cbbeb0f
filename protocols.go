package protover

import "fmt"

// Protocol identifies a named capability area of the network protocol that
// is versioned independently of the others.
//
// The integer values form the fixed wire encoding used at process
// boundaries. They are stable and must never be renumbered or reordered;
// new protocols are appended only.
type Protocol int

const (
	Link Protocol = iota
	LinkAuth
	Relay
	DirCache
	HSDir
	HSIntro
	HSRend
	Desc
	Microdesc
	Cons

	numProtocols
)

var protocolNames = [numProtocols]string{
	Link:      "Link",
	LinkAuth:  "LinkAuth",
	Relay:     "Relay",
	DirCache:  "DirCache",
	HSDir:     "HSDir",
	HSIntro:   "HSIntro",
	HSRend:    "HSRend",
	Desc:      "Desc",
	Microdesc: "Microdesc",
	Cons:      "Cons",
}

var protocolsByName = func() map[string]Protocol {
	m := make(map[string]Protocol, numProtocols)
	for p, name := range protocolNames {
		m[name] = Protocol(p)
	}
	return m
}()

// String returns the protocol's name as it appears in protocol lists.
func (p Protocol) String() string {
	if p < 0 || p >= numProtocols {
		return fmt.Sprintf("Protocol(%d)", int(p))
	}
	return protocolNames[p]
}

// ID returns the protocol's fixed numeric wire encoding.
func (p Protocol) ID() uint32 {
	return uint32(p)
}

// ProtocolByName looks up a protocol by its exact name. Names outside the
// compiled-in enumeration report ok=false; they are never coerced to a
// known protocol.
func ProtocolByName(name string) (Protocol, bool) {
	p, ok := protocolsByName[name]
	return p, ok
}

// ProtocolByID translates a numeric wire identifier into a Protocol.
// Unrecognized identifiers are an error, never mapped to a default.
func ProtocolByID(id uint32) (Protocol, error) {
	if id >= uint32(numProtocols) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownProtocolID, id)
	}
	return Protocol(id), nil
}
