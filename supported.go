package protover

// SupportedProtocols is the canonical protocol list this implementation
// advertises for itself. It is a plain ASCII constant with no embedded NUL
// bytes, so it can cross a C-style string boundary unmodified.
//
// The parsed form is built once at startup and never mutated; it is safe
// for unsynchronized concurrent reads.
const SupportedProtocols = "Cons=1-2,Desc=1-2,DirCache=1-2,HSDir=1-2,HSIntro=3-4,HSRend=1-2,Link=1-5,LinkAuth=1,3,Microdesc=1-2,Relay=1-2"

var supportedHere = MustParseEntry(SupportedProtocols)

// Supported returns the compiled-in entry describing what this
// implementation supports. The returned entry is shared and immutable.
func Supported() *Entry {
	return supportedHere
}

// IsSupportedHere reports whether this implementation supports protocol p
// at version v. Constant-time in the size of the compiled-in table, no
// allocation.
func IsSupportedHere(p Protocol, v Version) bool {
	return supportedHere.Supports(p.String(), v)
}

// AllSupported checks every (protocol, version) pair the entry advertises
// against the compiled-in table. It returns nil when everything is
// supported here; otherwise it returns a new canonical entry holding
// exactly the unsupported remainder. This is the check a node runs against
// the network's advertised requirements to decide whether it can safely
// keep operating.
func (e *Entry) AllSupported() *Entry {
	var missing map[string]VersionSet
	for name, set := range e.supported {
		local, _ := supportedHere.VersionSet(name)
		if gap := set.mask &^ local.mask; gap != 0 {
			if missing == nil {
				missing = make(map[string]VersionSet)
			}
			missing[name] = setFromMask(gap)
		}
	}
	if missing == nil {
		return nil
	}
	return newEntry(missing)
}
