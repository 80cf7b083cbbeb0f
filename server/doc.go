// Package server exposes the protocol-version registry over HTTP.
//
// The handler is the boundary adapter around the pure protover core: relays
// submit advertisements, peers fetch the signed consensus document, and any
// caller can parse, canonicalize, vote on, or query protocol lists without
// linking the library. Structured errors from the core collapse to HTTP
// status codes here and only here; the core itself never loses the error
// kind.
//
// Routes:
//
//	POST /relay/advertise        store a relay's advertisement
//	GET  /consensus              compute and return the signed consensus
//	POST /parse                  canonicalize a protocol list
//	POST /vote                   compute a vote over explicit lists
//	POST /all-supported          check a list against local support
//	GET  /supported              the compiled-in supported-protocols list
//	GET  /supported/check        one (protocol, version) pair by numeric ID
//	GET  /legacy/{version}       legacy compatibility lookup
package server
