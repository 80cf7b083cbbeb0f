// Package crypto provides the Ed25519 identity-key primitives used by
// directory authorities to sign the documents they publish.
//
// An authority holds a long-lived signing key pair. Consensus documents and
// other directory statements are signed with the private key and verified
// against the authority's well-known public key, so any node can check that
// a document really originates from a voting authority.
//
// Keys and signatures are thin wrappers around crypto/ed25519 with
// hex-string round-tripping for configuration and transport.
package crypto
