// Package services implements the directory-authority side of the protocol
// version registry: durable storage for relay advertisements and the voter
// that aggregates them into a signed consensus document.
//
// # Advertisements
//
// Relays submit a RelayAdvertisement naming the subprotocol versions they
// implement. Modern relays carry a protocol list string; relays that
// predate the mechanism carry only a release version, which the voter maps
// through the legacy compatibility table. Advertisements are persisted in
// an AdvertisementStore — PostgreSQL in production, in-memory for tests and
// single-node setups — keyed by relay fingerprint, newest submission wins.
//
// # Voting
//
// The Voter loads every stored advertisement, resolves each to a protocol
// entry, and computes the threshold vote over them. The result is wrapped
// in a ConsensusDocument and signed with the authority's Ed25519 identity
// key so peers can verify its origin. The computation is deterministic:
// advertisements are loaded in fingerprint order and the vote itself never
// depends on map iteration order, so independently-running authorities
// produce byte-identical protocol lists for identical inputs.
package services
