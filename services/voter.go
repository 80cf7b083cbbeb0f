package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/flashbots/protover"
	"github.com/flashbots/protover/crypto"
)

// VoterConfig configures consensus computation for one authority.
type VoterConfig struct {
	// Threshold is the number of advertisements that must cover a
	// (protocol, version) pair for it to enter the consensus.
	Threshold int

	// SigningKey is the authority's Ed25519 identity key.
	SigningKey crypto.PrivateKey

	// Log is the structured logger for vote computations.
	Log *slog.Logger
}

// Voter aggregates stored relay advertisements into a signed consensus
// document.
type Voter struct {
	store AdvertisementStore
	cfg   *VoterConfig
	log   *slog.Logger
}

// NewVoter creates a voter over the given advertisement store.
func NewVoter(store AdvertisementStore, cfg *VoterConfig) *Voter {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	return &Voter{store: store, cfg: cfg, log: log}
}

// entryFor resolves one advertisement to a protocol entry. Relays that
// predate the protocol-list mechanism fall back to the legacy
// compatibility table keyed by their release version.
func (v *Voter) entryFor(adv *RelayAdvertisement) (*protover.Entry, error) {
	if adv.Protocols == "" {
		return protover.ComputeForOldTor(adv.Version), nil
	}
	return protover.ParseEntry(adv.Protocols)
}

// ComputeConsensus loads every stored advertisement, computes the threshold
// vote over them, and signs the resulting document. Advertisements whose
// protocol list no longer parses are skipped with a warning rather than
// failing the vote; they cannot have been stored through the handler, which
// validates on submission.
func (v *Voter) ComputeConsensus() (*Signed[ConsensusDocument], error) {
	advs, err := v.store.LoadAllAdvertisements()
	if err != nil {
		return nil, fmt.Errorf("loading advertisements: %w", err)
	}

	entries := make([]*protover.Entry, 0, len(advs))
	for _, adv := range advs {
		entry, err := v.entryFor(adv)
		if err != nil {
			v.log.Warn("Skipping unparseable advertisement",
				"fingerprint", adv.Fingerprint, "err", err)
			continue
		}
		entries = append(entries, entry)
	}

	vote := protover.ComputeVote(entries, v.cfg.Threshold)
	doc := &ConsensusDocument{
		Protocols:  vote.String(),
		Threshold:  v.cfg.Threshold,
		VoterCount: len(entries),
		ComputedAt: time.Now().UTC(),
	}

	signed, err := NewSigned(v.cfg.SigningKey, doc)
	if err != nil {
		return nil, fmt.Errorf("signing consensus document: %w", err)
	}

	v.log.Info("Computed consensus document",
		"voters", doc.VoterCount, "threshold", doc.Threshold, "protocols", doc.Protocols)
	return signed, nil
}
