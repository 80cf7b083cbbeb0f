package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/flashbots/protover/services"
)

// AdvertisementOption customizes a generated relay advertisement.
type AdvertisementOption func(*services.RelayAdvertisement)

// WithFingerprint sets the relay fingerprint.
func WithFingerprint(fingerprint string) AdvertisementOption {
	return func(adv *services.RelayAdvertisement) {
		adv.Fingerprint = fingerprint
	}
}

// WithProtocols sets the advertised protocol list.
func WithProtocols(protocols string) AdvertisementOption {
	return func(adv *services.RelayAdvertisement) {
		adv.Protocols = protocols
	}
}

// WithVersion sets the relay's release version; combined with an empty
// protocol list this produces a legacy relay.
func WithVersion(version string) AdvertisementOption {
	return func(adv *services.RelayAdvertisement) {
		adv.Version = version
	}
}

// RandomFingerprint returns a random 20-byte hex fingerprint.
func RandomFingerprint() string {
	buf := make([]byte, 20)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

// NewTestAdvertisement creates a relay advertisement with sensible defaults:
// a random fingerprint and a modern protocol list.
func NewTestAdvertisement(options ...AdvertisementOption) *services.RelayAdvertisement {
	adv := &services.RelayAdvertisement{
		Fingerprint: RandomFingerprint(),
		Protocols:   "Cons=1-2,Link=1-5,Relay=1-2",
		Version:     "0.3.0.1",
	}
	for _, option := range options {
		option(adv)
	}
	return adv
}

// GenerateTestAdvertisements creates count advertisements with distinct,
// stable fingerprints so vote inputs stay deterministic across runs.
func GenerateTestAdvertisements(count int, options ...AdvertisementOption) []*services.RelayAdvertisement {
	advs := make([]*services.RelayAdvertisement, count)
	for i := range advs {
		adv := NewTestAdvertisement(options...)
		adv.Fingerprint = fmt.Sprintf("%040X", i)
		advs[i] = adv
	}
	return advs
}
