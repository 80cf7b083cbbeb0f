package services

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/flashbots/protover/crypto"
)

// Signed provides authentication for directory documents.
// The signature covers the serialized object plus the signer's public key
// to prevent substitution.
type Signed[T any] struct {
	PublicKey crypto.PublicKey `json:"public_key"`
	Signature crypto.Signature `json:"signature"`
	Object    *T               `json:"object"`
}

// NewSigned signs a document with an authority's identity key.
func NewSigned[T any](privkey crypto.PrivateKey, obj *T) (*Signed[T], error) {
	pubkey, err := privkey.PublicKey()
	if err != nil {
		return nil, err
	}

	serialized, err := SerializeMessage(obj)
	if err != nil {
		return nil, err
	}

	signature, err := crypto.Sign(privkey, append(serialized, pubkey...))
	if err != nil {
		return nil, err
	}

	return &Signed[T]{
		PublicKey: pubkey,
		Signature: signature,
		Object:    obj,
	}, nil
}

// UnsafeObject returns the document without signature verification.
func (s *Signed[T]) UnsafeObject() *T {
	return s.Object
}

// Recover verifies the signature and returns the document and the signing
// authority's public key.
func (s *Signed[T]) Recover() (*T, crypto.PublicKey, error) {
	serialized, err := SerializeMessage(s.Object)
	if err != nil {
		return nil, nil, err
	}

	if !s.Signature.Verify(s.PublicKey, append(serialized, s.PublicKey...)) {
		return nil, nil, errors.New("signature not valid")
	}

	return s.Object, s.PublicKey, nil
}

// RelayAdvertisement is one relay's statement of the subprotocol versions
// it implements, as submitted to a directory authority.
type RelayAdvertisement struct {
	// Fingerprint is the relay's identity fingerprint; advertisements are
	// keyed by it and resubmission replaces the previous statement.
	Fingerprint string `json:"fingerprint"`

	// Protocols is the relay's protocol list string. Empty for relays that
	// predate the protocol-list mechanism; those are resolved through the
	// legacy compatibility table using Version instead.
	Protocols string `json:"protocols,omitempty"`

	// Version is the relay's release version string.
	Version string `json:"version,omitempty"`

	// Address is the relay's advertised OR address, informational only.
	Address string `json:"address,omitempty"`
}

// ConsensusDocument is the aggregate statement a directory authority
// publishes: the (protocol, version) pairs supported by at least Threshold
// of the advertising relays, in canonical serialization.
type ConsensusDocument struct {
	// Protocols is the canonical protocol list the vote produced.
	Protocols string `json:"protocols"`

	// Threshold is the vote threshold the document was computed with.
	Threshold int `json:"threshold"`

	// VoterCount is the number of advertisements that participated.
	VoterCount int `json:"voter_count"`

	// ComputedAt is when the authority computed the document.
	ComputedAt time.Time `json:"computed_at"`
}

// UnmarshalMessage deserializes a document from JSON bytes.
func UnmarshalMessage[T any](data []byte) (*T, error) {
	var msg T
	err := json.Unmarshal(data, &msg)
	return &msg, err
}

// DecodeMessage deserializes a document from a JSON reader.
func DecodeMessage[T any](reader io.Reader) (*T, error) {
	var msg T
	err := json.NewDecoder(reader).Decode(&msg)
	return &msg, err
}

// SerializeMessage serializes a document to JSON bytes.
func SerializeMessage[T any](msg *T) ([]byte, error) {
	return json.Marshal(msg)
}
