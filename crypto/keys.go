package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// PublicKey identifies a directory authority and verifies its signatures.
// Ed25519 public keys, hex-encoded wherever they appear in documents.
type PublicKey []byte

// NewPublicKeyFromBytes copies data into a PublicKey.
func NewPublicKeyFromBytes(data []byte) PublicKey {
	pk := make([]byte, len(data))
	copy(pk, data)
	return PublicKey(pk)
}

// NewPublicKeyFromString decodes a hex-encoded public key.
func NewPublicKeyFromString(data string) (PublicKey, error) {
	rawBytes, err := hex.DecodeString(data)
	if err != nil {
		return nil, err
	}
	if len(rawBytes) != ed25519.PublicKeySize {
		return nil, errors.New("invalid public key size")
	}
	return PublicKey(rawBytes), nil
}

// Bytes returns the raw key bytes.
func (pk PublicKey) Bytes() []byte {
	return pk
}

// Equal compares two public keys in constant time.
func (pk PublicKey) Equal(other PublicKey) bool {
	return subtle.ConstantTimeCompare(pk, other) == 1
}

// String returns the hex encoding used in documents and logs.
func (pk PublicKey) String() string {
	return hex.EncodeToString(pk)
}

// PrivateKey is an authority's Ed25519 signing key.
type PrivateKey []byte

// NewPrivateKeyFromBytes copies data into a PrivateKey.
func NewPrivateKeyFromBytes(data []byte) PrivateKey {
	sk := make([]byte, len(data))
	copy(sk, data)
	return PrivateKey(sk)
}

// Bytes exposes the raw key material; handle with care.
func (sk PrivateKey) Bytes() []byte {
	return sk
}

// PublicKey derives the verifying key. For Ed25519 it is embedded in the
// private key structure.
func (sk PrivateKey) PublicKey() (PublicKey, error) {
	if len(sk) != ed25519.PrivateKeySize {
		return nil, errors.New("invalid private key size")
	}
	return NewPublicKeyFromBytes(sk[32:]), nil
}

// GenerateKeyPair generates a fresh Ed25519 authority key pair.
func GenerateKeyPair() (PublicKey, PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return PublicKey(publicKey), PrivateKey(privateKey), nil
}

// Signature is an Ed25519 signature over a serialized directory document.
type Signature []byte

// NewSignature copies data into a Signature.
func NewSignature(data []byte) Signature {
	sig := make([]byte, len(data))
	copy(sig, data)
	return Signature(sig)
}

// Bytes returns the raw signature bytes.
func (s Signature) Bytes() []byte {
	return []byte(s)
}

// Verify reports whether the signature is valid for data under publicKey.
func (s Signature) Verify(publicKey PublicKey, data []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), data, s)
}

// String returns the hex encoding of the signature.
func (s Signature) String() string {
	return hex.EncodeToString(s.Bytes())
}

// Sign signs a serialized document with the authority's private key.
func Sign(privateKey PrivateKey, data []byte) (Signature, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, errors.New("invalid private key size")
	}
	return Signature(ed25519.Sign(ed25519.PrivateKey(privateKey), data)), nil
}
