/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package crypto implements SECP256K1 sign/verify over the JWS signing input defined by
// this core: the ASCII string "." + encoded_payload, with no protected header.
package crypto

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

// PrivateKey is a SECP256K1 private key usable with Sign.
type PrivateKey struct {
	key *ecdsa.PrivateKey
}

// NewPrivateKey wraps an ecdsa.PrivateKey on the SECP256K1 curve as a PrivateKey.
func NewPrivateKey(key *ecdsa.PrivateKey) *PrivateKey {
	return &PrivateKey{key: key}
}

// PublicKey returns the public key corresponding to this private key.
func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: &k.key.PublicKey}
}

// signingInput builds the canonical JWS signing input for this core: "." + encoded_payload,
// with no protected header.
func signingInput(encodedPayload string) []byte {
	return []byte("." + encodedPayload)
}

// Sign signs encodedPayload's JWS signing input with priv, returning a fixed-width
// (2*keySize) r||s signature.
func Sign(encodedPayload string, priv *PrivateKey) ([]byte, error) {
	if priv == nil || priv.key == nil {
		return nil, errors.New("private key not provided")
	}

	hash := crypto.SHA256.New()
	if _, err := hash.Write(signingInput(encodedPayload)); err != nil {
		return nil, err
	}

	r, s, err := ecdsa.Sign(rand.Reader, priv.key, hash.Sum(nil))
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}

	return append(copyPadded(r.Bytes(), keySize), copyPadded(s.Bytes(), keySize)...), nil
}

// Verify reports whether signature is a valid SECP256K1 signature over encodedPayload's
// JWS signing input under pub. It never raises: any failure (malformed signature, wrong
// key, wrong curve) simply yields false.
func Verify(encodedPayload string, signature []byte, pub *PublicKey) bool {
	if pub == nil || pub.key == nil || pub.key.Curve != btcec.S256() {
		return false
	}

	if len(signature) != 2*keySize {
		return false
	}

	hash := crypto.SHA256.New()
	if _, err := hash.Write(signingInput(encodedPayload)); err != nil {
		return false
	}

	r := new(big.Int).SetBytes(signature[:keySize])
	s := new(big.Int).SetBytes(signature[keySize:])

	return ecdsa.Verify(pub.key, hash.Sum(nil), r, s)
}

func copyPadded(source []byte, size int) []byte {
	dest := make([]byte, size)
	copy(dest[size-len(source):], source)

	return dest
}
