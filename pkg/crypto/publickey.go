/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/hex"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"

	"github.com/jonnycrunch/sidetree-core/pkg/encoding"
)

// keySize is the byte length of a SECP256K1 coordinate or signature component.
const keySize = 32

// PublicKey is a SECP256K1 public key, however it was originally encoded.
type PublicKey struct {
	key *ecdsa.PublicKey
}

// ParsePublicKeyHex parses a public key from its hex-encoded, uncompressed X9.62 point
// representation (0x04 || X || Y), the form document.PublicKey.PublicKeyHex() carries.
func ParsePublicKeyHex(value string) (*PublicKey, error) {
	raw, err := hex.DecodeString(value)
	if err != nil {
		return nil, errors.Wrap(err, "decode public key hex")
	}

	x, y := elliptic.Unmarshal(btcec.S256(), raw)
	if x == nil {
		return nil, errors.New("invalid secp256k1 public key")
	}

	return &PublicKey{key: &ecdsa.PublicKey{Curve: btcec.S256(), X: x, Y: y}}, nil
}

// ParsePublicKeyJWK parses a public key from its JWK form (kty=EC, crv=secp256k1).
func ParsePublicKeyJWK(jwk *JWK) (*PublicKey, error) {
	if err := jwk.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid JWK")
	}

	x, err := decodeCoordinate(jwk.X)
	if err != nil {
		return nil, errors.Wrap(err, "JWK x")
	}

	y, err := decodeCoordinate(jwk.Y)
	if err != nil {
		return nil, errors.Wrap(err, "JWK y")
	}

	return &PublicKey{key: &ecdsa.PublicKey{Curve: btcec.S256(), X: x, Y: y}}, nil
}

func decodeCoordinate(b64 string) (*big.Int, error) {
	raw, err := encoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetBytes(raw), nil
}
