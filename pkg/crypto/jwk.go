/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import "github.com/pkg/errors"

// secp256k1Crv is the only JWK "crv" value this core accepts.
const secp256k1Crv = "secp256k1"

// JWK is a public key in JSON Web Key form, restricted to the SECP256K1 curve this core
// supports. square/go-jose/v3 is not used here: per the teacher's own admission (see
// DESIGN.md), gojose does not handle the secp256k1 curve, so this struct is hand-rolled
// in the same plain-struct style as the teacher's own JWK type.
type JWK struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
}

// Validate checks that the JWK carries the fields required to build a SECP256K1 public key.
func (jwk *JWK) Validate() error {
	if jwk == nil {
		return errors.New("JWK is missing")
	}

	if jwk.Kty != "EC" {
		return errors.Errorf("JWK kty must be EC, got %q", jwk.Kty)
	}

	if jwk.Crv != secp256k1Crv {
		return errors.Errorf("JWK crv must be secp256k1, got %q", jwk.Crv)
	}

	if jwk.X == "" {
		return errors.New("JWK x is missing")
	}

	if jwk.Y == "" {
		return errors.New("JWK y is missing")
	}

	return nil
}
