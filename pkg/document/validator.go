/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package document

import "github.com/jonnycrunch/sidetree-core/pkg/crypto"

// IsValidOriginalDocument checks the rules a create operation's initial document must satisfy:
// at least one public key, every key has a non-empty id and type, no two keys share an id, and
// the document itself carries no top-level id (the DID is derived from the operation, not supplied).
func IsValidOriginalDocument(doc Document) bool {
	if doc.ID() != "" {
		return false
	}

	pubKeys := doc.PublicKeys()
	if len(pubKeys) == 0 {
		return false
	}

	ids := make(map[string]bool, len(pubKeys))

	for _, pubKey := range pubKeys {
		kid := pubKey.ID()
		if kid == "" || pubKey.Type() == "" {
			return false
		}

		if ids[kid] {
			return false
		}

		ids[kid] = true
	}

	return true
}

// FindPublicKey returns the public key with the given id from doc's publicKey entries, parsed
// into crypto key material from whichever of publicKeyHex/publicKeyJwk is present.
func FindPublicKey(doc Document, kid string) (*crypto.PublicKey, bool) {
	for _, pubKey := range doc.PublicKeys() {
		if pubKey.ID() != kid {
			continue
		}

		return parseKeyMaterial(pubKey)
	}

	return nil, false
}

func parseKeyMaterial(pubKey PublicKey) (*crypto.PublicKey, bool) {
	if hexValue := pubKey.PublicKeyHex(); hexValue != "" {
		key, err := crypto.ParsePublicKeyHex(hexValue)
		if err != nil {
			return nil, false
		}

		return key, true
	}

	jwk := pubKey.PublicKeyJwk()
	if jwk == nil {
		return nil, false
	}

	key, err := crypto.ParsePublicKeyJWK(&crypto.JWK{
		Kty: jwk.Kty(),
		Crv: jwk.Crv(),
		X:   jwk.X(),
		Y:   jwk.Y(),
	})
	if err != nil {
		return nil, false
	}

	return key, true
}
