/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package document

const (
	// PublicKeyJwkProperty describes a public key supplied in JWK form.
	PublicKeyJwkProperty = "publicKeyJwk"

	// PublicKeyHexProperty describes a public key supplied as a hex-encoded
	// uncompressed SECP256K1 point.
	PublicKeyHexProperty = "publicKeyHex"

	// TypeProperty describes type.
	TypeProperty = "type"
)

// PublicKey must include id and type properties, and exactly one key-material property
// (publicKeyHex or publicKeyJwk).
type PublicKey map[string]interface{}

// NewPublicKey creates new public key.
func NewPublicKey(pk map[string]interface{}) PublicKey {
	return pk
}

// ID is public key ID.
func (pk PublicKey) ID() string {
	return stringEntry(pk[IDProperty])
}

// Type is public key type.
func (pk PublicKey) Type() string {
	return stringEntry(pk[TypeProperty])
}

// PublicKeyJwk is the key material in JWK form, or nil if not present.
func (pk PublicKey) PublicKeyJwk() JWK {
	entry, ok := pk[PublicKeyJwkProperty]
	if !ok {
		return nil
	}

	m, ok := entry.(map[string]interface{})
	if !ok {
		return nil
	}

	return NewJWK(m)
}

// PublicKeyHex is the hex-encoded key material, or "" if not present.
func (pk PublicKey) PublicKeyHex() string {
	return stringEntry(pk[PublicKeyHexProperty])
}

// JSONLdObject returns map that represents JSON LD Object.
func (pk PublicKey) JSONLdObject() map[string]interface{} {
	return pk
}

// ParsePublicKeys parses the publicKey array entry of a document into PublicKey values,
// skipping any entry that isn't a JSON object.
func ParsePublicKeys(entry interface{}) []PublicKey {
	typedEntry, ok := entry.([]interface{})
	if !ok {
		return nil
	}

	var result []PublicKey
	for _, e := range typedEntry {
		emap, ok := e.(map[string]interface{})
		if !ok {
			continue
		}

		result = append(result, NewPublicKey(emap))
	}

	return result
}
