/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hashing

import (
	"crypto/sha256"

	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"

	"github.com/jonnycrunch/sidetree-core/pkg/encoding"
)

// ErrUnsupportedAlgorithm is returned when a multihash algorithm code has no registered digest function.
var ErrUnsupportedAlgorithm = errors.New("hashing algorithm not supported")

// ComputeMultihash hashes the given bytes with the digest function named by multihashCode and
// returns the self-describing multihash encoding: [algorithm code, digest length, digest...].
func ComputeMultihash(multihashCode uint64, data []byte) ([]byte, error) {
	digest, err := digestFor(multihashCode, data)
	if err != nil {
		return nil, err
	}

	return multihash.Encode(digest, multihashCode)
}

// CalculateMultihash computes the multihash of data and returns it base64url-encoded.
func CalculateMultihash(multihashCode uint64, data []byte) (string, error) {
	mh, err := ComputeMultihash(multihashCode, data)
	if err != nil {
		return "", err
	}

	return encoding.EncodeToString(mh), nil
}

// GetMultihashCode extracts the algorithm code from an encoded multihash string.
func GetMultihashCode(encodedMultihash string) (uint64, error) {
	raw, err := encoding.DecodeString(encodedMultihash)
	if err != nil {
		return 0, err
	}

	decoded, err := multihash.Decode(raw)
	if err != nil {
		return 0, errors.Wrap(err, "decode multihash")
	}

	return decoded.Code, nil
}

// IsValidMultihash checks whether encodedMultihash is a well-formed, recognized multihash.
func IsValidMultihash(encodedMultihash string) bool {
	code, err := GetMultihashCode(encodedMultihash)
	if err != nil {
		return false
	}

	return multihash.ValidCode(code)
}

// IsComputedUsingAlgorithm reports whether encodedMultihash was produced with the given algorithm code.
func IsComputedUsingAlgorithm(encodedMultihash string, multihashCode uint64) bool {
	code, err := GetMultihashCode(encodedMultihash)
	if err != nil {
		return false
	}

	return code == multihashCode
}

func digestFor(multihashCode uint64, data []byte) ([]byte, error) {
	switch multihashCode {
	case multihash.SHA2_256:
		digest := sha256.Sum256(data)
		return digest[:], nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedAlgorithm, "code %d", multihashCode)
	}
}
