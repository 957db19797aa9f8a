/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hashing

import (
	"testing"

	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"

	"github.com/jonnycrunch/sidetree-core/pkg/encoding"
)

func TestComputeMultihash(t *testing.T) {
	mh, err := ComputeMultihash(multihash.SHA2_256, []byte("hello"))
	require.NoError(t, err)
	require.NotEmpty(t, mh)

	encoded := encoding.EncodeToString(mh)
	require.True(t, IsValidMultihash(encoded))
	require.True(t, IsComputedUsingAlgorithm(encoded, multihash.SHA2_256))
}

func TestComputeMultihash_UnsupportedAlgorithm(t *testing.T) {
	_, err := ComputeMultihash(0x99, []byte("hello"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestCalculateMultihash_RoundTrip(t *testing.T) {
	encoded, err := CalculateMultihash(multihash.SHA2_256, []byte("content"))
	require.NoError(t, err)

	code, err := GetMultihashCode(encoded)
	require.NoError(t, err)
	require.Equal(t, uint64(multihash.SHA2_256), code)
}

func TestIsValidMultihash_Malformed(t *testing.T) {
	require.False(t, IsValidMultihash("not-a-multihash"))
}

func TestIsComputedUsingAlgorithm_WrongAlgorithm(t *testing.T) {
	encoded, err := CalculateMultihash(multihash.SHA2_256, []byte("content"))
	require.NoError(t, err)

	require.False(t, IsComputedUsingAlgorithm(encoded, 0x99))
}
