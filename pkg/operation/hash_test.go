/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

import (
	"testing"

	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"

	"github.com/jonnycrunch/sidetree-core/pkg/hashing"
	"github.com/jonnycrunch/sidetree-core/pkg/protocol"
)

func mustMultihash(t *testing.T, data string) string {
	t.Helper()

	hash, err := hashing.CalculateMultihash(multihash.SHA2_256, []byte(data))
	require.NoError(t, err)

	return hash
}

func TestOperationHash_CreateUsesEncodedPayloadNotBuffer(t *testing.T) {
	key, priv := generateTestKey(t)
	buffer := buildCreateBuffer(t, key, priv, "key1")

	op, err := Parse(buffer, AnchoringContext{TransactionTime: 100})
	require.NoError(t, err)

	registry := testRegistry()

	hashBefore, err := op.OperationHash(registry)
	require.NoError(t, err)

	// Mutating the raw buffer (e.g. whitespace differences introduced by transport) must not
	// change a Create operation's hash, since it is computed over EncodedPayload alone.
	op.Buffer = append(append([]byte{}, op.Buffer...), ' ')

	hashAfter, err := op.OperationHash(registry)
	require.NoError(t, err)
	require.Equal(t, hashBefore, hashAfter)
}

func TestOperationHash_NonCreateUsesBuffer(t *testing.T) {
	_, priv := generateTestKey(t)

	previousHash := mustMultihash(t, "x")
	payload := []byte(`{"did":"did:example:abc123","operationNumber":1,"previousOperationHash":"` + previousHash + `","patch":[]}`)
	buffer := buildBuffer(t, priv, "key1", TypeUpdate, payload)

	op, err := Parse(buffer, AnchoringContext{TransactionTime: 100})
	require.NoError(t, err)

	registry := testRegistry()

	hashBefore, err := op.OperationHash(registry)
	require.NoError(t, err)

	op.Buffer = append(append([]byte{}, op.Buffer...), ' ')

	hashAfter, err := op.OperationHash(registry)
	require.NoError(t, err)
	require.NotEqual(t, hashBefore, hashAfter)
}

func TestOperationHash_NoProtocolConfigured(t *testing.T) {
	key, priv := generateTestKey(t)
	buffer := buildCreateBuffer(t, key, priv, "key1")

	op, err := Parse(buffer, AnchoringContext{TransactionTime: 100})
	require.NoError(t, err)

	emptyRegistry := protocol.NewRegistry()

	_, err = op.OperationHash(emptyRegistry)
	require.Error(t, err)
}

func TestUniqueSuffix_Create(t *testing.T) {
	key, priv := generateTestKey(t)
	buffer := buildCreateBuffer(t, key, priv, "key1")

	op, err := Parse(buffer, AnchoringContext{TransactionTime: 100})
	require.NoError(t, err)

	registry := testRegistry()

	hash, err := op.OperationHash(registry)
	require.NoError(t, err)

	suffix, err := op.UniqueSuffix(registry, methodPrefix)
	require.NoError(t, err)
	require.Equal(t, hash, suffix)
}

func TestUniqueSuffix_Update_StripsPrefix(t *testing.T) {
	_, priv := generateTestKey(t)

	previousHash := mustMultihash(t, "x")
	payload := []byte(`{"did":"did:example:abc123","operationNumber":1,"previousOperationHash":"` + previousHash + `","patch":[]}`)
	buffer := buildBuffer(t, priv, "key1", TypeUpdate, payload)

	op, err := Parse(buffer, AnchoringContext{TransactionTime: 100})
	require.NoError(t, err)

	suffix, err := op.UniqueSuffix(testRegistry(), methodPrefix)
	require.NoError(t, err)
	require.Equal(t, "abc123", suffix)
}

func TestUniqueSuffix_Update_WrongPrefix(t *testing.T) {
	_, priv := generateTestKey(t)

	previousHash := mustMultihash(t, "x")
	payload := []byte(`{"did":"did:other:abc123","operationNumber":1,"previousOperationHash":"` + previousHash + `","patch":[]}`)
	buffer := buildBuffer(t, priv, "key1", TypeUpdate, payload)

	op, err := Parse(buffer, AnchoringContext{TransactionTime: 100})
	require.NoError(t, err)

	_, err = op.UniqueSuffix(testRegistry(), methodPrefix)
	require.Error(t, err)
}

func TestUniqueSuffix_Delete_StripsPrefix(t *testing.T) {
	_, priv := generateTestKey(t)

	payload := []byte(`{"did":"did:example:abc123"}`)
	buffer := buildBuffer(t, priv, "key1", TypeDelete, payload)

	op, err := Parse(buffer, AnchoringContext{TransactionTime: 100})
	require.NoError(t, err)

	suffix, err := op.UniqueSuffix(testRegistry(), methodPrefix)
	require.NoError(t, err)
	require.Equal(t, "abc123", suffix)
}

func TestOperationHash_UnknownMultihashCode(t *testing.T) {
	key, priv := generateTestKey(t)
	buffer := buildCreateBuffer(t, key, priv, "key1")

	op, err := Parse(buffer, AnchoringContext{TransactionTime: 100})
	require.NoError(t, err)

	registry := protocol.NewRegistry(protocol.Entry{
		StartingTransactionTime: 0,
		Protocol:                protocol.Protocol{HashAlgorithmCode: 0xff},
	})

	_, err = op.OperationHash(registry)
	require.Error(t, err)
}
