/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/jonnycrunch/sidetree-core/pkg/encoding"
	"github.com/jonnycrunch/sidetree-core/pkg/hashing"
	"github.com/jonnycrunch/sidetree-core/pkg/protocol"
)

// ErrHashTimeUnknown is returned when a hash is requested for an operation that has not yet
// been anchored (TransactionTime is unset).
var ErrHashTimeUnknown = errors.New("hash requested for unanchored operation")

// OperationHash computes the operation's canonical hash: for Create, over the encoded payload
// (ASCII bytes); for everything else, over the full operation buffer. The hash algorithm is
// whichever protocol is in force at the operation's anchoring transaction time.
func (op *Operation) OperationHash(registry *protocol.Registry) (string, error) {
	if op.Anchoring.TransactionTime == 0 {
		return "", ErrHashTimeUnknown
	}

	proto, err := registry.Get(op.Anchoring.TransactionTime)
	if err != nil {
		return "", err
	}

	hashInput := op.Buffer
	if op.Type == TypeCreate {
		hashInput = []byte(op.EncodedPayload)
	}

	digest, err := hashing.ComputeMultihash(proto.HashAlgorithmCode, hashInput)
	if err != nil {
		return "", err
	}

	return encoding.EncodeToString(digest), nil
}

// UniqueSuffix returns the DID unique suffix for this operation: for Create, the operation
// hash; for everything else, the embedded did field with methodPrefix stripped.
func (op *Operation) UniqueSuffix(registry *protocol.Registry, methodPrefix string) (string, error) {
	if op.Type == TypeCreate {
		return op.OperationHash(registry)
	}

	if !strings.HasPrefix(op.DID, methodPrefix) {
		return "", errors.Errorf("did %q does not start with method prefix %q", op.DID, methodPrefix)
	}

	return strings.TrimPrefix(op.DID, methodPrefix), nil
}
