/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package operation parses anchored operation buffers into immutable Operation values and
// exposes their canonical hash, DID unique suffix, and signature verification. It performs no
// semantic validation against other operations; that is the processor's concern.
package operation

import "github.com/jonnycrunch/sidetree-core/pkg/document"

// Type is the kind of mutation an operation performs.
type Type string

const (
	// TypeCreate creates a new DID.
	TypeCreate Type = "create"

	// TypeUpdate applies a JSON patch to an existing DID document.
	TypeUpdate Type = "update"

	// TypeDelete marks a DID as deleted.
	TypeDelete Type = "delete"

	// TypeRecover is reserved; no payload schema is defined for it in this core.
	TypeRecover Type = "recover"
)

// AnchoringContext is the ledger-supplied envelope accompanying every ingested operation.
// (TransactionNumber, OperationIndex) is globally unique and totally ordered.
type AnchoringContext struct {
	TransactionTime   uint64
	TransactionNumber uint64
	BatchFileHash     []byte
	OperationIndex    uint32
}

// Less orders two anchoring contexts by (TransactionNumber, OperationIndex), the canonical
// tie-break used throughout chain construction.
func (a AnchoringContext) Less(other AnchoringContext) bool {
	if a.TransactionNumber != other.TransactionNumber {
		return a.TransactionNumber < other.TransactionNumber
	}

	return a.OperationIndex < other.OperationIndex
}

// Operation is an immutable parsed representation of one anchored operation.
type Operation struct {
	Buffer         []byte
	Anchoring      AnchoringContext
	Type           Type
	SigningKeyID   string
	Signature      []byte
	EncodedPayload string

	// DIDDocument holds the original document for Create operations.
	DIDDocument document.Document

	// DID, OperationNumber, PreviousOperationHash, and Patch are populated for Update and
	// Delete operations; DID is populated for both, the rest for Update only.
	DID                   string
	OperationNumber       uint32
	PreviousOperationHash []byte
	Patch                 []byte
}
