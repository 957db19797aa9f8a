/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/jonnycrunch/sidetree-core/pkg/document"
	"github.com/jonnycrunch/sidetree-core/pkg/encoding"
	"github.com/jonnycrunch/sidetree-core/pkg/hashing"
)

// ErrMalformedOperation is returned for any JSON, schema, or payload-schema failure at
// construction time.
var ErrMalformedOperation = errors.New("malformed operation")

type wireOperation struct {
	Header    wireHeader `json:"header"`
	Payload   string     `json:"payload"`
	Signature string     `json:"signature"`
}

type wireHeader struct {
	Operation   string                 `json:"operation"`
	KID         string                 `json:"kid"`
	ProofOfWork map[string]interface{} `json:"proofOfWork"`
}

type updatePayload struct {
	DID                   string          `json:"did"`
	OperationNumber       uint32          `json:"operationNumber"`
	PreviousOperationHash string          `json:"previousOperationHash"`
	Patch                 json.RawMessage `json:"patch"`
}

type deletePayload struct {
	DID string `json:"did"`
}

// Parse parses a raw operation buffer, performing well-formedness checks only. It verifies no
// signature and validates no operation against any other.
func Parse(buffer []byte, anchoring AnchoringContext) (*Operation, error) {
	var wire wireOperation
	if err := json.Unmarshal(buffer, &wire); err != nil {
		return nil, errors.Wrap(ErrMalformedOperation, err.Error())
	}

	if err := validateEnvelope(wire); err != nil {
		return nil, err
	}

	decodedPayload, err := encoding.DecodeStringToUTF8(wire.Payload)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedOperation, err.Error())
	}

	op := &Operation{
		Buffer:         buffer,
		Anchoring:      anchoring,
		Type:           Type(wire.Header.Operation),
		SigningKeyID:   wire.Header.KID,
		EncodedPayload: wire.Payload,
	}

	op.Signature, err = encoding.DecodeString(wire.Signature)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedOperation, err.Error())
	}

	if err := populatePayload(op, []byte(decodedPayload)); err != nil {
		return nil, err
	}

	return op, nil
}

func validateEnvelope(wire wireOperation) error {
	switch Type(wire.Header.Operation) {
	case TypeCreate, TypeUpdate, TypeDelete, TypeRecover:
	default:
		return errors.Wrapf(ErrMalformedOperation, "unknown operation type %q", wire.Header.Operation)
	}

	if wire.Header.KID == "" {
		return errors.Wrap(ErrMalformedOperation, "header.kid is missing")
	}

	if wire.Header.ProofOfWork == nil {
		return errors.Wrap(ErrMalformedOperation, "header.proofOfWork is missing")
	}

	if wire.Payload == "" {
		return errors.Wrap(ErrMalformedOperation, "payload is missing")
	}

	if wire.Signature == "" {
		return errors.Wrap(ErrMalformedOperation, "signature is missing")
	}

	return nil
}

func populatePayload(op *Operation, decodedPayload []byte) error {
	switch op.Type {
	case TypeCreate:
		doc, err := document.FromBytes(decodedPayload)
		if err != nil {
			return errors.Wrap(ErrMalformedOperation, err.Error())
		}

		if !document.IsValidOriginalDocument(doc) {
			return errors.Wrap(ErrMalformedOperation, "payload is not a valid original document")
		}

		op.DIDDocument = doc

		return nil
	case TypeUpdate:
		var payload updatePayload
		if err := json.Unmarshal(decodedPayload, &payload); err != nil {
			return errors.Wrap(ErrMalformedOperation, err.Error())
		}

		if payload.DID == "" {
			return errors.Wrap(ErrMalformedOperation, "update payload is missing did")
		}

		if payload.OperationNumber < 1 {
			return errors.Wrap(ErrMalformedOperation, "update payload operationNumber must be >= 1")
		}

		if !hashing.IsValidMultihash(payload.PreviousOperationHash) {
			return errors.Wrap(ErrMalformedOperation, "update payload previousOperationHash is not a valid multihash")
		}

		var patchOps []interface{}
		if err := json.Unmarshal(payload.Patch, &patchOps); err != nil {
			return errors.Wrap(ErrMalformedOperation, "update payload patch must be a JSON-Patch array")
		}

		previousOperationHash, err := encoding.DecodeString(payload.PreviousOperationHash)
		if err != nil {
			return errors.Wrap(ErrMalformedOperation, err.Error())
		}

		op.DID = payload.DID
		op.OperationNumber = payload.OperationNumber
		op.PreviousOperationHash = previousOperationHash
		op.Patch = payload.Patch

		return nil
	case TypeDelete:
		var payload deletePayload
		if err := json.Unmarshal(decodedPayload, &payload); err != nil {
			return errors.Wrap(ErrMalformedOperation, err.Error())
		}

		if payload.DID == "" {
			return errors.Wrap(ErrMalformedOperation, "delete payload is missing did")
		}

		op.DID = payload.DID

		return nil
	case TypeRecover:
		return errors.Wrap(ErrMalformedOperation, "recover operation payload schema is not defined")
	default:
		return errors.Wrapf(ErrMalformedOperation, "unknown operation type %q", op.Type)
	}
}
