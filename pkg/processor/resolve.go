/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package processor

import (
	"strings"

	"github.com/jonnycrunch/sidetree-core/pkg/document"
	"github.com/jonnycrunch/sidetree-core/pkg/encoding"
	"github.com/jonnycrunch/sidetree-core/pkg/log"
	"github.com/jonnycrunch/sidetree-core/pkg/operation"
	"github.com/jonnycrunch/sidetree-core/pkg/patch"
)

// Resolve computes the current DID Document for did, given either as the full DID (method
// prefix followed by the unique suffix) or as the bare unique suffix, or reports ok == false if
// no valid chain exists for it (no accepted Create, a forged Create signature, or a valid Delete).
// It never errors: every failure attributable to operation contents (bad signature, broken
// predecessor link, rejected patch) simply makes that operation ineligible.
func (p *Processor) Resolve(did string) (document.Document, bool) {
	uniqueSuffix := strings.TrimPrefix(did, p.methodPrefix)

	p.mutex.RLock()
	defer p.mutex.RUnlock()

	bucket, ok := p.buckets[uniqueSuffix]
	if !ok {
		return nil, false
	}

	create, doc, tipHash := p.selectCreate(bucket, uniqueSuffix)
	if create == nil {
		return nil, false
	}

	doc, tipHash = p.extendWithUpdates(bucket, doc, tipHash)

	if p.deleted(bucket, doc) {
		return nil, false
	}

	return doc, true
}

// selectCreate implements step 1 of chain construction: among candidate Creates whose
// operation hash equals uniqueSuffix, pick the smallest in ledger order and verify its
// signature against a key named within its own payload document.
func (p *Processor) selectCreate(bucket *operationBucket, uniqueSuffix string) (*operation.Operation, document.Document, []byte) {
	var matching []*operation.Operation

	for _, candidate := range bucket.creates {
		hash, err := candidate.OperationHash(p.registry)
		if err != nil {
			continue
		}

		if hash == uniqueSuffix {
			matching = append(matching, candidate)
		}
	}

	if len(matching) == 0 {
		return nil, nil, nil
	}

	create := sortedByLedgerOrder(matching)[0]

	pub, ok := document.FindPublicKey(create.DIDDocument, create.SigningKeyID)
	if !ok || !create.VerifySignature(pub) {
		logger.Debug("create signature verification failed", log.WithSuffix(uniqueSuffix), log.WithKeyID(create.SigningKeyID))
		return nil, nil, nil
	}

	hash, err := create.OperationHash(p.registry)
	if err != nil {
		return nil, nil, nil
	}

	tipHash, err := encoding.DecodeString(hash)
	if err != nil {
		return nil, nil, nil
	}

	return create, create.DIDDocument, tipHash
}

// extendWithUpdates implements step 2: repeatedly select, among Updates claiming the current
// tip as their predecessor, the first in ledger order whose signature, operation number, and
// patch all check out against the document as it stands so far. A predecessor slot with no
// passing candidate stops the extension entirely; it is not a license to skip ahead.
func (p *Processor) extendWithUpdates(bucket *operationBucket, doc document.Document, tipHash []byte) (document.Document, []byte) {
	expectedOpNumber := uint32(1)

	for {
		candidates := bucket.updates[string(tipHash)]
		if len(candidates) == 0 {
			return doc, tipHash
		}

		accepted, nextDoc, nextTipHash := p.applyFirstValidUpdate(sortedByLedgerOrder(candidates), doc, expectedOpNumber)
		if !accepted {
			return doc, tipHash
		}

		doc, tipHash = nextDoc, nextTipHash
		expectedOpNumber++
	}
}

func (p *Processor) applyFirstValidUpdate(candidates []*operation.Operation, doc document.Document, expectedOpNumber uint32) (bool, document.Document, []byte) {
	for _, candidate := range candidates {
		pub, ok := document.FindPublicKey(doc, candidate.SigningKeyID)
		if !ok || !candidate.VerifySignature(pub) {
			continue
		}

		if candidate.OperationNumber != expectedOpNumber {
			continue
		}

		patched, err := patch.Apply(doc, candidate.Patch)
		if err != nil {
			continue
		}

		hash, err := candidate.OperationHash(p.registry)
		if err != nil {
			continue
		}

		nextTipHash, err := encoding.DecodeString(hash)
		if err != nil {
			continue
		}

		return true, patched, nextTipHash
	}

	return false, nil, nil
}

// deleted implements step 3: a Delete counts only if its signature verifies against some
// currently-present key in the final resolved document.
func (p *Processor) deleted(bucket *operationBucket, doc document.Document) bool {
	for _, candidate := range bucket.deletes {
		for _, pk := range doc.PublicKeys() {
			pub, ok := document.FindPublicKey(doc, pk.ID())
			if !ok {
				continue
			}

			if candidate.VerifySignature(pub) {
				return true
			}
		}
	}

	return false
}
