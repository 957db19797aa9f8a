/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package processor

import (
	"sort"

	"github.com/jonnycrunch/sidetree-core/pkg/operation"
)

// operationBucket holds every operation known to apply to one DID unique suffix, grouped by
// type the way resolution needs them: candidate Creates, Updates indexed by the predecessor
// hash they claim, and Deletes. Membership here says nothing about validity; that is resolve's
// job.
type operationBucket struct {
	creates []*operation.Operation
	updates map[string][]*operation.Operation
	deletes []*operation.Operation
}

func newOperationBucket() *operationBucket {
	return &operationBucket{updates: make(map[string][]*operation.Operation)}
}

func (b *operationBucket) addCreate(op *operation.Operation) {
	if containsAnchoring(b.creates, op) {
		return
	}

	b.creates = append(b.creates, op)
}

func (b *operationBucket) addUpdate(op *operation.Operation) {
	key := string(op.PreviousOperationHash)
	if containsAnchoring(b.updates[key], op) {
		return
	}

	b.updates[key] = append(b.updates[key], op)
}

func (b *operationBucket) addDelete(op *operation.Operation) {
	if containsAnchoring(b.deletes, op) {
		return
	}

	b.deletes = append(b.deletes, op)
}

// discardAfter removes every operation anchored after transactionNumber, used by Rollback.
func (b *operationBucket) discardAfter(transactionNumber uint64) {
	b.creates = filterAnchoring(b.creates, transactionNumber)
	b.deletes = filterAnchoring(b.deletes, transactionNumber)

	for key, ops := range b.updates {
		filtered := filterAnchoring(ops, transactionNumber)
		if len(filtered) == 0 {
			delete(b.updates, key)
			continue
		}

		b.updates[key] = filtered
	}
}

func (b *operationBucket) empty() bool {
	return len(b.creates) == 0 && len(b.updates) == 0 && len(b.deletes) == 0
}

func containsAnchoring(ops []*operation.Operation, op *operation.Operation) bool {
	for _, existing := range ops {
		if existing.Anchoring.TransactionNumber == op.Anchoring.TransactionNumber &&
			existing.Anchoring.OperationIndex == op.Anchoring.OperationIndex {
			return true
		}
	}

	return false
}

func filterAnchoring(ops []*operation.Operation, transactionNumber uint64) []*operation.Operation {
	var kept []*operation.Operation

	for _, op := range ops {
		if op.Anchoring.TransactionNumber <= transactionNumber {
			kept = append(kept, op)
		}
	}

	return kept
}

// sortedByLedgerOrder returns a copy of ops sorted by (transactionNumber, operationIndex), the
// total order ties among competing candidates are broken by.
func sortedByLedgerOrder(ops []*operation.Operation) []*operation.Operation {
	sorted := make([]*operation.Operation, len(ops))
	copy(sorted, ops)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Anchoring.Less(sorted[j].Anchoring)
	})

	return sorted
}
