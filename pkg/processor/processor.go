/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package processor maintains, per DID unique suffix, the set of operations anchored for that
// DID, and computes the current DID Document on demand. Processing is insert-only and performs
// no validation; all correctness lives in Resolve, so the materialized document never depends
// on the order operations were processed in.
package processor

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/jonnycrunch/sidetree-core/pkg/log"
	"github.com/jonnycrunch/sidetree-core/pkg/operation"
	"github.com/jonnycrunch/sidetree-core/pkg/protocol"
)

// ErrUnsupportedOperationType is returned by Process for any operation.Type other than
// Create, Update, or Delete (Recover is reserved but never reaches the processor, since
// operation.Parse already rejects it at construction).
var ErrUnsupportedOperationType = errors.New("operation type cannot be processed")

var logger = log.New("processor")

// Processor is a single DID method's operation store and resolver. It is safe for concurrent
// use (Resolve holds the read lock for its whole computation); Process and Resolve may be
// called from multiple goroutines, though the spec's
// concurrency model assumes a single ingestion task per processor instance.
type Processor struct {
	mutex        sync.RWMutex
	methodPrefix string
	registry     *protocol.Registry
	buckets      map[string]*operationBucket
}

// New constructs a Processor for the given DID method prefix (e.g. "did:example:"), using
// registry to resolve hash algorithms at the transaction time each operation is anchored.
func New(methodPrefix string, registry *protocol.Registry) *Processor {
	return &Processor{
		methodPrefix: methodPrefix,
		registry:     registry,
		buckets:      make(map[string]*operationBucket),
	}
}

// Process adds op to internal state. It is idempotent: processing the same (transactionNumber,
// operationIndex) twice is a no-op. It performs no signature verification and no document
// construction; it only classifies op into the bucket for its DID unique suffix.
func (p *Processor) Process(op *operation.Operation) error {
	suffix, err := op.UniqueSuffix(p.registry, p.methodPrefix)
	if err != nil {
		return err
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	bucket, ok := p.buckets[suffix]
	if !ok {
		bucket = newOperationBucket()
		p.buckets[suffix] = bucket
	}

	switch op.Type {
	case operation.TypeCreate:
		bucket.addCreate(op)
	case operation.TypeUpdate:
		bucket.addUpdate(op)
	case operation.TypeDelete:
		bucket.addDelete(op)
	default:
		return errors.Wrapf(ErrUnsupportedOperationType, "%q", op.Type)
	}

	logger.Debug("processed operation",
		log.WithSuffix(suffix),
		log.WithOperationType(string(op.Type)),
		log.WithTransactionNumber(op.Anchoring.TransactionNumber),
		log.WithOperationIndex(op.Anchoring.OperationIndex))

	return nil
}

// Rollback discards every operation anchored at a transaction number greater than
// transactionNumber, for every DID suffix. It is used when the ledger reorgs; the remaining
// state stays self-consistent because Process never depended on ingestion order to begin with.
func (p *Processor) Rollback(transactionNumber uint64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	for suffix, bucket := range p.buckets {
		bucket.discardAfter(transactionNumber)
		if bucket.empty() {
			delete(p.buckets, suffix)
		}
	}

	logger.Debug("rolled back processor state", log.WithTransactionNumber(transactionNumber))
}
