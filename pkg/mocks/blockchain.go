/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocks

import (
	"sync"

	"github.com/jonnycrunch/sidetree-core/pkg/api/ledger"
)

// LedgerFeed mocks a transaction feed for testing purposes. Transactions are appended in
// TransactionNumber order, as the real feed guarantees.
type LedgerFeed struct {
	mutex sync.RWMutex
	txns  []ledger.ResolvedTransaction
}

// NewLedgerFeed creates an empty mock feed.
func NewLedgerFeed() *LedgerFeed {
	return &LedgerFeed{}
}

// Append adds a transaction to the feed.
func (f *LedgerFeed) Append(txn ledger.ResolvedTransaction) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.txns = append(f.txns, txn)
}

// Next returns the first transaction with TransactionNumber greater than afterTransactionNumber.
func (f *LedgerFeed) Next(afterTransactionNumber uint64) (ledger.ResolvedTransaction, bool) {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	for _, txn := range f.txns {
		if txn.TransactionNumber > afterTransactionNumber {
			return txn, true
		}
	}

	return ledger.ResolvedTransaction{}, false
}
