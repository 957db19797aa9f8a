/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ledger declares the transaction feed interface the core consumes for anchoring
// metadata, adapted from the teacher's SidetreeTxn shape (pkg/api/txn/sidetree.go) and
// trimmed to the fields spec §6 names.
package ledger

// ResolvedTransaction is one anchored transaction as supplied by the ledger. TransactionTimeHash
// and AnchorFileHash are opaque to the core; it never interprets them.
type ResolvedTransaction struct {
	TransactionTime      uint64
	TransactionNumber    uint64
	TransactionTimeHash  []byte
	AnchorFileHash       []byte
	BatchFileHash        []byte
}

// Feed supplies resolved transactions in strictly increasing TransactionNumber order.
type Feed interface {
	// Next returns the next resolved transaction after the given transaction number, or
	// ok == false if none is yet available.
	Next(afterTransactionNumber uint64) (txn ResolvedTransaction, ok bool)
}
