/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package protocol

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrNoProtocolConfigured is returned when no protocol entry applies to the requested transaction time.
var ErrNoProtocolConfigured = errors.New("no protocol configured for transaction time")

// Entry pairs a protocol version with the transaction time it starts applying at.
type Entry struct {
	StartingTransactionTime uint64
	Protocol                Protocol
}

// Registry is a process-wide, read-only mapping from ledger transaction time to the protocol
// parameters in force at that time. It is built once at startup and passed to the processor and
// operation parser by reference.
type Registry struct {
	entries []Entry
}

// NewRegistry builds a Registry from the given entries, sorted by starting transaction time.
func NewRegistry(entries ...Entry) *Registry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartingTransactionTime < sorted[j].StartingTransactionTime
	})

	return &Registry{entries: sorted}
}

// Get returns the protocol entry with the largest StartingTransactionTime less than or equal
// to transactionTime. It fails with ErrNoProtocolConfigured if no such entry exists.
func (r *Registry) Get(transactionTime uint64) (Protocol, error) {
	var found *Protocol

	for i := range r.entries {
		if r.entries[i].StartingTransactionTime > transactionTime {
			break
		}

		found = &r.entries[i].Protocol
	}

	if found == nil {
		return Protocol{}, errors.Wrapf(ErrNoProtocolConfigured, "transaction time %d", transactionTime)
	}

	return *found, nil
}
