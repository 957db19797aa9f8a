/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocks

import (
	"sync"

	"github.com/multiformats/go-multihash"

	"github.com/jonnycrunch/sidetree-core/pkg/api/cas"
	"github.com/jonnycrunch/sidetree-core/pkg/hashing"
)

// CASClient mocks a content-addressable store for testing purposes. Put is a test-only
// helper; the core under test only ever calls Read, following the CAS as an external,
// write-once collaborator (spec §6: the core never writes to CAS).
type CASClient struct {
	mutex sync.RWMutex
	m     map[string][]byte
	err   error
}

// NewCASClient creates a mock CAS client that fails every Read with err, or succeeds if err is nil.
func NewCASClient(err error) *CASClient {
	return &CASClient{m: make(map[string][]byte), err: err}
}

// Put stores content and returns its multihash address, as if some other party had anchored it.
func (m *CASClient) Put(content []byte) ([]byte, error) {
	address, err := hashing.ComputeMultihash(multihash.SHA2_256, content)
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.m[string(address)] = content

	return address, nil
}

// Read reads the content stored at address.
func (m *CASClient) Read(address []byte) ([]byte, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.err != nil {
		return nil, m.err
	}

	value, ok := m.m[string(address)]
	if !ok {
		return nil, cas.ErrNotFound
	}

	return value, nil
}

// SetError injects an error into the mock client.
func (m *CASClient) SetError(err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.err = err
}
