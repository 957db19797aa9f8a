/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cas declares the content-addressable storage interface the core consumes to
// fetch operation batch blobs. It is an external collaborator: this module never implements
// a CAS, only the interface and a test double (pkg/mocks).
package cas

import "github.com/pkg/errors"

// ErrNotFound is returned when no content exists at the given address.
var ErrNotFound = errors.New("not found")

// ErrUnavailable is returned when the CAS cannot be reached.
var ErrUnavailable = errors.New("cas unavailable")

// Client reads content-addressed batch blobs.
type Client interface {
	// Read reads the content stored at address, returning ErrNotFound or ErrUnavailable on failure.
	Read(address []byte) ([]byte, error)
}
