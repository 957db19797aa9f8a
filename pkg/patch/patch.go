/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package patch applies RFC 6902 JSON Patch documents against DID documents. It never mutates
// its input: Apply marshals the document, runs the patch against the copy, and unmarshals the
// result into a fresh document.
package patch

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/pkg/errors"

	"github.com/jonnycrunch/sidetree-core/pkg/document"
)

// ErrInvalidPatch is returned when the patch is not a well-formed RFC 6902 document, or when
// applying it fails (e.g. "test" op mismatch, "remove" on a missing path).
var ErrInvalidPatch = errors.New("invalid patch")

// Apply applies patchJSON, an RFC 6902 JSON Patch document, to doc and returns the resulting
// document. doc is left unmodified.
func Apply(doc document.Document, patchJSON []byte) (document.Document, error) {
	decoded, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPatch, err.Error())
	}

	original, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	patched, err := decoded.Apply(original)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPatch, err.Error())
	}

	return document.FromBytes(patched)
}
