/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package canonical produces deterministic JSON encodings so that hashing
// and signing operate over a byte-for-byte reproducible representation.
package canonical

import "encoding/json"

// MarshalCanonical marshals the value into JSON with object fields in a
// deterministic (sorted) order by round-tripping through map/slice types.
func MarshalCanonical(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return reorder(raw)
}

func reorder(content []byte) ([]byte, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(content, &m); err == nil {
		return json.Marshal(m)
	}

	var a []map[string]interface{}
	if err := json.Unmarshal(content, &a); err != nil {
		return nil, err
	}

	return json.Marshal(a)
}
