/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package encoding

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrMalformedEncoding is returned when an encoded string is not valid base64url, or (for
// DecodeStringToUTF8) decodes to bytes that are not valid UTF-8.
var ErrMalformedEncoding = errors.New("malformed encoding")

// EncodeToString encodes the bytes to an unpadded base64url string.
func EncodeToString(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeString decodes an unpadded base64url string back to bytes.
func DecodeString(encodedContent string) ([]byte, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(encodedContent)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedEncoding, err.Error())
	}

	return decoded, nil
}

// DecodeStringToUTF8 decodes an unpadded base64url string and validates that the
// resulting bytes are well-formed UTF-8, returning them as a string.
func DecodeStringToUTF8(encodedContent string) (string, error) {
	decoded, err := DecodeString(encodedContent)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(decoded) {
		return "", errors.Wrap(ErrMalformedEncoding, "decoded content is not valid UTF-8")
	}

	return string(decoded), nil
}
