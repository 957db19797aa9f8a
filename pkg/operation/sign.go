/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

import "github.com/jonnycrunch/sidetree-core/pkg/crypto"

// VerifySignature recomputes the JWS signing input from the encoded payload and verifies it
// against pub. It never errors; an invalid or mismatched signature simply returns false.
func (op *Operation) VerifySignature(pub *crypto.PublicKey) bool {
	return crypto.Verify(op.EncodedPayload, op.Signature, pub)
}
