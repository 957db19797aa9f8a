/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/require"

	"github.com/jonnycrunch/sidetree-core/pkg/encoding"
)

func generateKey(t *testing.T) *PrivateKey {
	t.Helper()

	key, err := ecdsa.GenerateKey(btcec.S256(), rand.Reader)
	require.NoError(t, err)

	return NewPrivateKey(key)
}

func TestSignAndVerify(t *testing.T) {
	priv := generateKey(t)
	encodedPayload := encoding.EncodeToString([]byte(`{"hello":"world"}`))

	sig, err := Sign(encodedPayload, priv)
	require.NoError(t, err)

	require.True(t, Verify(encodedPayload, sig, priv.PublicKey()))
}

func TestVerify_WrongKey(t *testing.T) {
	priv := generateKey(t)
	other := generateKey(t)
	encodedPayload := encoding.EncodeToString([]byte("payload"))

	sig, err := Sign(encodedPayload, priv)
	require.NoError(t, err)

	require.False(t, Verify(encodedPayload, sig, other.PublicKey()))
}

func TestVerify_TamperedPayload(t *testing.T) {
	priv := generateKey(t)
	encodedPayload := encoding.EncodeToString([]byte("payload"))

	sig, err := Sign(encodedPayload, priv)
	require.NoError(t, err)

	tampered := encoding.EncodeToString([]byte("tampered"))
	require.False(t, Verify(tampered, sig, priv.PublicKey()))
}

func TestVerify_MalformedSignature(t *testing.T) {
	priv := generateKey(t)
	encodedPayload := encoding.EncodeToString([]byte("payload"))

	require.False(t, Verify(encodedPayload, []byte("short"), priv.PublicKey()))
	require.False(t, Verify(encodedPayload, nil, priv.PublicKey()))
}

func TestVerify_NilPublicKey(t *testing.T) {
	require.False(t, Verify("x", []byte("sig"), nil))
}

func TestSign_NilPrivateKey(t *testing.T) {
	_, err := Sign("x", nil)
	require.Error(t, err)
}

func TestParsePublicKeyHex_RoundTrip(t *testing.T) {
	priv := generateKey(t)

	hexKey := hex.EncodeToString(elliptic.Marshal(btcec.S256(), priv.key.X, priv.key.Y))

	pub, err := ParsePublicKeyHex(hexKey)
	require.NoError(t, err)

	encodedPayload := encoding.EncodeToString([]byte("payload"))
	sig, err := Sign(encodedPayload, priv)
	require.NoError(t, err)

	require.True(t, Verify(encodedPayload, sig, pub))
}

func TestParsePublicKeyHex_Malformed(t *testing.T) {
	_, err := ParsePublicKeyHex("not hex!!")
	require.Error(t, err)
}

func TestParsePublicKeyJWK_MissingCoordinates(t *testing.T) {
	jwk := &JWK{Kty: "EC", Crv: "secp256k1", X: "", Y: ""}
	_, err := ParsePublicKeyJWK(jwk)
	require.Error(t, err)
}

func TestParsePublicKeyJWK_RoundTrip(t *testing.T) {
	priv := generateKey(t)

	jwk := &JWK{
		Kty: "EC",
		Crv: "secp256k1",
		X:   encoding.EncodeToString(copyPadded(priv.key.X.Bytes(), keySize)),
		Y:   encoding.EncodeToString(copyPadded(priv.key.Y.Bytes(), keySize)),
	}

	pub, err := ParsePublicKeyJWK(jwk)
	require.NoError(t, err)

	encodedPayload := encoding.EncodeToString([]byte("payload"))
	sig, err := Sign(encodedPayload, priv)
	require.NoError(t, err)

	require.True(t, Verify(encodedPayload, sig, pub))
}
