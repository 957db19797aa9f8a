/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "publicKey": [
    {
      "id": "key1",
      "type": "EcdsaSecp256k1VerificationKey2019",
      "publicKeyHex": "04abcdef"
    }
  ]
}`

func TestFromBytes(t *testing.T) {
	doc, err := FromBytes([]byte(sampleDoc))
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.Equal(t, "", doc.ID())
	require.Equal(t, 1, len(doc.PublicKeys()))
	require.Equal(t, 0, len(doc.Context()))

	bytes, err := doc.Bytes()
	require.NoError(t, err)
	require.NotEmpty(t, bytes)

	jsonld := doc.JSONLdObject()
	require.NotNil(t, jsonld)

	roundTripped := FromJSONLDObject(jsonld)
	require.Equal(t, doc.ID(), roundTripped.ID())
}

func TestDocument_Services(t *testing.T) {
	doc, err := FromBytes([]byte(`{
	  "service": [
	    {"id": "#vcs", "type": "VerifiableCredentialService", "serviceEndpoint": "https://example.com/vc/"}
	  ]
	}`))
	require.NoError(t, err)

	services := doc.Services()
	require.Len(t, services, 1)
	require.Equal(t, "#vcs", services[0].ID())
	require.Equal(t, "https://example.com/vc/", services[0].Endpoint())
}

func TestDocument_ServicesEmptyWhenAbsent(t *testing.T) {
	doc, err := FromBytes([]byte(sampleDoc))
	require.NoError(t, err)
	require.Empty(t, doc.Services())
}

func TestFromBytesError(t *testing.T) {
	doc, err := FromBytes([]byte("[test : 123]"))
	require.Error(t, err)
	require.Nil(t, doc)
	require.Contains(t, err.Error(), "invalid character")
}

func TestMarshalError(t *testing.T) {
	doc := Document{}
	doc["test"] = make(chan int)

	bytes, err := doc.Bytes()
	require.Error(t, err)
	require.Nil(t, bytes)
	require.Contains(t, err.Error(), "json: unsupported type: chan int")
}

func TestGetStringValue(t *testing.T) {
	const key = "key"
	const value = "value"

	doc := Document{}
	doc[key] = value

	require.Equal(t, value, doc.GetStringValue(key))

	doc[key] = []string{"hello"}
	require.Equal(t, "", doc.GetStringValue(key))
}

func TestStringEntry(t *testing.T) {
	str := stringEntry([]string{"hello"})
	require.Empty(t, str)

	str = stringEntry("hello")
	require.Equal(t, "hello", str)
}

func TestArrayStringEntry(t *testing.T) {
	arr := StringArray(nil)
	require.Nil(t, arr)

	arr = StringArray("hello")
	require.Nil(t, arr)
}
