// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package attest

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustKey(t *testing.T, hexKey string) Key {
	t.Helper()

	raw, err := hex.DecodeString(hexKey)
	require.NoError(t, err)
	require.Len(t, raw, KeySize)

	var key Key
	copy(key[:], raw)

	return key
}

// RFC 8032 §7.1 test vectors.
var rfc8032Vectors = []struct {
	name    string
	seed    string
	public  string
	message string
	sig     string
}{
	{
		name:    "test 1 empty message",
		seed:    "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
		public:  "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		message: "",
		sig: "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e06522490155" +
			"5fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
	},
	{
		name:    "test 2 one byte",
		seed:    "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb",
		public:  "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c",
		message: "72",
		sig: "92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da" +
			"085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00",
	},
}

func TestSignMatchesRFC8032(t *testing.T) {
	for _, tc := range rfc8032Vectors {
		t.Run(tc.name, func(t *testing.T) {
			priv := mustKey(t, tc.seed)

			message, err := hex.DecodeString(tc.message)
			require.NoError(t, err)

			sig := Sign(priv, message)
			assert.Equal(t, tc.sig, hex.EncodeToString(sig[:]))

			pub := PublicKey(priv)
			assert.Equal(t, tc.public, hex.EncodeToString(pub[:]))
			assert.True(t, Verify(pub, message, sig))
		})
	}
}

func TestSignDeterministic(t *testing.T) {
	priv := mustKey(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	message := []byte("u4pruy")

	first := Sign(priv, message)
	for range 10 {
		assert.Equal(t, first, Sign(priv, message))
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	pair, err := GenerateKey(rand.Reader)
	require.NoError(t, err)

	message := []byte("u4pruy")
	sig := Sign(pair.Private, message)
	require.True(t, Verify(pair.Public, message, sig))

	t.Run("flipped signature byte", func(t *testing.T) {
		for i := range sig {
			bad := sig
			bad[i] ^= 0x01
			assert.False(t, Verify(pair.Public, message, bad), "flip at byte %d accepted", i)
		}
	})

	t.Run("flipped message byte", func(t *testing.T) {
		bad := bytes.Clone(message)
		bad[0] ^= 0x01
		assert.False(t, Verify(pair.Public, bad, sig))
	})

	t.Run("different public key", func(t *testing.T) {
		other, err := GenerateKey(rand.Reader)
		require.NoError(t, err)
		assert.False(t, Verify(other.Public, message, sig))
	})

	t.Run("zero public key", func(t *testing.T) {
		assert.False(t, Verify(Key{}, message, sig))
	})
}

func TestGenerateKey(t *testing.T) {
	pair, err := GenerateKey(rand.Reader)
	require.NoError(t, err)

	assert.Equal(t, pair.Public, PublicKey(pair.Private))
	assert.NotEqual(t, pair.Private, pair.Public)

	other, err := GenerateKey(rand.Reader)
	require.NoError(t, err)
	assert.NotEqual(t, pair.Private, other.Private)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool exhausted")
}

func TestGenerateKeyRandomnessUnavailable(t *testing.T) {
	_, err := GenerateKey(failingReader{})
	require.Error(t, err)
	assert.Equal(t, ErrorKindRandomnessUnavailable, Kind(err))
}

func TestSignatureJSON(t *testing.T) {
	var sig Signature
	for i := range sig {
		sig[i] = byte(i)
	}

	data, err := json.Marshal(sig)
	require.NoError(t, err)

	// array of unsigned byte values, not base64 or hex
	assert.True(t, bytes.HasPrefix(data, []byte("[0,1,2,3,")), "got %s", data)

	var back Signature
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, sig, back)
}

func TestSignatureJSONRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not an array", `"ZWQyNTUxOQ=="`},
		{"too short", `[1,2,3]`},
		{"too long", `[` + onesCSV(65) + `]`},
		{"value out of byte range", `[256,` + onesCSV(63) + `]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var sig Signature
			assert.Error(t, json.Unmarshal([]byte(tc.input), &sig))
		})
	}
}

func onesCSV(n int) string {
	out := make([]byte, 0, 2*n)
	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, ',')
		}

		out = append(out, '1')
	}

	return string(out)
}
