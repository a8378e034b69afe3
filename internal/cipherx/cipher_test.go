package cipherx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phantomkeep/phantomkeep/internal/common"
	"github.com/phantomkeep/phantomkeep/internal/shared"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := shared.RandBytes(KeySize)
	require.NoError(t, err)
	return key
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey(t)

	tests := [][]byte{
		[]byte("Hello World"),
		{},
		[]byte{0x00},
		make([]byte, 64*1024),
	}
	for i, plaintext := range tests {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			blob, err := Encrypt(plaintext, key, nil)
			require.NoError(t, err)
			require.Len(t, blob.IV, IVSize)
			require.Len(t, blob.AuthTag, TagSize)
			require.Len(t, blob.Ciphertext, len(plaintext))

			got, err := Decrypt(blob, key, nil)
			require.NoError(t, err)
			assert.Equal(t, plaintext, got)
		})
	}
}

func TestDecrypt_EmptyPlaintextNonNil(t *testing.T) {
	key := testKey(t)

	for _, plaintext := range [][]byte{nil, {}} {
		blob, err := Encrypt(plaintext, key, nil)
		require.NoError(t, err)

		got, err := Decrypt(blob, key, nil)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []byte{}, got)
	}
}

func TestEncrypt_RejectsBadKeySize(t *testing.T) {
	for _, n := range []int{0, 16, 24, 31, 33} {
		_, err := Encrypt([]byte("x"), make([]byte, n), nil)
		assert.ErrorIs(t, err, common.ErrInvalidKeySize, "key size %d", n)
	}
}

func TestEncrypt_IVUnique(t *testing.T) {
	key := testKey(t)
	plaintext := []byte("payload")

	const n = 10_000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		blob, err := Encrypt(plaintext, key, nil)
		require.NoError(t, err)
		iv := string(blob.IV)
		if _, dup := seen[iv]; dup {
			t.Fatalf("IV collision after %d encryptions", i)
		}
		seen[iv] = struct{}{}
	}
}

func TestDecrypt_WrongKeyFailsClosed(t *testing.T) {
	blob, err := Encrypt([]byte("secret"), testKey(t), nil)
	require.NoError(t, err)

	got, err := Decrypt(blob, testKey(t), nil)
	assert.ErrorIs(t, err, common.ErrAuthenticationFailed)
	assert.Nil(t, got)
}

func TestDecrypt_SingleBitFlipFails(t *testing.T) {
	key := testKey(t)
	blob, err := Encrypt([]byte("tamper target"), key, nil)
	require.NoError(t, err)

	sections := []struct {
		name string
		buf  []byte
	}{
		{"ciphertext", blob.Ciphertext},
		{"iv", blob.IV},
		{"tag", blob.AuthTag},
	}

	for _, sec := range sections {
		for i := range sec.buf {
			for bit := 0; bit < 8; bit++ {
				sec.buf[i] ^= 1 << bit

				got, err := Decrypt(blob, key, nil)
				if err == nil {
					t.Fatalf("decrypt succeeded with flipped bit %d of %s byte %d", bit, sec.name, i)
				}
				assert.ErrorIs(t, err, common.ErrAuthenticationFailed)
				assert.Nil(t, got)

				sec.buf[i] ^= 1 << bit
			}
		}
	}

	// untouched blob still opens
	_, err = Decrypt(blob, key, nil)
	require.NoError(t, err)
}

func TestDecrypt_AADMismatchFails(t *testing.T) {
	key := testKey(t)
	blob, err := Encrypt([]byte("bound"), key, []byte("vault-context"))
	require.NoError(t, err)

	_, err = Decrypt(blob, key, []byte("other-context"))
	assert.ErrorIs(t, err, common.ErrAuthenticationFailed)

	got, err := Decrypt(blob, key, []byte("vault-context"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bound"), got)
}

func TestDecrypt_MalformedBlobIsOpaque(t *testing.T) {
	key := testKey(t)

	tests := []*Blob{
		{Ciphertext: []byte("x"), IV: make([]byte, 8), AuthTag: make([]byte, TagSize)},
		{Ciphertext: []byte("x"), IV: make([]byte, IVSize), AuthTag: make([]byte, 4)},
		{},
	}
	for i, blob := range tests {
		_, err := Decrypt(blob, key, nil)
		assert.ErrorIs(t, err, common.ErrAuthenticationFailed, "case %d", i)
	}
}

func TestBlob_WireRoundTrip(t *testing.T) {
	key := testKey(t)
	blob, err := Encrypt([]byte("framed"), key, nil)
	require.NoError(t, err)

	wire, err := blob.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, wire, len(blob.Ciphertext)+IVSize+TagSize)

	var back Blob
	require.NoError(t, back.UnmarshalBinary(wire))
	assert.Equal(t, blob, &back)

	got, err := Decrypt(&back, key, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("framed"), got)
}

func TestBlob_UnmarshalTooShort(t *testing.T) {
	var b Blob
	err := b.UnmarshalBinary(make([]byte, IVSize+TagSize-1))
	assert.ErrorIs(t, err, common.ErrInvalidBlob)
}
