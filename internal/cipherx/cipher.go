// Package cipherx provides authenticated encryption of vault content using
// AES-256-GCM.
//
// The IV is generated internally from crypto/rand on every Encrypt call and
// is never accepted as caller input: IV uniqueness per key is load-bearing
// for GCM security, so it is enforced by construction rather than by caller
// discipline. Decryption is fail-closed; on any tag mismatch no plaintext
// leaves the package.
package cipherx

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/phantomkeep/phantomkeep/internal/common"
	"github.com/phantomkeep/phantomkeep/internal/shared"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// IVSize is the GCM nonce length in bytes.
	IVSize = 12
	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16
)

// Blob is one authenticated-encryption result. Wire layout (MarshalBinary):
//
//	ciphertext (variable) || iv (12 bytes) || authTag (16 bytes)
type Blob struct {
	Ciphertext []byte
	IV         []byte
	AuthTag    []byte
}

// MarshalBinary encodes the blob as ciphertext || iv || authTag.
func (b *Blob) MarshalBinary() ([]byte, error) {
	if len(b.IV) != IVSize || len(b.AuthTag) != TagSize {
		return nil, common.ErrInvalidBlob
	}
	out := make([]byte, 0, len(b.Ciphertext)+IVSize+TagSize)
	out = append(out, b.Ciphertext...)
	out = append(out, b.IV...)
	out = append(out, b.AuthTag...)
	return out, nil
}

// UnmarshalBinary reassembles a blob from ciphertext || iv || authTag.
func (b *Blob) UnmarshalBinary(data []byte) error {
	if len(data) < IVSize+TagSize {
		return common.ErrInvalidBlob
	}
	n := len(data) - IVSize - TagSize
	b.Ciphertext = shared.CopyBytes(data[:n])
	b.IV = shared.CopyBytes(data[n : n+IVSize])
	b.AuthTag = shared.CopyBytes(data[n+IVSize:])
	return nil
}

// Encrypt seals plaintext under key with AES-256-GCM and a fresh random
// 96-bit IV. The optional aad binds external context (e.g. a vault tag) into
// the authentication tag without being part of the ciphertext.
func Encrypt(plaintext, key, aad []byte) (*Blob, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	iv, err := shared.RandBytes(IVSize)
	if err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	sealed := aesgcm.Seal(nil, iv, plaintext, aad)
	n := len(sealed) - TagSize

	return &Blob{
		Ciphertext: sealed[:n:n],
		IV:         iv,
		AuthTag:    sealed[n:],
	}, nil
}

// Decrypt opens a blob and returns the plaintext. Every failure mode after
// parameter validation (wrong key, flipped ciphertext bit, forged or
// truncated tag, mangled IV) surfaces as the same opaque
// common.ErrAuthenticationFailed. No partial plaintext is ever returned.
func Decrypt(b *Blob, key, aad []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(b.IV) != IVSize || len(b.AuthTag) != TagSize {
		return nil, common.ErrAuthenticationFailed
	}

	sealed := make([]byte, 0, len(b.Ciphertext)+TagSize)
	sealed = append(sealed, b.Ciphertext...)
	sealed = append(sealed, b.AuthTag...)

	plaintext, err := aesgcm.Open(nil, b.IV, sealed, aad)
	if err != nil {
		return nil, common.ErrAuthenticationFailed
	}
	if plaintext == nil {
		// Open yields nil for zero recovered bytes; a successful decrypt
		// always returns a non-nil slice so callers can tell "empty file"
		// from "no plaintext".
		plaintext = []byte{}
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, common.ErrInvalidKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return aesgcm, nil
}
