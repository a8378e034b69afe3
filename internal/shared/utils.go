// Package shared provides utility functions for secure random material
// and secure memory wiping.
package shared

import (
	"crypto/rand"
	"io"
)

// RandBytes returns size cryptographically secure random bytes.
// It returns an error if the random number generator fails.
func RandBytes(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// WipeBytes overwrites the contents of the provided byte slice with zeros.
// This is used to remove sensitive data such as passwords or cryptographic
// keys from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeBytes(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// CopyBytes returns an independent copy of b, so secret material can be
// handed out without sharing the backing array with a wipeable buffer.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
