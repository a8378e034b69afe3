// Package common defines shared sentinel errors used across engine
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrAuthenticationFailed covers every cryptographic rejection: wrong
	// password, tampered ciphertext, bad tag. One value for all causes, so
	// callers cannot be turned into an oracle that distinguishes them.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInsufficientCoverCapacity is returned by embedding when the cover
	// cannot carry the payload at one bit per cover byte. Embed-time only,
	// not security-sensitive, safe to report precisely.
	ErrInsufficientCoverCapacity = errors.New("insufficient cover capacity")

	// ErrNotPresent is returned by extraction for both "no hidden payload"
	// and "extraction produced garbage". The two must stay indistinguishable.
	ErrNotPresent = errors.New("no embedded payload")

	// ErrInvalidBlob is returned when encrypted-blob wire bytes are too
	// short to contain the fixed IV and tag fields.
	ErrInvalidBlob = errors.New("invalid encrypted blob")

	// Parameter validation errors.
	ErrInvalidKeySize    = errors.New("invalid key size")
	ErrUnknownVaultType  = errors.New("unknown vault type")
	ErrInvalidIterations = errors.New("iteration count must be positive")
)
