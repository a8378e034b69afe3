package phantomkeep

import "github.com/phantomkeep/phantomkeep/internal/common"

// Sentinel errors for errors.Is() checks.
var (
	// ErrAuthenticationFailed is returned for every cryptographic
	// rejection: wrong password and tampered ciphertext deliberately look
	// identical, so callers cannot be used as an oracle to tell them apart.
	ErrAuthenticationFailed = common.ErrAuthenticationFailed

	// ErrInsufficientCoverCapacity is returned when a cover metadata blob
	// is too small to carry the phantom record at one bit per cover byte.
	ErrInsufficientCoverCapacity = common.ErrInsufficientCoverCapacity

	// ErrNotPresent is returned when extraction finds no hidden record.
	// A corrupted container produces the same error as a container that
	// never held one; the distinction must not be observable.
	ErrNotPresent = common.ErrNotPresent

	// ErrInvalidBlob is returned when encrypted-blob wire bytes are too
	// short to contain the fixed IV and tag fields.
	ErrInvalidBlob = common.ErrInvalidBlob
)
