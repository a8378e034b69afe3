// Package kdf turns a password plus a vault-type tag into deterministic
// 256-bit key material using PBKDF2-SHA256.
//
// Keys are never stored anywhere; they are re-derived from the password on
// every login and every encrypt/decrypt call. Determinism is therefore a
// contract, not an implementation detail.
package kdf

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/phantomkeep/phantomkeep/internal/common"
	"github.com/phantomkeep/phantomkeep/internal/shared"
)

// VaultType selects which of the two vaults a derivation targets.
type VaultType int

const (
	// Primary is the vault holding real content.
	Primary VaultType = iota
	// Phantom is the decoy vault revealed under a duress password.
	Phantom
)

func (v VaultType) String() string {
	switch v {
	case Primary:
		return "primary"
	case Phantom:
		return "phantom"
	default:
		return "unknown"
	}
}

const (
	// SaltSize is the length of the fixed per-vault salts.
	SaltSize = 16
	// KeySize is the derived key length (256 bits).
	KeySize = 32
	// VerifierSize is the length of a login verifier (SHA-256 digest).
	VerifierSize = sha256.Size
	// DefaultIterations is the PBKDF2 iteration count. Tunable tradeoff
	// between login latency and offline brute-force cost.
	DefaultIterations = 100_000
)

// The two salts are compile-time constants standing in for the vault-type
// selector baked into the derivation path. They must stay fixed and distinct
// for the engine's lifetime: salt reuse across vault types would collapse
// the key separation that deniability rests on. The phantom salt is the
// bitwise reversal of the primary salt.
var (
	primarySalt = [SaltSize]byte{
		0xa3, 0x1f, 0xc5, 0x88, 0x4e, 0x72, 0xd9, 0x06,
		0xbb, 0x54, 0xe1, 0x2d, 0x7c, 0x90, 0x3a, 0xf6,
	}
	phantomSalt = [SaltSize]byte{
		0x6f, 0x5c, 0x09, 0x3e, 0xb4, 0x87, 0x2a, 0xdd,
		0x60, 0x9b, 0x4e, 0x72, 0x11, 0xa3, 0xf8, 0xc5,
	}
)

// Params carries the tunable key-derivation parameters.
type Params struct {
	Iterations int
	KeyLen     int
}

// DefaultParams returns the production derivation parameters.
func DefaultParams() Params {
	return Params{
		Iterations: DefaultIterations,
		KeyLen:     KeySize,
	}
}

// Validate reports whether the parameters are usable.
func (p Params) Validate() error {
	if p.Iterations <= 0 {
		return common.ErrInvalidIterations
	}
	if p.KeyLen != KeySize {
		return common.ErrInvalidKeySize
	}
	return nil
}

// saltFor maps a vault type to its fixed salt.
func saltFor(vt VaultType) ([]byte, error) {
	switch vt {
	case Primary:
		return primarySalt[:], nil
	case Phantom:
		return phantomSalt[:], nil
	default:
		return nil, common.ErrUnknownVaultType
	}
}

// DeriveKey stretches password into KeyLen bytes of key material for the
// given vault. Same (password, vault type, params) always yields the same
// key. An empty password is accepted; password policy belongs to the caller.
//
// CPU-bound and intentionally slow. The caller owns the returned buffer and
// must wipe it when the operation it serves completes.
func DeriveKey(password []byte, vt VaultType, p Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	salt, err := saltFor(vt)
	if err != nil {
		return nil, err
	}
	return pbkdf2.Key(password, salt, p.Iterations, p.KeyLen, sha256.New), nil
}

// Verifier computes the stored login comparand for (password, vault type):
// a SHA-256 digest of the derived key. The digest can test a login attempt
// but cannot be reversed to the password or the encryption key. The
// intermediate key buffer is wiped on every path.
func Verifier(password []byte, vt VaultType, p Params) ([]byte, error) {
	key, err := DeriveKey(password, vt, p)
	if err != nil {
		return nil, err
	}
	defer shared.WipeBytes(key)

	sum := sha256.Sum256(key)
	return sum[:], nil
}
