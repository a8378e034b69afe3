package phantomkeep

import (
	"context"

	"github.com/phantomkeep/phantomkeep/internal/cipherx"
	"github.com/phantomkeep/phantomkeep/internal/dualauth"
	"github.com/phantomkeep/phantomkeep/internal/kdf"
	"github.com/phantomkeep/phantomkeep/internal/logging"
	"github.com/phantomkeep/phantomkeep/internal/metadata"
	"github.com/phantomkeep/phantomkeep/internal/shared"
	"github.com/phantomkeep/phantomkeep/internal/stego"
)

// VaultType selects which of the two vaults an operation targets.
type VaultType = kdf.VaultType

const (
	// VaultPrimary is the vault holding real content.
	VaultPrimary = kdf.Primary
	// VaultPhantom is the decoy vault revealed under a duress password.
	VaultPhantom = kdf.Phantom
)

// VaultSelector is the outcome of an authentication attempt.
type VaultSelector = dualauth.Result

const (
	// AuthInvalid means the password unlocked neither vault.
	AuthInvalid = dualauth.Invalid
	// AuthPrimary means the password unlocked the primary vault.
	AuthPrimary = dualauth.Primary
	// AuthPhantom means the password unlocked the phantom vault.
	AuthPhantom = dualauth.Phantom
)

// EncryptedBlob is one authenticated-encryption result:
// {ciphertext, iv (12 bytes), authTag (16 bytes)}. MarshalBinary emits the
// wire layout ciphertext || iv || authTag.
type EncryptedBlob = cipherx.Blob

// Exported sizes of the engine's fixed-length artifacts.
const (
	KeySize      = kdf.KeySize
	VerifierSize = kdf.VerifierSize
	IVSize       = cipherx.IVSize
	TagSize      = cipherx.TagSize

	// DefaultIterations is the default key-stretching iteration count.
	DefaultIterations = kdf.DefaultIterations
)

// Engine is the dual-vault crypto/stego engine. It holds no secret state;
// every operation takes the password it needs and wipes derived material
// before returning. Passwords are read, never retained or mutated: the
// caller owns the password buffer and must wipe it once the login or
// encryption flow it serves is over, the same way it owns keys returned by
// DeriveKey. Safe for concurrent use.
type Engine struct {
	params kdf.Params
	log    logging.Logger
}

// New creates an engine. Without options it uses production parameters:
// 100,000 PBKDF2-SHA256 iterations and 256-bit keys.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.params.Validate(); err != nil {
		return nil, err
	}
	return &Engine{params: cfg.params, log: cfg.logger}, nil
}

// DeriveKey stretches password into a 256-bit key for the given vault.
// Deterministic: the key is never stored anywhere and is reconstructed from
// the password on every call. The caller owns the returned buffer and must
// wipe it when done.
func (e *Engine) DeriveKey(password []byte, vt VaultType) ([]byte, error) {
	return kdf.DeriveKey(password, vt, e.params)
}

// MakeVerifier computes the stored login comparand for (password, vault).
// The verifier can test an attempt but is not reversible to the password or
// the encryption key, so it is the one derivation artifact safe to persist.
func (e *Engine) MakeVerifier(password []byte, vt VaultType) ([]byte, error) {
	return kdf.Verifier(password, vt, e.params)
}

// EncryptFile derives the vault key from password and seals plaintext under
// it with a fresh random IV. The derived key is wiped before return on
// every path.
func (e *Engine) EncryptFile(plaintext, password []byte, vt VaultType) (*EncryptedBlob, error) {
	key, err := kdf.DeriveKey(password, vt, e.params)
	if err != nil {
		return nil, err
	}
	defer shared.WipeBytes(key)

	return cipherx.Encrypt(plaintext, key, nil)
}

// DecryptFile derives the vault key from password and opens the blob.
// Fail-closed: a wrong password and a tampered blob surface as the same
// ErrAuthenticationFailed, and no partial plaintext is ever returned.
func (e *Engine) DecryptFile(blob *EncryptedBlob, password []byte, vt VaultType) ([]byte, error) {
	key, err := kdf.DeriveKey(password, vt, e.params)
	if err != nil {
		return nil, err
	}
	defer shared.WipeBytes(key)

	return cipherx.Decrypt(blob, key, nil)
}

// encryptWithKey and decryptWithKey are the key-level entry points used by
// sessions, which manage key lifetime themselves.
func (e *Engine) encryptWithKey(plaintext, key []byte) (*EncryptedBlob, error) {
	return cipherx.Encrypt(plaintext, key, nil)
}

func (e *Engine) decryptWithKey(blob *EncryptedBlob, key []byte) ([]byte, error) {
	return cipherx.Decrypt(blob, key, nil)
}

// Authenticate tests password against the stored verifiers of both vaults.
// Both per-vault derivations and both comparisons always run, in time
// independent of the outcome; an Invalid result has cost identical to a
// match. If the password somehow satisfied both verifiers the result is
// deterministically AuthPrimary.
func (e *Engine) Authenticate(password, primaryVerifier, phantomVerifier []byte) VaultSelector {
	res, err := dualauth.Authenticate(password, primaryVerifier, phantomVerifier, e.params)
	if err != nil {
		// unreachable with a validated engine; refuse rather than guess
		e.log.Error(context.Background(), "authenticate aborted", "err", err)
		return AuthInvalid
	}
	return res
}

// EmbedPhantomInPrimary hides phantomMetadata inside coverMetadata, one
// payload bit per cover byte, and returns a container of exactly the
// cover's length. Fails with ErrInsufficientCoverCapacity when the cover
// has fewer bytes than the framed payload has bits.
func (e *Engine) EmbedPhantomInPrimary(coverMetadata, phantomMetadata []byte) ([]byte, error) {
	return stego.Embed(coverMetadata, phantomMetadata)
}

// ExtractPhantomFromPrimary recovers a hidden phantom metadata record from
// a container. The recovered bytes must decode as a metadata record;
// anything else (no payload, truncated container, garbage low bits)
// returns ErrNotPresent with nothing to distinguish the cases.
func (e *Engine) ExtractPhantomFromPrimary(container []byte) ([]byte, error) {
	raw, err := stego.Extract(container)
	if err != nil {
		return nil, ErrNotPresent
	}
	var rec metadata.Vault
	if err := metadata.Unmarshal(raw, &rec); err != nil {
		return nil, ErrNotPresent
	}
	return raw, nil
}

// ConstantTimeCompare reports whether a and b hold the same bytes, in time
// independent of where or whether they differ and of any length mismatch.
func ConstantTimeCompare(a, b []byte) bool {
	return dualauth.Equal(a, b)
}
