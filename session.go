package phantomkeep

import (
	"time"

	"github.com/phantomkeep/phantomkeep/internal/kdf"
	"github.com/phantomkeep/phantomkeep/internal/session"
	"github.com/phantomkeep/phantomkeep/internal/shared"
)

// Session amortizes key stretching across many operations: the first call
// per vault type pays the full derivation cost, later calls reuse the
// cached key. The cache is an explicitly scoped resource, never ambient
// process-wide state: entries expire after the configured TTL and
// everything is wiped on Close.
type Session struct {
	eng   *Engine
	cache *session.Cache
}

// NewSession creates a session whose cached keys live at most ttl.
// A zero ttl keeps keys until Close.
func (e *Engine) NewSession(ttl time.Duration) *Session {
	return &Session{
		eng:   e,
		cache: session.New(ttl, e.log),
	}
}

// key returns the vault key, deriving and caching it on a miss. The caller
// owns the returned copy and must wipe it.
func (s *Session) key(password []byte, vt VaultType) ([]byte, error) {
	if k, ok := s.cache.Get(vt); ok {
		return k, nil
	}
	k, err := kdf.DeriveKey(password, vt, s.eng.params)
	if err != nil {
		return nil, err
	}
	s.cache.Put(vt, k)
	return k, nil
}

// Encrypt seals plaintext for the given vault, reusing the session's cached
// key when present.
func (s *Session) Encrypt(plaintext, password []byte, vt VaultType) (*EncryptedBlob, error) {
	key, err := s.key(password, vt)
	if err != nil {
		return nil, err
	}
	defer shared.WipeBytes(key)

	return s.eng.encryptWithKey(plaintext, key)
}

// Decrypt opens a blob for the given vault, reusing the session's cached
// key when present. Failure semantics match Engine.DecryptFile.
func (s *Session) Decrypt(blob *EncryptedBlob, password []byte, vt VaultType) ([]byte, error) {
	key, err := s.key(password, vt)
	if err != nil {
		return nil, err
	}
	defer shared.WipeBytes(key)

	return s.eng.decryptWithKey(blob, key)
}

// Forget drops the cached key for one vault type.
func (s *Session) Forget(vt VaultType) {
	s.cache.Drop(vt)
}

// Close wipes every cached key. The session must not be used afterwards.
func (s *Session) Close() {
	s.cache.Close()
}
