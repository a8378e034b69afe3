// Package phantomkeep implements the cryptographic and steganographic
// engine behind a deniable dual-vault store: a primary vault for real
// content and a phantom (decoy) vault unlocked by a duress password, behind
// a single authentication prompt.
//
// The engine is four pure components composed by the caller: key derivation
// (PBKDF2-SHA256 over fixed per-vault salts), authenticated file encryption
// (AES-256-GCM with internally generated IVs), dual-password authentication
// with no timing side channel, and an LSB codec that hides phantom-vault
// metadata inside primary-vault metadata without changing its length.
// Storage, transport and UI are the caller's problem.
//
// Basic usage:
//
//	eng, err := phantomkeep.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// enrollment: store one verifier per vault
//	primaryV, _ := eng.MakeVerifier(realPassword, phantomkeep.VaultPrimary)
//	phantomV, _ := eng.MakeVerifier(duressPassword, phantomkeep.VaultPhantom)
//
//	// login: one prompt, three possible outcomes
//	switch eng.Authenticate(entered, primaryV, phantomV) {
//	case phantomkeep.AuthPrimary:
//	    // open the real vault
//	case phantomkeep.AuthPhantom:
//	    // open the decoy vault
//	default:
//	    // reject, with no hint of how close the attempt was
//	}
//
//	blob, err := eng.EncryptFile(content, entered, phantomkeep.VaultPrimary)
//
// The engine never retains a password: in the example above, entered is
// still the caller's buffer after every call, and the caller must wipe it
// once the flow using it is finished.
//
// Key derivation runs 100,000 hash iterations by design; treat DeriveKey,
// MakeVerifier, Authenticate, EncryptFile and DecryptFile as blocking,
// CPU-bound calls and keep them off interactive goroutines.
package phantomkeep
