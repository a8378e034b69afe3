// Package dualauth decides which vault (if any) a password unlocks.
//
// The decision procedure is deliberately re-architected away from natural
// short-circuiting control flow: both per-vault verifiers are always
// computed, both comparisons always run over their full length, and the
// outcome is combined last with branchless selection. The total work is the
// same whether the password matches the primary vault, the phantom vault,
// or neither, so the observable timing of a login attempt carries no
// information about whether a second vault exists at all.
package dualauth

import (
	"crypto/subtle"

	"github.com/phantomkeep/phantomkeep/internal/kdf"
	"github.com/phantomkeep/phantomkeep/internal/shared"
)

// Result is the outcome of an authentication attempt.
type Result int

const (
	// Invalid means the password unlocked neither vault.
	Invalid Result = iota
	// Primary means the password unlocked the primary vault.
	Primary
	// Phantom means the password unlocked the phantom (decoy) vault.
	Phantom
)

func (r Result) String() string {
	switch r {
	case Primary:
		return "primary"
	case Phantom:
		return "phantom"
	default:
		return "invalid"
	}
}

// Equal reports whether a and b hold the same bytes, in time independent of
// where or whether they differ. Inputs of unequal length are padded to the
// longer length before comparing, so a length mismatch costs the same as a
// full compare; the length check itself is folded in without branching.
func Equal(a, b []byte) bool {
	return equal(a, b) == 1
}

// equal is the int-valued form used for branchless combination.
func equal(a, b []byte) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	ap := make([]byte, n)
	bp := make([]byte, n)
	copy(ap, a)
	copy(bp, b)

	sameBytes := subtle.ConstantTimeCompare(ap, bp)
	sameLen := subtle.ConstantTimeEq(int32(len(a)), int32(len(b)))
	return sameBytes & sameLen
}

// Authenticate tests password against the stored verifiers of both vaults
// and returns which vault it unlocks.
//
// Both candidate verifiers are derived unconditionally and both comparisons
// always run; there is no early exit on the first failed comparison, and on
// Invalid the same number of derivations and comparisons has happened as on
// a match. If by construction the password satisfied both verifiers, the
// result is deterministically Primary; this tie-break is a documented
// design choice, not an accident of evaluation order.
//
// Candidate verifier buffers are wiped on every path.
func Authenticate(password, primaryVerifier, phantomVerifier []byte, p kdf.Params) (Result, error) {
	candPrimary, err := kdf.Verifier(password, kdf.Primary, p)
	if err != nil {
		return Invalid, err
	}
	defer shared.WipeBytes(candPrimary)

	candPhantom, err := kdf.Verifier(password, kdf.Phantom, p)
	if err != nil {
		return Invalid, err
	}
	defer shared.WipeBytes(candPhantom)

	primaryMatch := equal(candPrimary, primaryVerifier)
	phantomMatch := equal(candPhantom, phantomVerifier)

	sel := subtle.ConstantTimeSelect(primaryMatch, int(Primary),
		subtle.ConstantTimeSelect(phantomMatch, int(Phantom), int(Invalid)))
	return Result(sel), nil
}
