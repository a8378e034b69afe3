// Package metadata defines the vault metadata record and its wire codec.
//
// Records are encoded as CBOR with Core Deterministic Encoding and
// integer struct keys. Two properties matter here: identical metadata must
// always produce identical bytes (a metadata blob doubles as a stego cover,
// and nondeterministic re-encoding would show up as unexplained bit churn),
// and the encoding must be compact, because a hidden record costs eight
// cover bytes per payload byte.
package metadata

import (
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// Entry describes one file in a vault.
type Entry struct {
	ID      uuid.UUID `cbor:"1,keyasint"`
	Name    string    `cbor:"2,keyasint"`
	Size    int64     `cbor:"3,keyasint"`
	ModTime time.Time `cbor:"4,keyasint"`
}

// Vault is the metadata record for one vault: its label and file listing.
// Primary and phantom vaults each have their own.
type Vault struct {
	Label   string  `cbor:"1,keyasint"`
	Entries []Entry `cbor:"2,keyasint"`
}

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2): sorted keys,
// smallest integer encoding, no indefinite-length items.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	opts := cbor.CoreDetEncOptions()
	opts.Time = cbor.TimeUnix
	encMode, err = opts.EncMode()
	if err != nil {
		panic("metadata: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("metadata: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes a vault record to its wire form.
func Marshal(v *Vault) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes wire bytes into a vault record. A decode error is the
// signal that a byte sequence does not carry a valid record; extraction
// paths rely on it to tell payload from noise.
func Unmarshal(data []byte, v *Vault) error {
	return decMode.Unmarshal(data, v)
}
