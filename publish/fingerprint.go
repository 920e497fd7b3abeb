package publish

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
)

// Fingerprint is a SHA-256 digest of a file's byte content, or the absent
// sentinel when the file does not exist. Absence always means "this
// definition has never been published".
type Fingerprint struct {
	sum     [sha256.Size]byte
	present bool
}

// Snapshot fingerprints the file at path. It never fails: a missing (or
// otherwise unreadable) file is the valid absent state, not an error.
//
// The digest is byte-level on purpose. Functionally identical but
// differently formatted output still registers as changed, so drift
// detection catches formatting regressions as well as semantic ones.
func Snapshot(path string) Fingerprint {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fingerprint{}
	}
	return Fingerprint{sum: sha256.Sum256(data), present: true}
}

// Present reports whether the file existed when the snapshot was taken.
func (f Fingerprint) Present() bool {
	return f.present
}

// Equal reports whether two fingerprints describe identical content.
// Two absent fingerprints are equal.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return f.present == other.present && f.sum == other.sum
}

// String returns a short hex form for logs, or "absent".
func (f Fingerprint) String() string {
	if !f.present {
		return "absent"
	}
	return hex.EncodeToString(f.sum[:8])
}
