package phpass

import "strings"

// Name is the algorithm identifier reported by [PHPass.Name].
const Name = "phpass"

// Format identifies which of the two setting shapes a hash string carries.
type Format int

const (
	// FormatPortable is the "$P$" / "$H$" iterated-MD5 format.
	FormatPortable Format = iota + 1
	// FormatDense is the Blowfish "$2a$" format.
	FormatDense
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatPortable:
		return "portable"
	case FormatDense:
		return "dense"
	default:
		return "unknown"
	}
}

// Hasher is the two-operation contract shared by every format variant.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Hash returns a fresh hash of password. It never fails: when no format
	// can produce a well-formed result it returns [Unusable], which never
	// verifies.
	Hash(password []byte) string

	// Verify reports whether password matches the stored hash. Malformed or
	// unrecognised hashes yield false, never a panic or an error.
	Verify(password []byte, hash string) bool
}

// DetectFormat inspects the prefix of hash and returns the [Format] that
// produced it. It does not validate the rest of the string.
//
// The second return value is false when the prefix is not recognised.
func DetectFormat(hash string) (Format, bool) {
	switch {
	case strings.HasPrefix(hash, prefixPortable),
		strings.HasPrefix(hash, prefixPHPBB):
		return FormatPortable, true
	// dense hashes start with $2a$, $2b$, or $2y$
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2y$"):
		return FormatDense, true
	default:
		return 0, false
	}
}
