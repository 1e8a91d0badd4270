package phpass

import "errors"

// Sentinel errors returned by phpass operations.
//
// Hash and Verify never return errors: malformed settings degrade to a
// never-matching sentinel string instead. The errors below surface only from
// construction, inspection and low-level helpers.
//
// Use [errors.Is] for comparisons:
//
//	info, err := phpass.ParseSetting(stored)
//	if errors.Is(err, phpass.ErrInvalidHash) {
//	    // stored hash is malformed
//	}
var (
	// ErrInvalidHash is returned when a hash or setting string cannot be
	// parsed because it has an unrecognised prefix, a truncated salt or an
	// out-of-range cost.
	ErrInvalidHash = errors.New("phpass: invalid or unrecognised hash string")

	// ErrInvalidOption is returned by [New] when an [Options] field falls
	// outside the allowed range (e.g. a cost below 4 or above 31).
	ErrInvalidOption = errors.New("phpass: invalid option value")

	// ErrInvalidInput is returned by the encoding and randomness helpers when
	// the caller violates their contract, such as requesting zero bytes.
	ErrInvalidInput = errors.New("phpass: invalid input")

	// ErrAlgorithmMismatch is returned by [PHPass.NeedsRehash] when the hash
	// was produced by an algorithm this hasher cannot read.
	ErrAlgorithmMismatch = errors.New("phpass: hash was produced by a different algorithm")

	// ErrDenseUnavailable is returned by a [Crypter] that cannot serve the
	// requested setting.
	ErrDenseUnavailable = errors.New("phpass: dense crypt unavailable for setting")
)
