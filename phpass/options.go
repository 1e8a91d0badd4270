package phpass

import (
	"crypto/md5"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the iteration-count exponent used when none is given.
	// Portable hashes written with it run 2^13 digest rounds; dense hashes
	// use it as the Blowfish cost directly.
	DefaultCost = 8

	// MinCost and MaxCost bound [Options.Cost]. They coincide with the
	// Blowfish cost range.
	MinCost = bcrypt.MinCost
	MaxCost = bcrypt.MaxCost
)

// Options configures a [PHPass] hasher. The zero value is not usable; start
// from [DefaultOptions].
type Options struct {
	// Cost is the iteration-count exponent, in [MinCost, MaxCost].
	// Portable settings encode min(Cost+5, 30).
	Cost int

	// Portable forces "$P$" output even when a dense [Crypter] is available.
	// Verification of dense hashes is unaffected.
	Portable bool

	// Dense is the optional dense-crypt primitive. Nil disables dense
	// hashing and verification. [New] probes it once and drops it when it
	// does not produce well-formed output.
	Dense Crypter

	// Digest is the chain primitive. Default: md5.Sum.
	Digest DigestFunc

	// Random supplies salt entropy. Nil means crypto/rand.Reader. When it
	// fails a weaker digest-based generator takes over.
	Random io.Reader
}

// DefaultOptions returns Options with [DefaultCost], dense Blowfish hashing
// enabled, MD5 chaining and the OS entropy source.
func DefaultOptions() Options {
	return Options{
		Cost:   DefaultCost,
		Dense:  Blowfish{},
		Digest: md5.Sum,
		Random: rand.Reader,
	}
}

func validateOptions(opts Options) error {
	if opts.Cost < MinCost || opts.Cost > MaxCost {
		return fmt.Errorf("%w: cost %d must be in [%d, %d]",
			ErrInvalidOption, opts.Cost, MinCost, MaxCost)
	}
	if opts.Digest == nil {
		return fmt.Errorf("%w: digest function must not be nil", ErrInvalidOption)
	}
	return nil
}
