package phpass

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger(Name)

// The library stays quiet on go-logging's default stderr backend until the
// embedding program installs its own.
func init() {
	logging.SetLevel(logging.WARNING, Name)
}

// PHPass hashes passwords in the phpass family of formats: Blowfish "$2a$"
// when a dense [Crypter] is available, otherwise the portable "$P$" chain.
// Existing "$P$", "$H$" and "$2a$"/"$2b$"/"$2y$" hashes all verify.
//
// # Thread safety
//
// PHPass is immutable after construction and safe for concurrent use. Each
// call allocates its own salt and digest buffers.
type PHPass struct {
	cost     int
	portable bool
	dense    Crypter
	digest   DigestFunc
	random   io.Reader
}

var _ Hasher = (*PHPass)(nil)

// New constructs a PHPass from opts.
// Returns [ErrInvalidOption] if Cost is outside [MinCost, MaxCost] or Digest
// is nil. A nil Random is replaced by crypto/rand.Reader.
//
// When opts.Dense is set it is probed once; a Crypter that does not return a
// well-formed dense hash is dropped and the hasher runs portable-only.
func New(opts Options) (*PHPass, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	h := &PHPass{
		cost:     opts.Cost,
		portable: opts.Portable,
		digest:   opts.Digest,
		random:   opts.Random,
	}
	if h.random == nil {
		h.random = rand.Reader
	}
	if opts.Dense != nil && probeDense(opts.Dense) {
		h.dense = opts.Dense
	}
	return h, nil
}

// probeDense reports whether c produces a well-formed dense hash for a fixed
// minimum-cost setting.
func probeDense(c Crypter) bool {
	setting, err := gensaltDense(MinCost, make([]byte, denseSaltBytes))
	if err != nil {
		return false
	}
	out, err := c.Crypt([]byte("probe"), setting)
	if err != nil {
		log.Noticef("dense crypt disabled: %v", err)
		return false
	}
	if len(out) != DenseHashLen || !strings.HasPrefix(out, setting) {
		log.Noticef("dense crypt disabled: probe returned %d characters", len(out))
		return false
	}
	return true
}

// Name returns "phpass".
func (h *PHPass) Name() string { return Name }

// Cost returns the configured iteration-count exponent.
func (h *PHPass) Cost() int { return h.cost }

// Portable reports whether dense output is disabled by configuration.
func (h *PHPass) Portable() bool { return h.portable }

// DenseAvailable reports whether a working dense Crypter was found by [New].
func (h *PHPass) DenseAvailable() bool { return h.dense != nil }

// Format returns the variant new hashes will be written in.
func (h *PHPass) Format() Format {
	if h.dense != nil && !h.portable {
		return FormatDense
	}
	return FormatPortable
}

// Hash returns a freshly salted hash of password.
//
// The dense format is attempted first unless disabled; its output is used
// only if it is exactly [DenseHashLen] characters. The portable chain is the
// fallback, and [Unusable] is returned if it too comes out malformed.
func (h *PHPass) Hash(password []byte) string {
	var random []byte
	var err error

	if h.Format() == FormatDense {
		random, err = randomBytes(h.random, h.digest, denseSaltBytes)
		if err == nil {
			if out, ok := h.hashDense(password, random); ok {
				return out
			}
		}
	}

	if len(random) < portableSaltBytes {
		random, err = randomBytes(h.random, h.digest, portableSaltBytes)
		if err != nil {
			return Unusable
		}
	}

	setting, err := gensaltPortable(h.cost, random)
	if err != nil {
		return Unusable
	}
	out := chain(h.digest, password, setting)
	if len(out) != PortableHashLen {
		return Unusable
	}
	return out
}

func (h *PHPass) hashDense(password, random []byte) (string, bool) {
	setting, err := gensaltDense(h.cost, random)
	if err != nil {
		return "", false
	}
	out, err := h.dense.Crypt(password, setting)
	if err != nil {
		log.Debugf("dense crypt failed, falling back to portable: %v", err)
		return "", false
	}
	if len(out) != DenseHashLen {
		log.Debugf("dense crypt returned %d characters, falling back to portable", len(out))
		return "", false
	}
	return out, true
}

// Verify reports whether password matches hash.
//
// The portable chain runs first with hash as its own setting. If that cannot
// apply, the dense Crypter (when available) recomputes the hash instead.
// Only an exact match of the whole string succeeds.
//
// The comparison is not constant-time; the legacy format never was.
func (h *PHPass) Verify(password []byte, hash string) bool {
	computed := chain(h.digest, password, hash)
	if computed[0] == '*' && h.dense != nil {
		out, err := h.dense.Crypt(password, hash)
		if err != nil {
			return false
		}
		computed = out
	}
	return computed == hash
}

// Crypt runs the portable digest chain for password under setting and
// returns the full hash, or a two-character failure marker starting with
// '*' when the setting is malformed. It is exposed for pinning stored
// hashes during migrations.
func (h *PHPass) Crypt(password []byte, setting string) string {
	return chain(h.digest, password, setting)
}

// Info decodes the setting embedded in hash without verifying it.
func (h *PHPass) Info(hash string) (Setting, error) {
	return ParseSetting(hash)
}

// NeedsRehash reports whether hash was written in a different format or
// with a different cost than this hasher would use now.
//
// Returns [ErrAlgorithmMismatch] for hashes outside the phpass family and
// [ErrInvalidHash] for malformed ones.
func (h *PHPass) NeedsRehash(hash string) (bool, error) {
	if _, ok := DetectFormat(hash); !ok {
		return false, fmt.Errorf("%w: hash does not appear to be phpass", ErrAlgorithmMismatch)
	}
	s, err := ParseSetting(hash)
	if err != nil {
		return false, err
	}

	want := h.Format()
	if s.Format != want {
		return true, nil
	}
	if want == FormatDense {
		return s.Cost != h.cost, nil
	}
	return s.Cost != portableExponent(h.cost), nil
}
