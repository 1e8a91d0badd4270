package phpass

import (
	"fmt"
	"strings"
)

// Setting is the decoded salt header of a hash or setting string.
type Setting struct {
	// Format is the variant the setting belongs to.
	Format Format

	// Prefix is the literal identifier, e.g. "$P$", "$H$" or "$2a$".
	Prefix string

	// Cost is the decoded exponent: the itoa64 index for portable settings
	// (7..30), the two-digit Blowfish cost for dense ones (4..31).
	Cost int

	// Salt is the encoded salt exactly as stored (8 or 22 characters).
	Salt string
}

// Rounds returns the number of chained rounds the setting requests.
func (s Setting) Rounds() uint64 {
	return uint64(1) << uint(s.Cost)
}

// String re-assembles the setting header.
func (s Setting) String() string {
	switch s.Format {
	case FormatPortable:
		if s.Cost < 0 || s.Cost >= len(itoa64) {
			return ""
		}
		return s.Prefix + string(itoa64[s.Cost]) + s.Salt
	case FormatDense:
		return fmt.Sprintf("%s%02d$%s", s.Prefix, s.Cost, s.Salt)
	default:
		return ""
	}
}

// ParseSetting decodes the salt header at the start of s. A full hash is a
// valid input; anything after the header is ignored.
//
// Returns [ErrInvalidHash] when the prefix is unknown, the cost is out of
// range or the salt is truncated.
func ParseSetting(s string) (Setting, error) {
	format, ok := DetectFormat(s)
	if !ok {
		return Setting{}, fmt.Errorf("%w: unrecognised prefix", ErrInvalidHash)
	}
	if format == FormatDense {
		return parseDense(s)
	}
	return parsePortable(s)
}

func parsePortable(s string) (Setting, error) {
	if len(s) < portableSettingLen {
		return Setting{}, fmt.Errorf("%w: portable setting needs %d characters, got %d",
			ErrInvalidHash, portableSettingLen, len(s))
	}
	exp := strings.IndexByte(itoa64, s[3])
	if exp < minExponent || exp > maxExponent {
		return Setting{}, fmt.Errorf("%w: iteration exponent %q out of range", ErrInvalidHash, s[3])
	}
	salt := s[4:portableSettingLen]
	if !inAlphabet(itoa64, salt) {
		return Setting{}, fmt.Errorf("%w: salt %q has characters outside the alphabet", ErrInvalidHash, salt)
	}
	return Setting{
		Format: FormatPortable,
		Prefix: s[:3],
		Cost:   exp,
		Salt:   salt,
	}, nil
}

func parseDense(s string) (Setting, error) {
	if len(s) < denseSettingLen {
		return Setting{}, fmt.Errorf("%w: dense setting needs %d characters, got %d",
			ErrInvalidHash, denseSettingLen, len(s))
	}
	if s[6] != '$' {
		return Setting{}, fmt.Errorf("%w: missing cost terminator", ErrInvalidHash)
	}
	cost, ok := parseCost(s[4:6])
	if !ok {
		return Setting{}, fmt.Errorf("%w: cost %q out of range", ErrInvalidHash, s[4:6])
	}
	salt := s[7:denseSettingLen]
	if !inAlphabet(bfItoa64, salt) {
		return Setting{}, fmt.Errorf("%w: salt %q has characters outside the alphabet", ErrInvalidHash, salt)
	}
	return Setting{
		Format: FormatDense,
		Prefix: s[:4],
		Cost:   cost,
		Salt:   salt,
	}, nil
}

// parseCost decodes a two-digit Blowfish cost and checks its range.
func parseCost(digits string) (int, bool) {
	if len(digits) != 2 || !isDigit(digits[0]) || !isDigit(digits[1]) {
		return 0, false
	}
	cost := int(digits[0]-'0')*10 + int(digits[1]-'0')
	return cost, cost >= MinCost && cost <= MaxCost
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func inAlphabet(alphabet, s string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
