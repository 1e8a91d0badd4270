package phpass

import (
	"fmt"
	"strings"
)

const (
	// prefixPortable marks settings produced by this package.
	prefixPortable = "$P$"
	// prefixPHPBB is the phpBB3 spelling of the same format.
	prefixPHPBB = "$H$"
	// prefixDense is written for every dense setting this package generates.
	prefixDense = "$2a$"

	// exponentOffset is added to the configured cost when writing a portable
	// setting. Stored hashes depend on it.
	exponentOffset = 5

	minExponent = 7
	maxExponent = 30

	portableSaltBytes = 6
	denseSaltBytes    = 16

	portableSettingLen = 12
	denseSettingLen    = 29

	// PortableHashLen is the length of every well-formed portable hash.
	PortableHashLen = 34
	// DenseHashLen is the length of every well-formed dense hash.
	DenseHashLen = 60
)

// portableExponent maps a configured cost onto the exponent that is written
// into a portable setting.
func portableExponent(cost int) int {
	return min(cost+exponentOffset, maxExponent)
}

// gensaltPortable builds a 12-character "$P$" setting from the first six
// bytes of random.
func gensaltPortable(cost int, random []byte) (string, error) {
	if len(random) < portableSaltBytes {
		return "", fmt.Errorf("%w: portable salt needs %d bytes, got %d",
			ErrInvalidInput, portableSaltBytes, len(random))
	}
	salt, err := encode64(random, portableSaltBytes)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(portableSettingLen)
	b.WriteString(prefixPortable)
	b.WriteByte(itoa64[portableExponent(cost)])
	b.WriteString(salt)
	return b.String(), nil
}

// gensaltDense builds a 29-character "$2a$" setting from the first sixteen
// bytes of random, packed big-endian six bits at a time over bfItoa64.
func gensaltDense(cost int, random []byte) (string, error) {
	if len(random) < denseSaltBytes {
		return "", fmt.Errorf("%w: dense salt needs %d bytes, got %d",
			ErrInvalidInput, denseSaltBytes, len(random))
	}
	if cost < 0 || cost > 99 {
		return "", fmt.Errorf("%w: dense cost %d does not fit two digits", ErrInvalidInput, cost)
	}

	var b strings.Builder
	b.Grow(denseSettingLen)
	b.WriteString(prefixDense)
	b.WriteByte(byte('0' + cost/10))
	b.WriteByte(byte('0' + cost%10))
	b.WriteByte('$')

	i := 0
	for {
		c1 := int(random[i])
		i++
		b.WriteByte(bfItoa64[c1>>2])
		c1 = (c1 & 0x03) << 4
		if i >= denseSaltBytes {
			b.WriteByte(bfItoa64[c1])
			break
		}

		c2 := int(random[i])
		i++
		c1 |= c2 >> 4
		b.WriteByte(bfItoa64[c1])
		c1 = (c2 & 0x0f) << 2

		c2 = int(random[i])
		i++
		c1 |= c2 >> 6
		b.WriteByte(bfItoa64[c1])
		b.WriteByte(bfItoa64[c2&0x3f])
	}
	return b.String(), nil
}
