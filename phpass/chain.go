package phpass

import (
	"crypto/md5"
	"strings"
)

// Unusable is returned by [PHPass.Hash] when no format produced a
// well-formed hash. It never verifies against any password.
const Unusable = "*"

// Chain failure markers. A setting that itself starts with the first marker
// gets the second one, so a crafted stored value can never equal the
// computed result.
const (
	failMarker    = "*0"
	failMarkerAlt = "*1"
)

// DigestFunc is the 16-byte digest primitive driving the portable chain.
// It must be deterministic and free of side effects.
type DigestFunc func(data []byte) [md5.Size]byte

// chain runs the portable digest chain for password under setting.
//
// A setting with an unknown prefix, an exponent outside [7, 30] or fewer than
// eight salt characters yields a failure marker instead of an error.
func chain(digest DigestFunc, password []byte, setting string) string {
	out := failMarker
	if strings.HasPrefix(setting, failMarker) {
		out = failMarkerAlt
	}

	if len(setting) < len(prefixPortable)+1 {
		return out
	}
	if id := setting[:3]; id != prefixPortable && id != prefixPHPBB {
		return out
	}

	exp := strings.IndexByte(itoa64, setting[3])
	if exp < minExponent || exp > maxExponent {
		return out
	}
	if len(setting) < portableSettingLen {
		return out
	}
	salt := setting[4:portableSettingLen]

	count := 1 << exp

	buf := make([]byte, 0, md5.Size+len(password)+len(salt))
	buf = append(buf, salt...)
	buf = append(buf, password...)
	sum := digest(buf)
	for ; count > 0; count-- {
		buf = append(buf[:0], sum[:]...)
		buf = append(buf, password...)
		sum = digest(buf)
	}

	enc, err := encode64(sum[:], md5.Size)
	if err != nil {
		return out
	}
	return setting[:portableSettingLen] + enc
}
