package phpass

import (
	"fmt"
	"strings"
)

// itoa64 is the portable-format alphabet. Symbol order is part of the stored
// format and must not change.
const itoa64 = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// bfItoa64 is the Blowfish-crypt alphabet used only for dense settings.
const bfItoa64 = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// encode64 encodes the first count bytes of src with itoa64.
//
// Bytes are packed little-endian into 24-bit windows and emitted six bits at
// a time, lowest bits first. A trailing group of one or two bytes emits two
// or three symbols respectively.
func encode64(src []byte, count int) (string, error) {
	if count < 1 {
		return "", fmt.Errorf("%w: encode64 count must be positive, got %d", ErrInvalidInput, count)
	}
	if count > len(src) {
		return "", fmt.Errorf("%w: encode64 count %d exceeds input length %d", ErrInvalidInput, count, len(src))
	}

	var b strings.Builder
	b.Grow((count*4 + 2) / 3)

	i := 0
	for i < count {
		v := uint32(src[i])
		i++
		b.WriteByte(itoa64[v&0x3f])
		if i < count {
			v |= uint32(src[i]) << 8
		}
		b.WriteByte(itoa64[(v>>6)&0x3f])
		if i >= count {
			break
		}
		i++
		if i < count {
			v |= uint32(src[i]) << 16
		}
		b.WriteByte(itoa64[(v>>12)&0x3f])
		if i >= count {
			break
		}
		i++
		b.WriteByte(itoa64[(v>>18)&0x3f])
	}
	return b.String(), nil
}
