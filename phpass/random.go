package phpass

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// randomBytes returns n bytes from src, falling back to a digest-based
// generator when src fails or comes up short. A nil src means the OS source.
//
// The fallback state is seeded per call from the clock and process id, so
// concurrent callers never share or correlate it.
func randomBytes(src io.Reader, digest DigestFunc, n int) ([]byte, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: random byte count must be positive, got %d", ErrInvalidInput, n)
	}

	if src == nil {
		src = rand.Reader
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(src, buf)
	if err == nil {
		return buf, nil
	}
	log.Warningf("entropy source returned %d of %d bytes (%v); using fallback generator", read, n, err)
	return fallbackBytes(digest, n), nil
}

// fallbackBytes stretches a time and pid seeded state into n bytes, sixteen
// at a time. It is weaker than the OS source and only used when that fails.
func fallbackBytes(digest DigestFunc, n int) []byte {
	state := time.Now().Format(time.RFC3339Nano) + strconv.Itoa(os.Getpid())

	out := make([]byte, 0, n+md5.Size)
	for len(out) < n {
		sum := digest([]byte(time.Now().Format(time.RFC3339Nano) + state))
		state = hex.EncodeToString(sum[:])
		block := digest([]byte(state))
		out = append(out, block[:]...)
	}
	return out[:n]
}
