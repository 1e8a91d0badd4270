package phpass

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/blowfish"
)

// Crypter is the optional dense-crypt primitive. Crypt follows the
// crypt(3) convention: setting carries the algorithm, cost and salt, and the
// result is the full encoded hash.
//
// The dispatcher validates the result length before trusting it, so an
// implementation that cannot serve a setting may return any error.
type Crypter interface {
	Crypt(password []byte, setting string) (string, error)
}

// Blowfish is the bundled [Crypter] for "$2a$", "$2b$" and "$2y$" settings.
// Its output is byte-compatible with crypt_blowfish and with
// golang.org/x/crypto/bcrypt.
//
// Blowfish holds no state and is safe for concurrent use.
type Blowfish struct{}

var (
	bfEncoding = base64.NewEncoding(bfItoa64).WithPadding(base64.NoPadding)

	// magicCipherData is the bcrypt plaintext, "OrpheanBeholderScryDoubt".
	magicCipherData = []byte("OrpheanBeholderScryDoubt")
)

const (
	bfSaltEncodedLen = 22
	// Only 23 of the 24 cipher bytes are encoded, as in every C bcrypt.
	bfHashBytes = 23
)

// Crypt computes the Blowfish crypt hash of password under setting. Only the
// first 29 characters of setting are read, so a full stored hash is a valid
// setting.
func (Blowfish) Crypt(password []byte, setting string) (string, error) {
	if len(setting) < denseSettingLen {
		return "", fmt.Errorf("%w: setting too short", ErrDenseUnavailable)
	}
	if f, ok := DetectFormat(setting); !ok || f != FormatDense {
		return "", fmt.Errorf("%w: unrecognised prefix %q", ErrDenseUnavailable, setting[:4])
	}
	if setting[6] != '$' {
		return "", fmt.Errorf("%w: missing cost terminator", ErrDenseUnavailable)
	}
	cost, ok := parseCost(setting[4:6])
	if !ok {
		return "", fmt.Errorf("%w: invalid cost %q", ErrDenseUnavailable, setting[4:6])
	}

	encodedSalt := setting[7:denseSettingLen]
	salt, err := bfEncoding.DecodeString(encodedSalt)
	if err != nil {
		return "", fmt.Errorf("%w: salt: %v", ErrDenseUnavailable, err)
	}

	c, err := expensiveBlowfishSetup(password, uint32(cost), salt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDenseUnavailable, err)
	}

	cipherData := make([]byte, len(magicCipherData))
	copy(cipherData, magicCipherData)
	for i := 0; i < len(cipherData); i += 8 {
		for j := 0; j < 64; j++ {
			c.Encrypt(cipherData[i:i+8], cipherData[i:i+8])
		}
	}

	return setting[:7] + encodedSalt + bfEncoding.EncodeToString(cipherData[:bfHashBytes]), nil
}

// expensiveBlowfishSetup runs the EksBlowfish key schedule with 2^cost
// rounds. The key keeps its trailing NUL, as C implementations read it.
func expensiveBlowfishSetup(key []byte, cost uint32, salt []byte) (*blowfish.Cipher, error) {
	ckey := append(key[:len(key):len(key)], 0)

	c, err := blowfish.NewSaltedCipher(ckey, salt)
	if err != nil {
		return nil, err
	}

	rounds := uint64(1) << cost
	for i := uint64(0); i < rounds; i++ {
		blowfish.ExpandKey(ckey, c)
		blowfish.ExpandKey(salt, c)
	}
	return c, nil
}
