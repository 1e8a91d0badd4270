package phpass_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hasbyte1/go-phpass/phpass"
)

func TestBlowfish_ReproducesBcrypt(t *testing.T) {
	for _, pw := range []string{"", "hunter2", "Hello 世界", strings.Repeat("b", 72)} {
		stored, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		require.NoError(t, err)

		got, err := phpass.Blowfish{}.Crypt([]byte(pw), string(stored))
		require.NoError(t, err)
		assert.Equal(t, string(stored), got, "password %q", pw)
	}
}

func TestBlowfish_OutputAcceptedByBcrypt(t *testing.T) {
	h := newTestHasher(t, false)
	hash := h.Hash([]byte("correct horse"))
	require.Len(t, hash, phpass.DenseHashLen)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct horse")))
	assert.ErrorIs(t,
		bcrypt.CompareHashAndPassword([]byte(hash), []byte("battery staple")),
		bcrypt.ErrMismatchedHashAndPassword)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, phpass.MinCost, cost)
}

func TestBlowfish_SettingOnly(t *testing.T) {
	setting := "$2a$05$CCCCCCCCCCCCCCCCCCCCC."
	got, err := phpass.Blowfish{}.Crypt([]byte("U*U"), setting)
	require.NoError(t, err)
	assert.Equal(t, "$2a$05$CCCCCCCCCCCCCCCCCCCCC.E5YPO9kmyuRGyh0XouQYb4YMJKvyOeW", got)
}

func TestBlowfish_AcceptsVariantPrefixes(t *testing.T) {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		setting := prefix + "04$......................"
		got, err := phpass.Blowfish{}.Crypt([]byte("pw"), setting)
		require.NoError(t, err, "prefix %s", prefix)
		assert.Len(t, got, phpass.DenseHashLen)
		assert.True(t, strings.HasPrefix(got, setting))
	}
}

func TestBlowfish_RejectsMalformedSettings(t *testing.T) {
	cases := map[string]string{
		"too short":       "$2a$04$....",
		"portable prefix": "$P$B........" + strings.Repeat(".", 17),
		"unknown variant": "$2x$04$......................",
		"missing dollar":  "$2a$04.......................",
		"cost too low":    "$2a$03$......................",
		"cost too high":   "$2a$32$......................",
		"cost not digits": "$2a$+4$......................",
		"salt alphabet":   "$2a$04$!!!!!!!!!!!!!!!!!!!!!!",
	}
	for name, setting := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := phpass.Blowfish{}.Crypt([]byte("pw"), setting)
			assert.ErrorIs(t, err, phpass.ErrDenseUnavailable)
		})
	}
}
