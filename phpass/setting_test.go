package phpass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-phpass/phpass"
)

func TestParseSetting_Portable(t *testing.T) {
	s, err := phpass.ParseSetting("$P$9IQRaTwmfeRo7ud9Fh4E2PdI0S3r.L0")
	require.NoError(t, err)

	assert.Equal(t, phpass.FormatPortable, s.Format)
	assert.Equal(t, "$P$", s.Prefix)
	assert.Equal(t, 11, s.Cost)
	assert.Equal(t, uint64(2048), s.Rounds())
	assert.Equal(t, "IQRaTwmf", s.Salt)
	assert.Equal(t, "$P$9IQRaTwmf", s.String())
}

func TestParseSetting_PHPBB(t *testing.T) {
	s, err := phpass.ParseSetting("$H$9aaaaaSXBjgypwqm.JsMssPLiS8YQ00")
	require.NoError(t, err)
	assert.Equal(t, "$H$", s.Prefix)
	assert.Equal(t, "aaaaaSXB", s.Salt)
}

func TestParseSetting_Dense(t *testing.T) {
	s, err := phpass.ParseSetting("$2a$05$CCCCCCCCCCCCCCCCCCCCC.E5YPO9kmyuRGyh0XouQYb4YMJKvyOeW")
	require.NoError(t, err)

	assert.Equal(t, phpass.FormatDense, s.Format)
	assert.Equal(t, "$2a$", s.Prefix)
	assert.Equal(t, 5, s.Cost)
	assert.Equal(t, uint64(32), s.Rounds())
	assert.Equal(t, "CCCCCCCCCCCCCCCCCCCCC.", s.Salt)
	assert.Equal(t, "$2a$05$CCCCCCCCCCCCCCCCCCCCC.", s.String())
}

func TestSetting_String_CostOutOfAlphabet(t *testing.T) {
	for _, cost := range []int{-1, 64, 1000} {
		s := phpass.Setting{Format: phpass.FormatPortable, Prefix: "$P$", Cost: cost, Salt: "abcdefgh"}
		assert.NotPanics(t, func() {
			assert.Empty(t, s.String(), "cost %d", cost)
		})
	}
}

func TestParseSetting_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":                "",
		"unknown prefix":       "$1$saltsalt$hash",
		"truncated portable":   "$P$Babcdefg",
		"exponent too small":   "$P$4abcdefgh",
		"exponent too large":   "$P$Tabcdefgh",
		"salt outside itoa64":  "$P$Babc!efgh",
		"truncated dense":      "$2a$05$CCCC",
		"dense cost too large": "$2a$32$CCCCCCCCCCCCCCCCCCCCC.",
		"dense bad terminator": "$2a$05xCCCCCCCCCCCCCCCCCCCCC.",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := phpass.ParseSetting(in)
			assert.ErrorIs(t, err, phpass.ErrInvalidHash)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		in     string
		want   phpass.Format
		wantOK bool
	}{
		{"$P$Babcdefgh", phpass.FormatPortable, true},
		{"$H$Babcdefgh", phpass.FormatPortable, true},
		{"$2a$08$x", phpass.FormatDense, true},
		{"$2b$08$x", phpass.FormatDense, true},
		{"$2y$08$x", phpass.FormatDense, true},
		{"$argon2id$v=19", 0, false},
		{"*0", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := phpass.DetectFormat(tc.in)
		assert.Equal(t, tc.wantOK, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "portable", phpass.FormatPortable.String())
	assert.Equal(t, "dense", phpass.FormatDense.String())
	assert.Equal(t, "unknown", phpass.Format(0).String())
}
