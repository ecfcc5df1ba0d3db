package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvp-manager/core/constants"
)

func TestGenerateGuestToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := GenerateGuestToken()
		require.NoError(t, err)
		assert.Len(t, token, constants.GuestTokenLength)
		for _, r := range token {
			assert.Contains(t, constants.GuestTokenAlphabet, string(r))
		}
		seen[token] = true
	}
	// collisions across 100 draws would point at a broken generator
	assert.Greater(t, len(seen), 95)
}

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP()
	assert.Len(t, otp, constants.OTPLength)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9', "OTP must be numeric: %q", otp)
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	s := GenerateRandomString(32)
	assert.Len(t, s, 32)
	assert.NotEqual(t, s, GenerateRandomString(32))
}

func TestExportObjectKey(t *testing.T) {
	key := ExportObjectKey("xlsx", 1700000000)
	assert.Equal(t, "exports/wedding_guests_1700000000.xlsx", key)
	assert.True(t, strings.HasPrefix(key, "exports/"))
}
