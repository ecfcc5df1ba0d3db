package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"rsvp-manager/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GenerateGuestToken creates the short alphanumeric token that is both a
// guest's storage key and the path segment of their public RSVP link.
func GenerateGuestToken() (string, error) {
	return gonanoid.Generate(constants.GuestTokenAlphabet, constants.GuestTokenLength)
}

// GenerateRandomString generates a cryptographically secure random string
func GenerateRandomString(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to nanoid if crypto/rand fails
		id, _ := gonanoid.Generate(constants.GuestTokenAlphabet, length)
		return id
	}
	return base64.URLEncoding.EncodeToString(bytes)[:length]
}

// GenerateOTP returns a numeric one-time code for password resets.
func GenerateOTP() string {
	digits := make([]byte, constants.OTPLength)
	if _, err := rand.Read(digits); err != nil {
		id, _ := gonanoid.Generate("0123456789", constants.OTPLength)
		return id
	}
	for i, b := range digits {
		digits[i] = '0' + b%10
	}
	return string(digits)
}

// ExportObjectKey names an uploaded export file.
func ExportObjectKey(format string, unix int64) string {
	return fmt.Sprintf("exports/wedding_guests_%d.%s", unix, format)
}
