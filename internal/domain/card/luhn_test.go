package card_test

import (
	"testing"

	"github.com/KDR9MGR/digital-payments-core/internal/domain/card"
	"github.com/stretchr/testify/assert"
)

func TestIsLuhnValid_KnownVectors(t *testing.T) {
	valid := []string{
		"4532015112830366", // Visa 16
		"4222222222222",    // Visa 13
		"378282246310005",  // Amex 15
		"5555555555554444", // Mastercard 16
		"6011111111111117", // Discover 16
		"3530111333300000", // JCB 16
	}
	for _, pan := range valid {
		assert.True(t, card.IsLuhnValid(pan), "expected %s to pass", pan)
	}

	invalid := []string{
		"4532015112830367", // valid Visa with flipped check digit
		"378282246310006",
		"1234567812345678",
	}
	for _, pan := range invalid {
		assert.False(t, card.IsLuhnValid(pan), "expected %s to fail", pan)
	}
}

func TestIsLuhnValid_OddAndEvenLengths(t *testing.T) {
	// 13 and 16 digit PANs exercise both starting parities.
	assert.True(t, card.IsLuhnValid("4222222222222"))
	assert.True(t, card.IsLuhnValid("4532015112830366"))
}

func TestIsLuhnValid_NonDigits(t *testing.T) {
	assert.False(t, card.IsLuhnValid(""))
	assert.False(t, card.IsLuhnValid("4532 0151 1283 0366"))
	assert.False(t, card.IsLuhnValid("453201511283036a"))
}
