package testutil

import "github.com/KDR9MGR/digital-payments-core/internal/domain/card"

// Luhn-valid test PANs per network.
const (
	VisaPan       = "4532015112830366"
	Visa13Pan     = "4222222222222"
	MastercardPan = "5555555555554444"
	AmexPan       = "378282246310005"
	DiscoverPan   = "6011111111111117"
	JCBPan        = "3530111333300000"
)

// FingerprintKey is a fixed 32-byte key for deterministic fingerprints in
// tests.
var FingerprintKey = []byte("0123456789abcdef0123456789abcdef")

// ValidVisaInput returns a card input that passes every check.
func ValidVisaInput() card.Input {
	return card.Input{
		PAN:        VisaPan,
		HolderName: "Ada Lovelace",
		ExpMonth:   12,
		ExpYear:    2099,
		CVV:        "123",
	}
}

// ValidAmexInput returns an American Express input with a 4-digit CVV.
func ValidAmexInput() card.Input {
	return card.Input{
		PAN:        AmexPan,
		HolderName: "Ada Lovelace",
		ExpMonth:   12,
		ExpYear:    2099,
		CVV:        "1234",
	}
}
