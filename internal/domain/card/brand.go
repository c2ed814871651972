package card

// Brand represents the card network detected from the PAN prefix.
type Brand string

const (
	BrandVisa            Brand = "visa"
	BrandMastercard      Brand = "mastercard"
	BrandAmericanExpress Brand = "american_express"
	BrandDiscover        Brand = "discover"
	BrandJCB             Brand = "jcb"
	BrandUnknown         Brand = "unknown"
)

// CVVLength returns the security-code length the network expects.
func (b Brand) CVVLength() int {
	if b == BrandAmericanExpress {
		return 4
	}
	return 3
}

// ValidPanLength reports whether a full PAN of the given length is plausible
// for the brand.
func (b Brand) ValidPanLength(n int) bool {
	switch b {
	case BrandVisa:
		return n == 13 || n == 16 || n == 19
	case BrandMastercard:
		return n == 16
	case BrandAmericanExpress:
		return n == 15
	case BrandDiscover, BrandJCB:
		return n >= 16 && n <= 19
	default:
		return n >= PanMinLength && n <= PanMaxLength
	}
}

// DetectBrand classifies a digit string by its PAN prefix. It works on
// partial input so a client can show the network while the number is still
// being typed; the result is only authoritative once the full PAN is present.
// Unmatched input yields BrandUnknown, never an error.
func DetectBrand(digits string) Brand {
	if len(digits) < 2 || !isDigits(digits) {
		return BrandUnknown
	}

	two := prefixValue(digits, 2)
	switch {
	case digits[0] == '4':
		return BrandVisa
	case two == 34 || two == 37:
		return BrandAmericanExpress
	case two >= 51 && two <= 55:
		return BrandMastercard
	case two == 65:
		return BrandDiscover
	}

	if len(digits) >= 3 {
		if three := prefixValue(digits, 3); three >= 644 && three <= 649 {
			return BrandDiscover
		}
	}

	if len(digits) >= 4 {
		four := prefixValue(digits, 4)
		switch {
		case four >= 2221 && four <= 2720:
			return BrandMastercard
		case four == 6011:
			return BrandDiscover
		case four >= 3528 && four <= 3589:
			return BrandJCB
		}
	}

	return BrandUnknown
}

// prefixValue returns the numeric value of the first n digits.
func prefixValue(digits string, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		v = v*10 + int(digits[i]-'0')
	}
	return v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
