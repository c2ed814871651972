package card

import (
	"time"
	"unicode"
)

// ValidateExpiry reports whether the month/year pair is a real expiry still
// in the future. A card is good through the last instant of its expiry
// month, so an expiry equal to the current month passes. Two-digit years are
// interpreted in the century of now.
func ValidateExpiry(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 0 {
		return false
	}
	if year < 100 {
		year += (now.Year() / 100) * 100
	}

	endOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	return now.Before(endOfMonth)
}

// ValidateCVV reports whether the security code is digit-only and matches
// the length the brand expects (4 for American Express, 3 otherwise).
func ValidateCVV(cvv string, brand Brand) bool {
	return isDigits(cvv) && len(cvv) == brand.CVVLength()
}

// ValidateHolderName reports whether the holder name is at least two
// characters of letters and spaces only.
func ValidateHolderName(name string) bool {
	if len([]rune(name)) < 2 {
		return false
	}
	hasLetter := false
	for _, r := range name {
		if unicode.IsLetter(r) {
			hasLetter = true
			continue
		}
		if r != ' ' {
			return false
		}
	}
	return hasLetter
}
