package card

// PAN length bounds after separator stripping.
const (
	PanMinLength = 13
	PanMaxLength = 19
)

// IsLuhnValid runs the standard mod-10 check over a digit string. Starting
// from the rightmost digit, every second digit is doubled (minus 9 when the
// double exceeds 9) and the total must divide by 10.
func IsLuhnValid(digits string) bool {
	if !isDigits(digits) {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
