package checksum

// Verhoeff tables. The multiplication table is the Cayley table of the
// dihedral group D5, the permutation table applies a position-dependent
// permutation, and the inverse table maps the final accumulator to the
// digit that cancels it. Any deviation from these values changes every
// accept/reject outcome.
var (
	verhoeffD = [10][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
		{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
		{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
		{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
		{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
		{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
		{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
		{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}

	verhoeffP = [8][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
		{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
		{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
		{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
		{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
		{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
		{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
	}

	verhoeffInv = [10]int{0, 4, 3, 2, 1, 5, 6, 7, 8, 9}
)

// ValidateVerhoeff reports whether the digit string, including its trailing
// check digit, passes the Verhoeff check. It returns false for empty input
// or input containing non-digit characters.
func ValidateVerhoeff(digits string) bool {
	if digits == "" || !isDigits(digits) {
		return false
	}

	c := 0
	n := len(digits)
	for i := 0; i < n; i++ {
		// Scan right to left; position 0 is the check digit itself.
		d := int(digits[n-1-i] - '0')
		c = verhoeffD[c][verhoeffP[i%8][d]]
	}

	return c == 0
}

// GenerateVerhoeff computes the Verhoeff check digit for a digit string that
// does not yet carry one. The result is a single decimal character, so that
// ValidateVerhoeff(digits + check) always holds.
func GenerateVerhoeff(digits string) (string, error) {
	if digits == "" {
		return "", ErrEmptyInput
	}
	if !isDigits(digits) {
		return "", ErrNotDigits
	}

	c := 0
	n := len(digits)
	for i := 0; i < n; i++ {
		// Positions shift by one because the check digit will occupy slot 0.
		d := int(digits[n-1-i] - '0')
		c = verhoeffD[c][verhoeffP[(i+1)%8][d]]
	}

	return string(rune('0' + verhoeffInv[c])), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
