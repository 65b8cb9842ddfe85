package checksum

// mod36BodyLen is the length of the checksummed body (a GSTIN without its
// final check character).
const mod36BodyLen = 14

// CalculateMod36 computes the weighted mod-36 check character for a
// 14-character body over the alphabet 0-9A-Z. Characters are scanned from
// rightmost to leftmost with a weight factor alternating 2, 1, 2, 1, ...
// starting at 2; each weighted product is folded as quotient plus remainder
// base 36 before summing.
func CalculateMod36(input string) (string, error) {
	if len(input) != mod36BodyLen {
		return "", ErrInvalidLength
	}

	sum := 0
	factor := 2
	for i := len(input) - 1; i >= 0; i-- {
		value := mod36Value(input[i])
		if value < 0 {
			return "", ErrInvalidCharacter
		}

		product := factor * value
		sum += product/36 + product%36

		if factor == 2 {
			factor = 1
		} else {
			factor = 2
		}
	}

	check := (36 - sum%36) % 36
	return string(mod36Char(check)), nil
}

// ValidateMod36 reports whether a 15-character code carries a correct mod-36
// check character in its final position. It returns false, never an error,
// for input of the wrong length or with characters outside 0-9A-Z.
func ValidateMod36(code string) bool {
	if len(code) != mod36BodyLen+1 {
		return false
	}

	check, err := CalculateMod36(code[:mod36BodyLen])
	if err != nil {
		return false
	}

	return check == code[mod36BodyLen:]
}

// mod36Value maps 0-9 to 0-9 and A-Z to 10-35. Returns -1 for any other byte.
func mod36Value(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func mod36Char(v int) byte {
	if v < 10 {
		return byte('0' + v)
	}
	return byte('A' + v - 10)
}
