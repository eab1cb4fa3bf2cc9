package token

import "strconv"

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isBlank(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ParseLeadingFloat parses the longest numeric prefix of s, the way C atof
// does: leading blanks and one sign are accepted, then a decimal number with
// optional fraction and exponent, or a 0x hexadecimal mantissa with optional
// p exponent. Trailing garbage is ignored. No valid prefix yields 0.
func ParseLeadingFloat(s string) float64 {
	i := 0
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if n, hasExp := hexPrefixLen(s[i:]); n > 0 {
		text := s[start : i+n]
		if !hasExp {
			text += "p0"
		}
		v, _ := strconv.ParseFloat(text, 64)
		return v
	}

	n := decimalPrefixLen(s[i:])
	if n == 0 {
		return 0
	}
	// out-of-range values come back as ±Inf or 0 together with an error,
	// which is what strtod yields as well
	v, _ := strconv.ParseFloat(s[start:i+n], 64)
	return v
}

// decimalPrefixLen returns the length of the longest prefix of s of the
// form digits[.digits][(e|E)[sign]digits], with at least one mantissa digit.
func decimalPrefixLen(s string) int {
	i, digits := 0, 0
	for i < len(s) && IsDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j, frac := i+1, 0
		for j < len(s) && IsDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	return i + exponentLen(s[i:], 'e', 'E')
}

func hexPrefixLen(s string) (n int, hasExp bool) {
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return 0, false
	}
	i, digits := 2, 0
	for i < len(s) && isHexDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j, frac := i+1, 0
		for j < len(s) && isHexDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0, false
	}
	exp := exponentLen(s[i:], 'p', 'P')
	return i + exp, exp > 0
}

// exponentLen measures an exponent suffix; it is 0 unless digits follow the marker.
func exponentLen(s string, lower, upper byte) int {
	if len(s) == 0 || (s[0] != lower && s[0] != upper) {
		return 0
	}
	j := 1
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	k := j
	for k < len(s) && IsDigit(s[k]) {
		k++
	}
	if k == j {
		return 0
	}
	return k
}
