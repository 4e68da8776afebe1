// Package phonenumber normalizes, classifies, and formats telephone numbers
// for mainland China and Hong Kong, and computes the dial string needed to
// call one number from another.
//
// Parsing never fails: malformed input degrades to an empty number in the
// Other category. All values are immutable once constructed and safe for
// concurrent use.
package phonenumber

import "strings"

// Normalize removes every character that is not an ASCII digit 0-9,
// preserving the order of the remaining digits.
func Normalize(input string) string {
	if input == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if c := input[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// TrimLeadingZeros removes all leading '0' characters. An all-zero input
// yields "".
func TrimLeadingZeros(input string) string {
	return strings.TrimLeft(input, "0")
}
