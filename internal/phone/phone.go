// Package phone canonicalizes user-supplied phone input.
package phone

import "regexp"

var nonDigits = regexp.MustCompile(`\D`)

// Normalize maps arbitrary phone text to the +1XXXXXXXXXX canonical form.
// It never fails: inputs that do not look like US numbers still come back
// with a "+" prefix, so callers must not assume the result is dialable.
func Normalize(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")

	if len(digits) == 10 {
		return "+1" + digits
	}
	if len(digits) == 11 && digits[0] == '1' {
		return "+" + digits
	}
	return "+" + digits
}
