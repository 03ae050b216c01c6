// Package phone converts producer-entered phone numbers into the
// international dialing form used by WhatsApp chat links.
package phone

import "strings"

// CountryCode is the international prefix assumed for local numbers.
const CountryCode = "972"

// Digits strips every non-digit character. This is the form phone numbers
// are stored in.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize converts raw input to international dialing form.
// A number already carrying the country code passes through; a local number
// with the trunk "0" prefix has that zero replaced by the country code; a
// bare number of at least 8 digits gets the country code prepended. Anything
// shorter is unusable and reported as not ok.
func Normalize(raw string) (string, bool) {
	d := Digits(raw)
	switch {
	case strings.HasPrefix(d, CountryCode):
		return d, true
	case strings.HasPrefix(d, "0") && len(d) > 1:
		return CountryCode + d[1:], true
	case len(d) >= 8:
		return CountryCode + d, true
	default:
		return "", false
	}
}
