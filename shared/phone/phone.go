// Package phone canonicalizes free-form phone numbers into the digits-only,
// country-code-prefixed form used for equality matching between stored guest
// phones and inbound WhatsApp contact ids.
package phone

import (
	"regexp"
)

const (
	countryCode = "55"
	areaCode    = "11"
)

var nonDigits = regexp.MustCompile(`\D`)

// Normalize strips every non-digit character and prefixes the assumed
// country/area codes for the regional formats this system was built
// against. It is a heuristic, not a validator: numbers outside the known
// formats are returned digits-only, unchanged.
func Normalize(number string) string {
	digits := nonDigits.ReplaceAllString(number, "")

	switch {
	case len(digits) == 11 && digits[:2] == areaCode:
		return countryCode + digits
	case len(digits) == 10:
		return countryCode + areaCode + digits
	case len(digits) == 13 && digits[:2] == countryCode:
		return digits
	}

	return digits
}
