package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone formats a phone number as E.164. Numbers without a leading
// +country code are read in defaultRegion. Anything that does not look like
// a phone number is returned trimmed but otherwise untouched.
func NormalizePhone(phone, defaultRegion string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	parsedNumber, err := phonenumbers.Parse(phone, strings.ToUpper(defaultRegion))
	if err != nil || !phonenumbers.IsPossibleNumber(parsedNumber) {
		return phone
	}
	return phonenumbers.Format(parsedNumber, phonenumbers.E164)
}
