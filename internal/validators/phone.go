package validators

import "regexp"

// Optional leading +, then 7 to 15 digits, spaces or dashes allowed
// between groups ("+39 333 123 4567", "333-1234567").
var phoneRe = regexp.MustCompile(`^\+?\d(?:[ -]?\d){6,14}$`)

func IsPhoneValid(phone string) bool {
	return phoneRe.MatchString(phone)
}
