package validators

import "strings"

// IsPhoneValid acepta dígitos con separadores habituales y un "+" inicial.
// Entre 7 y 15 dígitos (E.164).
func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}

	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return false
		}
	}

	return digits >= 7 && digits <= 15
}
