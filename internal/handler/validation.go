package handlers

import (
	"regexp"
	"unicode/utf8"
)

var (
	// DECIMAL(10,2): целое число или максимум два знака после точки
	pricePattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

const (
	minPhoneLength    = 10
	minPasswordLength = 6
)

// validateListingFields returns the first failing "<field>: <reason>" message,
// nil checks skip fields absent from a partial update
func validateListingFields(price, email, phone, password *string) string {
	if price != nil && !pricePattern.MatchString(*price) {
		return "price: неверный формат цены, допустимо не более двух знаков после точки"
	}

	if email != nil && !emailPattern.MatchString(*email) {
		return "contactEmail: неверный формат email"
	}

	if phone != nil && utf8.RuneCountInString(*phone) < minPhoneLength {
		return "contactPhone: номер телефона должен содержать не менее 10 символов"
	}

	if password != nil && utf8.RuneCountInString(*password) < minPasswordLength {
		return "password: пароль должен быть не менее 6 символов"
	}

	return ""
}
