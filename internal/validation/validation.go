package validation

import (
	"strconv"
	"time"
)

var allowedCurrencies = map[string]struct{}{
	"GBP": {},
	"EUR": {},
	"USD": {},
}

// Error reports why a payment request failed validation. The reason is
// safe to show to the caller; it never contains card data.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func failed(reason string) error {
	return &Error{Reason: reason}
}

// Validate checks the raw payment fields in a fixed order and stops at
// the first failure. It has no side effects.
func Validate(pan, cvv string, month, year int, currency string, amount int64) error {
	if !isDigits(pan) || len(pan) < 14 || len(pan) > 19 {
		return failed("Invalid card number")
	}
	if !isDigits(cvv) || len(cvv) < 3 || len(cvv) > 4 {
		return failed("Invalid CVV")
	}
	if month < 1 || month > 12 {
		return failed("Invalid expiry month")
	}
	now := time.Now()
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return failed("Card expired")
	}
	if len(currency) != 3 {
		return failed("Unsupported currency")
	}
	if _, ok := allowedCurrencies[currency]; !ok {
		return failed("Unsupported currency")
	}
	if amount <= 0 {
		return failed("Amount must be positive")
	}
	return nil
}

// Last4 returns the final four digits of an already-validated PAN as an
// integer. It must not be called on unvalidated input.
func Last4(pan string) int {
	n, _ := strconv.Atoi(pan[len(pan)-4:])
	return n
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
