package pharmacy

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ValidateName checks that a customer name is purely alphabetic, the rule
// for creating a customer that does not exist yet.
func ValidateName(s string) error {
	if s == "" {
		return ErrInvalidName
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%q: %w", s, ErrInvalidName)
		}
	}
	return nil
}

// ValidateQuantity parses a purchase quantity, accepting positive integers only.
func ValidateQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidQuantity)
	}
	return n, nil
}

// ValidatePrice parses a product price, accepting non-negative amounts only.
func ValidatePrice(s string) (Money, error) {
	m, err := ParseMoney(strings.TrimSpace(s))
	if err != nil || m.IsNegative() {
		return Money{}, fmt.Errorf("%q: %w", s, ErrInvalidPrice)
	}
	return m, nil
}

// ValidateRate parses a reward or discount rate, accepting positive numbers only.
func ValidateRate(s string) (Rate, error) {
	r, err := ParseRate(strings.TrimSpace(s))
	if err != nil || !r.IsPositive() {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidRate)
	}
	return r, nil
}

// ValidatePrescriptionAnswer parses a y/n answer to the prescription question.
func ValidatePrescriptionAnswer(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, fmt.Errorf("%q: %w", s, ErrInvalidPrescriptionAnswer)
	}
}
