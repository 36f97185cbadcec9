// Package card provides pure helpers for card-number formatting and
// validation. All functions strip non-digit characters first, so they accept
// raw or already-formatted input interchangeably.
package card

import "strings"

// Type identifies a card network detected from the number prefix.
type Type string

const (
	TypeVisa       Type = "visa"
	TypeMastercard Type = "mastercard"
	TypeAmex       Type = "amex"
	TypeDiscover   Type = "discover"
	TypeUnknown    Type = "unknown"
)

// Digits strips every non-digit character from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatNumber groups the digits of a card number in blocks of four separated
// by single spaces, showing at most 16 digits. Formatting already-formatted
// input yields the same grouping.
func FormatNumber(raw string) string {
	cleaned := Digits(raw)
	if len(cleaned) > 16 {
		cleaned = cleaned[:16]
	}

	var groups []string
	for i := 0; i < len(cleaned); i += 4 {
		end := i + 4
		if end > len(cleaned) {
			end = len(cleaned)
		}
		groups = append(groups, cleaned[i:end])
	}
	return strings.Join(groups, " ")
}

// FormatExpiry renders an expiry as MM/YY, inserting the separator once two
// digits are present and truncating anything beyond four digits.
func FormatExpiry(raw string) string {
	cleaned := Digits(raw)
	if len(cleaned) < 2 {
		return cleaned
	}
	if len(cleaned) > 4 {
		cleaned = cleaned[:4]
	}
	return cleaned[:2] + "/" + cleaned[2:]
}

// ValidNumber reports whether the number has 13 to 19 digits and passes the
// Luhn checksum.
func ValidNumber(raw string) bool {
	cleaned := Digits(raw)
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}

	var sum int
	shouldDouble := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if shouldDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		shouldDouble = !shouldDouble
	}
	return sum%10 == 0
}

// Detect returns the card network for the number prefix. It never fails;
// unrecognized prefixes map to TypeUnknown.
func Detect(raw string) Type {
	cleaned := Digits(raw)
	switch {
	case strings.HasPrefix(cleaned, "4"):
		return TypeVisa
	case len(cleaned) >= 2 && cleaned[0] == '5' && cleaned[1] >= '1' && cleaned[1] <= '5':
		return TypeMastercard
	case strings.HasPrefix(cleaned, "34"), strings.HasPrefix(cleaned, "37"):
		return TypeAmex
	case strings.HasPrefix(cleaned, "6"):
		return TypeDiscover
	default:
		return TypeUnknown
	}
}
