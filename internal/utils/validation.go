package utils

import (
	"strings"
	"time"
	"unicode"
)

// Sale field limits.
const (
	clientNameMinLen  = 2
	clientNameMaxLen  = 100
	reservationMinLen = 3
	reservationMaxLen = 50
	notesMaxLen       = 500
)

// ValidateClientName checks the client name field. Letters (including
// accented ones), spaces, hyphens and apostrophes are allowed, 2 to 100
// runes long after trimming surrounding whitespace, so an all-space name
// is rejected. Returns an empty string when valid.
func ValidateClientName(name string) string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) < clientNameMinLen || len(runes) > clientNameMaxLen {
		return "client name must be between 2 and 100 characters"
	}
	for _, r := range runes {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return "client name may only contain letters, spaces, hyphens and apostrophes"
	}
	return ""
}

// ValidateReservationNumber checks the reservation reference. Alphanumeric
// plus hyphen and underscore, 3 to 50 characters. Returns an empty string
// when valid.
func ValidateReservationNumber(ref string) string {
	runes := []rune(ref)
	if len(runes) < reservationMinLen || len(runes) > reservationMaxLen {
		return "reservation number must be between 3 and 50 characters"
	}
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			continue
		}
		return "reservation number may only contain letters, digits, hyphens and underscores"
	}
	return ""
}

// ValidateNotes checks the optional notes field. Returns an empty string
// when valid.
func ValidateNotes(notes string) string {
	if len([]rune(notes)) > notesMaxLen {
		return "notes must be at most 500 characters"
	}
	return ""
}

// ValidateSaleDate rejects dates in the future. The comparison is at day
// granularity so a sale recorded later today is fine.
func ValidateSaleDate(saleDate, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(saleDate.Year(), saleDate.Month(), saleDate.Day(), 0, 0, 0, 0, now.Location())
	if day.After(today) {
		return "sale date cannot be in the future"
	}
	return ""
}

// ValidatePasswordStrength runs the independent password rules and returns
// the messages for every rule that failed, so the client can show all
// problems at once.
func ValidatePasswordStrength(password string) []string {
	var failures []string
	if len([]rune(password)) < 8 {
		failures = append(failures, "password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		failures = append(failures, "password must contain an uppercase letter")
	}
	if !hasLower {
		failures = append(failures, "password must contain a lowercase letter")
	}
	if !hasDigit {
		failures = append(failures, "password must contain a digit")
	}
	if !hasSymbol {
		failures = append(failures, "password must contain a symbol")
	}
	return failures
}
