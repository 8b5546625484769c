package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velorent/insurance_sales_app/internal/utils"
)

func TestValidateClientName(t *testing.T) {
	assert.Empty(t, utils.ValidateClientName("Jean-Pierre O'Neill"))
	assert.Empty(t, utils.ValidateClientName("Zoë Müller"), "accented letters are valid")

	assert.Empty(t, utils.ValidateClientName("  Alice Martin  "), "surrounding whitespace trimmed")

	assert.NotEmpty(t, utils.ValidateClientName("X"), "too short")
	assert.NotEmpty(t, utils.ValidateClientName("    "), "whitespace-only rejected")
	assert.NotEmpty(t, utils.ValidateClientName(" a "), "too short after trimming")
	assert.NotEmpty(t, utils.ValidateClientName(strings.Repeat("a", 101)), "too long")
	assert.NotEmpty(t, utils.ValidateClientName("Robert; DROP TABLE"), "punctuation rejected")
	assert.NotEmpty(t, utils.ValidateClientName("Agent 007"), "digits rejected")
}

func TestValidateReservationNumber(t *testing.T) {
	assert.Empty(t, utils.ValidateReservationNumber("RES-2025_0042"))
	assert.Empty(t, utils.ValidateReservationNumber("abc"))

	assert.NotEmpty(t, utils.ValidateReservationNumber("ab"), "too short")
	assert.NotEmpty(t, utils.ValidateReservationNumber(strings.Repeat("R", 51)), "too long")
	assert.NotEmpty(t, utils.ValidateReservationNumber("RES 42"), "spaces rejected")
}

func TestValidateNotes(t *testing.T) {
	assert.Empty(t, utils.ValidateNotes(""))
	assert.Empty(t, utils.ValidateNotes(strings.Repeat("n", 500)))
	assert.NotEmpty(t, utils.ValidateNotes(strings.Repeat("n", 501)))
}

func TestValidateSaleDate(t *testing.T) {
	now := time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC)

	assert.Empty(t, utils.ValidateSaleDate(now.AddDate(0, 0, -3), now))
	// Later the same day is still "today", not the future.
	assert.Empty(t, utils.ValidateSaleDate(now.Add(5*time.Hour), now))
	assert.NotEmpty(t, utils.ValidateSaleDate(now.AddDate(0, 0, 1), now))
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.Empty(t, utils.ValidatePasswordStrength("ChangeMe123!"))

	// Every rule is reported independently.
	failures := utils.ValidatePasswordStrength("abc")
	assert.Len(t, failures, 4) // length, upper, digit, symbol

	assert.Len(t, utils.ValidatePasswordStrength("alllowercase1!"), 1)
	assert.Len(t, utils.ValidatePasswordStrength("NoDigitsHere!"), 1)
	assert.Len(t, utils.ValidatePasswordStrength("NoSymbols123"), 1)
	assert.Len(t, utils.ValidatePasswordStrength("Sh0r!t"), 1)
	// Rune count, not byte count: 7 runes with multibyte letters is short.
	assert.Len(t, utils.ValidatePasswordStrength("Aa1!ééé"), 1)
}
