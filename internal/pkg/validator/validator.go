package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// SIRET validation (French establishment registration number): 14 digits.
func IsValidSIRET(siret string) bool {
	siret = strings.ReplaceAll(siret, " ", "")
	return len(siret) == 14 && IsNumeric(siret)
}

// Social security number validation (French NIR): 13 digits plus a 2-digit key.
func IsValidSocialSecurityNumber(nir string) bool {
	nir = strings.ReplaceAll(nir, " ", "")
	return len(nir) == 15 && IsNumeric(nir)
}

var frenchMonths = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// IsValidPeriod reports whether month/year form a usable pay period.
func IsValidPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000
}

// PeriodLabel returns the human pay-period label, e.g. "Juin 2025".
func PeriodLabel(month, year int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return fmt.Sprintf("%s %d", frenchMonths[month-1], year)
}
