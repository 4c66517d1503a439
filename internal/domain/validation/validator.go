// Package validation holds the credential format rules for the user domain.
// Every function fails fast: the first violated rule decides the error kind.
package validation

import (
	"regexp"
	"strings"

	"github.com/pommyhq/accounts-api/pkg/apperr"
)

var (
	uuidRegex      = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	nameRegex      = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	emailRegex     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	localPartRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+$`)

	upperRegex   = regexp.MustCompile(`[A-Z]`)
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex   = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidateID checks that id is a canonical UUID-shaped string.
func ValidateID(id string) error {
	if id == "" {
		return apperr.New(apperr.KindIDRequired)
	}
	if strings.TrimSpace(id) == "" {
		return apperr.New(apperr.KindIDInvalid)
	}
	if !uuidRegex.MatchString(id) {
		return apperr.New(apperr.KindIDInvalidFormat)
	}
	return nil
}

// ValidateName checks the display name: 3-50 characters, letters
// (including accented Latin) and spaces only.
func ValidateName(name string) error {
	if name == "" {
		return apperr.New(apperr.KindNameRequired)
	}
	if n := len([]rune(name)); n < 3 || n > 50 {
		return apperr.New(apperr.KindInvalidNameLength)
	}
	if !nameRegex.MatchString(name) {
		return apperr.New(apperr.KindInvalidNameFormat)
	}
	return nil
}

// ValidateEmail checks the overall shape first, then the domain, then the
// local part. Rule order is fixed so the same input always yields the same
// error kind.
func ValidateEmail(email string) error {
	if email == "" {
		return apperr.New(apperr.KindEmailRequired)
	}
	if len(email) > 254 {
		return apperr.New(apperr.KindEmailTooLong)
	}
	if !emailRegex.MatchString(email) {
		return apperr.New(apperr.KindInvalidEmailFormat)
	}
	parts := strings.Split(email, "@")
	localPart := parts[0]
	domain := ""
	if len(parts) > 1 {
		domain = parts[1]
	}
	if domain == "" {
		return apperr.New(apperr.KindEmailDomainMissing)
	}
	if len(domain) < 3 || !strings.Contains(domain, ".") {
		return apperr.New(apperr.KindEmailDomainInvalid)
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return apperr.New(apperr.KindEmailDomainInvalidFormat)
	}
	if !localPartRegex.MatchString(localPart) {
		return apperr.New(apperr.KindLocalPartInvalid)
	}
	return nil
}

// ValidatePassword checks minimum length and required character classes.
// Length always wins over content: a 7-character password fails with
// PASSWORD_TOO_SHORT no matter what it contains.
func ValidatePassword(password string) error {
	if password == "" {
		return apperr.New(apperr.KindPasswordRequired)
	}
	if len([]rune(password)) < 8 {
		return apperr.New(apperr.KindPasswordTooShort)
	}
	if !upperRegex.MatchString(password) {
		return apperr.New(apperr.KindPasswordNoUppercase)
	}
	if !lowerRegex.MatchString(password) {
		return apperr.New(apperr.KindPasswordNoLowercase)
	}
	if !digitRegex.MatchString(password) {
		return apperr.New(apperr.KindPasswordNoNumber)
	}
	if !specialRegex.MatchString(password) {
		return apperr.New(apperr.KindPasswordNoSpecialChar)
	}
	return nil
}
