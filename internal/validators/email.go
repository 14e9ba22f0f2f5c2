package validators

import (
	"regexp"
	"slices"
	"strings"
)

// InvalidCompanyEmailMessage is shown inline under the email field while the
// current input violates the company-email policy.
const InvalidCompanyEmailMessage = "Please enter a valid company email."

// companyEmailRegex requires a local part, "@", at least one dot-terminated
// domain label and an alphabetic TLD of two or more letters.
var companyEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}$`)

// blockedDomains lists public webmail providers that do not qualify as
// company email. Matching is exact and case-sensitive.
var blockedDomains = []string{
	"gmail.com", "yahoo.com", "outlook.com", "hotmail.com",
	"orkut.com", "aol.com", "icloud.com", "zoho.com",
	"protonmail.com", "gmx.com", "yandex.com",
}

// EmailValidation is the derived validation state of the email field.
type EmailValidation struct {
	// Valid reports whether the input satisfies the company-email policy.
	Valid bool
	// Message is the inline error text; empty when Valid is true.
	Message string
}

// ValidateEmail applies the company-email policy to input: it must match
// the company-email pattern and its domain (everything after "@") must not
// be a blocked public provider.
func ValidateEmail(input string) EmailValidation {
	if !companyEmailRegex.MatchString(input) || IsBlockedDomain(emailDomain(input)) {
		return EmailValidation{Valid: false, Message: InvalidCompanyEmailMessage}
	}
	return EmailValidation{Valid: true}
}

// IsBlockedDomain reports whether domain is one of the public webmail
// providers.
func IsBlockedDomain(domain string) bool {
	return slices.Contains(blockedDomains, domain)
}

// BlockedDomains returns a copy of the blocklist.
func BlockedDomains() []string {
	return slices.Clone(blockedDomains)
}

func emailDomain(email string) string {
	_, domain, found := strings.Cut(email, "@")
	if !found {
		return ""
	}
	return domain
}
