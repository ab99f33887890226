package contact

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field rules and messages mirror the deployed form exactly; clients key UI
// behavior off both the field names and the message strings.
var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern      = regexp.MustCompile(`^[+]?[1-9]\d{0,15}$`)
	phoneNoisePattern = regexp.MustCompile(`[\s\-().]`)
)

const (
	minNameLen    = 2
	maxNameLen    = 100
	minPhoneDigit = 10
	minMessageLen = 10
	maxMessageLen = 1000
)

// Validate checks a submission against the field rules and returns a
// per-field error map. A nil map means the submission is valid.
func Validate(s Submission) map[string]string {
	errs := make(map[string]string)

	// Length rules count characters, not bytes; accented names stay within
	// the same bounds the form enforces.
	name := strings.TrimSpace(s.Name)
	switch {
	case name == "":
		errs["name"] = "Full name is required"
	case utf8.RuneCountInString(name) < minNameLen:
		errs["name"] = "Name must be at least 2 characters"
	case utf8.RuneCountInString(name) > maxNameLen:
		errs["name"] = "Name must be less than 100 characters"
	}

	email := strings.TrimSpace(s.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Please enter a valid email address"
	}

	phone := strings.TrimSpace(s.Phone)
	switch {
	case phone == "":
		errs["phone"] = "Phone number is required"
	case !validPhone(phone):
		errs["phone"] = "Please enter a valid phone number"
	}

	message := strings.TrimSpace(s.Message)
	switch {
	case message == "":
		errs["message"] = "Message is required"
	case utf8.RuneCountInString(message) < minMessageLen:
		errs["message"] = "Message must be at least 10 characters"
	case utf8.RuneCountInString(message) > maxMessageLen:
		errs["message"] = "Message must be less than 1000 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validPhone strips spaces, dashes, parens and dots, then requires the
// remainder to match ^[+]?[1-9]\d{0,15}$ with at least 10 digits.
func validPhone(phone string) bool {
	stripped := phoneNoisePattern.ReplaceAllString(phone, "")
	if !phonePattern.MatchString(stripped) {
		return false
	}
	return digitCount(stripped) >= minPhoneDigit
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
