package service

import (
	"regexp"
	"unicode"
)

var (
	// Two or more capitalised words, e.g. "Sam Tan".
	nameRegex     = regexp.MustCompile(`^[A-Z][a-z]{2,}(?: [A-Z][a-z]{2,})* [A-Z][a-z]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z][\w._-]*@[a-z]+\.com$`)

	passwordCharsRegex = regexp.MustCompile("^[A-Za-z\\d@!#$%^&*()_+={}\\[\\]:;\"'<>?,./~`-]*$")
)

const (
	minUsernameLength = 8
	minPasswordUpper  = 3
	minPasswordLower  = 3
	minPasswordDigits = 2
)

func validName(name string) bool {
	return nameRegex.MatchString(name)
}

func validUsername(username string) bool {
	return len(username) >= minUsernameLength && usernameRegex.MatchString(username)
}

func validEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// validPassword counts character classes instead of using lookaheads, which RE2 lacks.
func validPassword(password string) bool {
	if !passwordCharsRegex.MatchString(password) {
		return false
	}

	var upper, lower, digits int
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		case unicode.IsDigit(r):
			digits++
		}
	}
	return upper >= minPasswordUpper && lower >= minPasswordLower && digits >= minPasswordDigits
}
