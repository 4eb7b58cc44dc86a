// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"unicode/utf8"
)

// PasswordMinLength is the minimum number of characters in a password.
const PasswordMinLength = 8

var (
	// local-part "@" domain "." tld, no whitespace and a single "@".
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordDigit   = regexp.MustCompile(`[0-9]`)
	passwordSpecial = regexp.MustCompile(`[^\p{L}\p{N}]`)
)

// ValidEmail reports whether s looks like a well-formed email address.
// No DNS or mailbox checks are made.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPassword reports whether s satisfies the password policy: at least
// PasswordMinLength characters with an uppercase letter, a lowercase letter,
// a digit and a character that is neither a letter nor a digit in any
// script.
func ValidPassword(s string) bool {
	if utf8.RuneCountInString(s) < PasswordMinLength {
		return false
	}

	return passwordUpper.MatchString(s) &&
		passwordLower.MatchString(s) &&
		passwordDigit.MatchString(s) &&
		passwordSpecial.MatchString(s)
}
