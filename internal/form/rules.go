package form

import (
	"regexp"
	"time"
	"unicode/utf8"
)

var (
	emailRegex     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex     = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`\d`)
)

// MinLength fails for values shorter than n runes.
func MinLength(n int, message string) Rule {
	return Rule{
		Test:    func(v string) bool { return utf8.RuneCountInString(v) >= n },
		Message: message,
	}
}

// Pattern fails when re does not match anywhere in the value.
func Pattern(re *regexp.Regexp, message string) Rule {
	return Rule{Test: re.MatchString, Message: message}
}

// Equals fails unless the value is exactly want.
func Equals(want, message string) Rule {
	return Rule{
		Test:    func(v string) bool { return v == want },
		Message: message,
	}
}

// DateOnly fails unless the value parses as YYYY-MM-DD.
func DateOnly(message string) Rule {
	return Rule{
		Test: func(v string) bool {
			_, err := time.Parse(time.DateOnly, v)
			return err == nil
		},
		Message: message,
	}
}

// EmailRules checks the basic name@domain.tld shape.
func EmailRules() []Rule {
	return []Rule{Pattern(emailRegex, "Please enter a valid email address")}
}

// PasswordRules requires length, mixed case and a digit.
func PasswordRules() []Rule {
	return []Rule{
		MinLength(8, "Password must be at least 8 characters long"),
		Pattern(uppercaseRegex, "Password must contain at least one uppercase letter"),
		Pattern(lowercaseRegex, "Password must contain at least one lowercase letter"),
		Pattern(digitRegex, "Password must contain at least one number"),
	}
}

// ConfirmRules requires the value to repeat password.
func ConfirmRules(password string) []Rule {
	return []Rule{Equals(password, "Passwords do not match")}
}

func PhoneRules() []Rule {
	return []Rule{Pattern(phoneRegex, "Please enter a valid phone number")}
}

func DateRules() []Rule {
	return []Rule{DateOnly("Please enter a valid date (YYYY-MM-DD)")}
}
