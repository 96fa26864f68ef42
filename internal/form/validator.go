package form

import (
	"regexp"
	"unicode/utf8"
)

// Validator decides whether a field value is acceptable. It is called every
// time the form status is queried after submission.
type Validator func(value string) bool

// NonEmpty accepts any non-empty value. It is the default validator.
func NonEmpty(value string) bool {
	return value != ""
}

// MinLength accepts values of at least n characters.
func MinLength(n int) Validator {
	return func(value string) bool {
		return utf8.RuneCountInString(value) >= n
	}
}

// MatchPattern accepts values matching re.
func MatchPattern(re *regexp.Regexp) Validator {
	return func(value string) bool {
		return re.MatchString(value)
	}
}

// All accepts a value only when every validator accepts it.
func All(validators ...Validator) Validator {
	return func(value string) bool {
		for _, v := range validators {
			if !v(value) {
				return false
			}
		}
		return true
	}
}
