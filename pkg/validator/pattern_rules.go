package validator

import (
	"fmt"
	"regexp"
)

// Matches validates that a string matches a precompiled pattern. The regexp
// is compiled once by the caller, not per rule evaluation.
func Matches(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s %s", field, description),
		},
	}
}

// NotMatches validates that a string does not match a precompiled pattern.
// Used for denylist checks where a hit means the value is rejected outright.
func NotMatches(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return !pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s %s", field, description),
		},
	}
}
