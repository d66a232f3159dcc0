package validator

import (
	"fmt"
	"strings"
)

// InListString validates that a string is one of a closed set of allowed values.
func InListString(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")),
		},
	}
}

// ValidEnum is a semantic alias for allow-listed enum fields.
func ValidEnum(field, value string, enumValues []string) Rule {
	return InListString(field, value, enumValues)
}
