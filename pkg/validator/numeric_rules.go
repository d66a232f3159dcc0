package validator

import "fmt"

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at least %v", field, min),
		},
	}
}

// MinNumMsg is MinNum with a caller-supplied message for surfaces that show
// errors verbatim.
func MinNumMsg[T Numeric](field string, value T, min T, message string) Rule {
	rule := MinNum(field, value, min)
	rule.Error.Message = message
	return rule
}

// BetweenNum validates that a numeric value falls within an inclusive range.
func BetweenNum[T Numeric](field string, value T, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %v and %v", field, min, max),
		},
	}
}

// BetweenNumMsg is BetweenNum with a caller-supplied message.
func BetweenNumMsg[T Numeric](field string, value T, min, max T, message string) Rule {
	rule := BetweenNum(field, value, min, max)
	rule.Error.Message = message
	return rule
}
