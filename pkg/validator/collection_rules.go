package validator

import "fmt"

// RequiredSlice validates that a slice holds at least one element.
func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is required and must be a non-empty array", field),
		},
	}
}

// MaxLenSlice validates that a slice does not exceed a maximum element count.
func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Cannot process more than %d items at once", max),
		},
	}
}

// EachSlice validates every element of a slice against a predicate. The
// failure message reports the field as a whole; element-level detail belongs
// to the caller when it needs positions.
func EachSlice[T any](field string, value []T, valid func(T) bool, description string) Rule {
	return Rule{
		Check: func() bool {
			for _, item := range value {
				if !valid(item) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s %s", field, description),
		},
	}
}
