package validator

import (
	"fmt"
	"time"
)

// DateOrder validates that from falls strictly before to. Cross-field rule:
// the error names both ends of the range rather than a single field.
func DateOrder(fromField, toField string, from, to time.Time) Rule {
	return Rule{
		Check: func() bool {
			return from.Before(to)
		},
		Error: ValidationError{
			Field:   fromField,
			Message: fmt.Sprintf("%s must be before %s", fromField, toField),
		},
	}
}
