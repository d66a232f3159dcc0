// Package validator provides a small, composable rule engine for validating
// untrusted request input.
//
// Validation is declarative: each helper constructs a Rule value pairing a
// boolean Check with the ValidationError reported when the check fails. Rules
// are evaluated together with Apply, which aggregates every failure into a
// ValidationErrors slice implementing the error interface. Callers therefore
// receive the complete list of violations from a single call instead of the
// first one found.
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.MaxLen("name", name, 50),
//	    validator.ValidEnum("status", status, []string{"approved", "rejected"}),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Messages() is safe to return in an HTTP 400 body
//	}
//
// The package holds no global state. Every rule closes only over its
// arguments, so rules and Apply are safe for concurrent use.
//
// Error messages are plain strings intended to be surfaced verbatim to API
// clients; mapping them to status codes or translating them is the caller's
// concern.
package validator
