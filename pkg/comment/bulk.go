package comment

import (
	"github.com/forumkit/forumkit/pkg/sanitizer"
	"github.com/forumkit/forumkit/pkg/validator"
)

// DefaultMaxBulkItems caps how many comments one bulk request may touch.
const DefaultMaxBulkItems = 50

// BulkOption overrides a bulk validation default.
type BulkOption func(*bulkConfig)

type bulkConfig struct {
	maxItems int
	idValid  IDPredicate
}

// MaxItems sets the maximum number of ids accepted in one bulk operation.
func MaxItems(n int) BulkOption {
	return func(c *bulkConfig) {
		c.maxItems = n
	}
}

// IDFormat replaces the identifier predicate applied to each id. Default is
// ObjectID.
func IDFormat(p IDPredicate) BulkOption {
	return func(c *bulkConfig) {
		c.idValid = p
	}
}

// BulkOperation is a sanitized bulk request payload: the target ids plus
// every remaining field passed through SanitizeInput.
type BulkOperation struct {
	IDs    []string
	Fields map[string]any
}

// BulkResult reports the outcome of ValidateBulk.
type BulkResult struct {
	Valid     bool
	Errors    []string
	Sanitized BulkOperation
}

// ValidateBulk checks a bulk operation payload. The payload must be an
// object whose "ids" field is a non-empty array of well-formed identifiers,
// at most MaxItems long. All other fields pass through SanitizeInput and are
// returned in the sanitized payload regardless of validity, so callers can
// log what was attempted.
func ValidateBulk(data any, opts ...BulkOption) BulkResult {
	cfg := &bulkConfig{
		maxItems: DefaultMaxBulkItems,
		idValid:  ObjectID,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	fields, ok := data.(map[string]any)
	if !ok {
		return BulkResult{Errors: []string{"Bulk operation data is required and must be an object"}}
	}

	ids, idsWellTyped := extractIDs(fields["ids"])

	sanitized := BulkOperation{
		IDs:    ids,
		Fields: make(map[string]any, len(fields)),
	}
	for key, value := range fields {
		if key == "ids" {
			continue
		}
		sanitized.Fields[key] = SanitizeInput(value)
	}

	var rules []validator.Rule
	if !idsWellTyped {
		rules = append(rules, validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{
				Field:   "ids",
				Message: "ids is required and must be a non-empty array",
			},
		})
	} else {
		rules = append(rules,
			validator.RequiredSlice("ids", ids),
			validator.MaxLenSlice("ids", ids, cfg.maxItems),
			validator.EachSlice("ids", ids, cfg.idValid, "must contain only valid identifiers"),
		)
	}

	result := BulkResult{Sanitized: sanitized}
	if verrs := validator.ExtractValidationErrors(validator.Apply(rules...)); verrs != nil {
		result.Errors = verrs.Messages()
		return result
	}

	result.Valid = true
	return result
}

// extractIDs accepts the two shapes ids arrive in: []string from typed
// callers and []any from decoded JSON. The second return is false when the
// value is missing, not an array, or contains non-string elements.
func extractIDs(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return v, true
	case []any:
		ids := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			ids = append(ids, s)
		}
		return ids, true
	default:
		return nil, false
	}
}

// SanitizeInput cleans a single untrusted value. Strings pass through the
// sanitizer denylist pipeline (trim, strip angle brackets, javascript:
// schemes, inline event handlers, NUL bytes); every other type is returned
// unchanged. The operation is idempotent.
func SanitizeInput(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return sanitizer.UserInput(s)
}
