package comment

import (
	"regexp"
	"strings"

	"github.com/forumkit/forumkit/pkg/validator"
)

// Content validation defaults.
const (
	DefaultMinContentLength = 1
	DefaultMaxContentLength = 1000
)

var (
	scriptTagRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	jsSchemeRegex  = regexp.MustCompile(`(?i)javascript\s*:`)
)

// ContentOption overrides a content validation default.
type ContentOption func(*contentConfig)

type contentConfig struct {
	minLength  int
	maxLength  int
	allowEmpty bool
}

// MinLength sets the minimum trimmed content length. Default is 1.
func MinLength(n int) ContentOption {
	return func(c *contentConfig) {
		c.minLength = n
	}
}

// MaxLength sets the maximum trimmed content length. Default is 1000.
func MaxLength(n int) ContentOption {
	return func(c *contentConfig) {
		c.maxLength = n
	}
}

// AllowEmpty accepts missing or empty content, for endpoints where the body
// is optional (e.g. editing only metadata).
func AllowEmpty() ContentOption {
	return func(c *contentConfig) {
		c.allowEmpty = true
	}
}

// ContentResult reports the outcome of ValidateContent. Sanitized always
// holds the trimmed content, even when validation fails.
type ContentResult struct {
	Valid     bool
	Errors    []string
	Sanitized string
}

// ValidateContent checks a raw comment body. It rejects missing content
// (unless AllowEmpty), non-string values, trimmed lengths outside the
// configured bounds, and content carrying <script> blocks or javascript:
// URL schemes. Dangerous content fails the whole input; it is never
// stripped silently.
//
// Every applicable violation is reported, not just the first.
func ValidateContent(content any, opts ...ContentOption) ContentResult {
	cfg := &contentConfig{
		minLength: DefaultMinContentLength,
		maxLength: DefaultMaxContentLength,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if content == nil {
		if cfg.allowEmpty {
			return ContentResult{Valid: true, Sanitized: ""}
		}
		return ContentResult{Errors: []string{"Content is required"}}
	}

	raw, ok := content.(string)
	if !ok {
		return ContentResult{Errors: []string{"Content must be a string"}}
	}

	if raw == "" {
		if cfg.allowEmpty {
			return ContentResult{Valid: true, Sanitized: ""}
		}
		return ContentResult{Errors: []string{"Content is required"}}
	}

	trimmed := strings.TrimSpace(raw)

	err := validator.Apply(
		validator.MinLenString("Content", trimmed, cfg.minLength),
		validator.MaxLenString("Content", trimmed, cfg.maxLength),
		// Denylist checks run against the raw value so leading/trailing
		// whitespace cannot hide a payload from them.
		validator.NotMatches("Content", raw, scriptTagRegex, "cannot contain script tags"),
		validator.NotMatches("Content", raw, jsSchemeRegex, "cannot contain javascript: URLs"),
	)

	result := ContentResult{Sanitized: trimmed}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		result.Errors = verrs.Messages()
		return result
	}

	result.Valid = true
	return result
}
