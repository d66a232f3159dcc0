package category

import (
	"github.com/forumkit/forumkit/pkg/sanitizer"
	"github.com/forumkit/forumkit/pkg/slug"
	"github.com/forumkit/forumkit/pkg/validator"
)

// Field limits for category payloads.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// Category is a sanitized category payload with its derived slug.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug"`
}

// Result reports the outcome of Validate. Sanitized is populated best-effort
// even on failure; Slug is derived from the trimmed name.
type Result struct {
	Valid     bool
	Errors    []string
	Sanitized Category
}

// Validate checks a category create/update payload. The value may be a
// Category or a decoded JSON object. Name is required and capped at
// MaxNameLength after trimming; description is optional, single-lined, and
// capped at MaxDescriptionLength. The URL slug is derived from the name.
func Validate(data any) Result {
	var name, description string

	switch d := data.(type) {
	case Category:
		name, description = d.Name, d.Description
	case map[string]any:
		name, _ = d["name"].(string)
		description, _ = d["description"].(string)
	default:
		return Result{Errors: []string{"Category data is required and must be an object"}}
	}

	sanitized := Category{
		Name:        sanitizer.Trim(name),
		Description: sanitizer.Apply(description, sanitizer.RemoveControlChars, sanitizer.SingleLine),
	}
	sanitized.Slug = slug.Make(sanitized.Name, slug.MaxLength(MaxNameLength))

	err := validator.Apply(
		validator.RequiredStringMsg("name", name, "Category name is required"),
		validator.MaxLenString("Category name", sanitized.Name, MaxNameLength),
		validator.MaxLenString("Category description", sanitized.Description, MaxDescriptionLength),
	)

	result := Result{Sanitized: sanitized}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		result.Errors = verrs.Messages()
		return result
	}

	result.Valid = true
	return result
}
