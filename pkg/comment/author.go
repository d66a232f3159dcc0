package comment

import (
	"regexp"

	"github.com/forumkit/forumkit/pkg/sanitizer"
	"github.com/forumkit/forumkit/pkg/validator"
)

// MaxAuthorNameLength caps the display name stored with a comment.
const MaxAuthorNameLength = 50

// Letters, digits, spaces, and ".-_". Matches empty so the required check
// stays the only error for a missing name.
var authorNameRegex = regexp.MustCompile(`^[a-zA-Z0-9 ._-]*$`)

// Author is the transient name/email pair submitted with a comment. The
// validation layer does not persist it.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthorResult reports the outcome of ValidateAuthor. Sanitized carries the
// trimmed name and the trimmed, lowercased email even on failure.
type AuthorResult struct {
	Valid     bool
	Errors    []string
	Sanitized Author
}

// ValidateAuthor checks the author object of a comment submission. The value
// may be an Author or a decoded JSON object; anything else fails the
// object-prerequisite gate with a single error.
func ValidateAuthor(author any) AuthorResult {
	var name, email string

	switch a := author.(type) {
	case Author:
		name, email = a.Name, a.Email
	case *Author:
		if a == nil {
			return AuthorResult{Errors: []string{"Author is required and must be an object"}}
		}
		name, email = a.Name, a.Email
	case map[string]any:
		name, _ = a["name"].(string)
		email, _ = a["email"].(string)
	default:
		return AuthorResult{Errors: []string{"Author is required and must be an object"}}
	}

	sanitized := Author{
		Name:  sanitizer.Trim(name),
		Email: sanitizer.TrimToLower(email),
	}

	err := validator.Apply(
		validator.RequiredStringMsg("name", name, "Author name is required"),
		validator.MaxLenString("Author name", sanitized.Name, MaxAuthorNameLength),
		validator.Matches("Author name", sanitized.Name, authorNameRegex,
			"can only contain letters, numbers, spaces, and ._- characters"),
		validator.RequiredStringMsg("email", email, "Author email is required"),
		emailFormatRule(sanitized.Email),
	)

	result := AuthorResult{Sanitized: sanitized}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		result.Errors = verrs.Messages()
		return result
	}

	result.Valid = true
	return result
}

// emailFormatRule passes on empty input so a missing email reports only the
// required error, not a format error on top.
func emailFormatRule(email string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return email == "" || IsValidEmail(email)
		},
		Error: validator.ValidationError{
			Field:   "email",
			Message: "Author email must be a valid email address",
		},
	}
}
