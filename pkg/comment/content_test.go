package comment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumkit/forumkit/pkg/comment"
)

func TestValidateContent(t *testing.T) {
	t.Parallel()

	t.Run("accepts ordinary content and trims it", func(t *testing.T) {
		res := comment.ValidateContent("  Nice post!  ")
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.Equal(t, "Nice post!", res.Sanitized)
	})

	t.Run("missing content is required", func(t *testing.T) {
		for _, content := range []any{nil, ""} {
			res := comment.ValidateContent(content)
			assert.False(t, res.Valid)
			require.Len(t, res.Errors, 1)
			assert.Contains(t, res.Errors[0], "required")
			assert.Equal(t, "", res.Sanitized)
		}
	})

	t.Run("AllowEmpty accepts missing content", func(t *testing.T) {
		for _, content := range []any{nil, ""} {
			res := comment.ValidateContent(content, comment.AllowEmpty())
			assert.True(t, res.Valid)
			assert.Empty(t, res.Errors)
		}
	})

	t.Run("non-string content gated with a single error", func(t *testing.T) {
		for _, content := range []any{42, true, []string{"x"}, map[string]any{}} {
			res := comment.ValidateContent(content)
			assert.False(t, res.Valid)
			assert.Equal(t, []string{"Content must be a string"}, res.Errors)
		}
	})

	t.Run("length bounds apply to trimmed content", func(t *testing.T) {
		res := comment.ValidateContent(strings.Repeat("A", 1000))
		assert.True(t, res.Valid)

		res = comment.ValidateContent(strings.Repeat("A", 1001))
		assert.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "cannot exceed")

		// Padding whitespace does not rescue over-long content, nor does it
		// count against the limit.
		res = comment.ValidateContent("  " + strings.Repeat("A", 1000) + "  ")
		assert.True(t, res.Valid)
	})

	t.Run("whitespace-only fails minimum length", func(t *testing.T) {
		res := comment.ValidateContent("   ")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "at least")
	})

	t.Run("script blocks rejected regardless of length", func(t *testing.T) {
		res := comment.ValidateContent("<script>alert(1)</script>")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "script tags")
		// Rejection does not strip: sanitized is still the trimmed input.
		assert.Equal(t, "<script>alert(1)</script>", res.Sanitized)

		res = comment.ValidateContent("ok <SCRIPT type=\"text/javascript\">alert(1)</SCRIPT> ok")
		assert.False(t, res.Valid)
	})

	t.Run("javascript scheme rejected case-insensitively", func(t *testing.T) {
		res := comment.ValidateContent("click JavaScript:alert(1) here")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "javascript:")
	})

	t.Run("dangerous content hiding in padding is still caught", func(t *testing.T) {
		res := comment.ValidateContent("  javascript:alert(1)  ")
		assert.False(t, res.Valid)
	})

	t.Run("accumulates every violation", func(t *testing.T) {
		res := comment.ValidateContent("<script>"+strings.Repeat("A", 1000)+"</script>", comment.MaxLength(100))
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 2) // too long and script tags
	})

	t.Run("custom bounds", func(t *testing.T) {
		res := comment.ValidateContent("hi", comment.MinLength(5))
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "at least 5")

		res = comment.ValidateContent("hi there", comment.MinLength(5), comment.MaxLength(20))
		assert.True(t, res.Valid)
	})
}
