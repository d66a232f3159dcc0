package comment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumkit/forumkit/pkg/comment"
)

const validObjectID = "507f1f77bcf86cd799439011"

func TestValidateBulk(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		res := comment.ValidateBulk(map[string]any{
			"ids":    []any{validObjectID, "507f191e810c19729de860ea"},
			"action": "hide",
		})
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.Equal(t, []string{validObjectID, "507f191e810c19729de860ea"}, res.Sanitized.IDs)
		assert.Equal(t, "hide", res.Sanitized.Fields["action"])
	})

	t.Run("non-object gated", func(t *testing.T) {
		for _, data := range []any{nil, "ids", 9, []any{validObjectID}} {
			res := comment.ValidateBulk(data)
			assert.False(t, res.Valid)
			assert.Equal(t, []string{"Bulk operation data is required and must be an object"}, res.Errors)
		}
	})

	t.Run("ids missing or malformed", func(t *testing.T) {
		for name, data := range map[string]map[string]any{
			"absent":          {},
			"not an array":    {"ids": "abc"},
			"mixed elements":  {"ids": []any{validObjectID, 42}},
			"numeric payload": {"ids": 7},
		} {
			res := comment.ValidateBulk(data)
			assert.False(t, res.Valid, "case %s", name)
			require.Len(t, res.Errors, 1, "case %s", name)
			assert.Equal(t, "ids is required and must be a non-empty array", res.Errors[0])
		}
	})

	t.Run("empty ids rejected", func(t *testing.T) {
		res := comment.ValidateBulk(map[string]any{"ids": []any{}})
		assert.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "required")
	})

	t.Run("over the item cap", func(t *testing.T) {
		ids := make([]string, 51)
		for i := range ids {
			ids[i] = validObjectID
		}
		res := comment.ValidateBulk(map[string]any{"ids": ids})
		assert.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "Cannot process more than 50")
	})

	t.Run("custom cap", func(t *testing.T) {
		res := comment.ValidateBulk(
			map[string]any{"ids": []string{validObjectID, validObjectID, validObjectID}},
			comment.MaxItems(2),
		)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "more than 2")
	})

	t.Run("malformed identifier", func(t *testing.T) {
		res := comment.ValidateBulk(map[string]any{"ids": []any{validObjectID, "nope"}})
		assert.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "valid identifiers")
	})

	t.Run("pluggable identifier format", func(t *testing.T) {
		uuids := []string{"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}

		res := comment.ValidateBulk(map[string]any{"ids": uuids})
		assert.False(t, res.Valid, "UUIDs fail the default ObjectID predicate")

		res = comment.ValidateBulk(map[string]any{"ids": uuids}, comment.IDFormat(comment.UUID))
		assert.True(t, res.Valid)
	})

	t.Run("other fields sanitized even on failure", func(t *testing.T) {
		res := comment.ValidateBulk(map[string]any{
			"ids":    []any{},
			"note":   "  <b>bulk</b> javascript:x  ",
			"dryRun": true,
		})
		assert.False(t, res.Valid)
		assert.Equal(t, "bbulk/b x", res.Sanitized.Fields["note"])
		assert.Equal(t, true, res.Sanitized.Fields["dryRun"])
	})
}

func TestSanitizeInput(t *testing.T) {
	t.Parallel()

	t.Run("strings pass through the denylist pipeline", func(t *testing.T) {
		assert.Equal(t, "hello", comment.SanitizeInput("  <hello>  "))
		assert.Equal(t, "alert(1)", comment.SanitizeInput("javascript:alert(1)"))
	})

	t.Run("non-strings unchanged", func(t *testing.T) {
		assert.Equal(t, 42, comment.SanitizeInput(42))
		assert.Equal(t, true, comment.SanitizeInput(true))
		assert.Nil(t, comment.SanitizeInput(nil))

		ids := []string{"a"}
		assert.Equal(t, ids, comment.SanitizeInput(ids))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"  x  ",
			"<a onclick=\"x\">y</a>",
			"javajavascript:script:z",
			"javascript<>:alert(1)",
			"on<>click=x",
			"",
		}
		for _, s := range inputs {
			once := comment.SanitizeInput(s)
			assert.Equal(t, once, comment.SanitizeInput(once), "input %q", s)
		}
	})
}
