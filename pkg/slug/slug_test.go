package slug_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumkit/forumkit/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation collapses", "Go, Tips & Tricks!", "go-tips-tricks"},
		{"diacritics fold to ascii", "Café Crème Brûlée", "cafe-creme-brulee"},
		{"mixed case and digits", "Top 10 Posts", "top-10-posts"},
		{"leading and trailing junk", "  --Hello--  ", "hello"},
		{"consecutive separators collapse", "a   -   b", "a-b"},
		{"empty input", "", ""},
		{"only junk", "!!! ???", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Make(tc.input))
		})
	}
}

func TestMakeMaxLength(t *testing.T) {
	t.Parallel()

	t.Run("truncates to the limit", func(t *testing.T) {
		got := slug.Make("a very long category title", slug.MaxLength(10))
		assert.LessOrEqual(t, len(got), 10)
		assert.Equal(t, "a-very-lon", got)
	})

	t.Run("no trailing hyphen after truncation", func(t *testing.T) {
		got := slug.Make("ab cd ef", slug.MaxLength(3))
		assert.Equal(t, "ab", got)
	})

	t.Run("zero means unlimited", func(t *testing.T) {
		long := strings.Repeat("word ", 50)
		got := slug.Make(long)
		assert.Greater(t, len(got), 100)
	})
}

func TestMakeWithSuffix(t *testing.T) {
	t.Parallel()

	suffixed := regexp.MustCompile(`^news-[a-z0-9]{6}$`)

	t.Run("appends random suffix", func(t *testing.T) {
		got := slug.Make("News", slug.WithSuffix(6))
		assert.Regexp(t, suffixed, got)
	})

	t.Run("two calls differ", func(t *testing.T) {
		a := slug.Make("News", slug.WithSuffix(6))
		b := slug.Make("News", slug.WithSuffix(6))
		assert.NotEqual(t, a, b)
	})

	t.Run("respects max length", func(t *testing.T) {
		got := slug.Make("a very long category title", slug.MaxLength(12), slug.WithSuffix(4))
		require.LessOrEqual(t, len(got), 12)
		assert.Regexp(t, `-[a-z0-9]{4}$`, got)
	})

	t.Run("suffix only when no room for slug", func(t *testing.T) {
		got := slug.Make("hello", slug.MaxLength(4), slug.WithSuffix(4))
		assert.Len(t, got, 4)
	})
}
