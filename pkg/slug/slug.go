package slug

import (
	"crypto/rand"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength    int
	suffixLength int
}

// MaxLength caps the slug at n runes, suffix included. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length,
// separated by a hyphen, to reduce collision probability.
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// foldDiacritics decomposes to NFD, drops combining marks, and recomposes,
// turning "Café Niño" into "Cafe Nino".
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts a title into a URL-safe slug: diacritics folded to ASCII,
// lowercased, with every run of other characters collapsed into a single
// hyphen and no leading or trailing hyphens.
func Make(s string, opts ...Option) string {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastWasHyphen := true // suppresses a leading hyphen
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasHyphen = false
			continue
		}
		if !lastWasHyphen {
			b.WriteByte('-')
			lastWasHyphen = true
		}
	}

	result := strings.TrimSuffix(b.String(), "-")

	if cfg.suffixLength > 0 {
		result = appendSuffix(result, cfg)
	}

	if cfg.maxLength > 0 {
		result = truncate(result, cfg.maxLength)
		result = strings.TrimSuffix(result, "-")
	}

	return result
}

func appendSuffix(slug string, cfg *config) string {
	suffixLen := cfg.suffixLength
	if cfg.maxLength > 0 && suffixLen > cfg.maxLength {
		suffixLen = cfg.maxLength
	}

	suffix := randomSuffix(suffixLen)

	if cfg.maxLength > 0 {
		// Make room for the suffix and its separator before truncating.
		room := cfg.maxLength - suffixLen - 1
		if room <= 0 {
			return suffix
		}
		slug = strings.TrimSuffix(truncate(slug, room), "-")
	}

	if slug == "" {
		return suffix
	}
	return slug + "-" + suffix
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

const suffixCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		// Deterministic fallback keeps slug generation total.
		for i := range b {
			b[i] = suffixCharset[i%len(suffixCharset)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = suffixCharset[b[i]%byte(len(suffixCharset))]
	}
	return string(b)
}
