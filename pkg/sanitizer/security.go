package sanitizer

import (
	"regexp"
	"strings"
)

var (
	jsSchemeRe     = regexp.MustCompile(`(?i)javascript\s*:`)
	eventHandlerRe = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// RemoveNullBytes removes NUL bytes that could truncate strings in C-based
// systems downstream.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// StripAngleBrackets removes < and > so no tag boundary survives.
func StripAngleBrackets(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	return strings.ReplaceAll(s, ">", "")
}

// RemoveJavaScriptScheme strips javascript: URL schemes, case-insensitively.
// Stripping repeats until a fixed point so a removal cannot splice a new
// occurrence together (e.g. "javajavascript:script:").
func RemoveJavaScriptScheme(s string) string {
	for jsSchemeRe.MatchString(s) {
		s = jsSchemeRe.ReplaceAllString(s, "")
	}
	return s
}

// RemoveEventHandlers strips inline HTML event-handler attributes (onclick=,
// onload=, ...). Runs to a fixed point for the same splicing reason as
// RemoveJavaScriptScheme.
func RemoveEventHandlers(s string) string {
	for eventHandlerRe.MatchString(s) {
		s = eventHandlerRe.ReplaceAllString(s, "")
	}
	return s
}

var stripDenylisted = Compose(
	RemoveNullBytes,
	StripAngleBrackets,
	RemoveJavaScriptScheme,
	RemoveEventHandlers,
)

// UserInput applies the denylist cleanup used for free-form request fields:
// NUL bytes, angle brackets, javascript: schemes, and inline event handlers
// are removed, then the result is trimmed. One removal can splice a new
// denylisted token out of its surroundings ("java<>script:" loses its
// brackets and becomes a live scheme), so the whole pass repeats until the
// string stops changing. The pipeline is idempotent.
//
// This is a best-effort denylist, not an HTML sanitizer. It does not parse
// markup; rendering untrusted content still requires output encoding.
func UserInput(s string) string {
	cleaned := stripDenylisted(s)
	for cleaned != s {
		s = cleaned
		cleaned = stripDenylisted(s)
	}
	return Trim(cleaned)
}
