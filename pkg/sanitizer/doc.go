// Package sanitizer provides small, pure helpers for cleaning and
// normalising untrusted string input before it is stored or displayed.
//
// The helpers fall into two groups:
//
//   - Strings – trimming, case folding, control-character removal and
//     whitespace normalisation.
//
//   - Security – denylist routines that strip known-dangerous content: NUL
//     bytes, angle brackets, javascript: URL schemes and inline event-handler
//     attributes. UserInput chains them into the standard cleanup applied to
//     free-form request fields.
//
// None of the helpers returns an error; they always produce a safe result
// from whatever input they receive. The package holds no state and every
// function is safe for concurrent use.
//
// The higher-order Apply and Compose helpers build sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.CollapseWhitespace,
//	    sanitizer.TrimToLower,
//	)
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// The security helpers are deliberately a denylist, not an HTML parser. They
// remove specific dangerous substrings and nothing more; real safety for
// rendered HTML requires an allow-list sanitizer or output encoding at render
// time.
package sanitizer
