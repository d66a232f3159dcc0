// Package category validates category payloads for the posts service and
// derives their URL slugs.
//
// Validate mirrors the comment-side validators: it accepts raw decoded
// input, enumerates every violation, and always returns a sanitized payload
// (trimmed name, single-lined description, derived slug) so callers can
// persist or log it directly once the result is valid.
package category
