// Package comment validates and sanitizes untrusted input for the comments
// service: comment bodies, author details, listing parameters (pagination,
// sorting, date ranges), abuse reports, moderation actions, and bulk
// operations.
//
// The package sits between the HTTP layer and persistence. Route handlers
// hand it raw request fields exactly as decoded (any for JSON bodies, string
// for query parameters) and receive a typed result:
//
//	res := comment.ValidateContent(body["content"])
//	if !res.Valid {
//	    // res.Errors maps straight onto an HTTP 400 body
//	}
//	store.Save(res.Sanitized)
//
// Every result carries three things: Valid, the ordered list of all
// violations found (validation does not stop at the first problem), and a
// best-effort sanitized value that is populated even on failure so callers
// can log or display what was submitted. Valid is true exactly when Errors
// is empty.
//
// Malformed input is the expected case and never causes a panic or an error
// return; it is reported through the result. Listing validators go one step
// further and substitute documented defaults for invalid parameters so a
// best-effort page can still be served.
//
// Identifier checks do not hardcode a storage engine. Operations that
// inspect ids take an IDPredicate and default to ObjectID; deployments
// keying comments differently pass UUID or their own predicate.
//
// All functions are pure and stateless, safe for unlimited concurrent use.
package comment
