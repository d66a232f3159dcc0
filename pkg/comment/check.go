package comment

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	// Permissive by design: one @, non-whitespace local part and domain, at
	// least one dot in the domain. Full RFC 5322 parsing rejects addresses
	// real users type, so the service never attempted it.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	ipv4Regex = regexp.MustCompile(`^(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)(\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)){3}$`)
	ipv6Regex = regexp.MustCompile(`^([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}$`)
)

// IDPredicate reports whether a string is a well-formed identifier. The
// storage engine's identifier convention is not baked into the validators;
// operations that check identifiers accept a predicate and default to
// ObjectID.
type IDPredicate func(id string) bool

// ObjectID reports whether id is a valid MongoDB ObjectID (24 hex characters).
func ObjectID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

// UUID reports whether id is a valid UUID. Alternative identifier format for
// deployments that key comments by UUID instead of ObjectID.
func UUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// IsValidID reports whether id is well-formed under the default identifier
// format, ObjectID.
func IsValidID(id string) bool {
	return ObjectID(id)
}

// IsValidEmail reports whether email looks like a deliverable address. See
// emailRegex for the deliberately loose grammar.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidIP reports whether ip is a dotted-quad IPv4 address or an IPv6
// address written as eight full groups, "::1", or "::".
//
// Known limitation: other compressed IPv6 forms ("fe80::1", "2001:db8::")
// are rejected. Client IPs reach the service already expanded, so the
// narrower grammar has been kept as documented behavior.
func IsValidIP(ip string) bool {
	if ipv4Regex.MatchString(ip) {
		return true
	}
	if ip == "::1" || ip == "::" {
		return true
	}
	return ipv6Regex.MatchString(ip)
}

// IsValidURL reports whether raw parses as an absolute URL with a scheme and
// host.
func IsValidURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
