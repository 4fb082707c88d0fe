package entity

import (
	"regexp"

	"github.com/google/uuid"
)

// productIDNamespace is the fixed namespace for deriving canonical product IDs
// from non-UUID identifiers. Changing it would re-key every derived product.
var productIDNamespace = uuid.MustParse("8f7e3b6a-52c1-4f7d-9b0e-6d2a41c8e5b3")

var uuidTextPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// IsCanonicalID reports whether raw is already canonical UUID text
// (8-4-4-4-12 hex groups, case-insensitive).
func IsCanonicalID(raw string) bool {
	if len(raw) != 36 {
		return false
	}

	return uuidTextPattern.MatchString(lowerASCII(raw))
}

// CanonicalProductID maps an arbitrary product identifier to a canonical UUID.
// Valid UUID text passes through unchanged; any other string is deterministically
// derived via a name-based (SHA-1, RFC 4122 v5) UUID under a fixed namespace.
// The mapping is total: every input yields a valid UUID and the same input
// always yields the same UUID.
//
// The catalog's backing store types product keys as UUID, while seed data and
// legacy imports use human-readable slugs. This bridges the two without schema
// changes.
func CanonicalProductID(raw string) uuid.UUID {
	if IsCanonicalID(raw) {
		// uuid.Parse cannot fail after the format check above.
		id, err := uuid.Parse(raw)
		if err == nil {
			return id
		}
	}

	return uuid.NewSHA1(productIDNamespace, []byte(raw))
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}

	return string(b)
}
