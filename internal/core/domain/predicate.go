package domain

import (
	"fmt"
	"strings"
)

// KeyColumn is the column the host must constrain for a lookup.
const KeyColumn = "email"

// Operator is a comparison operator in a pushed-down filter condition.
type Operator string

// Operators the host may push down. Only OpEqual on the key column is
// answerable.
const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "<>"
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLike         Operator = "~~"
	OpIn           Operator = "in"
)

// Qual is a single filter condition forwarded by the host query engine
// instead of being evaluated by it.
type Qual struct {
	// Column is the column the condition applies to.
	Column string
	// Operator is the comparison operator.
	Operator Operator
	// Value is the literal the column is compared against.
	Value string
}

// LookupKey is a normalized email-like identifier addressing a profile.
// Always non-empty, trimmed, and lower-cased.
type LookupKey string

// NormalizeKey trims surrounding whitespace and lower-cases raw so that
// case and padding variants of the same address compare equal.
func NormalizeKey(raw string) LookupKey {
	return LookupKey(strings.ToLower(strings.TrimSpace(raw)))
}

// ExtractLookupKey extracts the single equality lookup key from the
// pushed-down filter conditions.
//
// Exactly one equality condition on the key column succeeds. Zero key
// conditions fail with ErrMissingKeyFilter, which callers recover into an
// empty result set. Anything else (multiple equalities, non-equality
// operators on the key column) fails with ErrUnsupportedPredicate: the
// host's pushdown contract may silently drop such conditions, and failing
// loudly beats a silent full scan.
func ExtractLookupKey(quals []Qual) (LookupKey, error) {
	var keys []LookupKey
	for _, q := range quals {
		if q.Column != KeyColumn {
			continue
		}
		if q.Operator != OpEqual {
			return "", fmt.Errorf("%w: operator %q on column %q", ErrUnsupportedPredicate, q.Operator, q.Column)
		}
		keys = append(keys, NormalizeKey(q.Value))
	}

	switch len(keys) {
	case 0:
		return "", ErrMissingKeyFilter
	case 1:
		if keys[0] == "" {
			return "", fmt.Errorf("%w: empty value for column %q", ErrUnsupportedPredicate, KeyColumn)
		}
		return keys[0], nil
	default:
		return "", fmt.Errorf("%w: %d equality conditions on column %q, expected exactly one",
			ErrUnsupportedPredicate, len(keys), KeyColumn)
	}
}
