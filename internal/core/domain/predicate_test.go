package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	t.Run("trims and lower-cases", func(t *testing.T) {
		assert.Equal(t, LookupKey("user@example.com"), NormalizeKey("  User@Example.COM \t"))
	})

	t.Run("already normalized is unchanged", func(t *testing.T) {
		assert.Equal(t, LookupKey("user@example.com"), NormalizeKey("user@example.com"))
	})

	t.Run("equivalent variants normalize equal", func(t *testing.T) {
		variants := []string{
			"user@example.com",
			"USER@EXAMPLE.COM",
			" user@example.com",
			"User@Example.com\n",
		}
		for _, v := range variants {
			assert.Equal(t, NormalizeKey(variants[0]), NormalizeKey(v), "variant %q", v)
		}
	})
}

func TestExtractLookupKey(t *testing.T) {
	t.Run("single equality on key column succeeds", func(t *testing.T) {
		quals := []Qual{
			{Column: KeyColumn, Operator: OpEqual, Value: " User@Example.com "},
		}

		key, err := ExtractLookupKey(quals)

		require.NoError(t, err)
		assert.Equal(t, LookupKey("user@example.com"), key)
	})

	t.Run("conditions on other columns are ignored", func(t *testing.T) {
		quals := []Qual{
			{Column: "company", Operator: OpEqual, Value: "Acme"},
			{Column: KeyColumn, Operator: OpEqual, Value: "user@example.com"},
			{Column: "location", Operator: OpLike, Value: "%berlin%"},
		}

		key, err := ExtractLookupKey(quals)

		require.NoError(t, err)
		assert.Equal(t, LookupKey("user@example.com"), key)
	})

	t.Run("no key condition fails with missing filter", func(t *testing.T) {
		_, err := ExtractLookupKey(nil)
		assert.ErrorIs(t, err, ErrMissingKeyFilter)

		_, err = ExtractLookupKey([]Qual{
			{Column: "company", Operator: OpEqual, Value: "Acme"},
		})
		assert.ErrorIs(t, err, ErrMissingKeyFilter)
	})

	t.Run("two equalities fail with unsupported predicate", func(t *testing.T) {
		quals := []Qual{
			{Column: KeyColumn, Operator: OpEqual, Value: "a@example.com"},
			{Column: KeyColumn, Operator: OpEqual, Value: "b@example.com"},
		}

		_, err := ExtractLookupKey(quals)

		assert.ErrorIs(t, err, ErrUnsupportedPredicate)
	})

	t.Run("non-equality operator on key column fails", func(t *testing.T) {
		for _, op := range []Operator{OpNotEqual, OpLess, OpGreater, OpLike, OpIn} {
			_, err := ExtractLookupKey([]Qual{
				{Column: KeyColumn, Operator: op, Value: "user@example.com"},
			})
			assert.ErrorIs(t, err, ErrUnsupportedPredicate, "operator %q", op)
		}
	})

	t.Run("empty key value fails", func(t *testing.T) {
		_, err := ExtractLookupKey([]Qual{
			{Column: KeyColumn, Operator: OpEqual, Value: "   "},
		})
		assert.ErrorIs(t, err, ErrUnsupportedPredicate)
	})
}
