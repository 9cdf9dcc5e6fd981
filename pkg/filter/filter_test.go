package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vcfsheet/pkg/vcard"
)

func TestParseOperator(t *testing.T) {
	tests := []struct {
		tok  string
		want Operator
		ok   bool
	}{
		{"&", OpAnd, true},
		{"|", OpOr, true},
		{"and", OpAnd, true},
		{"AND", OpAnd, true},
		{"or", OpOr, true},
		{"Or", OpOr, true},
		{" & ", OpAnd, true},
		{"xor", 0, false},
		{"&&", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			op, err := ParseOperator(tt.tok)
			if !tt.ok {
				require.ErrorIs(t, err, ErrInvalidOperator)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}
}

func TestMatchesEmptyFilterAlwaysTrue(t *testing.T) {
	for _, op := range []Operator{OpAnd, OpOr} {
		spec := Spec{Op: op}
		assert.True(t, spec.Matches(nil))
		assert.True(t, spec.Matches([]string{"anything"}))
	}
}

func TestMatchesAndRequiresSubset(t *testing.T) {
	spec := Spec{Tags: []string{"friend", "work"}, Op: OpAnd}

	assert.False(t, spec.Matches([]string{"friend"}))
	assert.True(t, spec.Matches([]string{"friend", "work"}))
	assert.True(t, spec.Matches([]string{"work", "friend", "extra"}))
	assert.False(t, spec.Matches(nil))
}

func TestMatchesOrRequiresIntersection(t *testing.T) {
	spec := Spec{Tags: []string{"friend", "work"}, Op: OpOr}

	assert.True(t, spec.Matches([]string{"friend"}))
	assert.True(t, spec.Matches([]string{"work", "other"}))
	assert.False(t, spec.Matches([]string{"other"}))
	assert.False(t, spec.Matches(nil))
}

func TestMatchesCaseSensitiveExactOnly(t *testing.T) {
	spec := Spec{Tags: []string{"Friend"}, Op: OpOr}

	assert.False(t, spec.Matches([]string{"friend"}))
	assert.False(t, spec.Matches([]string{"Friendly"}))
	assert.True(t, spec.Matches([]string{"Friend"}))
}

func tagged(index int, tags ...string) vcard.Contact {
	return vcard.Contact{Index: index, Tags: tags}
}

func TestApplyPreservesOrder(t *testing.T) {
	contacts := []vcard.Contact{
		tagged(0, "work"),
		tagged(1, "friend"),
		tagged(2, "work", "friend"),
		tagged(3),
	}

	out := Apply(contacts, Spec{Tags: []string{"work"}, Op: OpOr})
	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0].Index)
	assert.Equal(t, 2, out[1].Index)
}

func TestApplyEmptyFilterKeepsEverything(t *testing.T) {
	contacts := []vcard.Contact{tagged(0, "a"), tagged(1), tagged(2, "b")}

	for _, op := range []Operator{OpAnd, OpOr} {
		out := Apply(contacts, Spec{Op: op})
		assert.Equal(t, contacts, out)
	}
}

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "&", OpAnd.String())
	assert.Equal(t, "|", OpOr.String())
}
