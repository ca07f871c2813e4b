package dice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/nicholasturner1/dnd-roller/internal/dice"
)

func TestSplit_SingleLiteral(t *testing.T) {
	fields, err := dice.Split("7")
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, dice.TermLiteral, fields[0].Kind)
	assert.Equal(t, 7, fields[0].Literal)
}

func TestSplit_Expression(t *testing.T) {
	fields, err := dice.Split("2d6+3-1d4")
	require.NoError(t, err)
	require.Len(t, fields, 5, "expected operand/operator alternation")

	assert.Equal(t, dice.TermDie, fields[0].Kind)
	assert.Equal(t, 2, fields[0].Multiplier)
	assert.Equal(t, 6, fields[0].Faces)

	assert.Equal(t, dice.TermOperator, fields[1].Kind)
	assert.Equal(t, dice.OpAdd, fields[1].Op)

	assert.Equal(t, dice.TermLiteral, fields[2].Kind)
	assert.Equal(t, 3, fields[2].Literal)

	assert.Equal(t, dice.TermOperator, fields[3].Kind)
	assert.Equal(t, dice.OpSub, fields[3].Op)

	assert.Equal(t, dice.TermDie, fields[4].Kind)
	assert.Equal(t, 1, fields[4].Multiplier)
	assert.Equal(t, 4, fields[4].Faces)
}

func TestSplit_TrimsWhitespace(t *testing.T) {
	fields, err := dice.Split("  2d6 + 3 ")
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, "2d6", fields[0].Raw)
	assert.Equal(t, "3", fields[2].Raw)
}

func TestSplit_DefaultMultiplier(t *testing.T) {
	fields, err := dice.Split("d20")
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, dice.TermDie, fields[0].Kind)
	assert.Equal(t, 1, fields[0].Multiplier, "multiplier defaults to 1 when absent")
	assert.Equal(t, 20, fields[0].Faces)
}

// TestSplit_SignContinuation verifies that a "-" directly after a pushed "-"
// is absorbed rather than pushed as a second operator.
func TestSplit_SignContinuation(t *testing.T) {
	fields, err := dice.Split("5--3")
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, dice.TermLiteral, fields[0].Kind)
	assert.Equal(t, dice.OpSub, fields[1].Op)
	assert.Equal(t, 3, fields[2].Literal)
}

func TestSplit_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"leading plus", "+5", dice.ErrOperatorPlacement},
		{"leading minus", "-5", dice.ErrOperatorPlacement},
		{"triple minus", "5---3", dice.ErrOperatorPlacement},
		{"empty operand between operators", "5+-3", dice.ErrOperatorPlacement},
		{"double plus", "5++3", dice.ErrOperatorPlacement},
		{"bare d", "d", dice.ErrMalformedDie},
		{"die without faces", "3d", dice.ErrMalformedDie},
		{"zero faces", "1d0", dice.ErrMalformedDie},
		{"zero multiplier", "0d6", dice.ErrMalformedDie},
		{"trailing junk after faces", "1d6x", dice.ErrMalformedDie},
		{"non-integer literal", "abc", dice.ErrInvalidLiteral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dice.Split(tc.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want, "Split(%q)", tc.raw)
		})
	}
}

// TestSplit_DieTerm_Property verifies that any well-formed MdF operand
// classifies to a single die field carrying its multiplier and face count.
func TestSplit_DieTerm_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		mult := rapid.IntRange(1, 99).Draw(rt, "mult")
		faces := rapid.IntRange(1, 1000).Draw(rt, "faces")

		fields, err := dice.Split(fmt.Sprintf("%dd%d", mult, faces))
		require.NoError(rt, err)
		require.Len(rt, fields, 1)
		assert.Equal(rt, dice.TermDie, fields[0].Kind)
		assert.Equal(rt, mult, fields[0].Multiplier)
		assert.Equal(rt, faces, fields[0].Faces)
	})
}
