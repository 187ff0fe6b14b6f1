package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharRangeContains(t *testing.T) {
	r := Chars('a', 'z')
	assert.True(t, r.Contains('m'))
	assert.False(t, r.Contains('A'))

	one := Only('#')
	assert.True(t, one.Contains('#'))
	assert.False(t, one.Contains('!'))
}

func TestRepeatCharsAcceptsEmptyAndLoops(t *testing.T) {
	steps := RepeatChars(Chars('0', '9'))
	require := steps[0]
	assert.True(t, require.Accepting)
	assert.Len(t, require.Edges, 1)
	assert.Equal(t, 0, require.Edges[0].Next)
}

func TestStartThenLoopCharsRejectsEmptyStart(t *testing.T) {
	steps := StartThenLoopChars(
		[]CharRange{Chars('a', 'z')},
		[]CharRange{Chars('a', 'z'), Chars('0', '9')},
	)
	assert.False(t, steps[0].Accepting)
	assert.True(t, steps[1].Accepting)
}

func TestSeqChainsAndAcceptsOnlyAtEnd(t *testing.T) {
	steps := Seq(1, 2, 3)
	assert.Len(t, steps, 4)
	for i := 0; i < 3; i++ {
		assert.False(t, steps[i].Accepting)
		assert.Equal(t, RuleIndex(i+1), steps[i].Edges[0].Label)
		assert.Equal(t, i+1, steps[i].Edges[0].Next)
	}
	assert.True(t, steps[3].Accepting)
	assert.Empty(t, steps[3].Edges)
}

func TestSeqSkippingTriesSkipBeforeEachRequiredRule(t *testing.T) {
	steps := SeqSkipping(9, 1, 2)
	assert.Len(t, steps, 3)
	for i := 0; i < 2; i++ {
		assert.False(t, steps[i].Accepting)
		require.Len(t, steps[i].Edges, 2)
		assert.Equal(t, RuleIndex(9), steps[i].Edges[0].Label)
		assert.Equal(t, i, steps[i].Edges[0].Next)
		assert.Equal(t, RuleIndex(i+1), steps[i].Edges[1].Label)
		assert.Equal(t, i+1, steps[i].Edges[1].Next)
	}
	assert.True(t, steps[2].Accepting)
}

func TestSymbolPanicsOnEmptySteps(t *testing.T) {
	assert.Panics(t, func() {
		Symbol("empty", RoleNone, nil)
	})
}

func TestAutomatonPanicsOnEmptySteps(t *testing.T) {
	assert.Panics(t, func() {
		Automaton("empty", RoleNone, nil)
	})
}

func TestGrammarIndexing(t *testing.T) {
	root := Automaton("root", RoleNone, RepeatRules(1))
	leaf := Symbol("leaf", RoleIdentifier, RepeatChars(Chars('a', 'z')))
	g := New(root, leaf)

	assert.Equal(t, 2, g.NumRules())
	assert.Equal(t, root, g.Rule(RootRule))
	assert.Equal(t, leaf, g.Rule(1))
}
