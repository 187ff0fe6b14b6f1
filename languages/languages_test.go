package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretext/parsedoc/grammar"
	"github.com/aretext/parsedoc/parse"
	"github.com/aretext/parsedoc/text"
)

func TestTokensGrammarMatchesScenario(t *testing.T) {
	g := Tokens()
	buf := text.NewBufferFromString("let x = 5")
	root := parse.Parse(buf, g, nil, text.Span{})
	require.NotNil(t, root)
	assert.Equal(t, text.Span{Lo: 0, Hi: buf.ByteLen()}, root.Span)
	require.Len(t, root.Subs, 7)
}

func TestKeyValueGrammarParsesEntriesAndComments(t *testing.T) {
	g := KeyValue()
	src := "# config\nname = aretext\nwidth = 80\n"
	buf := text.NewBufferFromString(src)
	root := parse.Parse(buf, g, nil, text.Span{})
	require.NotNil(t, root)
	assert.Equal(t, text.Span{Lo: 0, Hi: buf.ByteLen()}, root.Span)

	var entries, comments int
	for _, n := range root.Subs {
		switch n.Rule {
		case grammar.RuleIndex(7):
			entries++
		case grammar.RuleIndex(3):
			comments++
		}
	}
	assert.Equal(t, 2, entries)
	assert.Equal(t, 1, comments)
}
