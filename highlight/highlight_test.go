package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretext/parsedoc/document"
	"github.com/aretext/parsedoc/grammar"
	"github.com/aretext/parsedoc/languages"
	"github.com/aretext/parsedoc/text"
)

func TestWalkSkipsRoleNoneGroupingNodes(t *testing.T) {
	gram := languages.Tokens()
	d := document.New(gram)
	require.NoError(t, d.Edit(text.Span{}, "let x = 5"))

	spans := Walk(d.Root(), gram, d.Text())
	require.Len(t, spans, 7)
	assert.Equal(t, grammar.RoleIdentifier, spans[0].Role)
	assert.Equal(t, text.Span{Lo: 0, Hi: 3}, spans[0].ByteSpan)
	assert.Equal(t, uint64(3), spans[0].ColumnWidth)
}

func TestWalkKeyValueCoversNestedEntryNodes(t *testing.T) {
	gram := languages.KeyValue()
	d := document.New(gram)
	require.NoError(t, d.Edit(text.Span{}, "width = 80\n"))

	spans := Walk(d.Root(), gram, d.Text())
	var roles []grammar.TokenRole
	for _, s := range spans {
		roles = append(roles, s.Role)
	}
	assert.Contains(t, roles, grammar.RoleIdentifier)
	assert.Contains(t, roles, grammar.RoleOperator)
	assert.Contains(t, roles, grammar.RoleString)
}
