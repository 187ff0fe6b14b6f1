package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretext/parsedoc/document"
	"github.com/aretext/parsedoc/file"
	"github.com/aretext/parsedoc/languages"
	"github.com/aretext/parsedoc/text"
)

func TestRunCommandEditAndPrint(t *testing.T) {
	doc := document.New(languages.Tokens())
	require.NoError(t, doc.Edit(text.Span{}, "let x = 5"))

	var out bytes.Buffer
	require.NoError(t, runCommand(":edit 5 5 1", &out, "", doc))
	assert.Equal(t, "let x1 = 5", doc.Text().String())

	out.Reset()
	require.NoError(t, runCommand(":print", &out, "", doc))
	assert.Equal(t, "let x1 = 5\n", out.String())
}

func TestRunCommandIgnoresBlankAndNonCommandLines(t *testing.T) {
	doc := document.New(languages.Tokens())
	var out bytes.Buffer
	require.NoError(t, runCommand("", &out, "", doc))
	require.NoError(t, runCommand("not a command", &out, "", doc))
	assert.Empty(t, out.String())
}

func TestRunCommandUnknownCommand(t *testing.T) {
	doc := document.New(languages.Tokens())
	var out bytes.Buffer
	err := runCommand(":bogus", &out, "", doc)
	assert.Error(t, err)
}

func TestRunCommandSaveRoundTrips(t *testing.T) {
	doc := document.New(languages.Tokens())
	require.NoError(t, doc.Edit(text.Span{}, "x"))

	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	var out bytes.Buffer
	require.NoError(t, runCommand(":save", &out, path, doc))

	saved, err := file.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x", saved.String())
}
