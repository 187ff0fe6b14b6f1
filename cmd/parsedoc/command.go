package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"

	"github.com/aretext/parsedoc/document"
	"github.com/aretext/parsedoc/file"
	"github.com/aretext/parsedoc/highlight"
	"github.com/aretext/parsedoc/text"
)

// runCommand parses and executes one REPL line. Commands start with ':';
// anything else is ignored (blank lines, comments typed by a user piping
// in a transcript).
func runCommand(line string, out io.Writer, path string, doc *document.Document) error {
	line = strings.TrimSpace(line)
	if line == "" || !strings.HasPrefix(line, ":") {
		return nil
	}

	args, err := shlex.Split(strings.TrimPrefix(line, ":"))
	if err != nil {
		return errors.Wrap(err, "shlex.Split command line")
	}
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "edit":
		return runEditCommand(args[1:], doc)
	case "print":
		fmt.Fprintln(out, doc.Text().String())
		return nil
	case "tokens":
		return printTokens(out, doc)
	case "save":
		return file.Save(path, doc.Text())
	default:
		return errors.Errorf("unknown command %q", args[0])
	}
}

func runEditCommand(args []string, doc *document.Document) error {
	if len(args) < 2 {
		return errors.Errorf("usage: edit <lo> <hi> [replacement]")
	}
	lo, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return errors.Wrapf(err, "parse lo %q", args[0])
	}
	hi, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return errors.Wrapf(err, "parse hi %q", args[1])
	}
	var replacement string
	if len(args) > 2 {
		replacement = strings.Join(args[2:], " ")
	}
	return doc.Edit(text.Span{Lo: lo, Hi: hi}, replacement)
}

func printTokens(out io.Writer, doc *document.Document) error {
	spans := highlight.Walk(doc.Root(), doc.Grammar(), doc.Text())
	for _, s := range spans {
		fmt.Fprintf(out, "%d-%d\trole=%d\twidth=%d\n", s.ByteSpan.Lo, s.ByteSpan.Hi, s.Role, s.ColumnWidth)
	}
	return nil
}
