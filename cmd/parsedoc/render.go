package main

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/aretext/parsedoc/document"
	"github.com/aretext/parsedoc/grammar"
	"github.com/aretext/parsedoc/highlight"
)

var palette = map[grammar.TokenRole]tcell.Style{
	grammar.RoleKeyword:     tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true),
	grammar.RoleIdentifier:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	grammar.RoleNumber:      tcell.StyleDefault.Foreground(tcell.ColorOrange),
	grammar.RoleString:      tcell.StyleDefault.Foreground(tcell.ColorGreen),
	grammar.RoleComment:     tcell.StyleDefault.Foreground(tcell.ColorGray),
	grammar.RoleOperator:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	grammar.RolePunctuation: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	grammar.RoleWhitespace:  tcell.StyleDefault,
}

// renderToTerminal draws the document's highlighted text to a terminal
// screen and waits for a keypress before exiting.
func renderToTerminal(doc *document.Document, gram *grammar.Grammar) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.Fill(' ', tcell.StyleDefault)
	drawHighlighted(screen, doc, gram)
	screen.Show()
	screen.PollEvent()
	return nil
}

func drawHighlighted(screen tcell.Screen, doc *document.Document, gram *grammar.Grammar) {
	spans := highlight.Walk(doc.Root(), gram, doc.Text())
	text := doc.Text()
	row, col := 0, 0
	for _, span := range spans {
		style := palette[span.Role]
		for offset := span.ByteSpan.Lo; offset < span.ByteSpan.Hi; {
			r, ok := text.ReadAt(offset)
			if !ok {
				break
			}
			if r == '\n' {
				row++
				col = 0
				offset++
				continue
			}
			screen.SetContent(col, row, r, nil, style)
			col++
			offset += uint64(utf8.RuneLen(r))
		}
	}
}
