package languages

import "github.com/aretext/parsedoc/grammar"

// KeyValue returns a small nested grammar for "key = value" configuration
// files: entries separated by newlines, with '#' comments. Unlike Tokens,
// its root rule nests an Automaton (entry) inside the top-level Automaton,
// exercising more than one internal node level.
func KeyValue() *grammar.Grammar {
	restOfLine := grammar.Chars(0x20, 0x10FFFF) // excludes control chars below 0x20, including '\n'

	whitespace := grammar.Symbol("whitespace", grammar.RoleWhitespace,
		grammar.RepeatChars(grammar.Only(' '), grammar.Only('\t')))

	newline := grammar.Symbol("newline", grammar.RoleWhitespace,
		grammar.RepeatChars(grammar.Only('\n')))

	comment := grammar.Symbol("comment", grammar.RoleComment,
		grammar.StartThenLoopChars(
			[]grammar.CharRange{grammar.Only('#')},
			[]grammar.CharRange{restOfLine},
		))

	key := grammar.Symbol("key", grammar.RoleIdentifier,
		grammar.StartThenLoopChars(
			[]grammar.CharRange{grammar.Chars('a', 'z'), grammar.Chars('A', 'Z'), grammar.Only('_')},
			[]grammar.CharRange{grammar.Chars('a', 'z'), grammar.Chars('A', 'Z'), grammar.Chars('0', '9'), grammar.Only('_')},
		))

	equals := grammar.Symbol("equals", grammar.RoleOperator, grammar.Literal('='))

	value := grammar.Symbol("value", grammar.RoleString,
		grammar.RepeatChars(restOfLine))

	// key, equals, and value may have whitespace between them, so entry
	// skips over rule 1 (whitespace) ahead of each required rule instead of
	// chaining them with zero tolerance the way Seq would.
	entry := grammar.Automaton("entry", grammar.RoleNone, grammar.SeqSkipping(1, 4, 5, 6))

	root := grammar.Automaton("keyvalue", grammar.RoleNone,
		grammar.RepeatRules(1, 2, 3, 7))

	return grammar.New(root, whitespace, newline, comment, key, equals, value, entry)
}
