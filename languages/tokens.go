// Package languages provides ready-made grammars, the same role the
// teacher's editor/syntax/languages package plays for its token automata.
package languages

import "github.com/aretext/parsedoc/grammar"

// Tokens returns the scenario grammar used throughout the documentation
// and tests: rule 0 repeats whitespace, punctuation, a word, or a number,
// in that order, each a flat Symbol rule.
func Tokens() *grammar.Grammar {
	whitespace := grammar.Symbol("whitespace", grammar.RoleWhitespace,
		grammar.RepeatChars(
			grammar.Only(' '), grammar.Only('\t'), grammar.Only('\n'), grammar.Only('\r'),
		))

	punctuation := grammar.Symbol("punctuation", grammar.RolePunctuation,
		grammar.RepeatChars(
			grammar.Chars('!', '/'), grammar.Chars(':', '@'),
			grammar.Chars('[', '`'), grammar.Chars('{', '~'),
		))

	word := grammar.Symbol("word", grammar.RoleIdentifier,
		grammar.StartThenLoopChars(
			[]grammar.CharRange{
				grammar.Chars('a', 'z'), grammar.Chars('A', 'Z'), grammar.Only('_'),
			},
			[]grammar.CharRange{
				grammar.Chars('a', 'z'), grammar.Chars('A', 'Z'),
				grammar.Chars('0', '9'), grammar.Only('_'),
			},
		))

	number := grammar.Symbol("number", grammar.RoleNumber,
		grammar.RepeatChars(grammar.Chars('0', '9')))

	root := grammar.Automaton("tokens", grammar.RoleNone,
		grammar.RepeatRules(1, 2, 3, 4))

	return grammar.New(root, whitespace, punctuation, word, number)
}
