package languages

import "github.com/aretext/parsedoc/grammar"

// ByName looks up a built-in grammar by the name used in config rules.
func ByName(name string) (*grammar.Grammar, bool) {
	switch name {
	case "tokens":
		return Tokens(), true
	case "keyvalue":
		return KeyValue(), true
	default:
		return nil, false
	}
}
