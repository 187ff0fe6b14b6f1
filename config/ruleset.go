// Package config selects a grammar for a file path: an ordered set of
// rules, each a glob pattern paired with a grammar name, matched against
// the path of the file being opened.
package config

import (
	"log"

	"github.com/pkg/errors"

	"github.com/aretext/parsedoc/grammar"
	"github.com/aretext/parsedoc/languages"
)

// Rule maps a glob pattern over file paths to a named grammar.
type Rule struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Grammar string `yaml:"grammar"`
}

// RuleSet is an ordered set of rules. The last rule whose pattern matches
// a path wins.
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// Validate checks that every rule names a known grammar.
func (rs *RuleSet) Validate() error {
	for _, rule := range rs.Rules {
		if _, ok := languages.ByName(rule.Grammar); !ok {
			return errors.Errorf("config rule %q references unknown grammar %q", rule.Name, rule.Grammar)
		}
	}
	return nil
}

// GrammarForPath returns the grammar selected for path by the last
// matching rule, or Tokens if no rule matches.
func (rs *RuleSet) GrammarForPath(path string) *grammar.Grammar {
	result := languages.Tokens()
	for _, rule := range rs.Rules {
		if GlobMatch(rule.Pattern, path) {
			log.Printf("applying config rule %q (pattern %q) for path %q\n", rule.Name, rule.Pattern, path)
			if g, ok := languages.ByName(rule.Grammar); ok {
				result = g
			}
		}
	}
	return result
}

// DefaultRuleSet returns the rule set used when no configuration file is
// present: *.yaml and *.yml files use the keyvalue grammar, everything
// else uses the tokens grammar.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Rules: []Rule{
			{Name: "yaml-as-keyvalue", Pattern: "**/*.yaml", Grammar: "keyvalue"},
			{Name: "yml-as-keyvalue", Pattern: "**/*.yml", Grammar: "keyvalue"},
		},
	}
}
