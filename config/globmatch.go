package config

import (
	"path/filepath"
	"strings"
)

// GlobMatch checks whether path matches pattern. Patterns are always
// written with "/" as the component separator, since configuration files
// are meant to be portable across platforms; path comes from the host
// filesystem and may use a different separator, so it is normalized to
// "/" before matching. A "*" in a path component is a wildcard matching
// part of that component; a "**" component matches any number of whole
// path components. For example "**/*.yaml" matches "a/b/config.yaml" on
// every platform, including one whose native separator is "\\". Uses the
// backtracking strategy described at https://research.swtch.com/glob.
func GlobMatch(pattern, path string) bool {
	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(filepath.ToSlash(path), "/")
	return matchSequence(patternParts, pathParts,
		func(s string) bool { return s == "**" },
		componentsMatch)
}

// componentsMatch checks whether a single pattern component, which may
// contain "*" wildcards, matches a single path component. Matching runs
// over runes rather than bytes so a wildcard can't split a multi-byte
// character.
func componentsMatch(pc, nc string) bool {
	return matchSequence([]rune(pc), []rune(nc),
		func(r rune) bool { return r == '*' },
		func(p, n rune) bool { return p == n })
}

// matchSequence runs the backtracking algorithm shared by component-level
// and rune-level matching: pattern is scanned left to right, each
// wildcard token first assumed to match nothing and, on a later mismatch,
// backtracked to consume one more input token at a time.
func matchSequence[T any](pattern, input []T, isWildcard func(T) bool, eq func(p, n T) bool) bool {
	pi, ii := 0, 0
	backtrackPi, backtrackIi := 0, 0

	for pi < len(pattern) || ii < len(input) {
		if pi < len(pattern) {
			p := pattern[pi]
			if isWildcard(p) {
				backtrackPi = pi
				backtrackIi = ii + 1
				pi++
				continue
			}
			if ii < len(input) && eq(p, input[ii]) {
				pi++
				ii++
				continue
			}
		}
		if 0 < backtrackIi && backtrackIi <= len(input) {
			pi, ii = backtrackPi, backtrackIi
			continue
		}
		return false
	}
	return true
}
