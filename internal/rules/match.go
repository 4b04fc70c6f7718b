package rules

import "strings"

// Match reports whether a glob-style pattern matches a path.
// `*` matches any run of characters, including directory separators,
// which mirrors shell case-statement globbing. A pattern with a leading
// "*/" also matches paths with no directory prefix at all, so
// "*/app/models/*.rb" covers both "repo/app/models/user.rb" and the
// repo-relative "app/models/user.rb".
func Match(pattern, path string) bool {
	if pattern == "" || path == "" {
		return false
	}
	if matchGlob(pattern, path) {
		return true
	}
	if rest, ok := strings.CutPrefix(pattern, "*/"); ok {
		return matchGlob(rest, path)
	}
	return false
}

// matchGlob is an iterative wildcard matcher: `*` matches any sequence,
// all other characters match literally. Two-pointer with backtracking
// to the most recent star.
func matchGlob(pattern, s string) bool {
	var p, i int
	star, mark := -1, 0

	for i < len(s) {
		switch {
		case p < len(pattern) && pattern[p] == '*':
			star = p
			mark = i
			p++
		case p < len(pattern) && pattern[p] == s[i]:
			p++
			i++
		case star >= 0:
			// Extend the last star by one character and retry.
			mark++
			i = mark
			p = star + 1
		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
