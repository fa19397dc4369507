package parser

import "regexp"

// documentStart matches the prefixes that mark a string as a full page: a
// doctype declaration or an opening html/head/body tag, case-insensitive,
// after any leading whitespace.
var documentStart = regexp.MustCompile(`(?i)^\s*<(!doctype|html|head|body)`)

// IsDocument reports whether text looks like a complete HTML document
// rather than a fragment. It is a cheap prefix heuristic, not a parse, and
// never validates anything past the first tag start.
func IsDocument(text string) bool {
	return documentStart.MatchString(text)
}
