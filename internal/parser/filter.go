package parser

import (
	"strings"
	"unicode/utf8"
)

// SkipReason explains why a raw line never reached the line parser
type SkipReason string

const (
	SkipBlank     SkipReason = "blank"
	SkipComment   SkipReason = "comment"
	SkipProlog    SkipReason = "prolog"
	SkipStructure SkipReason = "block delimiter"
)

// SkippedLine records a filtered line for verbose diagnostics
type SkippedLine struct {
	Line   int
	Reason SkipReason
}

type skipRule struct {
	reason SkipReason
	match  func(trimmed string) bool
}

// skipRules are checked in order; the first match names the reason
var skipRules = []skipRule{
	{SkipBlank, func(s string) bool { return utf8.RuneCountInString(s) < 2 }},
	{SkipComment, func(s string) bool { return strings.HasPrefix(s, CommentMarker) }},
	{SkipProlog, func(s string) bool { return strings.Contains(s, PrologToken) }},
	{SkipStructure, func(s string) bool { return strings.ContainsAny(s, "{}") }},
}

// Skip reports whether a raw line carries no parameter and must be ignored
func Skip(line string) (bool, SkipReason) {
	trimmed := strings.TrimSpace(line)
	for _, rule := range skipRules {
		if rule.match(trimmed) {
			return true, rule.reason
		}
	}
	return false, ""
}
