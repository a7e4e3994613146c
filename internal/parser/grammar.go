package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// lineAST is the participle grammar for one geometry line:
//
//	<name> ":" <value> [ "//" <unit> ]
//
// The name runs up to the first colon, so a comment marker only counts once
// the value has started. Whitespace is kept as a token so captured values
// keep their inner spacing.
type lineAST struct {
	Name    string  `parser:"@(Text | Space)*"`
	Value   string  `parser:"Colon @(Text | Space | Colon)*"`
	Comment *string `parser:"@Comment?"`
}

// newLineGrammar builds the participle parser for geometry lines
func newLineGrammar() *participle.Parser[lineAST] {
	lex := lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "Colon", Pattern: `:`, Action: lexer.Push("Value")},
			{Name: "Space", Pattern: `\s+`},
			{Name: "Text", Pattern: `[^:\s]+`},
		},
		"Value": {
			{Name: "Comment", Pattern: `//.*`},
			{Name: "Colon", Pattern: `:`},
			{Name: "Space", Pattern: `\s+`},
			{Name: "Text", Pattern: `[^:\s/]+|/`},
		},
	})

	return participle.MustBuild[lineAST](
		participle.Lexer(lex),
	)
}

// unit extracts the unit from the comment token, if any.
// Only the text up to a second comment marker counts.
func (l *lineAST) unit() (string, bool) {
	if l.Comment == nil {
		return "", false
	}
	text := strings.TrimPrefix(*l.Comment, CommentMarker)
	if before, _, found := strings.Cut(text, CommentMarker); found {
		text = before
	}
	return strings.TrimSpace(text), true
}
