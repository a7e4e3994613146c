package parser

const (
	// DefaultUnit is the unit applied to values that carry no `// unit` comment
	DefaultUnit = "mm"

	// Separator splits a parameter name from its value
	Separator = ":"

	// CommentMarker introduces the unit comment after a value
	CommentMarker = "//"

	// PrologToken marks FHiCL prolog boundaries, which carry no parameters
	PrologToken = "PROLOG"

	// maxLineSize bounds a single geometry line read by the scanner
	maxLineSize = 1024 * 1024
)
