package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"

	"github.com/toyz/geomtyper/internal/models"
)

// Options controls how geometry lines are turned into entries
type Options struct {
	// DefaultUnit is used when a line has no `// unit` comment
	DefaultUnit string
}

// DefaultOptions returns the options matching art geometry files
func DefaultOptions() Options {
	return Options{DefaultUnit: DefaultUnit}
}

// Result holds the entries of one geometry file in file order
type Result struct {
	File    string
	Entries []models.Entry
	Skipped []SkippedLine
}

// Parser turns geometry parameter lines into entries
type Parser struct {
	options Options
	grammar *participle.Parser[lineAST]
}

// NewParser creates a new geometry line parser
func NewParser(options Options) *Parser {
	return &Parser{
		options: options,
		grammar: newLineGrammar(),
	}
}

// ParseLine parses a single non-filtered line into an entry.
// Text is kept byte for byte, so lines that are not valid UTF-8 are rejected.
// The returned error is always a *models.ParseError.
func (p *Parser) ParseLine(line string) (models.Entry, error) {
	trimmed := strings.TrimSpace(line)
	if !utf8.ValidString(trimmed) {
		return models.Entry{}, newParseError(models.InvalidEncoding, trimmed, nil)
	}

	ast, err := p.grammar.ParseString("", trimmed)
	if err != nil {
		return models.Entry{}, newParseError(models.MissingSeparator, trimmed, err)
	}

	entry := models.Entry{
		Name:     strings.TrimSpace(ast.Name),
		RawValue: strings.TrimSpace(ast.Value),
		Unit:     p.options.DefaultUnit,
	}
	if unit, ok := ast.unit(); ok {
		entry.Unit = unit
	}

	if entry.Name == "" {
		return models.Entry{}, newParseError(models.MissingName, trimmed, nil)
	}
	if entry.RawValue == "" {
		return models.Entry{}, newParseError(models.MissingValue, trimmed, nil)
	}

	classify(&entry)
	return entry, nil
}

// ParseReader reads geometry lines from r. name is used for error locations.
// Parsing stops at the first malformed line.
func (p *Parser) ParseReader(name string, r io.Reader) (*Result, error) {
	result := &Result{File: name}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		if skip, reason := Skip(raw); skip {
			result.Skipped = append(result.Skipped, SkippedLine{Line: lineNo, Reason: reason})
			continue
		}

		entry, err := p.ParseLine(raw)
		if err != nil {
			if perr, ok := err.(*models.ParseError); ok {
				perr.File = name
				perr.Line = lineNo
			}
			return nil, err
		}
		entry.Line = lineNo
		result.Entries = append(result.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    name,
			Line:    lineNo + 1,
			Message: "failed to read geometry file",
			Cause:   err,
		}
	}

	return result, nil
}

// ParseFile opens and parses a geometry file
func (p *Parser) ParseFile(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    path,
			Message: fmt.Sprintf("cannot open geometry file: %v", err),
			Suggestions: []string{
				"Check that the path is correct and the file is readable",
			},
			Cause: err,
		}
	}
	defer file.Close()

	return p.ParseReader(path, file)
}

func newParseError(kind models.ParseErrorKind, text string, cause error) *models.ParseError {
	return &models.ParseError{
		Kind:  kind,
		Text:  text,
		Hint:  hintFor(kind),
		Cause: cause,
	}
}

func hintFor(kind models.ParseErrorKind) string {
	switch kind {
	case models.MissingSeparator:
		return "geometry lines take the form `name: value // unit`"
	case models.MissingName:
		return "put the parameter name before the ':'"
	case models.MissingValue:
		return "give the parameter a value after the ':'"
	case models.InvalidEncoding:
		return "save the geometry file as UTF-8"
	default:
		return ""
	}
}
