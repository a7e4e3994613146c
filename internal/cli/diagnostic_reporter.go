package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/geomtyper/internal/models"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporter creates a new diagnostic reporter writing to out
func NewDiagnosticReporter(verbose bool, out io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     out,
	}
}

// ReportWarning prints a single highlighted warning line
func (r *DiagnosticReporter) ReportWarning(message string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(r.out, "! ")
	fmt.Fprintf(r.out, "%s\n", message)
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(r.out, "\nERROR: Code Generation Failed\n")
	fmt.Fprintf(r.out, "=============================\n\n")

	var parseErr *models.ParseError
	var genErr *models.GeneratorError

	switch {
	case errors.As(err, &parseErr):
		r.reportParseError(parseErr)
	case errors.As(err, &genErr):
		r.reportGeneratorError(genErr)
	default:
		fmt.Fprintf(r.out, "Message: %s\n", err.Error())
	}

	fmt.Fprintln(r.out)
}

// reportParseError reports a malformed geometry line
func (r *DiagnosticReporter) reportParseError(parseErr *models.ParseError) {
	r.printErrorHeader(models.ErrorTypeParse.String() + " (" + parseErr.Kind.String() + ")")

	if parseErr.File != "" {
		fmt.Fprintf(r.out, "Location: %s:%d\n", parseErr.File, parseErr.Line)
	} else if parseErr.Line > 0 {
		fmt.Fprintf(r.out, "Line: %d\n", parseErr.Line)
	}
	fmt.Fprintf(r.out, "Text: %s\n\n", parseErr.Text)

	if r.verbose && parseErr.Cause != nil {
		fmt.Fprintf(r.out, "Underlying cause: %s\n\n", parseErr.Cause.Error())
	}

	if parseErr.Hint != "" {
		r.printSuggestions([]string{parseErr.Hint})
	}
}

// reportGeneratorError reports a GeneratorError with full context and suggestions
func (r *DiagnosticReporter) reportGeneratorError(genErr *models.GeneratorError) {
	r.printErrorHeader(genErr.Type.String())

	fmt.Fprintf(r.out, "Message: %s\n\n", genErr.Message)

	if r.verbose && genErr.Cause != nil {
		fmt.Fprintf(r.out, "Underlying cause: %s\n\n", genErr.Cause.Error())
	}

	if genErr.File != "" {
		if genErr.Line > 0 {
			fmt.Fprintf(r.out, "Location: %s:%d\n\n", genErr.File, genErr.Line)
		} else {
			fmt.Fprintf(r.out, "File: %s\n\n", genErr.File)
		}
	}

	if len(genErr.Suggestions) > 0 {
		r.printSuggestions(genErr.Suggestions)
	}
}

// printErrorHeader prints a formatted error header
func (r *DiagnosticReporter) printErrorHeader(title string) {
	fmt.Fprintf(r.out, "Type: %s\n", title)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(title)+6))
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, suggestion)
	}
}
