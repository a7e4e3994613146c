package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/toyz/geomtyper/internal/config"
	"github.com/toyz/geomtyper/internal/generator"
	"github.com/toyz/geomtyper/internal/models"
	"github.com/toyz/geomtyper/internal/parser"
	"github.com/toyz/geomtyper/internal/templates"
	"github.com/toyz/geomtyper/internal/utils"
)

// GenerationSummary describes the last completed run
type GenerationSummary struct {
	models.Summary
	Input    string
	Output   string
	Sections []generator.Section
	Duration time.Duration
}

// Generator coordinates the CLI generation process
type Generator struct {
	diagnostics *utils.DiagnosticSystem
	reporter    *DiagnosticReporter
	stdout      io.Writer
	summary     GenerationSummary

	// WatchDebounce delays regeneration after a burst of file events
	WatchDebounce time.Duration
}

// NewGenerator creates a new CLI generator writing fragments to stdout
// and diagnostics through the diagnostic system
func NewGenerator(diagnostics *utils.DiagnosticSystem, stdout io.Writer) *Generator {
	return &Generator{
		diagnostics:   diagnostics,
		reporter:      NewDiagnosticReporter(diagnostics.Level() >= utils.DiagnosticVerbose, diagnostics.Writer()),
		stdout:        stdout,
		WatchDebounce: 200 * time.Millisecond,
	}
}

// Reporter returns the reporter used for failed runs
func (g *Generator) Reporter() *DiagnosticReporter {
	return g.reporter
}

// GetSummary returns the generation summary
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes the complete generation process
func (g *Generator) Run(cfg Config) error {
	startTime := time.Now()

	dialect, err := config.Load(cfg.ConfigFile)
	if err != nil {
		return err
	}
	if cfg.ConfigFile != "" {
		g.diagnostics.Verbose("Using dialect file %s", cfg.ConfigFile)
	}
	if cfg.DefaultUnit != nil {
		dialect.DefaultUnit = *cfg.DefaultUnit
	}
	if cfg.Category != nil {
		dialect.Category = *cfg.Category
	}

	sections, err := generator.ParseSections(cfg.Sections)
	if err != nil {
		return &models.GeneratorError{
			Type:        models.ErrorTypeConfiguration,
			Message:     err.Error(),
			Suggestions: []string{"Pass --sections with any of header, init, body, print"},
			Cause:       err,
		}
	}

	renderer, err := templates.NewRenderer(dialect)
	if err != nil {
		return err
	}

	g.diagnostics.Debug("Reading %s (default unit %q)", cfg.InputPath, dialect.DefaultUnit)
	result, err := parser.NewParser(parser.Options{DefaultUnit: dialect.DefaultUnit}).ParseFile(cfg.InputPath)
	if err != nil {
		return err
	}
	g.reportEntries(result)
	g.warnAbout(result)

	fragments, err := generator.NewGenerator(renderer, generator.Options{
		Sections:     sections,
		StreamHeader: dialect.Dialect.StreamHeader,
	}).Render(result.Entries)
	if err != nil {
		return err
	}

	if err := writeOutput(g.stdout, cfg.OutputPath, generator.Format(fragments)); err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    cfg.OutputPath,
			Message: err.Error(),
			Cause:   err,
		}
	}

	summary := models.Summarize(result.Entries)
	summary.SkippedLines = len(result.Skipped)
	g.summary = GenerationSummary{
		Summary:  summary,
		Input:    cfg.InputPath,
		Output:   cfg.OutputPath,
		Sections: sections,
		Duration: time.Since(startTime),
	}

	if cfg.OutputPath != "" {
		g.diagnostics.Success("Wrote %d entries to %s", summary.Entries, cfg.OutputPath)
	}
	g.diagnostics.Summary("Generation Complete!", []utils.Stat{
		{Label: "Entries", Value: summary.Entries},
		{Label: "Doubles", Value: summary.Doubles},
		{Label: "Bools", Value: summary.Bools},
		{Label: "Vectors", Value: summary.Vectors},
		{Label: "Skipped lines", Value: summary.SkippedLines},
		{Label: "Duration", Value: g.summary.Duration.Round(time.Microsecond)},
	})
	return nil
}

// reportEntries lists parsed entries in verbose mode
func (g *Generator) reportEntries(result *parser.Result) {
	g.diagnostics.Subsection("Entries")
	g.diagnostics.Indent()
	defer g.diagnostics.Unindent()

	for _, e := range result.Entries {
		unit := e.Unit
		if unit == "" {
			unit = "-"
		}
		g.diagnostics.List("%d: %s %s = %s [%s]", e.Line, e.Type, e.Name, e.RawValue, unit)
	}
	for _, s := range result.Skipped {
		g.diagnostics.Debug("skipped line %d (%s)", s.Line, s.Reason)
	}
}

// warnAbout reports advisory problems with the parsed entries
func (g *Generator) warnAbout(result *parser.Result) {
	if g.diagnostics.Level() < utils.DiagnosticWarn {
		return
	}
	if len(result.Entries) == 0 {
		g.reporter.ReportWarning(fmt.Sprintf("no entries found in %s", result.File))
		return
	}
	for _, problem := range utils.ValidateEntries(result.Entries) {
		g.reporter.ReportWarning(problem.Error())
	}
}
