package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/toyz/geomtyper/internal/cli"
	"github.com/toyz/geomtyper/internal/utils"
)

var version = "dev"

// reportedError marks a failure the diagnostic reporter already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

type options struct {
	configFile string
	unit       string
	category   string
	sections   []string
	output     string
	watch      bool
	verbose    bool
	quiet      bool
	noColor    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "geomtyper [flags] <geometry-file>",
		Short: "Generate C++ boilerplate from a geometry parameter file",
		Long: `geomtyper reads a geometry parameter file made of "name: value // unit" lines
and prints code to cut and paste into a geometry class:

  - member declarations for the header file
  - the constructor initialization list
  - constructor body statements applying units to vectors
  - the body of a print method

Lines that are blank, comments, PROLOG markers or block braces are ignored.
Values without a unit comment use the default unit (mm).`,
		Example: `  geomtyper calorimeter.fcl
  geomtyper --unit cm --category CaloGeom calorimeter.fcl
  geomtyper --sections header,init -o fragments.txt calorimeter.fcl
  geomtyper --config dialect.toml --watch calorimeter.fcl`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return execute(cmd, args[0], opts, stdout, stderr)
		},
	}

	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "TOML or YAML dialect file")
	flags.StringVar(&opts.unit, "unit", "", "default unit for values without a // unit comment (default mm)")
	flags.StringVar(&opts.category, "category", "", "message category used in the print method (default CATEGORY)")
	flags.StringSliceVar(&opts.sections, "sections", nil, "sections to print: header, init, body, print (default all)")
	flags.StringVarP(&opts.output, "output", "o", "", "write fragments to this file instead of stdout")
	flags.BoolVar(&opts.watch, "watch", false, "regenerate whenever the geometry or dialect file changes")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "list parsed entries and a summary on stderr")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only print errors")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	return cmd
}

func execute(cmd *cobra.Command, input string, opts options, stdout, stderr io.Writer) error {
	level := utils.DiagnosticInfo
	switch {
	case opts.quiet:
		level = utils.DiagnosticError
	case opts.verbose:
		level = utils.DiagnosticVerbose
	}

	diagnostics := utils.NewDiagnosticSystemWithWriter(level, stderr)
	if opts.noColor {
		color.NoColor = true
		diagnostics.SetColors(false)
	}

	cfg := cli.Config{
		InputPath:  input,
		ConfigFile: opts.configFile,
		Sections:   opts.sections,
		OutputPath: opts.output,
		Verbose:    opts.verbose,
	}
	if cmd.Flags().Changed("unit") {
		cfg.DefaultUnit = &opts.unit
	}
	if cmd.Flags().Changed("category") {
		cfg.Category = &opts.category
	}

	generator := cli.NewGenerator(diagnostics, stdout)

	var err error
	if opts.watch {
		err = generator.Watch(cmd.Context(), cfg, nil)
	} else {
		err = generator.Run(cfg)
	}
	if err != nil {
		generator.Reporter().ReportError(err)
		return &reportedError{err: err}
	}
	return nil
}
