package cli

// Config holds the configuration for one geomtyper run
type Config struct {
	// InputPath is the geometry parameter file to read
	InputPath string

	// ConfigFile is an optional TOML or YAML dialect file
	ConfigFile string

	// DefaultUnit overrides the dialect default unit when non-nil
	DefaultUnit *string

	// Category overrides the log category in the print section when non-nil
	Category *string

	// Sections limits output to the named sections; empty means all
	Sections []string

	// OutputPath writes fragments to a file instead of stdout
	OutputPath string

	// Verbose enables detailed logging and error reporting
	Verbose bool
}
