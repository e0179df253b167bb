// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"leapfastq/internal/config"
	"leapfastq/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	// Configuration
	ConfigPath string
	Profile    string

	// Overrides of the config file
	Input       string
	MetadataOut string
	InputsOut   string

	// Logging
	Quiet   bool
	Verbose bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: sequencing manifest → alignment workflow inputs

Reads a run manifest CSV and writes metadata.yaml and inputs.json for the
single-cell alignment workflow. Paths and references come from the config
file; a profile overlays the base settings for one run.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.ConfigPath, "config", config.DefaultPath, "settings file (.json or .yaml) ["+config.DefaultPath+"]")
	fs.StringVar(&opt.Profile, "profile", "", "named profile in the settings file to overlay")

	fs.StringVar(&opt.Input, "input", "", "manifest CSV (overrides InputFilePath)")
	fs.StringVar(&opt.MetadataOut, "metadata-out", "", "metadata YAML destination, '-' for stdout (overrides OutputMetadataYaml)")
	fs.StringVar(&opt.InputsOut, "inputs-out", "", "inputs JSON destination, '-' for stdout (overrides OutputInputsJson)")

	fs.BoolVar(&opt.Quiet, "quiet", false, "log errors only [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log every new lane (debug) [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if opt.ConfigPath == "" {
		return opt, errors.New("--config must not be empty")
	}
	if opt.Quiet && opt.Verbose {
		return opt, errors.New("--quiet conflicts with --verbose")
	}
	if opt.MetadataOut == "-" && opt.InputsOut == "-" {
		return opt, errors.New("only one of --metadata-out/--inputs-out may be '-'")
	}
	return opt, nil
}

// Overrides returns the config values set on the command line.
func (o Options) Overrides() config.Overrides {
	return config.Overrides{
		InputFilePath:      o.Input,
		OutputMetadataYaml: o.MetadataOut,
		OutputInputsJson:   o.InputsOut,
	}
}
