// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"leapfastq/internal/classify"
	"leapfastq/internal/cli"
	"leapfastq/internal/cmdutil"
	"leapfastq/internal/config"
	"leapfastq/internal/manifest"
	"leapfastq/internal/pipeline"
	"leapfastq/internal/version"
	"leapfastq/internal/writers"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2 // flags, configuration, manifest
	ExitOutput = 3
)

func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("leapfastq")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "leapfastq version %s\n", version.Version)
		return flushCode(outw, stderr, ExitOK)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	defer func() { _ = log.Sync() }()

	s, err := config.LoadFile(opts.ConfigPath, opts.Profile)
	if err != nil {
		log.Error("configuration", zap.Error(err))
		return ExitUsage
	}
	s.Apply(opts.Overrides())
	if err := s.Validate(); err != nil {
		log.Error("configuration", zap.Error(err))
		return ExitUsage
	}

	sum, err := pipeline.Run(s, outw, log)
	if err != nil {
		log.Error("run failed", zap.Error(err))
		return ExitCode(err)
	}
	log.Info("done",
		zap.Int("cells", sum.Cells),
		zap.Int("lanes", sum.Lanes),
		zap.Int("skipped", sum.Skipped))
	return flushCode(outw, stderr, ExitOK)
}

// ExitCode maps a run error to the process exit code.
func ExitCode(err error) int {
	var (
		missing *config.MissingError
		input   *manifest.InputError
		row     *manifest.RowParseError
		path    *classify.PathFormatError
		output  *writers.OutputWriteError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &output):
		return ExitOutput
	case errors.As(err, &missing), errors.As(err, &input), errors.As(err, &row), errors.As(err, &path):
		return ExitUsage
	default:
		return ExitFailed
	}
}

// flushCode flushes outw and returns code, or ExitOutput when the flush
// fails for any reason but a closed pipe.
func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitOutput
	}
	return code
}
