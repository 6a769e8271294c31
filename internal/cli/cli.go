// Package cli parses the includer command line on top of the config file.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/fwessels/includer/internal/config"
)

// ExitError carries the exit code the process should terminate with.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Options is the parsed command line.
type Options struct {
	Input   string
	Output  string // empty means standard output
	Version bool
	Config  config.Config
}

// Parse returns the options, whether the program should exit cleanly
// (help or version requested), or an *ExitError for usage errors.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	fs := pflag.NewFlagSet("includer", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `Usage: includer [options] FILE

includer inlines the local "..." includes of FILE, honouring #ifndef include
guards, and prints the flattened source. Includes are looked up in the
working directory, then in ../library.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprint(output, `
Examples:
  includer soln.cpp                  # print the expanded source
  includer -o upload.cpp soln.cpp    # write it to a file
  includer -L ~/lib -L ../library x.cpp
`)
	}

	outputFlag := fs.StringP("output", "o", "", "Write the result to `file` instead of standard output")
	libraryFlag := fs.StringArrayP("library", "L", nil, "Library `dir` searched after the working directory (repeatable)")
	maxDepthFlag := fs.Int("max-depth", 0, "Maximum include nesting depth")
	configFlag := fs.String("config", "", "Read settings from this HCL `file` (default ./"+config.DefaultFile+" if present)")
	logLevelFlag := fs.String("log-level", "", "Logging level: debug, info, warn, error")
	logFormatFlag := fs.String("log-format", "", "Log output format: text or json")
	versionFlag := fs.BoolP("version", "V", false, "Print version information")
	helpFlag := fs.BoolP("help", "h", false, "Show this help message")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if *helpFlag {
		fs.Usage()
		return nil, true, nil
	}
	if *versionFlag {
		return &Options{Version: true}, true, nil
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected exactly one FILE argument, got %d", fs.NArg())}
	}

	cfgPath, required := config.DefaultFile, false
	if *configFlag != "" {
		cfgPath, required = *configFlag, true
	}
	cfg, err := config.Load(cfgPath, required)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg = cfg.Merge(config.Config{
		LibraryDirs: *libraryFlag,
		MaxDepth:    *maxDepthFlag,
		LogLevel:    strings.ToLower(*logLevelFlag),
		LogFormat:   strings.ToLower(*logFormatFlag),
	})
	if fs.Changed("max-depth") && *maxDepthFlag <= 0 {
		cfg.MaxDepth = *maxDepthFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	opts := &Options{Input: fs.Arg(0), Output: *outputFlag, Config: cfg}
	slog.Debug("command line parsed", "input", opts.Input, "output", opts.Output, "dirs", cfg.SearchDirs())
	return opts, false, nil
}
