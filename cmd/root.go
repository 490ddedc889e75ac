// Package cmd wires up the CLI flags and dispatches to the conversion
// core.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"changebase/config"
	"changebase/internal/base"
	"changebase/internal/core"
	"changebase/internal/errors"
	"changebase/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X changebase/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Exit codes reported by Report.
const (
	ExitFailure = 1 // the value could not be converted
	ExitUsage   = 2 // bad flags or arguments
)

// Execute parses args, converts the value and prints the result to
// stdout.
func Execute(args []string) error {
	return run(args, os.Stdout, os.Stderr)
}

// Report writes err to w and returns the process exit code for it.
func Report(err error, w io.Writer) int {
	logger := util.NewLogger(0)
	logger.SetOutput(w)
	logger.Error("%s: %v", config.ProgramName, err)
	if errors.IsUsage(err) {
		return ExitUsage
	}
	return ExitFailure
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := &config.Config{}
	fs := flag.NewFlagSet(config.ProgramName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	// ── input base ───────────────────────────────────────────────
	fs.StringVarP(&cfg.Input, "input", "i", "", "Input base: bin, oct, dec or hex (auto-detected if omitted)")
	fs.BoolVar(&cfg.BinInput, "ib", false, "Use binary as input base")
	fs.BoolVar(&cfg.OctInput, "io", false, "Use octal as input base")
	fs.BoolVar(&cfg.DecInput, "id", false, "Use decimal as input base")
	fs.BoolVar(&cfg.HexInput, "ih", false, "Use hex as input base")

	// ── output base ──────────────────────────────────────────────
	fs.StringVarP(&cfg.Output, "output", "o", "", "Output base: bin, oct, dec, hex or all (all if omitted)")
	fs.BoolVar(&cfg.BinOutput, "ob", false, "Use binary as output base")
	fs.BoolVar(&cfg.OctOutput, "oo", false, "Use octal as output base")
	fs.BoolVar(&cfg.DecOutput, "od", false, "Use decimal as output base")
	fs.BoolVar(&cfg.HexOutput, "oh", false, "Use hex as output base")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Describe the conversion (repeat for debug logging)")

	var showVersion, showHelp bool
	fs.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs, stderr) }

	// Env is applied after the flags are defined: defining a flag resets
	// its target, and -v counts up from the env verbosity.
	config.LoadFromEnv(cfg)

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return errors.Usage(err)
	}

	if showHelp {
		printUsage(fs, stdout)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "%s %s\n", config.ProgramName, version)
		return nil
	}

	// ── positional arguments ─────────────────────────────────────
	switch rest := fs.Args(); len(rest) {
	case 0:
		if len(args) == 0 {
			printUsage(fs, stderr)
		}
		return errors.Usage(fmt.Errorf("value required (use --help for usage)"))
	case 1:
		cfg.Value = rest[0]
	default:
		return errors.Usage(fmt.Errorf("expected one value, got %d: %s", len(rest), strings.Join(rest, " ")))
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(stderr)
	logger.Info("value %q, input base %s, output base %s",
		cfg.Value, baseName(cfg.InputBase(), "detect"), baseName(cfg.OutputBase(), "all"))

	// ── convert ──────────────────────────────────────────────────
	res, err := core.Convert(core.Request{
		Raw:     cfg.Value,
		Input:   cfg.InputBase(),
		Output:  cfg.OutputBase(),
		Verbose: cfg.Verbose > 0,
	})
	if err != nil {
		logger.Debug("conversion failed: %v", err)
		return err
	}
	logger.Debug("parsed %s value (%d bits, detected=%v)", res.Input.Label(), res.Value.BitLen(), res.Detected)

	if res.Description != "" {
		fmt.Fprintln(stdout, res.Description)
	}
	return res.Render(stdout)
}

// ── helpers ──────────────────────────────────────────────────────────

func baseName(b base.Base, unset string) string {
	if !b.Valid() {
		return unset
	}
	return b.Label()
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `changebase v%s

Convert numbers between binary, octal, decimal and hexadecimal.

Usage:
  changebase [options] <value>

Options:
`, version)
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintf(w, `
Environment:
  %[1]sINPUT, %[1]sOUTPUT    default base names when no flag is given
                                         (-o all restores all-bases output)
  %[1]sVERBOSE                 default verbosity

Examples:
  changebase 255                   Show 255 in every base
  changebase --id --oh 255         Decimal to hex
  changebase -i hex -o bin 0xff    Hex to binary
  changebase 0b1010                Auto-detect binary from prefix
`, config.EnvPrefix)
}
