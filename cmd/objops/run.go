package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/objectops"
	"github.com/0xalexb/objectops/codec"
	filefetcher "github.com/0xalexb/objectops/config/fetcher/file"
	"github.com/0xalexb/objectops/logging"
	"github.com/0xalexb/objectops/recipe"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

var errTooManyArgs = errors.New("at most one input file may be given")

type options struct {
	recipeFile    string
	recipeSection string
	output        string
	format        string
	logLevel      string
	atomic        bool
	diff          bool
	color         bool
	version       bool
	steps         []recipe.Step
	input         string
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{input: filefetcher.Stdin}

	flags := flag.NewFlagSet("objops", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: objops [flags] [file]")
		flags.PrintDefaults()
	}

	flags.StringVar(&opts.recipeFile, "recipe", "", "recipe `file` applied before inline edits")
	flags.StringVar(&opts.recipeSection, "section", "", "dot `path` of the recipe inside the recipe file")
	flags.StringVar(&opts.output, "o", "", "write the result to `file` instead of standard output")
	flags.StringVar(&opts.format, "format", "", "output `format`: json or yaml (default: input format)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log `level`: debug, info, warn or error")
	flags.BoolVar(&opts.atomic, "atomic", false, "leave the document untouched if any edit fails")
	flags.BoolVar(&opts.diff, "diff", false, "print a line diff of the edit instead of the result")
	flags.BoolVar(&opts.color, "color", false, "colorize -diff output")
	flags.BoolVar(&opts.version, "version", false, "print version information and exit")
	flags.Var(stepFlag{op: recipe.OpMove, steps: &opts.steps}, "move", "move `src=dst` (repeatable)")
	flags.Var(stepFlag{op: recipe.OpRemove, steps: &opts.steps}, "remove", "remove `path` (repeatable)")
	flags.Var(stepFlag{op: recipe.OpSet, steps: &opts.steps}, "set", "set `path=value`, value in YAML (repeatable)")
	flags.Var(stepFlag{op: recipe.OpTransform, steps: &opts.steps}, "transform",
		"replace the value at path with `path=expr` evaluated over value (repeatable)")

	err := flags.Parse(args)
	if err != nil {
		return nil, err //nolint:wrapcheck // flag already printed the problem
	}

	switch flags.NArg() {
	case 0:
	case 1:
		opts.input = flags.Arg(0)
	default:
		return nil, errTooManyArgs
	}

	if opts.format != "" {
		_, err := codec.ParseFormat(opts.format)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	if err != nil {
		_, _ = fmt.Fprintln(stderr, "objops:", err)

		return exitUsage
	}

	if opts.version {
		_, _ = fmt.Fprintln(stdout, "objops", objectops.BuildInfo())

		return exitOK
	}

	logger := logging.NewLogger(logging.LoggerConfig{Level: opts.logLevel, Format: logging.FormatText}, stderr)

	err = execute(opts, stdin, stdout, logger)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "objops:", err)

		return exitFail
	}

	return exitOK
}

func execute(opts *options, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	fetcher, err := openInput(opts.input, stdin)
	if err != nil {
		return err
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("reading %q: %w", fetcher.Path(), err)
	}

	inputFormat := fetcher.Format()

	doc, err := codec.Decode(data, inputFormat)
	if err != nil {
		return fmt.Errorf("%s: %w", fetcher.Path(), err)
	}

	outputFormat := inputFormat
	if opts.format != "" {
		outputFormat, _ = codec.ParseFormat(opts.format)
	}

	before, err := codec.Encode(doc, outputFormat)
	if err != nil {
		return err //nolint:wrapcheck
	}

	program, err := buildProgram(opts)
	if err != nil {
		return err
	}

	if program != nil {
		logger.Debug("applying recipe", slog.String("recipe", program.Name()), slog.Int("steps", program.Len()))

		doc, err = program.Run(doc, objectops.WithLogger(logger))
		if err != nil {
			return err //nolint:wrapcheck // names the recipe and step
		}
	}

	after, err := codec.Encode(doc, outputFormat)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if opts.diff {
		after = []byte(codec.Diff(before, after, opts.color))
	}

	return writeOutput(opts.output, after, stdout)
}

func openInput(path string, stdin io.Reader) (*filefetcher.Fetcher, error) {
	if path == filefetcher.Stdin {
		return filefetcher.NewReaderFetcher(filefetcher.Stdin, stdin) //nolint:wrapcheck
	}

	return filefetcher.NewFetcher(path)() //nolint:wrapcheck
}

// buildProgram combines the recipe file and inline edits. It returns nil when
// there is nothing to apply.
func buildProgram(opts *options) (*recipe.Program, error) {
	combined := &recipe.Recipe{Name: "inline", Atomic: opts.atomic}

	if opts.recipeFile != "" {
		loaded, err := recipe.Load(opts.recipeFile, opts.recipeSection)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		combined.Name = loaded.Name
		combined.Atomic = combined.Atomic || loaded.Atomic
		combined.Steps = append(combined.Steps, loaded.Steps...)
	}

	combined.Steps = append(combined.Steps, opts.steps...)

	if len(combined.Steps) == 0 {
		return nil, nil //nolint:nilnil // no edits requested
	}

	return recipe.Compile(combined) //nolint:wrapcheck
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		if err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		return nil
	}

	err := os.WriteFile(path, data, 0o644) //nolint:gosec // output files are meant to be readable
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
