package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/mcncl/textconv/internal/batch"
	"github.com/mcncl/textconv/internal/config"
	"github.com/mcncl/textconv/internal/convert"
	"github.com/mcncl/textconv/internal/errors"
	"github.com/mcncl/textconv/internal/logging"
	"github.com/mcncl/textconv/internal/models"
	"github.com/mcncl/textconv/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Direction   string   `arg:"" optional:"" help:"Conversion direction: ${directions}."`
	Input       []string `help:"Path to input file. Repeat to convert several files concurrently. If not specified, reads from stdin." short:"i"`
	Output      string   `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	OutputDir   string   `help:"Directory for converted files, named after each input. Ignored when --output is given." type:"path"`
	Overwrite   bool     `help:"Overwrite existing output files."`
	Indent      int      `help:"Indentation for json-format and xml-format (2 or 4)." short:"n"`
	HeaderCase  string   `help:"Rewrite CSV header names in csv-to-json: ${key_styles}."`
	Concurrency int      `help:"Maximum number of files converted at once." short:"j"`
	Config      string   `help:"Path to config file (.yml, .yaml or .toml). Searched for if not specified." short:"c" type:"path"`
	Stats       bool     `help:"Print line and character counts of the output to stderr." short:"s"`
	List        bool     `help:"List the supported directions and exit." short:"l"`
	Debug       bool     `help:"Enable debug logging." short:"d"`
	Version     bool     `help:"Show version information." short:"v"`
	Interactive bool     `help:"Run in interactive mode, allowing direct input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug     bool
	Config    *config.Config
	Logger    *log.Logger
	Direction convert.Direction
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	styles := make([]string, len(models.KeyStyles))
	for i, s := range models.KeyStyles {
		styles[i] = string(s)
	}

	app := kong.Must(&CLI,
		kong.Name("textconv"),
		kong.Description("Convert and format CSV, JSON, YAML and XML text"),
		kong.UsageOnError(),
		kong.Vars{
			"directions": strings.Join(convert.Names(), ", "),
			"key_styles": strings.Join(styles, ", "),
		},
	)

	// A bare direction with nothing piped in starts interactive mode
	if len(os.Args) == 2 {
		CLI.Interactive = true
	}

	if _, err := app.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("textconv version %s\n", Version)
		return
	}

	if CLI.List {
		listDirections(os.Stdout)
		return
	}

	ctx, err := newContext()
	if err == nil {
		err = run(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: textconv --help\n")
		os.Exit(1)
	}
}

// newContext resolves the direction and configuration from the CLI flags.
func newContext() (*Context, error) {
	if CLI.Direction == "" {
		return nil, errors.NewInputError("a conversion direction is required", errors.ErrUnknownDirection)
	}
	dir, err := convert.ParseDirection(CLI.Direction)
	if err != nil {
		return nil, err
	}

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, &config.Config{
		Indent: CLI.Indent,
		CSV:    config.CSVConfig{HeaderCase: models.KeyStyle(CLI.HeaderCase)},
		Output: config.OutputConfig{Dir: CLI.OutputDir, Overwrite: CLI.Overwrite},
		Batch:  config.BatchConfig{Concurrency: CLI.Concurrency},
		Dev:    config.DevConfig{Debug: CLI.Debug},
	})
	if err != nil {
		return nil, errors.NewConfigError("failed to load configuration", err)
	}

	logger := logging.New(os.Stderr, cfg.Dev.Debug)
	if configPath != "" {
		logger.Debug("Loaded config", "path", configPath)
	}

	return &Context{
		Debug:     cfg.Dev.Debug,
		Config:    cfg,
		Logger:    logger,
		Direction: dir,
	}, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	if len(CLI.Input) > 1 || (len(CLI.Input) == 1 && CLI.Output == "" && ctx.Config.Output.Dir != "") {
		return runBatch(ctx)
	}

	text, err := readInput()
	if err != nil {
		return err
	}

	ctx.Logger.Debug("Converting", "direction", ctx.Direction, "chars", len(text))
	result := convert.Convert(text, ctx.Direction, convert.Options{
		Indent:     ctx.Config.Indent,
		HeaderCase: ctx.Config.CSV.HeaderCase,
	})
	if !result.OK() {
		return result.Err
	}

	if err := writeOutput(ctx, result.Output); err != nil {
		return err
	}

	if CLI.Stats {
		fmt.Fprintf(os.Stderr, "%d lines, %d characters\n", result.Lines(), result.Chars())
	}
	return nil
}

// runBatch converts every input file concurrently and reports each outcome.
// A single input lands here when only an output directory is given.
func runBatch(ctx *Context) error {
	if CLI.Output != "" {
		return errors.NewInputError("--output takes a single input; use --output-dir with several inputs", errors.ErrInvalidFilePath)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := batch.New(ctx.Direction, ctx.Config, ctx.Logger)
	outcomes, err := runner.Run(sigCtx, CLI.Input)

	for _, outcome := range outcomes {
		switch {
		case outcome.Input == "":
			// Not reached before cancellation
		case outcome.Skipped:
			fmt.Fprintf(os.Stdout, "skipped %s: %s exists\n", outcome.Input, outcome.Output)
		case outcome.Err != nil:
			fmt.Fprintf(os.Stdout, "failed %s: %s\n", outcome.Input, errors.Message(outcome.Err))
		default:
			fmt.Fprintf(os.Stdout, "converted %s -> %s\n", outcome.Input, outcome.Output)
			if CLI.Stats {
				fmt.Fprintf(os.Stdout, "  %d lines, %d characters\n", outcome.Result.Lines(), outcome.Result.Chars())
			}
		}
	}

	if err != nil {
		return errors.NewOutputError("some files could not be converted", err)
	}
	return nil
}

// readInput reads the text to convert from a file or stdin
func readInput() (string, error) {
	if len(CLI.Input) == 1 {
		data, err := parser.ReadFile(CLI.Input[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	// Terminal is interactive (not piped)
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		if CLI.Interactive {
			return readInteractiveInput(os.Stdin, os.Stderr)
		}
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}

	if len(data) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return string(data), nil
}

// writeOutput writes the converted text to a file or stdout
func writeOutput(ctx *Context, output string) error {
	if CLI.Output != "" {
		if !ctx.Config.Output.Overwrite {
			if _, err := os.Stat(CLI.Output); err == nil {
				return errors.NewOutputError(fmt.Sprintf("'%s' already exists, pass --overwrite to replace it", CLI.Output), errors.ErrOutputExists)
			}
		}
		if err := os.WriteFile(CLI.Output, []byte(output), 0o644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		ctx.Logger.Info("Wrote output", "path", CLI.Output, "direction", ctx.Direction)
		return nil
	}

	if _, err := fmt.Println(output); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput lets users paste text and signal completion with
// Ctrl+D (EOF)
func readInteractiveInput(in io.Reader, prompt io.Writer) (string, error) {
	fmt.Fprintln(prompt, "textconv interactive mode")
	fmt.Fprintln(prompt, "Paste your input below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(in)
	var builder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		builder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
	}

	text := builder.String()
	if len(text) == 0 {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(prompt, "\nConverting...")
	return text, nil
}

// listDirections prints every direction with the format it produces
func listDirections(w io.Writer) {
	for _, dir := range convert.Directions {
		target := dir.Target()
		fmt.Fprintf(w, "%-14s %-5s %s\n", dir, target.Extension, target.ContentType)
	}
}
