// Package batch converts many files concurrently with one direction and one
// set of options.
package batch

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mcncl/textconv/internal/config"
	"github.com/mcncl/textconv/internal/convert"
	"github.com/mcncl/textconv/internal/errors"
	"github.com/mcncl/textconv/internal/parser"
	"golang.org/x/sync/errgroup"
)

// Outcome records what happened to one input file.
type Outcome struct {
	Input    string
	Output   string
	Result   convert.Result
	Skipped  bool  // Output already existed and overwrite is off
	Err      error // Read, conversion or write failure
	Duration time.Duration
}

// Runner converts files with a fixed direction.
type Runner struct {
	dir         convert.Direction
	opts        convert.Options
	outputDir   string
	overwrite   bool
	concurrency int
	logger      *log.Logger
}

// New returns a Runner for dir configured from cfg.
func New(dir convert.Direction, cfg *config.Config, logger *log.Logger) *Runner {
	return &Runner{
		dir: dir,
		opts: convert.Options{
			Indent:     cfg.Indent,
			HeaderCase: cfg.CSV.HeaderCase,
		},
		outputDir:   cfg.Output.Dir,
		overwrite:   cfg.Output.Overwrite,
		concurrency: max(cfg.Batch.Concurrency, 1),
		logger:      logger.WithPrefix("batch"),
	}
}

// OutputPath returns where the converted form of input is written:
// <basename><ext> in the output directory, or next to input when none is
// configured.
func (r *Runner) OutputPath(input string) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + r.dir.Target().Extension

	dir := r.outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}

// Run converts every input, at most concurrency at a time. Outcomes are
// returned in input order. Per-file failures do not stop the other files;
// they are joined into the returned error.
func (r *Runner) Run(ctx context.Context, inputs []string) ([]Outcome, error) {
	if len(inputs) == 0 {
		return nil, errors.NewInputError("no input files given", errors.ErrNoInput)
	}

	if r.outputDir != "" {
		if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
			return nil, errors.NewOutputError(fmt.Sprintf("failed to create output directory '%s'", r.outputDir), err)
		}
	}

	r.logger.Debug("Converting files", "direction", r.dir, "files", len(inputs), "concurrency", r.concurrency)

	outcomes := make([]Outcome, len(inputs))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)

	for i, input := range inputs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.convertFile(input)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return outcomes, err
	}

	var errs []error
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", outcome.Input, outcome.Err))
		}
	}
	return outcomes, stderrors.Join(errs...)
}

// convertFile runs one input through the dispatcher and writes the result.
func (r *Runner) convertFile(input string) (outcome Outcome) {
	start := time.Now()
	outcome = Outcome{Input: input, Output: r.OutputPath(input)}
	defer func() { outcome.Duration = time.Since(start) }()

	logger := r.logger.With("input", input)

	if !r.overwrite {
		if _, err := os.Stat(outcome.Output); err == nil {
			logger.Warn("Output exists, skipping", "output", outcome.Output)
			outcome.Skipped = true
			return outcome
		}
	}

	data, err := parser.ReadFile(input)
	if err != nil {
		logger.Error("Could not read input", "err", err)
		outcome.Err = err
		return outcome
	}

	outcome.Result = convert.Convert(string(data), r.dir, r.opts)
	if !outcome.Result.OK() {
		logger.Error("Conversion failed", "err", outcome.Result.Error)
		outcome.Err = outcome.Result.Err
		return outcome
	}

	if err := os.WriteFile(outcome.Output, []byte(outcome.Result.Output), 0o644); err != nil {
		logger.Error("Could not write output", "output", outcome.Output, "err", err)
		outcome.Err = errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", outcome.Output), err)
		return outcome
	}

	logger.Debug("Converted", "output", outcome.Output, "lines", outcome.Result.Lines(), "took", time.Since(start))
	return outcome
}
