package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/geoknoesis/bib2lod/internal/bnode"
	"github.com/geoknoesis/bib2lod/internal/convert"
	"github.com/geoknoesis/bib2lod/internal/dedupe"
	"github.com/geoknoesis/bib2lod/internal/index"
	"github.com/geoknoesis/bib2lod/internal/logging"
	"github.com/geoknoesis/bib2lod/internal/metrics"
	"github.com/geoknoesis/bib2lod/internal/uri"
	"github.com/geoknoesis/bib2lod/rdf"
)

// Options configure a Runner.
type Options struct {
	// Namespace is the local namespace for minted and converted IRIs.
	Namespace string
	// Format is the output format of the last action of a run. Earlier
	// actions write N-Triples so the next one can read them.
	Format rdf.Format
	// Workers bounds the files processed at once. Values below 1 mean 1.
	Workers int
	// Strict aborts the action on the first file error.
	Strict bool
	// MaxLineBytes limits input line length.
	MaxLineBytes int
	// MaxTriples fails a file with more statements. Zero means no limit.
	MaxTriples int64
	// StrictIRIs rejects input IRIs that are not absolute RFC 3987 IRIs.
	StrictIRIs bool

	// Index backs the dedupe action. Required for Dedupe.
	Index *index.Store
	// Minter names new resources. Nil uses a UUID minter in Namespace.
	Minter  uri.Minter
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Summary reports the outcome of one action.
type Summary struct {
	Action         Action
	OutputDir      string
	Files          int
	Failed         int
	TriplesRead    int
	TriplesWritten int
	Duration       time.Duration
}

// Runner executes actions.
type Runner struct {
	opts Options
}

// New returns a runner, filling in defaults for unset options.
func New(opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Format == "" {
		opts.Format = rdf.FormatNTriples
	}
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = rdf.DefaultMaxLineBytes
	}
	if opts.Minter == nil {
		opts.Minter = uri.NewUUIDMinter(opts.Namespace)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	return &Runner{opts: opts}
}

// Run executes actions in order. The first reads inputDir; each later one
// reads the output of the one before it.
func (r *Runner) Run(ctx context.Context, actions []Action, inputDir, outputDir string) ([]Summary, error) {
	var summaries []Summary
	in := inputDir
	for i, a := range actions {
		format := rdf.FormatNTriples
		if i == len(actions)-1 {
			format = r.opts.Format
		}
		s, err := r.RunAction(ctx, a, in, outputDir, format)
		summaries = append(summaries, s)
		if err != nil {
			return summaries, err
		}
		in = s.OutputDir
	}
	return summaries, nil
}

// fileResult is what processing one file produced.
type fileResult struct {
	read, written int
}

// fileFunc converts the graph of one input file.
type fileFunc func(ctx context.Context, in inputFile, g *rdf.Graph, logger *slog.Logger) (*rdf.Graph, error)

// RunAction runs a single action from inputDir into outputDir/<action>,
// writing format.
func (r *Runner) RunAction(ctx context.Context, a Action, inputDir, outputDir string, format rdf.Format) (Summary, error) {
	start := time.Now()
	logger := r.opts.Logger.With("action", string(a))
	s := Summary{Action: a, OutputDir: filepath.Join(outputDir, string(a))}

	files, skipped, err := listInputs(inputDir, logger)
	if err != nil {
		return s, err
	}
	for range skipped {
		r.opts.Metrics.RecordFile(string(a), metrics.StatusSkipped, 0, 0)
	}
	if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
		return s, fmt.Errorf("create output directory: %w", err)
	}
	logger.Info("action started", "input", inputDir, "output", s.OutputDir,
		"files", len(files), "skipped", len(skipped))

	var fn fileFunc
	switch a {
	case Bnodes:
		fn = r.bnodes
	case Convert:
		fn = r.convert(logger)
	case Dedupe:
		fn, err = r.dedupe(ctx, files, logger)
		if err != nil {
			return s, err
		}
	default:
		return s, fmt.Errorf("%w %q", ErrUnknownAction, a)
	}

	err = r.forEachFile(ctx, a, files, s.OutputDir, format, logger, fn, &s)
	s.Duration = time.Since(start)
	r.opts.Metrics.ObserveAction(string(a), start)
	logger.Info("action finished",
		"files", s.Files, "failed", s.Failed,
		"triples_read", s.TriplesRead, "triples_written", s.TriplesWritten,
		"duration", s.Duration)
	return s, err
}

// forEachFile reads, transforms and writes every file on the worker pool.
func (r *Runner) forEachFile(ctx context.Context, a Action, files []inputFile, outDir string, format rdf.Format,
	logger *slog.Logger, fn fileFunc, s *Summary) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	var mu sync.Mutex
	for _, in := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			flog := logger.With("file", filepath.Base(in.Path))
			res, err := r.processFile(gctx, in, outDir, format, fn, flog)

			mu.Lock()
			defer mu.Unlock()
			s.Files++
			s.TriplesRead += res.read
			s.TriplesWritten += res.written
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				s.Failed++
				r.opts.Metrics.RecordFile(string(a), metrics.StatusFailed, res.read, 0)
				flog.Error("file failed", "error", err)
				if r.opts.Strict {
					return fmt.Errorf("%s: %w", in.Path, err)
				}
				return nil
			}
			r.opts.Metrics.RecordFile(string(a), metrics.StatusOK, res.read, res.written)
			flog.Debug("file done", "read", res.read, "written", res.written)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (r *Runner) processFile(ctx context.Context, in inputFile, outDir string, format rdf.Format, fn fileFunc,
	logger *slog.Logger) (fileResult, error) {
	var res fileResult
	g, err := r.readGraph(ctx, in, logger)
	if err != nil {
		return res, err
	}
	res.read = g.Len()
	out, err := fn(ctx, in, g, logger)
	if err != nil {
		return res, err
	}
	if err := writeGraph(outputPath(outDir, in.Path, format), out, format); err != nil {
		return res, fmt.Errorf("write output: %w", err)
	}
	res.written = out.Len()
	return res, nil
}

func (r *Runner) bnodes(_ context.Context, in inputFile, g *rdf.Graph, logger *slog.Logger) (*rdf.Graph, error) {
	c := bnode.NewConverter(r.opts.Namespace, in.Index)
	out := c.Convert(g)
	logger.Debug("blank nodes replaced", "count", c.Replaced())
	return out, nil
}

func (r *Runner) convert(logger *slog.Logger) fileFunc {
	driver := convert.NewDriver(r.opts.Minter, logger)
	return func(_ context.Context, _ inputFile, g *rdf.Graph, _ *slog.Logger) (*rdf.Graph, error) {
		out, stats := driver.Convert(g)
		r.opts.Metrics.RecordConverted(stats)
		return out, nil
	}
}

// dedupe runs the keying pass over files in order and returns the rewrite
// for the second pass.
func (r *Runner) dedupe(ctx context.Context, files []inputFile, logger *slog.Logger) (fileFunc, error) {
	if r.opts.Index == nil {
		return nil, errors.New("dedupe requires an index")
	}
	if err := r.opts.Index.Reset(); err != nil {
		return nil, fmt.Errorf("reset index: %w", err)
	}
	indexer := dedupe.NewIndexer(r.opts.Index, r.opts.Namespace, logger)
	duplicates := 0
	for _, in := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := r.readGraph(ctx, in, logger)
		if err != nil {
			// The rewrite pass reports the file.
			if r.opts.Strict {
				return nil, fmt.Errorf("%s: %w", in.Path, err)
			}
			continue
		}
		stats, err := indexer.Index(g)
		if err != nil {
			return nil, err
		}
		for _, n := range stats {
			duplicates += n
		}
		r.opts.Metrics.RecordDeduped(stats)
	}
	logger.Info("dedupe index built", "duplicates", duplicates)

	rw := dedupe.NewRewriter(r.opts.Index)
	return func(_ context.Context, _ inputFile, g *rdf.Graph, logger *slog.Logger) (*rdf.Graph, error) {
		out, n, err := rw.Rewrite(g)
		if err != nil {
			return nil, err
		}
		logger.Debug("aliases rewritten", "statements", n)
		return out, nil
	}, nil
}
