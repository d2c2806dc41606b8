package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/geoknoesis/bib2lod/internal/config"
	"github.com/geoknoesis/bib2lod/internal/index"
	"github.com/geoknoesis/bib2lod/internal/logging"
	"github.com/geoknoesis/bib2lod/internal/metrics"
	"github.com/geoknoesis/bib2lod/internal/pipeline"
	"github.com/geoknoesis/bib2lod/internal/uri"
)

// flags holds the root persistent flags.
type flags struct {
	configPath string
	input      string
	output     string
	namespace  string
	format     string
	workers    int
	logLevel   string
	index      string
	strict     bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "bib2lod",
		Short: "Convert Bibframe 1.0 RDF to LD4L",
		Long: `bib2lod converts a directory of Bibframe 1.0 N-Triples or N-Quads files
to the LD4L ontology. It runs up to three actions in order:

  bnodes   replace blank nodes with IRIs in the local namespace
  dedupe   collapse resources that describe the same thing
  convert  rewrite Bibframe resources as LD4L resources

Each action writes to <output>/<action>/ and the next one reads from there.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&f.input, "input", "i", "", "input directory")
	pf.StringVarP(&f.output, "output", "o", "", "output directory")
	pf.StringVar(&f.namespace, "namespace", "", "local namespace for minted IRIs")
	pf.StringVarP(&f.format, "format", "f", "", "output format of the last action (ntriples, turtle, jsonld)")
	pf.IntVarP(&f.workers, "workers", "w", 0, "files processed at once")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&f.index, "index", "", "dedupe index directory (empty keeps it in memory)")
	pf.BoolVar(&f.strict, "strict", false, "stop at the first file that fails")

	root.AddCommand(
		newActionCmd(f, pipeline.Bnodes, "Replace blank nodes with local IRIs"),
		newActionCmd(f, pipeline.Dedupe, "Collapse duplicate resources"),
		newActionCmd(f, pipeline.Convert, "Convert Bibframe resources to LD4L"),
		newRunCmd(f),
		newActionsCmd(),
		newConfigCmd(f),
	)
	return root
}

func newActionCmd(f *flags, a pipeline.Action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(a),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			return execute(cmd.Context(), cmd, cfg, []pipeline.Action{a})
		},
	}
}

func newRunCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "run [action...]",
		Short: "Run the configured actions, or the ones named",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			labels := cfg.Actions
			if len(args) > 0 {
				labels = args
			}
			actions, err := pipeline.LookupAll(labels)
			if err != nil {
				return err
			}
			return execute(cmd.Context(), cmd, cfg, actions)
		},
	}
}

func newActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the valid actions in execution order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, l := range pipeline.Labels() {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
		},
	}
}

func newConfigCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the configuration after file and flag overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// load reads the config file and applies the flags the user set.
func (f *flags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	set := cmd.Flags().Changed
	if set("input") {
		cfg.InputDir = f.input
	}
	if set("output") {
		cfg.OutputDir = f.output
	}
	if set("namespace") {
		cfg.LocalNamespace = f.namespace
	}
	if set("format") {
		cfg.OutputFormat = f.format
	}
	if set("workers") {
		cfg.Workers = f.workers
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if set("index") {
		cfg.Index.Path = f.index
	}
	if set("strict") {
		cfg.Strict = f.strict
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// execute wires the configured components and runs actions.
func execute(ctx context.Context, cmd *cobra.Command, cfg config.Config, actions []pipeline.Action) (err error) {
	log, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Dir:    cfg.Log.Dir,
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer log.Close()
	logger := log.With("run_id", uuid.NewString())

	m := metrics.New()
	opts := pipeline.Options{
		Namespace:    cfg.LocalNamespace,
		Format:       cfg.Format(),
		Workers:      cfg.Workers,
		Strict:       cfg.Strict,
		MaxLineBytes: cfg.MaxLineBytes,
		MaxTriples:   cfg.MaxTriples,
		StrictIRIs:   cfg.StrictIRIs,
		Minter:       uri.NewUUIDMinter(cfg.LocalNamespace),
		Logger:       logger,
		Metrics:      m,
	}
	if slices.Contains(actions, pipeline.Dedupe) {
		store, openErr := index.Open(index.Config{
			Path:       cfg.Index.Path,
			SyncWrites: cfg.Index.SyncWrites,
			Logger:     logger,
		})
		if openErr != nil {
			return openErr
		}
		defer func() {
			if cerr := store.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("close index: %w", cerr))
			}
		}()
		opts.Index = store
	}

	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = string(a)
	}
	logger.Info("run started", "actions", strings.Join(labels, ","),
		"input", cfg.InputDir, "output", cfg.OutputDir, "format", cfg.OutputFormat)

	summaries, runErr := pipeline.New(opts).Run(ctx, actions, cfg.InputDir, cfg.OutputDir)
	printSummaries(cmd.OutOrStdout(), summaries)

	if cfg.Metrics.Textfile != "" {
		if werr := m.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			logger.Error("write metrics", "path", cfg.Metrics.Textfile, "error", werr)
		}
	}
	return runErr
}

func printSummaries(w io.Writer, summaries []pipeline.Summary) {
	if len(summaries) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACTION\tFILES\tFAILED\tREAD\tWRITTEN\tDURATION\tOUTPUT")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			s.Action, s.Files, s.Failed, s.TriplesRead, s.TriplesWritten,
			s.Duration.Round(time.Millisecond), s.OutputDir)
	}
	tw.Flush()
}
