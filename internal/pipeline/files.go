package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/geoknoesis/bib2lod/rdf"
	"github.com/geoknoesis/bib2lod/vocab"
)

// inputFile is one readable file of an input directory.
type inputFile struct {
	Path   string
	Format rdf.Format
	// Index is the 1-based position in the sorted listing.
	Index int
}

// listInputs returns the N-Triples and N-Quads files of dir sorted by name,
// and the names of the other regular files, which are skipped.
func listInputs(dir string, logger *slog.Logger) (files []inputFile, skipped []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("list input directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		format, ok := rdf.FormatFromPath(e.Name())
		if !ok || !format.CanDecode() {
			logger.Debug("skipping file", "file", e.Name())
			skipped = append(skipped, e.Name())
			continue
		}
		files = append(files, inputFile{
			Path:   filepath.Join(dir, e.Name()),
			Format: format,
			Index:  len(files) + 1,
		})
	}
	return files, skipped, nil
}

// outputPath places the converted form of input in dir with the extension
// of format.
func outputPath(dir, input string, format rdf.Format) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+format.Extension())
}

func (r *Runner) readGraph(ctx context.Context, in inputFile, logger *slog.Logger) (*rdf.Graph, error) {
	f, err := os.Open(in.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reported := false
	opts := []rdf.Option{
		rdf.OptMaxLineBytes(r.opts.MaxLineBytes),
		rdf.OptGraphLabel(func(q rdf.Quad) {
			if !reported {
				reported = true
				logger.Info("named graph labels dropped", "graph", rdf.TermKey(q.G))
			}
		}),
	}
	if r.opts.MaxTriples > 0 {
		opts = append(opts, rdf.OptMaxTriples(r.opts.MaxTriples))
	}
	if r.opts.StrictIRIs {
		opts = append(opts, rdf.OptStrictIRIValidation())
	}
	return rdf.ReadGraph(ctx, bufio.NewReader(f), in.Format, opts...)
}

func writeGraph(path string, g *rdf.Graph, format rdf.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	if err := rdf.WriteGraph(w, g, format, rdf.OptPrefixes(vocab.Prefixes())); err != nil {
		return err
	}
	return w.Flush()
}
