package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/bib2lod/internal/index"
	"github.com/geoknoesis/bib2lod/internal/metrics"
	"github.com/geoknoesis/bib2lod/internal/uri"
	"github.com/geoknoesis/bib2lod/rdf"
	"github.com/geoknoesis/bib2lod/vocab"
)

const ns = "http://example.org/individual/"

const fileA = `_:w <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://bibframe.org/vocab/Work> .
_:w <http://bibframe.org/vocab/authorizedAccessPoint> "Twain, Mark. Adventures" .
_:w <http://bibframe.org/vocab/creator> _:p .
_:p <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://bibframe.org/vocab/Person> .
_:p <http://bibframe.org/vocab/label> "Twain, Mark, 1835-1910." .
_:p <http://bibframe.org/vocab/authorizedAccessPoint> "Twain, Mark, 1835-1910" .
`

const fileB = `# same person, second record
_:p <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://bibframe.org/vocab/Person> .
_:p <http://bibframe.org/vocab/authorizedAccessPoint> "Twain, Mark, 1835-1910." .
`

func writeInputs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	return dir
}

func newRunner(t *testing.T, opts Options) *Runner {
	t.Helper()
	store, err := index.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	opts.Namespace = ns
	opts.Index = store
	opts.Minter = uri.NewSequentialMinter(ns)
	return New(opts)
}

func readOutput(t *testing.T, path string) *rdf.Graph {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := rdf.ReadGraph(context.Background(), f, rdf.FormatNTriples)
	require.NoError(t, err)
	return g
}

func TestLookup(t *testing.T) {
	a, err := Lookup("dedupe")
	require.NoError(t, err)
	assert.Equal(t, Dedupe, a)

	_, err = Lookup("reason")
	require.ErrorIs(t, err, ErrUnknownAction)
	assert.Contains(t, err.Error(), "bnodes, dedupe, convert")

	assert.Equal(t, []string{"bnodes", "dedupe", "convert"}, Labels())
}

func TestLookupAllOrdersAndDedupes(t *testing.T) {
	got, err := LookupAll([]string{"convert", "bnodes", "convert"})
	require.NoError(t, err)
	assert.Equal(t, []Action{Bnodes, Convert}, got)

	_, err = LookupAll([]string{"bnodes", "x"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func hasType(g *rdf.Graph, s rdf.Term, typ string) bool {
	return g.Contains(rdf.NewTriple(s, vocab.RDFType, rdf.NewIRI(typ)))
}

func TestListInputsSortedAndFiltered(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"b.nt":      "",
		"a.nq":      "",
		"notes.txt": "",
		"c.ttl":     "",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.nt"), 0o755))

	files, skipped, err := listInputs(dir, newRunner(t, Options{}).opts.Logger)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, []string{"c.ttl", "notes.txt"}, skipped)
	assert.Equal(t, "a.nq", filepath.Base(files[0].Path))
	assert.Equal(t, rdf.FormatNQuads, files[0].Format)
	assert.Equal(t, 1, files[0].Index)
	assert.Equal(t, "b.nt", filepath.Base(files[1].Path))
	assert.Equal(t, 2, files[1].Index)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "rec1.ttl"), outputPath("out", "/in/rec1.nt", rdf.FormatTurtle))
	assert.Equal(t, filepath.Join("out", "rec1.nt"), outputPath("out", "/in/rec1.nq", rdf.FormatNTriples))
}

func TestRunAllActions(t *testing.T) {
	in := writeInputs(t, map[string]string{"a.nt": fileA, "b.nt": fileB})
	out := t.TempDir()
	m := metrics.New()
	r := newRunner(t, Options{Workers: 2, Metrics: m})

	summaries, err := r.Run(context.Background(), []Action{Bnodes, Dedupe, Convert}, in, out)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	for _, s := range summaries {
		assert.Equal(t, 2, s.Files, s.Action)
		assert.Zero(t, s.Failed, s.Action)
	}

	person := rdf.NewIRI(ns + "1_p")
	bnodesB := readOutput(t, filepath.Join(out, "bnodes", "b.nt"))
	assert.True(t, hasType(bnodesB, rdf.NewIRI(ns+"2_p"), vocab.BfPerson))

	dedupedB := readOutput(t, filepath.Join(out, "dedupe", "b.nt"))
	assert.True(t, hasType(dedupedB, person, vocab.BfPerson))
	assert.False(t, hasType(dedupedB, rdf.NewIRI(ns+"2_p"), vocab.BfPerson))

	convertedA := readOutput(t, filepath.Join(out, "convert", "a.nt"))
	assert.True(t, hasType(convertedA, person, vocab.FOAFPerson))
	assert.True(t, convertedA.Contains(rdf.NewTriple(person, vocab.FOAFName, rdf.NewLiteral("Twain, Mark", ""))))
	contributions := convertedA.Objects(rdf.NewIRI(ns+"1_w"), vocab.Ld4lHasContribution)
	require.Len(t, contributions, 1)
	assert.True(t, convertedA.Contains(rdf.NewTriple(contributions[0], vocab.Ld4lHasAgent, person)))

	convertedB := readOutput(t, filepath.Join(out, "convert", "b.nt"))
	assert.True(t, hasType(convertedB, person, vocab.FOAFPerson))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResourcesDeduped.WithLabelValues("Person")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ResourcesConverted.WithLabelValues("Person")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Files.WithLabelValues("convert", metrics.StatusOK)))
}

const sharedISBN = `_:i1 <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://bibframe.org/vocab/Instance> .
_:i1 <http://bibframe.org/vocab/isbn> _:x1 .
_:x1 <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://bibframe.org/vocab/Identifier> .
_:x1 <http://bibframe.org/vocab/identifierValue> "0123456789" .
_:i2 <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://bibframe.org/vocab/Instance> .
_:i2 <http://bibframe.org/vocab/isbn> _:x2 .
_:x2 <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://bibframe.org/vocab/Identifier> .
_:x2 <http://bibframe.org/vocab/identifierValue> "0123456789" .
`

func TestDedupedIdentifierConvertsForEveryInstance(t *testing.T) {
	in := writeInputs(t, map[string]string{"a.nt": sharedISBN})
	out := t.TempDir()
	r := newRunner(t, Options{})

	_, err := r.Run(context.Background(), []Action{Bnodes, Dedupe, Convert}, in, out)
	require.NoError(t, err)

	g := readOutput(t, filepath.Join(out, "convert", "a.nt"))
	first := g.Objects(rdf.NewIRI(ns+"1_i1"), vocab.Ld4lIdentifiedBy)
	second := g.Objects(rdf.NewIRI(ns+"1_i2"), vocab.Ld4lIdentifiedBy)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0], second[0])
	assert.True(t, hasType(g, first[0], vocab.LD4L+"Isbn"))
	assert.Empty(t, g.Objects(rdf.NewIRI(ns+"1_i2"), vocab.LD4L+"isbn"))
}

func TestRunWritesConfiguredFormatLast(t *testing.T) {
	in := writeInputs(t, map[string]string{"a.nt": fileA})
	out := t.TempDir()
	r := newRunner(t, Options{Format: rdf.FormatTurtle})

	_, err := r.Run(context.Background(), []Action{Bnodes, Convert}, in, out)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "bnodes", "a.nt"))
	data, err := os.ReadFile(filepath.Join(out, "convert", "a.ttl"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "@prefix ld4l: <http://bib.ld4l.org/ontology/> .")
	assert.Contains(t, string(data), "foaf:Person")
}

func TestBrokenFileIsSkipped(t *testing.T) {
	in := writeInputs(t, map[string]string{
		"a.nt": fileA,
		"c.nt": "<http://example.org/s> <http://example.org/p> \"unterminated .\n",
	})
	out := t.TempDir()
	m := metrics.New()
	r := newRunner(t, Options{Metrics: m})

	summaries, err := r.Run(context.Background(), []Action{Bnodes, Convert}, in, out)
	require.NoError(t, err)
	assert.Equal(t, 2, summaries[0].Files)
	assert.Equal(t, 1, summaries[0].Failed)
	assert.Equal(t, 1, summaries[1].Files)
	assert.NoFileExists(t, filepath.Join(out, "bnodes", "c.nt"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Files.WithLabelValues("bnodes", metrics.StatusFailed)))
}

func TestStrictAbortsOnBrokenFile(t *testing.T) {
	in := writeInputs(t, map[string]string{
		"c.nt": "not rdf at all\n",
	})
	r := newRunner(t, Options{Strict: true})
	_, err := r.Run(context.Background(), []Action{Bnodes, Convert}, in, t.TempDir())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "c.nt"))
}

func TestMaxTriplesFailsLargeFile(t *testing.T) {
	in := writeInputs(t, map[string]string{"a.nt": fileA})
	r := newRunner(t, Options{Strict: true, MaxTriples: 2})
	_, err := r.Run(context.Background(), []Action{Bnodes}, in, t.TempDir())
	assert.ErrorIs(t, err, rdf.ErrTripleLimitExceeded)

	r = newRunner(t, Options{Strict: true, MaxTriples: 100})
	_, err = r.Run(context.Background(), []Action{Bnodes}, in, t.TempDir())
	assert.NoError(t, err)
}

func TestStrictIRIsRejectsRelativeIRI(t *testing.T) {
	in := writeInputs(t, map[string]string{
		"a.nt": "<relative> <http://example.org/p> <http://example.org/o> .\n",
	})
	_, err := newRunner(t, Options{Strict: true}).Run(context.Background(), []Action{Bnodes}, in, t.TempDir())
	require.NoError(t, err)

	_, err = newRunner(t, Options{Strict: true, StrictIRIs: true}).Run(context.Background(), []Action{Bnodes}, in, t.TempDir())
	assert.ErrorIs(t, err, rdf.ErrInvalidIRI)
}

func TestUnreadableFilesCountedAsSkipped(t *testing.T) {
	in := writeInputs(t, map[string]string{"a.nt": fileA, "notes.txt": "not rdf"})
	m := metrics.New()
	summaries, err := newRunner(t, Options{Metrics: m}).Run(context.Background(), []Action{Bnodes}, in, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 1, summaries[0].Files)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Files.WithLabelValues("bnodes", metrics.StatusSkipped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Files.WithLabelValues("bnodes", metrics.StatusOK)))
}

func TestCanceledContext(t *testing.T) {
	in := writeInputs(t, map[string]string{"a.nt": fileA})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newRunner(t, Options{}).Run(ctx, []Action{Bnodes}, in, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMissingInputDir(t *testing.T) {
	_, err := newRunner(t, Options{}).RunAction(context.Background(), Bnodes,
		filepath.Join(t.TempDir(), "missing"), t.TempDir(), rdf.FormatNTriples)
	assert.Error(t, err)
}

func TestDedupeRequiresIndex(t *testing.T) {
	in := writeInputs(t, map[string]string{"a.nt": fileA})
	r := New(Options{Namespace: ns})
	_, err := r.RunAction(context.Background(), Dedupe, in, t.TempDir(), rdf.FormatNTriples)
	assert.Error(t, err)
}
