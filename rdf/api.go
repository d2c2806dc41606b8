package rdf

import (
	"context"
	"io"
)

// DefaultMaxLineBytes is the default per-line limit for line-based formats.
const DefaultMaxLineBytes = 1 << 20

// Reader streams RDF statements from an input. Triples read from N-Triples
// have a nil graph.
type Reader interface {
	Next() (Quad, error)
	Close() error
}

// Writer streams RDF triples to an output.
type Writer interface {
	Write(Triple) error
	Flush() error
	Close() error
}

// Handler processes statements in push mode.
type Handler func(Quad) error

// Option configures reader/writer behavior.
type Option func(*Options)

// Options configures parser/encoder behavior.
type Options struct {
	// Context for cancellation
	Context context.Context

	// Limits for untrusted input; zero or negative disables a limit
	MaxLineBytes int
	MaxTriples   int64

	// StrictIRIValidation rejects IRIs that fail ValidateIRI.
	StrictIRIValidation bool

	// Prefixes abbreviates IRIs in Turtle and compacts JSON-LD output.
	Prefixes map[string]string

	// GraphLabel receives the graph label of every named-graph quad that
	// ReadGraph folds into the default graph.
	GraphLabel func(Quad)
}

// NewReader creates a reader for the specified format.
func NewReader(r io.Reader, format Format, opts ...Option) (Reader, error) {
	options := buildOptions(opts)
	switch format {
	case FormatNTriples, FormatNQuads:
		return newNTDecoder(r, format, options), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...Option) (Writer, error) {
	options := buildOptions(opts)
	switch format {
	case FormatNTriples, FormatNQuads:
		return newNTEncoder(w, format, options), nil
	case FormatTurtle:
		return newTurtleEncoder(w, options), nil
	case FormatJSONLD:
		return newJSONLDEncoder(w, options), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Parse parses RDF from the reader and streams statements to the handler.
// If ctx is nil, context.Background() is used.
func Parse(ctx context.Context, r io.Reader, format Format, handler Handler, opts ...Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	reader, err := NewReader(r, format, append([]Option{OptContext(ctx)}, opts...)...)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		stmt, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := handler(stmt); err != nil {
			return err
		}
	}
}

// ReadGraph parses r into a new Graph. Graph labels of N-Quads input are
// dropped and reported to the GraphLabel option when set.
func ReadGraph(ctx context.Context, r io.Reader, format Format, opts ...Option) (*Graph, error) {
	options := buildOptions(opts)
	g := NewGraph()
	err := Parse(ctx, r, format, func(q Quad) error {
		if q.G != nil && options.GraphLabel != nil {
			options.GraphLabel(q)
		}
		g.Add(q.ToTriple())
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// WriteGraph serializes every triple of g in insertion order.
func WriteGraph(w io.Writer, g *Graph, format Format, opts ...Option) error {
	writer, err := NewWriter(w, format, opts...)
	if err != nil {
		return err
	}
	for _, t := range g.Triples() {
		if err := writer.Write(t); err != nil {
			_ = writer.Close()
			return err
		}
	}
	return writer.Close()
}

// OptContext sets the context for cancellation.
func OptContext(ctx context.Context) Option {
	return func(opts *Options) {
		opts.Context = ctx
	}
}

// OptMaxLineBytes sets the maximum line size limit.
func OptMaxLineBytes(maxBytes int) Option {
	return func(opts *Options) {
		opts.MaxLineBytes = maxBytes
	}
}

// OptMaxTriples sets the maximum number of statements to read.
func OptMaxTriples(maxTriples int64) Option {
	return func(opts *Options) {
		opts.MaxTriples = maxTriples
	}
}

// OptStrictIRIValidation enables IRI validation while parsing.
func OptStrictIRIValidation() Option {
	return func(opts *Options) {
		opts.StrictIRIValidation = true
	}
}

// OptPrefixes sets the prefix map used by Turtle and JSON-LD output.
func OptPrefixes(prefixes map[string]string) Option {
	return func(opts *Options) {
		opts.Prefixes = prefixes
	}
}

// OptGraphLabel registers a callback for named-graph statements read by
// ReadGraph.
func OptGraphLabel(fn func(Quad)) Option {
	return func(opts *Options) {
		opts.GraphLabel = fn
	}
}

func defaultOptions() Options {
	return Options{MaxLineBytes: DefaultMaxLineBytes}
}

func buildOptions(opts []Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
