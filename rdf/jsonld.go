package rdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	ld "github.com/piprate/json-gold/ld"
)

// jsonldEncoder collects triples and serializes them as one JSON-LD
// document on Close. The document is compacted against the configured
// prefixes when any are set.
type jsonldEncoder struct {
	w        io.Writer
	prefixes map[string]string
	buf      bytes.Buffer
	nt       *ntEncoder
	count    int
	closed   bool
	err      error
}

func newJSONLDEncoder(w io.Writer, opts Options) *jsonldEncoder {
	e := &jsonldEncoder{w: w, prefixes: opts.Prefixes}
	e.nt = newNTEncoder(&e.buf, FormatNQuads, opts)
	return e
}

func (e *jsonldEncoder) Write(t Triple) error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		return fmt.Errorf("jsonld: writer closed")
	}
	if err := e.nt.Write(t); err != nil {
		e.err = err
		return err
	}
	e.count++
	return nil
}

// Flush is a no-op; the document is only complete on Close.
func (e *jsonldEncoder) Flush() error { return e.err }

func (e *jsonldEncoder) Close() error {
	if e.closed {
		return e.err
	}
	e.closed = true
	if e.err != nil {
		return e.err
	}
	if err := e.nt.Flush(); err != nil {
		e.err = err
		return err
	}
	doc, err := e.document()
	if err != nil {
		e.err = err
		return err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		e.err = fmt.Errorf("jsonld: %w", err)
		return e.err
	}
	out = append(out, '\n')
	if _, err := e.w.Write(out); err != nil {
		e.err = err
		return err
	}
	return nil
}

func (e *jsonldEncoder) document() (any, error) {
	if e.count == 0 {
		return []any{}, nil
	}
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"
	expanded, err := proc.FromRDF(e.buf.String(), opts)
	if err != nil {
		return nil, fmt.Errorf("jsonld: from rdf: %w", err)
	}
	if len(e.prefixes) == 0 {
		return expanded, nil
	}
	context := make(map[string]any, len(e.prefixes))
	for prefix, ns := range e.prefixes {
		if prefix == "" {
			context["@vocab"] = ns
			continue
		}
		context[prefix] = ns
	}
	compactOpts := ld.NewJsonLdOptions("")
	compacted, err := proc.Compact(expanded, map[string]any{"@context": context}, compactOpts)
	if err != nil {
		return nil, fmt.Errorf("jsonld: compact: %w", err)
	}
	return compacted, nil
}
