// Package rdf provides a compact RDF model, an in-memory Graph and streaming
// parsers/encoders used by the bib2lod actions.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// It keeps a small surface area:
//   - Decode: NewReader() returns a pull-style reader for N-Triples and N-Quads.
//   - Encode: NewWriter() returns a push-style writer for N-Triples, N-Quads,
//     Turtle and JSON-LD.
//   - Parse: Parse() streams statements to a handler.
//   - Graphs: ReadGraph() and WriteGraph() move whole files in and out of a Graph.
//
// Graph is a set of triples with insertion order preserved, indexed by
// subject and object so that the subject graph of a resource can be
// extracted cheaply.
//
// Example (reading a file into a graph):
//
//	g, err := rdf.ReadGraph(ctx, f, rdf.FormatNTriples, rdf.OptMaxLineBytes(1<<20))
//	if err != nil {
//	    // handle error
//	}
//	for _, work := range g.SubjectsOfType("http://bibframe.org/vocab/Work") {
//	    // process work
//	}
//
// Parse failures are reported as *ParseError carrying the line, column and
// an excerpt of the offending statement. Code(err) classifies any error
// returned by the package.
//
// Turtle output groups statements by subject; JSON-LD output is produced by
// github.com/piprate/json-gold and compacted against the prefix map given with
// OptPrefixes.
package rdf
