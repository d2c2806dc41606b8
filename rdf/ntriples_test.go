package rdf

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestNTriplesDecodeErrors(t *testing.T) {
	inputs := map[string]string{
		"missing object":     "<http://example.org/s> <http://example.org/p> .\n",
		"missing dot":        "<http://example.org/s> <http://example.org/p> <http://example.org/o>\n",
		"literal subject":    "\"s\" <http://example.org/p> <http://example.org/o> .\n",
		"blank predicate":    "<http://example.org/s> _:p <http://example.org/o> .\n",
		"unterminated IRI":   "<http://example.org/s <http://example.org/p> <http://example.org/o> .\n",
		"bad escape":         "<http://example.org/s> <http://example.org/p> \"a\\qb\" .\n",
		"trailing garbage":   "<http://example.org/s> <http://example.org/p> <http://example.org/o> . x\n",
		"bad language tag":   "<http://example.org/s> <http://example.org/p> \"v\"@1x .\n",
		"graph in ntriples":  "<http://example.org/s> <http://example.org/p> <http://example.org/o> <http://example.org/g> .\n",
		"unterminated quote": "<http://example.org/s> <http://example.org/p> \"abc .\n",
	}
	for name, input := range inputs {
		dec, err := NewReader(strings.NewReader(input), FormatNTriples)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		_, err = dec.Next()
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("%s: expected ParseError, got %T", name, err)
		}
		if parseErr.Line != 1 || parseErr.Column == 0 {
			t.Fatalf("%s: unexpected position %d:%d", name, parseErr.Line, parseErr.Column)
		}
	}
}

func TestNTriplesDecodeBlankAndLiteral(t *testing.T) {
	line := "_:b1 <http://example.org/p> \"v\"@en .\n"
	dec, err := NewReader(strings.NewReader(line), FormatNTriples)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	quad, err := dec.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := quad.S.(BlankNode); !ok || b.ID != "b1" {
		t.Fatalf("expected blank node subject, got %#v", quad.S)
	}
	if lit, ok := quad.O.(Literal); !ok || lit.Lang != "en" || lit.Lexical != "v" {
		t.Fatalf("expected lang literal, got %#v", quad.O)
	}
	if _, err := dec.Next(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestNTriplesDecodeBlankNodeBeforeDot(t *testing.T) {
	line := "<http://example.org/s> <http://example.org/p> _:b1.\n"
	dec, _ := NewReader(strings.NewReader(line), FormatNTriples)
	quad, err := dec.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := quad.O.(BlankNode); !ok || b.ID != "b1" {
		t.Fatalf("unexpected object %#v", quad.O)
	}
}

func TestNTriplesDecodeEscapes(t *testing.T) {
	line := `<http://example.org/s> <http://example.org/p> "tab\there \"q\" café \U0001F600 back\\slash" .` + "\n"
	dec, _ := NewReader(strings.NewReader(line), FormatNTriples)
	quad, err := dec.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "tab\there \"q\" café \U0001F600 back\\slash"
	if lit := quad.O.(Literal); lit.Lexical != want {
		t.Fatalf("got %q want %q", lit.Lexical, want)
	}
}

func TestNTriplesDecodeDatatypeLiteral(t *testing.T) {
	line := "<http://example.org/s> <http://example.org/p> \"1\"^^<http://example.org/dt> .\n"
	dec, _ := NewReader(strings.NewReader(line), FormatNTriples)
	quad, err := dec.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lit, ok := quad.O.(Literal); !ok || lit.Datatype.Value != "http://example.org/dt" {
		t.Fatalf("expected datatype literal")
	}
}

func TestNTriplesSkipsCommentsAndBlankLines(t *testing.T) {
	input := "# header\n\n   \n<http://example.org/s> <http://example.org/p> <http://example.org/o> . # trailing\n"
	g, err := ReadGraph(context.Background(), strings.NewReader(input), FormatNTriples)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Len() != 1 {
		t.Fatalf("expected 1 triple, got %d", g.Len())
	}
}

func TestNTriplesErrorLineNumber(t *testing.T) {
	input := "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n" +
		"# comment\n" +
		"<http://example.org/s> <http://example.org/p> .\n"
	_, err := ReadGraph(context.Background(), strings.NewReader(input), FormatNTriples)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Line != 3 {
		t.Fatalf("expected line 3, got %d", parseErr.Line)
	}
}

func TestNQuadsGraphLabel(t *testing.T) {
	input := "<http://example.org/s> <http://example.org/p> <http://example.org/o> <http://example.org/g> .\n" +
		"<http://example.org/s> <http://example.org/p> \"x\" .\n"
	var labels []Term
	g, err := ReadGraph(context.Background(), strings.NewReader(input), FormatNQuads,
		OptGraphLabel(func(q Quad) { labels = append(labels, q.G) }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Len() != 2 {
		t.Fatalf("expected 2 triples, got %d", g.Len())
	}
	if len(labels) != 1 || TermKey(labels[0]) != "<http://example.org/g>" {
		t.Fatalf("unexpected graph labels %v", labels)
	}
}

func TestNTriplesMaxTriples(t *testing.T) {
	input := strings.Repeat("<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n", 3)
	_, err := ReadGraph(context.Background(), strings.NewReader(input), FormatNTriples, OptMaxTriples(2))
	if !errors.Is(err, ErrTripleLimitExceeded) {
		t.Fatalf("expected ErrTripleLimitExceeded, got %v", err)
	}
}

func TestNTriplesStrictIRIValidation(t *testing.T) {
	input := "<no scheme> <http://example.org/p> <http://example.org/o> .\n"
	if _, err := ReadGraph(context.Background(), strings.NewReader(input), FormatNTriples); err != nil {
		t.Fatalf("lenient parse failed: %v", err)
	}
	_, err := ReadGraph(context.Background(), strings.NewReader(input), FormatNTriples, OptStrictIRIValidation())
	if Code(err) != ErrCodeInvalidIRI {
		t.Fatalf("expected invalid IRI, got %v", err)
	}
}

func TestNTriplesRoundTrip(t *testing.T) {
	g := NewGraph(
		NewTriple(NewIRI("http://example.org/s"), "http://example.org/p", NewLiteral("line1\nline2\t\"quoted\" \\", "")),
		NewTriple(NewIRI("http://example.org/s"), "http://example.org/p", NewLiteral("bonjour", "fr")),
		NewTriple(BlankNode{ID: "b0"}, "http://example.org/p", NewTypedLiteral("3", "http://www.w3.org/2001/XMLSchema#integer")),
		NewTriple(NewIRI("http://example.org/s"), "http://example.org/q", NewLiteral("\x01ctl", "")),
	)
	var buf bytes.Buffer
	if err := WriteGraph(&buf, g, FormatNTriples); err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 4 {
		t.Fatalf("expected one line per triple:\n%s", buf.String())
	}
	back, err := ReadGraph(context.Background(), &buf, FormatNTriples)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if back.Len() != g.Len() {
		t.Fatalf("expected %d triples, got %d", g.Len(), back.Len())
	}
	for _, triple := range g.Triples() {
		if !back.Contains(triple) {
			t.Fatalf("missing %s after round trip", triple)
		}
	}
}

func TestNQuadsEncodeGraphLabel(t *testing.T) {
	var buf bytes.Buffer
	enc := newNTEncoder(&buf, FormatNQuads, defaultOptions())
	q := Quad{S: NewIRI("http://example.org/s"), P: NewIRI("http://example.org/p"), O: NewIRI("http://example.org/o"), G: NewIRI("http://example.org/g")}
	if err := enc.WriteQuad(q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<http://example.org/s> <http://example.org/p> <http://example.org/o> <http://example.org/g> .\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestWriterRejectsIncompleteTriple(t *testing.T) {
	w, err := NewWriter(io.Discard, FormatNTriples)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Write(Triple{S: NewIRI("http://example.org/s")}); err == nil {
		t.Fatal("expected error for incomplete triple")
	}
}
