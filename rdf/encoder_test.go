package rdf

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTurtleEncoderGroupsBySubject(t *testing.T) {
	g := NewGraph(
		NewTriple(ex("s"), RDFType, ex("T")),
		NewTriple(ex("t"), "http://example.org/p", ex("s")),
		NewTriple(ex("s"), "http://example.org/p", NewLiteral("x", "")),
		NewTriple(ex("s"), "http://example.org/p", NewLiteral("y", "")),
	)
	var buf bytes.Buffer
	err := WriteGraph(&buf, g, FormatTurtle, OptPrefixes(map[string]string{"ex": "http://example.org/"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "@prefix ex: <http://example.org/> .\n\n" +
		"ex:s a ex:T ;\n" +
		"    ex:p \"x\" ,\n" +
		"        \"y\" .\n\n" +
		"ex:t ex:p ex:s .\n\n"
	if buf.String() != want {
		t.Fatalf("unexpected turtle:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTurtleEncoderFallsBackToFullIRIs(t *testing.T) {
	g := NewGraph(
		NewTriple(NewIRI("http://other.org/s"), "http://example.org/p", NewTypedLiteral("1", "http://www.w3.org/2001/XMLSchema#integer")),
		NewTriple(NewIRI("http://example.org/a.b."), "http://example.org/p", BlankNode{ID: "b1"}),
	)
	var buf bytes.Buffer
	err := WriteGraph(&buf, g, FormatTurtle, OptPrefixes(map[string]string{
		"ex":  "http://example.org/",
		"xsd": "http://www.w3.org/2001/XMLSchema#",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, fragment := range []string{
		`<http://other.org/s> ex:p "1"^^xsd:integer .`,
		`<http://example.org/a.b.> ex:p _:b1 .`,
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in:\n%s", fragment, out)
		}
	}
}

func TestAbbreviateQNamePrefersLongestNamespace(t *testing.T) {
	prefixes := map[string]string{
		"bf":   "http://bibframe.org/",
		"bfv":  "http://bibframe.org/vocab/",
		"none": "http://nowhere.org/",
	}
	got, ok := abbreviateQName("http://bibframe.org/vocab/Work", prefixes, false)
	if !ok || got != "bfv:Work" {
		t.Fatalf("got %q %v", got, ok)
	}
	if _, ok := abbreviateQName("http://bibframe.org/vocab/has space", prefixes, false); ok {
		t.Fatal("expected no abbreviation for invalid local name")
	}
}

func TestJSONLDEncoderCompactsWithPrefixes(t *testing.T) {
	g := NewGraph(NewTriple(ex("s"), "http://example.org/p", NewLiteral("v", "")))
	var buf bytes.Buffer
	err := WriteGraph(&buf, g, FormatJSONLD, OptPrefixes(map[string]string{"ex": "http://example.org/"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if _, ok := doc["@context"]; !ok {
		t.Fatalf("expected @context in %s", buf.String())
	}
	if doc["ex:p"] != "v" {
		t.Fatalf("expected compacted property in %s", buf.String())
	}
	if id := doc["@id"]; id != "ex:s" && id != "http://example.org/s" {
		t.Fatalf("unexpected @id %v", id)
	}
}

func TestJSONLDEncoderExpandedWithoutPrefixes(t *testing.T) {
	g := NewGraph(NewTriple(ex("s"), "http://example.org/p", ex("o")))
	var buf bytes.Buffer
	if err := WriteGraph(&buf, g, FormatJSONLD); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(doc) != 1 || doc[0]["@id"] != "http://example.org/s" {
		t.Fatalf("unexpected document %s", buf.String())
	}
}

func TestJSONLDEncoderEmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGraph(&buf, NewGraph(), FormatJSONLD); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestNewWriterUnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, Format("rdfxml")); err != ErrUnsupportedFormat {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
