package rdf

import "testing"

func ex(local string) IRI { return NewIRI("http://example.org/" + local) }

func TestGraphSetSemantics(t *testing.T) {
	g := NewGraph()
	triple := NewTriple(ex("s"), "http://example.org/p", NewLiteral("o", ""))
	if !g.Add(triple) {
		t.Fatal("expected first add to change the graph")
	}
	if g.Add(triple) {
		t.Fatal("expected duplicate add to be a no-op")
	}
	if g.Add(NewTriple(ex("s"), "http://example.org/p", NewTypedLiteral("o", xsdString))) {
		t.Fatal("xsd:string literal should equal the plain literal")
	}
	if g.Len() != 1 {
		t.Fatalf("expected 1 triple, got %d", g.Len())
	}
	if g.Add(Triple{S: ex("s")}) {
		t.Fatal("incomplete triple should be ignored")
	}
}

func TestGraphInsertionOrder(t *testing.T) {
	a := NewTriple(ex("a"), "http://example.org/p", ex("x"))
	b := NewTriple(ex("b"), "http://example.org/p", ex("x"))
	c := NewTriple(ex("c"), "http://example.org/p", ex("x"))
	g := NewGraph(a, b, c)
	g.Remove(a)
	g.Add(a)
	got := g.Triples()
	if len(got) != 3 || got[0] != b || got[1] != c || got[2] != a {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestGraphMatch(t *testing.T) {
	p := ex("p")
	q := ex("q")
	g := NewGraph(
		NewTriple(ex("s1"), p.Value, ex("o1")),
		NewTriple(ex("s1"), q.Value, ex("o2")),
		NewTriple(ex("s2"), p.Value, ex("o1")),
	)
	if n := len(g.Match(ex("s1"), nil, nil)); n != 2 {
		t.Fatalf("subject match: got %d", n)
	}
	if n := len(g.Match(nil, &p, nil)); n != 2 {
		t.Fatalf("predicate match: got %d", n)
	}
	if n := len(g.Match(nil, nil, ex("o1"))); n != 2 {
		t.Fatalf("object match: got %d", n)
	}
	if n := len(g.Match(ex("s1"), &p, ex("o1"))); n != 1 {
		t.Fatalf("full match: got %d", n)
	}
	if n := len(g.Match(ex("s1"), nil, ex("o2"))); n != 1 {
		t.Fatalf("subject+object match: got %d", n)
	}
	if n := len(g.Match(nil, nil, nil)); n != 3 {
		t.Fatalf("wildcard match: got %d", n)
	}
}

func TestGraphAccessors(t *testing.T) {
	g := NewGraph(
		NewTriple(ex("w"), RDFType, ex("Work")),
		NewTriple(ex("w"), RDFType, ex("Text")),
		NewTriple(ex("w"), "http://example.org/title", NewLiteral("A", "")),
		NewTriple(ex("w"), "http://example.org/title", NewLiteral("B", "")),
		NewTriple(ex("i"), "http://example.org/instanceOf", ex("w")),
	)
	if obj, ok := g.Object(ex("w"), "http://example.org/title"); !ok || obj.(Literal).Lexical != "A" {
		t.Fatalf("unexpected first object %v", obj)
	}
	if _, ok := g.Object(ex("w"), "http://example.org/none"); ok {
		t.Fatal("expected no object")
	}
	if n := len(g.Objects(ex("w"), "http://example.org/title")); n != 2 {
		t.Fatalf("expected 2 objects, got %d", n)
	}
	types := g.Types(ex("w"))
	if len(types) != 2 || types[0] != "http://example.org/Work" {
		t.Fatalf("unexpected types %v", types)
	}
	works := g.SubjectsOfType("http://example.org/Work")
	if len(works) != 1 || TermKey(works[0]) != "<http://example.org/w>" {
		t.Fatalf("unexpected subjects %v", works)
	}
	if subs := g.Subjects("http://example.org/instanceOf", ex("w")); len(subs) != 1 {
		t.Fatalf("unexpected referrers %v", subs)
	}
}

func TestGraphRemoveMatchesAndRemoveAll(t *testing.T) {
	p := ex("p")
	g := NewGraph(
		NewTriple(ex("s"), p.Value, ex("a")),
		NewTriple(ex("s"), p.Value, ex("b")),
		NewTriple(ex("s"), "http://example.org/q", ex("c")),
	)
	removed := g.RemoveMatches(ex("s"), &p, nil)
	if len(removed) != 2 || g.Len() != 1 {
		t.Fatalf("removed %d, left %d", len(removed), g.Len())
	}
	g.RemoveAll(g.Match(nil, nil, ex("c")))
	if g.Len() != 0 {
		t.Fatalf("expected empty graph, got %d", g.Len())
	}
	if g.Remove(NewTriple(ex("s"), p.Value, ex("a"))) {
		t.Fatal("removing an absent triple should report false")
	}
}

func TestGraphReplaceTerm(t *testing.T) {
	g := NewGraph(
		NewTriple(ex("a"), "http://example.org/p", ex("x")),
		NewTriple(ex("b"), "http://example.org/p", ex("x")),
		NewTriple(ex("y"), "http://example.org/r", ex("b")),
		NewTriple(ex("b"), "http://example.org/self", ex("b")),
	)
	touched := g.ReplaceTerm(ex("b"), ex("a"))
	if touched != 3 {
		t.Fatalf("expected 3 touched triples, got %d", touched)
	}
	if g.Len() != 3 {
		t.Fatalf("expected duplicates to collapse to 3 triples, got %d", g.Len())
	}
	if !g.Contains(NewTriple(ex("y"), "http://example.org/r", ex("a"))) {
		t.Fatal("object position not rewritten")
	}
	if !g.Contains(NewTriple(ex("a"), "http://example.org/self", ex("a"))) {
		t.Fatal("both positions should be rewritten")
	}
	if len(g.Match(ex("b"), nil, nil)) != 0 || len(g.Match(nil, nil, ex("b"))) != 0 {
		t.Fatal("old term still present")
	}
}

func TestGraphCloneAndAddGraph(t *testing.T) {
	g := NewGraph(NewTriple(ex("s"), "http://example.org/p", ex("o")))
	clone := g.Clone()
	clone.Add(NewTriple(ex("s"), "http://example.org/p", ex("o2")))
	if g.Len() != 1 || clone.Len() != 2 {
		t.Fatalf("clone is not independent: %d %d", g.Len(), clone.Len())
	}
	g.AddGraph(clone)
	if g.Len() != 2 {
		t.Fatalf("expected 2 after AddGraph, got %d", g.Len())
	}
}
