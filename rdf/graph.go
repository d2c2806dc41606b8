package rdf

// RDFType is the rdf:type predicate IRI.
const RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// Graph is an in-memory set of triples that remembers insertion order.
//
// Adding a triple that is already present is a no-op. A Graph is not safe
// for concurrent use.
type Graph struct {
	triples []Triple
	live    []bool
	index   map[string]int
	bySubj  map[string][]int
	byObj   map[string][]int
	size    int
}

// NewGraph returns an empty graph, optionally seeded with triples.
func NewGraph(triples ...Triple) *Graph {
	g := &Graph{
		index:  make(map[string]int),
		bySubj: make(map[string][]int),
		byObj:  make(map[string][]int),
	}
	for _, t := range triples {
		g.Add(t)
	}
	return g
}

func tripleKey(t Triple) string {
	return TermKey(t.S) + " " + TermKey(t.P) + " " + TermKey(t.O)
}

// Add inserts t and reports whether the graph changed. Incomplete triples
// are ignored.
func (g *Graph) Add(t Triple) bool {
	if !t.Valid() {
		return false
	}
	key := tripleKey(t)
	if _, ok := g.index[key]; ok {
		return false
	}
	pos := len(g.triples)
	g.triples = append(g.triples, t)
	g.live = append(g.live, true)
	g.index[key] = pos
	subjKey, objKey := TermKey(t.S), TermKey(t.O)
	g.bySubj[subjKey] = append(g.bySubj[subjKey], pos)
	g.byObj[objKey] = append(g.byObj[objKey], pos)
	g.size++
	return true
}

// AddAll inserts every triple.
func (g *Graph) AddAll(triples []Triple) {
	for _, t := range triples {
		g.Add(t)
	}
}

// AddGraph inserts every triple of other.
func (g *Graph) AddGraph(other *Graph) {
	if other == nil {
		return
	}
	for _, t := range other.Triples() {
		g.Add(t)
	}
}

// Remove deletes t and reports whether it was present.
func (g *Graph) Remove(t Triple) bool {
	if !t.Valid() {
		return false
	}
	key := tripleKey(t)
	pos, ok := g.index[key]
	if !ok {
		return false
	}
	delete(g.index, key)
	g.live[pos] = false
	g.size--
	g.bySubj[TermKey(t.S)] = dropPos(g.bySubj[TermKey(t.S)], pos)
	g.byObj[TermKey(t.O)] = dropPos(g.byObj[TermKey(t.O)], pos)
	return true
}

func dropPos(positions []int, pos int) []int {
	for i, p := range positions {
		if p == pos {
			return append(positions[:i], positions[i+1:]...)
		}
	}
	return positions
}

// RemoveAll deletes every given triple.
func (g *Graph) RemoveAll(triples []Triple) {
	for _, t := range triples {
		g.Remove(t)
	}
}

// RemoveMatches deletes every triple matching the pattern and returns them.
func (g *Graph) RemoveMatches(s Term, p *IRI, o Term) []Triple {
	matched := g.Match(s, p, o)
	g.RemoveAll(matched)
	return matched
}

// Contains reports whether t is in the graph.
func (g *Graph) Contains(t Triple) bool {
	if !t.Valid() {
		return false
	}
	_, ok := g.index[tripleKey(t)]
	return ok
}

// Len returns the number of triples.
func (g *Graph) Len() int { return g.size }

// Triples returns the triples in insertion order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, g.size)
	for i, t := range g.triples {
		if g.live[i] {
			out = append(out, t)
		}
	}
	return out
}

// Match returns the triples matching the pattern in insertion order. A nil
// subject, predicate or object matches anything.
func (g *Graph) Match(s Term, p *IRI, o Term) []Triple {
	var candidates []int
	switch {
	case s != nil:
		candidates = g.bySubj[TermKey(s)]
	case o != nil:
		candidates = g.byObj[TermKey(o)]
	default:
		var out []Triple
		for i, t := range g.triples {
			if g.live[i] && (p == nil || t.P.Value == p.Value) {
				out = append(out, t)
			}
		}
		return out
	}
	var out []Triple
	var oKey string
	if o != nil {
		oKey = TermKey(o)
	}
	for _, pos := range candidates {
		t := g.triples[pos]
		if p != nil && t.P.Value != p.Value {
			continue
		}
		if s != nil && o != nil && TermKey(t.O) != oKey {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Object returns the first object of (s, p, *), if any.
func (g *Graph) Object(s Term, p string) (Term, bool) {
	pred := NewIRI(p)
	matches := g.Match(s, &pred, nil)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0].O, true
}

// Objects returns every object of (s, p, *).
func (g *Graph) Objects(s Term, p string) []Term {
	pred := NewIRI(p)
	matches := g.Match(s, &pred, nil)
	out := make([]Term, 0, len(matches))
	for _, t := range matches {
		out = append(out, t.O)
	}
	return out
}

// Subjects returns the distinct subjects of (*, p, o) in first-seen order.
func (g *Graph) Subjects(p string, o Term) []Term {
	var pred *IRI
	if p != "" {
		iri := NewIRI(p)
		pred = &iri
	}
	seen := make(map[string]bool)
	var out []Term
	for _, t := range g.Match(nil, pred, o) {
		key := TermKey(t.S)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t.S)
	}
	return out
}

// SubjectsOfType returns the distinct subjects typed with typeIRI.
func (g *Graph) SubjectsOfType(typeIRI string) []Term {
	return g.Subjects(RDFType, NewIRI(typeIRI))
}

// Types returns the IRIs s is typed with.
func (g *Graph) Types(s Term) []string {
	var out []string
	for _, o := range g.Objects(s, RDFType) {
		if iri, ok := o.(IRI); ok {
			out = append(out, iri.Value)
		}
	}
	return out
}

// ReplaceTerm rewrites every occurrence of old in subject or object
// position with replacement and returns the number of triples touched.
// Rewritten triples that collide with existing ones collapse.
func (g *Graph) ReplaceTerm(old, replacement Term) int {
	if old == nil || replacement == nil || TermKey(old) == TermKey(replacement) {
		return 0
	}
	oldKey := TermKey(old)
	affected := g.Match(old, nil, nil)
	for _, t := range g.Match(nil, nil, old) {
		if TermKey(t.S) != oldKey {
			affected = append(affected, t)
		}
	}
	for _, t := range affected {
		g.Remove(t)
	}
	for _, t := range affected {
		if TermKey(t.S) == oldKey {
			t.S = replacement
		}
		if TermKey(t.O) == oldKey {
			t.O = replacement
		}
		g.Add(t)
	}
	return len(affected)
}

// Clone returns an independent copy of the graph.
func (g *Graph) Clone() *Graph {
	return NewGraph(g.Triples()...)
}
