package convert

import (
	"slices"

	"github.com/geoknoesis/bib2lod/rdf"
	"github.com/geoknoesis/bib2lod/vocab"
)

// Rules are the per-type tables interpreted by the generic rewrite loop.
type Rules struct {
	// TypeMap maps a Bibframe type to the type asserted in its place.
	TypeMap map[string]string
	// RetractTypes are dropped.
	RetractTypes []string
	// PropertyMap renames predicates. It takes precedence over
	// vocab.DefaultPropertyMap.
	PropertyMap map[string]string
	// RetractProperties are dropped unless one of the maps renames them.
	RetractProperties []string
}

// Rewrite converts a single statement. The boolean is false when the
// statement is retracted.
//
// Precedence: TypeMap, RetractTypes, Bibframe type namespace fall-through,
// PropertyMap, vocab.DefaultPropertyMap, RetractProperties, Bibframe
// property namespace fall-through. Anything else passes unchanged.
func (r *Rules) Rewrite(c *Context, t rdf.Triple) (rdf.Triple, bool) {
	if t.P.Value == vocab.RDFType {
		typ, ok := t.O.(rdf.IRI)
		if !ok {
			return t, true
		}
		if mapped, ok := r.TypeMap[typ.Value]; ok {
			t.O = rdf.NewIRI(mapped)
			return t, true
		}
		if slices.Contains(r.RetractTypes, typ.Value) {
			return t, false
		}
		if vocab.IsBibframe(typ.Value) {
			c.note("type moved to LD4L namespace", typ.Value)
			t.O = rdf.NewIRI(vocab.ToLD4L(typ.Value))
		}
		return t, true
	}

	p := t.P.Value
	if mapped, ok := r.PropertyMap[p]; ok {
		t.P = rdf.NewIRI(mapped)
		return t, true
	}
	if mapped, ok := vocab.DefaultPropertyMap[p]; ok {
		if vocab.IsLegacy(mapped) {
			c.note("property mapped to legacy namespace", p)
		}
		t.P = rdf.NewIRI(mapped)
		return t, true
	}
	if slices.Contains(r.RetractProperties, p) {
		return t, false
	}
	if vocab.IsBibframe(p) {
		c.note("property moved to LD4L namespace", p)
		t.P = rdf.NewIRI(vocab.ToLD4L(p))
	}
	return t, true
}

// Apply rewrites every statement of sg and returns the result.
func (r *Rules) Apply(c *Context, sg *rdf.Graph) *rdf.Graph {
	out := rdf.NewGraph()
	for _, t := range sg.Triples() {
		if converted, keep := r.Rewrite(c, t); keep {
			out.Add(converted)
		}
	}
	return out
}

var authorityRetractions = []string{vocab.BfAuthorizedAccessPoint, vocab.BfAuthoritySource}
