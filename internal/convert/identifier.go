package convert

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/geoknoesis/bib2lod/rdf"
	"github.com/geoknoesis/bib2lod/vocab"
)

var (
	parenPrefix = regexp.MustCompile(`^\(([^)]+)\)\s*(.+)$`)
	oclcPrefix  = regexp.MustCompile(`^(oc[mn]?)(\d+)$`)
)

// SplitIdentifierPrefix recognizes a type-bearing prefix on an identifier
// value, such as "(OCoLC)12345" or "ocm12345", and returns the type with the
// value stripped of the prefix. An unrecognized value is returned as is with
// an empty type.
func SplitIdentifierPrefix(value string) (typ, stripped string) {
	value = strings.TrimSpace(value)
	if m := parenPrefix.FindStringSubmatch(value); m != nil {
		if t, ok := vocab.IdentifierPrefixes[m[1]]; ok {
			return t, strings.TrimSpace(m[2])
		}
		return "", value
	}
	if m := oclcPrefix.FindStringSubmatch(value); m != nil {
		return vocab.Ld4lOclcIdentifier, m[2]
	}
	return "", value
}

// IdentifierType picks the LD4L type of an identifier from, in order, a
// WorldCat IRI, the linking predicate, the identifier scheme and the value
// prefix. It also returns the value to assert with rdf:value; for a WorldCat
// IRI that is the OCLC number in its local name.
func IdentifierType(id rdf.Term, link string, scheme rdf.Term, value string) (typ, val string) {
	prefixType, stripped := SplitIdentifierPrefix(value)
	if prefixType != "" {
		value = stripped
	}

	if iri, ok := id.(rdf.IRI); ok && strings.HasPrefix(iri.Value, vocab.WorldCat) {
		return vocab.Ld4lOclcIdentifier, vocab.LocalName(iri.Value)
	}
	if t, ok := vocab.IdentifierTypes[link]; ok {
		return t, value
	}
	if name := schemeName(scheme); name != "" && name != "systemNumber" {
		return vocab.LD4L + capitalize(name), value
	}
	if prefixType != "" {
		return prefixType, value
	}
	if value != "" && isDigits(value) {
		return vocab.Ld4lLocalIlsIdentifier, value
	}
	return vocab.Ld4lIdentifier, value
}

func schemeName(scheme rdf.Term) string {
	switch s := scheme.(type) {
	case rdf.IRI:
		return vocab.LocalName(s.Value)
	case rdf.Literal:
		return strings.TrimSpace(s.Lexical)
	}
	return ""
}

func capitalize(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var identifierRules = &Rules{
	RetractTypes:      []string{vocab.BfIdentifier},
	RetractProperties: []string{vocab.BfIdentifierValue, vocab.BfIdentifierScheme},
}

func identifierConverter() Converter { return identifierConv{} }

type identifierConv struct{}

func (identifierConv) Name() string    { return "Identifier" }
func (identifierConv) Types() []string { return []string{vocab.BfIdentifier} }

// Convert handles identifiers no Work, Instance or HeldItem claimed. Their
// incoming identifier links become ld4l:identifiedBy.
func (identifierConv) Convert(c *Context, res rdf.Term, sg *rdf.Graph) *rdf.Graph {
	var owners []rdf.Term
	link := ""
	for _, t := range sg.Match(nil, nil, res) {
		if !vocab.IsIdentifierProperty(t.P.Value) {
			continue
		}
		sg.Remove(t)
		owners = append(owners, t.S)
		if link == "" {
			link = t.P.Value
		}
	}
	out := convertIdentifier(c, nil, link, res, sg)
	for _, owner := range owners {
		out.Add(rdf.NewTriple(owner, vocab.Ld4lIdentifiedBy, res))
	}
	return out
}

// convertIdentifier converts identifier id, linked from owner by link when
// owner is not nil.
func convertIdentifier(c *Context, owner rdf.Term, link string, id rdf.Term, sg *rdf.Graph) *rdf.Graph {
	out := rdf.NewGraph()
	valueP := rdf.NewIRI(vocab.BfIdentifierValue)
	schemeP := rdf.NewIRI(vocab.BfIdentifierScheme)

	value, _ := firstLiteral(sg.RemoveMatches(id, &valueP, nil))
	var scheme rdf.Term
	if schemes := sg.RemoveMatches(id, &schemeP, nil); len(schemes) > 0 {
		scheme = schemes[0].O
	}

	typ, val := IdentifierType(id, link, scheme, value.Lexical)
	if typ == vocab.Ld4lIdentifier {
		c.note("identifier type defaulted", rdf.TermKey(id))
	}
	if owner != nil {
		out.Add(rdf.NewTriple(owner, vocab.Ld4lIdentifiedBy, id))
	}
	out.Add(rdf.NewTriple(id, vocab.RDFType, rdf.NewIRI(typ)))
	if val != "" {
		out.Add(rdf.NewTriple(id, vocab.RDFValue, rdf.NewLiteral(val, "")))
	}
	out.AddGraph(identifierRules.Apply(c, sg))
	return out
}

// identifiersStep converts the identifiers attached to res. A literal object
// gets a freshly minted identifier resource.
func identifiersStep(c *Context, res rdf.Term, sg, out *rdf.Graph) {
	for _, t := range sg.Match(res, nil, nil) {
		if !vocab.IsIdentifierProperty(t.P.Value) {
			continue
		}
		sg.Remove(t)
		if c.converted(t.O) {
			out.Add(rdf.NewTriple(res, vocab.Ld4lIdentifiedBy, t.O))
			continue
		}
		c.count("Identifier")
		if lit, ok := t.O.(rdf.Literal); ok {
			id := c.mint()
			isg := rdf.NewGraph(rdf.NewTriple(id, vocab.BfIdentifierValue, lit))
			out.AddGraph(convertIdentifier(c, res, t.P.Value, id, isg))
			continue
		}
		out.AddGraph(convertIdentifier(c, res, t.P.Value, t.O, c.claim(t.O)))
	}
}
