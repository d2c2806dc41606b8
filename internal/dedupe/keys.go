package dedupe

import (
	"strings"
	"unicode"

	"github.com/geoknoesis/bib2lod/internal/uri"
	"github.com/geoknoesis/bib2lod/rdf"
	"github.com/geoknoesis/bib2lod/vocab"
)

// Normalize lowercases s, drops everything but letters, digits and
// whitespace, and collapses runs of whitespace.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Deduper computes the identity key of one family of resource types.
type Deduper struct {
	Name  string
	Types []string
	// Key returns the key of res, or false when res cannot be keyed.
	Key func(g *rdf.Graph, res rdf.IRI, namespace string) (string, bool)
	// Replacement returns the IRI res should be replaced with when it is the
	// first of its key. Nil means res itself.
	Replacement func(g *rdf.Graph, res rdf.IRI) rdf.IRI
}

// Dedupers returns the dedupers in the order they run.
func Dedupers() []Deduper {
	authorityTypes := append(append([]string{}, vocab.AgentTypes...), vocab.BfPlace, vocab.BfTopic, vocab.BfTemporal)
	return []Deduper{
		{Name: "Language", Types: []string{vocab.BfLanguage}, Key: languageKey, Replacement: languageReplacement},
		{Name: "Authority", Types: authorityTypes, Key: authorityKey},
		{Name: "Work", Types: []string{vocab.BfWork}, Key: workKey},
		{Name: "Instance", Types: []string{vocab.BfInstance}, Key: instanceKey},
		{Name: "Identifier", Types: []string{vocab.BfIdentifier}, Key: identifierKey},
	}
}

func firstLexical(g *rdf.Graph, res rdf.Term, p string) string {
	for _, o := range g.Objects(res, p) {
		if lit, ok := o.(rdf.Literal); ok {
			if s := strings.TrimSpace(lit.Lexical); s != "" {
				return s
			}
		}
	}
	return ""
}

func firstIRI(g *rdf.Graph, res rdf.Term, p string) (rdf.IRI, bool) {
	for _, o := range g.Objects(res, p) {
		if iri, ok := o.(rdf.IRI); ok {
			return iri, true
		}
	}
	return rdf.IRI{}, false
}

func languageKey(g *rdf.Graph, res rdf.IRI, _ string) (string, bool) {
	if iri, ok := firstIRI(g, res, vocab.BfLanguageOfPartURI); ok {
		return "uri:" + iri.Value, true
	}
	if s := firstLexical(g, res, vocab.BfLanguageOfPart); s != "" {
		return "label:" + strings.ToLower(s), true
	}
	return "", false
}

func languageReplacement(g *rdf.Graph, res rdf.IRI) rdf.IRI {
	if iri, ok := firstIRI(g, res, vocab.BfLanguageOfPartURI); ok {
		return iri
	}
	return res
}

// authorityKey prefers an external authority IRI, then the access point,
// then the label.
func authorityKey(g *rdf.Graph, res rdf.IRI, namespace string) (string, bool) {
	for _, o := range g.Objects(res, vocab.BfHasAuthority) {
		if iri, ok := o.(rdf.IRI); ok && !uri.IsLocal(namespace, iri.Value) {
			return "authority:" + iri.Value, true
		}
	}
	if s := Normalize(firstLexical(g, res, vocab.BfAuthorizedAccessPoint)); s != "" {
		return "aap:" + s, true
	}
	if s := Normalize(firstLexical(g, res, vocab.BfLabel)); s != "" {
		return "label:" + s, true
	}
	return "", false
}

func workKey(g *rdf.Graph, res rdf.IRI, _ string) (string, bool) {
	if s := Normalize(firstLexical(g, res, vocab.BfAuthorizedAccessPoint)); s != "" {
		return s, true
	}
	return "", false
}

func instanceKey(g *rdf.Graph, res rdf.IRI, _ string) (string, bool) {
	for _, o := range g.Objects(res, vocab.BfSystemNumber) {
		if iri, ok := o.(rdf.IRI); ok && strings.HasPrefix(iri.Value, vocab.WorldCat) {
			if n := vocab.LocalName(iri.Value); n != "" {
				return "oclc:" + n, true
			}
		}
	}
	return "", false
}

// identifierKey combines the identifier type, taken from the scheme or the
// linking property, with its value.
func identifierKey(g *rdf.Graph, res rdf.IRI, _ string) (string, bool) {
	value := firstLexical(g, res, vocab.BfIdentifierValue)
	if value == "" {
		return "", false
	}
	typ := ""
	if scheme, ok := g.Object(res, vocab.BfIdentifierScheme); ok {
		switch s := scheme.(type) {
		case rdf.IRI:
			typ = vocab.LocalName(s.Value)
		case rdf.Literal:
			typ = strings.TrimSpace(s.Lexical)
		}
	}
	if typ == "" {
		for _, t := range g.Match(nil, nil, res) {
			if vocab.IsIdentifierProperty(t.P.Value) {
				typ = vocab.LocalName(t.P.Value)
				break
			}
		}
	}
	if typ == "" {
		typ = "identifier"
	}
	return strings.ToLower(typ) + "|" + value, true
}
