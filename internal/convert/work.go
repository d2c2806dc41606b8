package convert

import (
	"strings"

	"github.com/geoknoesis/bib2lod/rdf"
	"github.com/geoknoesis/bib2lod/vocab"
)

func workConverter() Converter {
	return &resourceConverter{
		name:  "Work",
		types: []string{vocab.BfWork},
		rules: &Rules{
			TypeMap:           map[string]string{vocab.BfWork: vocab.Ld4lWork},
			PropertyMap:       map[string]string{vocab.BfLanguageProp: vocab.Ld4lHasLanguage},
			RetractProperties: []string{vocab.BfDerivedFrom, vocab.BfAuthorizedAccessPoint},
		},
		steps: []step{titlesStep, contributionsStep, identifiersStep},
	}
}

// contributionsStep replaces each creator, contributor or relator link with
// an ld4l:Contribution pointing at the agent. Creators are primary.
func contributionsStep(c *Context, res rdf.Term, sg, out *rdf.Graph) {
	for _, t := range sg.Match(res, nil, nil) {
		typ, ok := vocab.ContributionTypes[t.P.Value]
		if !ok || rdf.IsLiteral(t.O) {
			continue
		}
		sg.Remove(t)
		contribution := c.mint()
		out.Add(rdf.NewTriple(res, vocab.Ld4lHasContribution, contribution))
		out.Add(rdf.NewTriple(contribution, vocab.RDFType, rdf.NewIRI(vocab.Ld4lContribution)))
		if typ != vocab.Ld4lContribution {
			out.Add(rdf.NewTriple(contribution, vocab.RDFType, rdf.NewIRI(typ)))
		}
		out.Add(rdf.NewTriple(contribution, vocab.Ld4lHasAgent, t.O))
		if t.P.Value == vocab.BfCreator {
			out.Add(rdf.NewTriple(contribution, vocab.Ld4lIsPrimary, rdf.NewTypedLiteral("true", vocab.XSDBoolean)))
		}
	}
}

func instanceConverter() Converter {
	retract := []string{vocab.BfArchival}
	for bf := range vocab.InstanceSubtypes {
		retract = append(retract, bf)
	}
	return &resourceConverter{
		name:  "Instance",
		types: []string{vocab.BfInstance},
		rules: &Rules{
			TypeMap:           map[string]string{vocab.BfInstance: vocab.Ld4lInstance},
			RetractTypes:      retract,
			RetractProperties: []string{vocab.BfDerivedFrom, vocab.BfModeOfIssuance},
		},
		steps: []step{titlesStep, workTypesStep, providersStep, identifiersStep},
	}
}

// workTypesStep asserts the Instance subtypes and the mode of issuance as
// types of the related Work. Both are retracted from the Instance by the
// rules.
func workTypesStep(c *Context, res rdf.Term, sg, out *rdf.Graph) {
	work, ok := c.Original().Object(res, vocab.BfInstanceOf)
	if !ok || rdf.IsLiteral(work) {
		return
	}
	for _, typ := range sg.Types(res) {
		if ld4l, ok := vocab.InstanceSubtypes[typ]; ok {
			out.Add(rdf.NewTriple(work, vocab.RDFType, rdf.NewIRI(ld4l)))
		}
	}
	for _, mode := range sg.Objects(res, vocab.BfModeOfIssuance) {
		if typ, ok := IssuanceType(mode); ok {
			out.Add(rdf.NewTriple(work, vocab.RDFType, rdf.NewIRI(typ)))
		} else {
			c.note("unknown mode of issuance", rdf.TermKey(mode))
		}
	}
}

// IssuanceType maps a bf:modeOfIssuance value, literal or IRI, to a Work type.
func IssuanceType(mode rdf.Term) (string, bool) {
	var s string
	switch m := mode.(type) {
	case rdf.Literal:
		s = m.Lexical
	case rdf.IRI:
		s = vocab.LocalName(m.Value)
	default:
		return "", false
	}
	s = strings.ToLower(strings.TrimSpace(strings.TrimRight(s, ". ")))
	typ, ok := vocab.IssuanceTypes[s]
	return typ, ok
}

func heldItemConverter() Converter {
	return &resourceConverter{
		name:  "HeldItem",
		types: []string{vocab.BfHeldItem},
		rules: &Rules{
			TypeMap: map[string]string{vocab.BfHeldItem: vocab.Ld4lItem},
		},
		steps: []step{shelfMarksStep, identifiersStep},
	}
}

// shelfMarksStep turns bf:shelfMark* values into ld4l:ShelfMark resources.
func shelfMarksStep(c *Context, res rdf.Term, sg, out *rdf.Graph) {
	for _, t := range sg.Match(res, nil, nil) {
		typ, ok := vocab.ShelfMarkTypes[t.P.Value]
		if !ok {
			continue
		}
		sg.Remove(t)
		mark := t.O
		if lit, ok := t.O.(rdf.Literal); ok {
			mark = c.mint()
			out.Add(rdf.NewTriple(mark, vocab.RDFValue, lit))
		}
		out.Add(rdf.NewTriple(res, vocab.Ld4lHasShelfMark, mark))
		out.Add(rdf.NewTriple(mark, vocab.RDFType, rdf.NewIRI(typ)))
	}
}
