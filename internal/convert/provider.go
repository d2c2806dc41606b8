package convert

import (
	"github.com/geoknoesis/bib2lod/rdf"
	"github.com/geoknoesis/bib2lod/vocab"
)

var providerRules = &Rules{
	RetractTypes: []string{vocab.BfProvider},
}

func providerConverter() Converter { return providerConv{} }

type providerConv struct{}

func (providerConv) Name() string    { return "Provider" }
func (providerConv) Types() []string { return []string{vocab.BfProvider} }

func (providerConv) Convert(c *Context, res rdf.Term, sg *rdf.Graph) *rdf.Graph {
	return convertProvider(c, nil, "", res, sg)
}

// convertProvider turns a bf:Provider into a provision whose subtype follows
// the property linking it from owner.
func convertProvider(c *Context, owner rdf.Term, link string, res rdf.Term, sg *rdf.Graph) *rdf.Graph {
	out := rdf.NewGraph()
	typ, ok := vocab.ProvisionTypes[link]
	if !ok {
		typ = vocab.Ld4lProvision
	}
	if owner != nil {
		out.Add(rdf.NewTriple(owner, vocab.Ld4lHasProvision, res))
	}
	out.Add(rdf.NewTriple(res, vocab.RDFType, rdf.NewIRI(typ)))
	out.AddGraph(providerRules.Apply(c, sg))
	return out
}

// providersStep converts the providers linked from an Instance.
func providersStep(c *Context, res rdf.Term, sg, out *rdf.Graph) {
	for _, p := range vocab.ProviderProperties {
		pred := rdf.NewIRI(p)
		for _, t := range sg.Match(res, &pred, nil) {
			if rdf.IsLiteral(t.O) {
				continue
			}
			sg.Remove(t)
			if c.converted(t.O) {
				out.Add(rdf.NewTriple(res, vocab.Ld4lHasProvision, t.O))
				continue
			}
			c.count("Provider")
			out.AddGraph(convertProvider(c, res, p, t.O, c.claim(t.O)))
		}
	}
}
