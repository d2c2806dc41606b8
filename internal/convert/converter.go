package convert

import (
	"github.com/geoknoesis/bib2lod/rdf"
	"github.com/geoknoesis/bib2lod/vocab"
)

// Converter turns the subject graph of one Bibframe resource into LD4L.
type Converter interface {
	// Name labels the converter in logs and metrics.
	Name() string
	// Types lists the Bibframe types whose instances the converter handles.
	Types() []string
	// Convert consumes sg, the subject graph of res, and returns the
	// converted statements.
	Convert(c *Context, res rdf.Term, sg *rdf.Graph) *rdf.Graph
}

// step handles the statements of sg that need restructuring. It removes
// what it consumes from sg and writes its output to out.
type step func(c *Context, res rdf.Term, sg, out *rdf.Graph)

// resourceConverter runs its steps, then passes whatever is left of the
// subject graph through the generic rewrite loop.
type resourceConverter struct {
	name  string
	types []string
	rules *Rules
	steps []step
}

func (r *resourceConverter) Name() string    { return r.name }
func (r *resourceConverter) Types() []string { return r.types }

func (r *resourceConverter) Convert(c *Context, res rdf.Term, sg *rdf.Graph) *rdf.Graph {
	out := rdf.NewGraph()
	for _, s := range r.steps {
		s(c, res, sg, out)
	}
	out.AddGraph(r.rules.Apply(c, sg))
	return out
}

// defaultRules handle the statements no typed converter claimed.
var defaultRules = &Rules{}

// Converters returns the converters in the order they run. Work and
// Instance come first so they can claim their linked titles, providers and
// identifiers; the standalone Title, Identifier and Provider converters only
// see resources nothing linked to.
func Converters() []Converter {
	return []Converter{
		workConverter(),
		instanceConverter(),
		heldItemConverter(),
		titleConverter(),
		identifierConverter(),
		providerConverter(),
		personConverter(),
		agentConverter("Family", vocab.BfFamily, vocab.Ld4lFamily),
		agentConverter("Organization", vocab.BfOrganization, vocab.FOAFOrganization),
		agentConverter("Meeting", vocab.BfMeeting, vocab.Ld4lMeeting),
		agentConverter("Jurisdiction", vocab.BfJurisdiction, vocab.Ld4lJurisdiction),
		subjectConverter("Place", vocab.BfPlace, vocab.ProvLocation),
		subjectConverter("Topic", vocab.BfTopic, vocab.Ld4lTopic),
		subjectConverter("Temporal", vocab.BfTemporal, vocab.Ld4lTemporal),
		eventConverter(),
		annotationConverter(),
		languageConverter(),
		authorityConverter(),
	}
}
