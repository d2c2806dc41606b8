package convert

import (
	"regexp"
	"strings"

	"github.com/geoknoesis/bib2lod/rdf"
	"github.com/geoknoesis/bib2lod/vocab"
)

var personLabel = regexp.MustCompile(`^(.*?)\s*(\d{4})?-?(\d{4})?\.?$`)

// ParsePersonLabel splits labels such as "Twain, Mark, 1835-1910." into the
// name and the birth and death years. A label without dates yields only the
// name.
func ParsePersonLabel(label string) (name, birth, death string) {
	label = strings.TrimSpace(label)
	m := personLabel.FindStringSubmatch(label)
	if m == nil {
		return label, "", ""
	}
	name = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[1]), ","))
	if name == "" {
		return label, "", ""
	}
	return name, m[2], m[3]
}

func personConverter() Converter {
	return &resourceConverter{
		name:  "Person",
		types: []string{vocab.BfPerson},
		rules: &Rules{
			TypeMap:           map[string]string{vocab.BfPerson: vocab.FOAFPerson},
			RetractProperties: authorityRetractions,
		},
		steps: []step{personLabelStep, identifiersStep},
	}
}

func personLabelStep(c *Context, res rdf.Term, sg, out *rdf.Graph) {
	labelP := rdf.NewIRI(vocab.BfLabel)
	for _, t := range sg.RemoveMatches(res, &labelP, nil) {
		lit, ok := t.O.(rdf.Literal)
		if !ok {
			continue
		}
		name, birth, death := ParsePersonLabel(lit.Lexical)
		out.Add(rdf.NewTriple(res, vocab.FOAFName, rdf.NewLiteral(name, lit.Lang)))
		if birth != "" {
			out.Add(rdf.NewTriple(res, vocab.SchemaBirthDate, rdf.NewLiteral(birth, "")))
		}
		if death != "" {
			out.Add(rdf.NewTriple(res, vocab.SchemaDeathDate, rdf.NewLiteral(death, "")))
		}
	}
}

func agentConverter(name, bfType, ld4lType string) Converter {
	return &resourceConverter{
		name:  name,
		types: []string{bfType},
		rules: &Rules{
			TypeMap:           map[string]string{bfType: ld4lType},
			PropertyMap:       map[string]string{vocab.BfLabel: vocab.FOAFName},
			RetractProperties: authorityRetractions,
		},
		steps: []step{identifiersStep},
	}
}

func subjectConverter(name, bfType, ld4lType string) Converter {
	return &resourceConverter{
		name:  name,
		types: []string{bfType},
		rules: &Rules{
			TypeMap:           map[string]string{bfType: ld4lType},
			RetractProperties: authorityRetractions,
		},
		steps: []step{identifiersStep},
	}
}

func eventConverter() Converter {
	return &resourceConverter{
		name:  "Event",
		types: []string{vocab.BfEvent},
		rules: &Rules{TypeMap: map[string]string{vocab.BfEvent: vocab.Ld4lEvent}},
	}
}

func annotationConverter() Converter {
	types := make(map[string]string, len(vocab.AnnotationTypes))
	for _, t := range vocab.AnnotationTypes {
		types[t] = vocab.OAAnnotation
	}
	return &resourceConverter{
		name:  "Annotation",
		types: vocab.AnnotationTypes,
		rules: &Rules{TypeMap: types},
	}
}

func languageConverter() Converter {
	return &resourceConverter{
		name:  "Language",
		types: []string{vocab.BfLanguage},
		rules: &Rules{
			TypeMap: map[string]string{vocab.BfLanguage: vocab.Ld4lLanguage},
			PropertyMap: map[string]string{
				vocab.BfLanguageOfPart:    vocab.RDFSLabel,
				vocab.BfLanguageOfPartURI: vocab.OWLSameAs,
			},
		},
	}
}

func authorityConverter() Converter {
	return &resourceConverter{
		name:  "Authority",
		types: []string{vocab.BfAuthority},
		rules: &Rules{
			TypeMap: map[string]string{vocab.BfAuthority: vocab.MadsAuthority},
			PropertyMap: map[string]string{
				vocab.BfAuthorizedAccessPoint: vocab.MadsAuthoritativeLabel,
				vocab.BfAuthoritySource:       vocab.MadsIsMemberOfMADSScheme,
			},
		},
	}
}
