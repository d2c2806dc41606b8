package convert

import (
	"regexp"
	"strings"

	"github.com/geoknoesis/bib2lod/rdf"
	"github.com/geoknoesis/bib2lod/vocab"
)

var trailingTitlePunct = regexp.MustCompile(`[\s.]+$`)

// nonSortArticles are the leading articles split off into a
// NonSortTitleElement.
var nonSortArticles = []string{"A ", "An ", "The "}

// NormalizeTitle trims surrounding whitespace and trailing periods.
func NormalizeTitle(s string) string {
	return trailingTitlePunct.ReplaceAllString(strings.TrimSpace(s), "")
}

// SplitNonSort separates a leading article from the rest of a title.
func SplitNonSort(title string) (article, rest string) {
	for _, a := range nonSortArticles {
		if strings.HasPrefix(title, a) && len(title) > len(a) {
			return strings.TrimSpace(a), strings.TrimSpace(title[len(a):])
		}
	}
	return "", title
}

var titleRules = &Rules{
	TypeMap: map[string]string{vocab.BfTitle: vocab.Ld4lTitle},
}

func titleConverter() Converter {
	return &titleConv{}
}

type titleConv struct{}

func (titleConv) Name() string    { return "Title" }
func (titleConv) Types() []string { return []string{vocab.BfTitle} }

func (titleConv) Convert(c *Context, res rdf.Term, sg *rdf.Graph) *rdf.Graph {
	out, _ := convertTitle(c, res, sg)
	return out
}

// convertTitle converts a bf:Title and returns its LD4L label. The label is
// empty when the title has no bf:titleValue.
func convertTitle(c *Context, res rdf.Term, sg *rdf.Graph) (*rdf.Graph, rdf.Literal) {
	out := rdf.NewGraph()
	valueP := rdf.NewIRI(vocab.BfTitleValue)
	subtitleP := rdf.NewIRI(vocab.BfSubtitle)

	value, hasValue := firstLiteral(sg.RemoveMatches(res, &valueP, nil))
	subtitle, _ := firstLiteral(sg.RemoveMatches(res, &subtitleP, nil))

	var label rdf.Literal
	if hasValue {
		labelP := rdf.NewIRI(vocab.BfLabel)
		sg.RemoveMatches(res, &labelP, nil)
		label = addTitleElements(c, res, value, subtitle, value.Lang, out)
	}
	out.AddGraph(titleRules.Apply(c, sg))
	return out, label
}

// addTitleElements writes the label and the ordered title elements of
// title to out and returns the label, tagged with labelLang.
func addTitleElements(c *Context, title rdf.Term, value, subtitle rdf.Literal, labelLang string, out *rdf.Graph) rdf.Literal {
	main := NormalizeTitle(value.Lexical)
	sub := NormalizeTitle(subtitle.Lexical)

	text := main
	if sub != "" {
		text = main + " " + sub
	}
	label := rdf.NewLiteral(text, labelLang)
	out.Add(rdf.NewTriple(title, vocab.RDFType, rdf.NewIRI(vocab.Ld4lTitle)))
	out.Add(rdf.NewTriple(title, vocab.RDFSLabel, label))

	type element struct {
		typ, text, lang string
	}
	var elements []element
	article, rest := SplitNonSort(main)
	if article != "" {
		elements = append(elements, element{vocab.Ld4lNonSortTitleElement, article, value.Lang})
	}
	if rest != "" {
		elements = append(elements, element{vocab.Ld4lMainTitleElement, rest, value.Lang})
	}
	if sub != "" {
		elements = append(elements, element{vocab.Ld4lSubtitleElement, sub, subtitle.Lang})
	}

	var prev rdf.Term
	for _, e := range elements {
		node := c.mint()
		out.Add(rdf.NewTriple(title, vocab.Ld4lHasPart, node))
		out.Add(rdf.NewTriple(node, vocab.RDFType, rdf.NewIRI(e.typ)))
		out.Add(rdf.NewTriple(node, vocab.RDFSLabel, rdf.NewLiteral(e.text, e.lang)))
		if prev != nil {
			out.Add(rdf.NewTriple(prev, vocab.Ld4lNext, node))
		}
		prev = node
	}
	return label
}

// titlesStep converts the titles linked from a Work or Instance and the
// bf:titleStatement literals that do not repeat one of them.
func titlesStep(c *Context, res rdf.Term, sg, out *rdf.Graph) {
	var labels []rdf.Literal
	for _, p := range vocab.TitleProperties {
		pred := rdf.NewIRI(p)
		for _, link := range sg.RemoveMatches(res, &pred, nil) {
			if lit, ok := link.O.(rdf.Literal); ok {
				labels = append(labels, newTitle(c, res, lit, out))
				continue
			}
			out.Add(rdf.NewTriple(res, vocab.Ld4lHasTitle, link.O))
			if c.converted(link.O) {
				continue
			}
			tg, label := convertTitle(c, link.O, c.claim(link.O))
			c.count("Title")
			out.AddGraph(tg)
			if label.Lexical != "" {
				labels = append(labels, label)
			}
		}
	}

	stmtP := rdf.NewIRI(vocab.BfTitleStatement)
	for _, stmt := range sg.RemoveMatches(res, &stmtP, nil) {
		lit, ok := stmt.O.(rdf.Literal)
		if !ok || repeatsLabel(labels, lit) {
			continue
		}
		labels = append(labels, newTitle(c, res, lit, out))
	}
}

// repeatsLabel reports whether the normalized statement equals one of labels,
// language tag included.
func repeatsLabel(labels []rdf.Literal, stmt rdf.Literal) bool {
	norm := rdf.NewLiteral(NormalizeTitle(stmt.Lexical), stmt.Lang)
	for _, l := range labels {
		if l.SameValue(norm) {
			return true
		}
	}
	return false
}

// newTitle mints an ld4l:Title for a literal and links it from res. The
// title label is untagged; its elements keep the literal's language. The
// returned label carries the language for comparison with later statements.
func newTitle(c *Context, res rdf.Term, lit rdf.Literal, out *rdf.Graph) rdf.Literal {
	title := c.mint()
	out.Add(rdf.NewTriple(res, vocab.Ld4lHasTitle, title))
	label := addTitleElements(c, title, lit, rdf.Literal{}, "", out)
	return rdf.NewLiteral(label.Lexical, lit.Lang)
}

func firstLiteral(triples []rdf.Triple) (rdf.Literal, bool) {
	for _, t := range triples {
		if lit, ok := t.O.(rdf.Literal); ok {
			return lit, true
		}
	}
	return rdf.Literal{}, false
}
