package rdf

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// turtleEncoder buffers triples and writes them grouped by subject, in the
// order subjects were first seen, when flushed.
type turtleEncoder struct {
	writer   *bufio.Writer
	prefixes map[string]string
	indent   string
	order    []string
	groups   map[string][]Triple
	started  bool
	closed   bool
	err      error
}

func newTurtleEncoder(w io.Writer, opts Options) *turtleEncoder {
	return &turtleEncoder{
		writer:   bufio.NewWriter(w),
		prefixes: opts.Prefixes,
		indent:   "    ",
		groups:   make(map[string][]Triple),
	}
}

func (e *turtleEncoder) Write(t Triple) error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		return fmt.Errorf("turtle: writer closed")
	}
	if !t.Valid() {
		return fmt.Errorf("turtle: missing statement fields")
	}
	key := TermKey(t.S)
	if _, ok := e.groups[key]; !ok {
		e.order = append(e.order, key)
	}
	e.groups[key] = append(e.groups[key], t)
	return nil
}

func (e *turtleEncoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if !e.started {
		if err := e.writeHeader(); err != nil {
			return err
		}
	}
	for _, key := range e.order {
		if err := e.writeGroup(e.groups[key]); err != nil {
			e.err = err
			return err
		}
	}
	e.order = e.order[:0]
	clear(e.groups)
	if err := e.writer.Flush(); err != nil {
		e.err = err
		return err
	}
	return nil
}

func (e *turtleEncoder) Close() error {
	if e.closed {
		return nil
	}
	err := e.Flush()
	e.closed = true
	return err
}

func (e *turtleEncoder) writeHeader() error {
	e.started = true
	if len(e.prefixes) == 0 {
		return nil
	}
	for _, prefix := range sortedPrefixKeys(e.prefixes) {
		label := prefix + ":"
		if prefix == "" {
			label = ":"
		}
		line := "@prefix " + label + " <" + e.prefixes[prefix] + "> .\n"
		if _, err := e.writer.WriteString(line); err != nil {
			e.err = err
			return err
		}
	}
	_, err := e.writer.WriteString("\n")
	if err != nil {
		e.err = err
	}
	return err
}

// writeGroup writes one subject block: predicates separated by ';' and
// repeated objects of one predicate by ','.
func (e *turtleEncoder) writeGroup(triples []Triple) error {
	var b strings.Builder
	b.WriteString(renderTermWithPrefixes(triples[0].S, e.prefixes))
	prevPred := ""
	for i, t := range triples {
		switch {
		case i == 0:
			b.WriteString(" ")
			b.WriteString(renderPredicate(t.P, e.prefixes))
		case t.P.Value == prevPred:
			b.WriteString(" ,\n")
			b.WriteString(e.indent + e.indent)
		default:
			b.WriteString(" ;\n")
			b.WriteString(e.indent)
			b.WriteString(renderPredicate(t.P, e.prefixes))
		}
		if i == 0 || t.P.Value != prevPred {
			b.WriteString(" ")
		}
		b.WriteString(renderTermWithPrefixes(t.O, e.prefixes))
		prevPred = t.P.Value
	}
	b.WriteString(" .\n\n")
	_, err := e.writer.WriteString(b.String())
	return err
}

func renderPredicate(p IRI, prefixes map[string]string) string {
	if p.Value == RDFType {
		return "a"
	}
	return renderIRIWithPrefixes(p, prefixes)
}

func sortedPrefixKeys(prefixes map[string]string) []string {
	keys := make([]string, 0, len(prefixes))
	for key := range prefixes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func renderIRIWithPrefixes(iri IRI, prefixes map[string]string) string {
	if qname, ok := abbreviateQName(iri.Value, prefixes, true); ok {
		return qname
	}
	return renderIRI(iri)
}

func renderTermWithPrefixes(term Term, prefixes map[string]string) string {
	switch value := term.(type) {
	case IRI:
		return renderIRIWithPrefixes(value, prefixes)
	case Literal:
		return renderLiteral(value, func(dt IRI) string {
			return renderIRIWithPrefixes(dt, prefixes)
		})
	default:
		return renderTerm(term)
	}
}

func abbreviateQName(iri string, prefixes map[string]string, allowEmptyPrefix bool) (string, bool) {
	if len(prefixes) == 0 {
		return "", false
	}
	bestNS := ""
	bestPrefix := ""
	found := false
	for prefix, ns := range prefixes {
		if prefix == "" && !allowEmptyPrefix {
			continue
		}
		if !strings.HasPrefix(iri, ns) {
			continue
		}
		if !isQNameLocal(iri[len(ns):]) {
			continue
		}
		if len(ns) > len(bestNS) || (len(ns) == len(bestNS) && prefix < bestPrefix) {
			bestNS = ns
			bestPrefix = prefix
			found = true
		}
	}
	if !found {
		return "", false
	}
	return bestPrefix + ":" + iri[len(bestNS):], true
}
