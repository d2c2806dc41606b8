// Package bnode replaces blank nodes with IRIs in the local namespace.
package bnode

import (
	"github.com/geoknoesis/bib2lod/internal/uri"
	"github.com/geoknoesis/bib2lod/rdf"
)

// Converter rewrites the blank nodes of one file. The same label always
// yields the same IRI; labels from different files never collide because the
// file index is part of the IRI.
type Converter struct {
	Namespace string
	FileIndex int

	minted map[string]rdf.IRI
}

// NewConverter returns a converter for the file at 1-based position
// fileIndex in the sorted input listing.
func NewConverter(namespace string, fileIndex int) *Converter {
	return &Converter{Namespace: namespace, FileIndex: fileIndex, minted: make(map[string]rdf.IRI)}
}

// Term returns the replacement for t, or t itself when it is not a blank node.
func (c *Converter) Term(t rdf.Term) rdf.Term {
	b, ok := t.(rdf.BlankNode)
	if !ok {
		return t
	}
	if iri, ok := c.minted[b.ID]; ok {
		return iri
	}
	iri := uri.BnodeIRI(c.Namespace, c.FileIndex, b.ID)
	c.minted[b.ID] = iri
	return iri
}

// Triple rewrites the subject and object of t.
func (c *Converter) Triple(t rdf.Triple) rdf.Triple {
	t.S = c.Term(t.S)
	t.O = c.Term(t.O)
	return t
}

// Convert returns a copy of g with every blank node replaced.
func (c *Converter) Convert(g *rdf.Graph) *rdf.Graph {
	out := rdf.NewGraph()
	for _, t := range g.Triples() {
		out.Add(c.Triple(t))
	}
	return out
}

// Replaced returns the number of distinct blank nodes seen so far.
func (c *Converter) Replaced() int { return len(c.minted) }
