// Package dedupe merges resources that describe the same entity.
//
// Deduping runs in two passes. Indexing walks every file in a fixed order
// and records, for each (type, key) pair, the first resource seen as
// canonical and every later one as its alias. Rewriting then replaces each
// aliased IRI with its canonical IRI.
package dedupe

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/geoknoesis/bib2lod/internal/index"
	"github.com/geoknoesis/bib2lod/internal/logging"
	"github.com/geoknoesis/bib2lod/rdf"
	"github.com/geoknoesis/bib2lod/vocab"
)

// Stats counts resources mapped to another canonical IRI, by type.
type Stats map[string]int

// Indexer runs the keying pass. It is not safe for concurrent use: the
// order in which graphs are indexed decides which resource is canonical.
type Indexer struct {
	store     *index.Store
	namespace string
	dedupers  []Deduper
	logger    *slog.Logger
}

// NewIndexer returns an indexer writing to store. Authority IRIs inside
// namespace are local and never used as keys.
func NewIndexer(store *index.Store, namespace string, logger *slog.Logger) *Indexer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Indexer{
		store:     store,
		namespace: namespace,
		dedupers:  Dedupers(),
		logger:    logger.With("component", "dedupe"),
	}
}

// Index keys every dedupable resource of g.
func (ix *Indexer) Index(g *rdf.Graph) (Stats, error) {
	stats := make(Stats)
	for _, d := range ix.dedupers {
		for _, typ := range d.Types {
			typeName := vocab.LocalName(typ)
			for _, s := range g.SubjectsOfType(typ) {
				res, ok := s.(rdf.IRI)
				if !ok {
					continue
				}
				key, ok := d.Key(g, res, ix.namespace)
				if !ok {
					continue
				}
				candidate := res
				if d.Replacement != nil {
					candidate = d.Replacement(g, res)
				}
				canonical, claimed, err := ix.store.Claim(typeName, key, candidate.Value)
				if err != nil {
					return stats, fmt.Errorf("index %s: %w", res.Value, err)
				}
				if canonical == res.Value {
					continue
				}
				if err := ix.store.PutAlias(res.Value, canonical); err != nil {
					return stats, err
				}
				if !claimed {
					stats[typeName]++
					ix.logger.Debug("duplicate resource", "type", typeName, "iri", res.Value, "canonical", canonical)
				}
			}
		}
	}
	return stats, nil
}

// Rewriter applies the alias mappings recorded by an Indexer. Lookups go to
// the index and are cached. It is safe for concurrent use.
type Rewriter struct {
	store *index.Store

	mu    sync.RWMutex
	cache map[string]string
}

// NewRewriter returns a rewriter reading aliases from store.
func NewRewriter(store *index.Store) *Rewriter {
	return &Rewriter{store: store, cache: make(map[string]string)}
}

// canonical returns the IRI iri is an alias of. An empty result means iri is
// not aliased.
func (r *Rewriter) canonical(iri string) (string, error) {
	r.mu.RLock()
	c, ok := r.cache[iri]
	r.mu.RUnlock()
	if ok {
		return c, nil
	}
	c, err := r.store.Alias(iri)
	if errors.Is(err, index.ErrNotFound) {
		c, err = "", nil
	}
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	r.cache[iri] = c
	r.mu.Unlock()
	return c, nil
}

// Rewrite returns a copy of g with aliased subjects and objects replaced,
// and the number of statements rewritten. Statements that become identical
// collapse.
func (r *Rewriter) Rewrite(g *rdf.Graph) (*rdf.Graph, int, error) {
	replacements := make(map[string]rdf.IRI)
	var order []rdf.IRI
	for _, t := range g.Triples() {
		for _, term := range []rdf.Term{t.S, t.O} {
			iri, ok := term.(rdf.IRI)
			if !ok {
				continue
			}
			if _, seen := replacements[iri.Value]; seen {
				continue
			}
			c, err := r.canonical(iri.Value)
			if err != nil {
				return nil, 0, fmt.Errorf("look up %s: %w", iri.Value, err)
			}
			replacements[iri.Value] = rdf.NewIRI(c)
			if c != "" {
				order = append(order, iri)
			}
		}
	}

	out := g.Clone()
	rewritten := 0
	for _, old := range order {
		rewritten += out.ReplaceTerm(old, replacements[old.Value])
	}
	return out, rewritten, nil
}
