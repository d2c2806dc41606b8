package convert

import (
	"log/slog"
	"sync"

	"github.com/geoknoesis/bib2lod/internal/uri"
	"github.com/geoknoesis/bib2lod/rdf"
)

// Context carries the state of one file conversion. Resources are pulled
// out of the remaining graph as they are converted; the original graph stays
// untouched so converters can look up relationships that an earlier
// converter already consumed.
type Context struct {
	Minter uri.Minter
	Logger *slog.Logger

	original  *rdf.Graph
	remaining *rdf.Graph
	done      map[string]bool
	stats     Stats
	noted     *noteSet
}

// noteSet limits "defaulted" log lines to one per IRI across files.
type noteSet struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newNoteSet() *noteSet { return &noteSet{seen: make(map[string]bool)} }

func (n *noteSet) first(key string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seen[key] {
		return false
	}
	n.seen[key] = true
	return true
}

func newContext(g *rdf.Graph, minter uri.Minter, logger *slog.Logger, noted *noteSet) *Context {
	return &Context{
		Minter:    minter,
		Logger:    logger,
		original:  g,
		remaining: g.Clone(),
		done:      make(map[string]bool),
		stats:     make(Stats),
		noted:     noted,
	}
}

// Original returns the unmodified input graph.
func (c *Context) Original() *rdf.Graph { return c.original }

// extract removes and returns the subject graph of res: every remaining
// statement with res as subject or object. A resource is extracted once;
// later calls return an empty graph.
func (c *Context) extract(res rdf.Term) *rdf.Graph {
	sg := rdf.NewGraph()
	key := rdf.TermKey(res)
	if c.done[key] {
		return sg
	}
	c.done[key] = true
	sg.AddAll(c.remaining.RemoveMatches(res, nil, nil))
	sg.AddAll(c.remaining.RemoveMatches(nil, nil, res))
	return sg
}

// claim removes and returns the statements of a resource linked from the
// resource being converted: only those with res as subject. Links to res
// from other resources stay in the remaining graph so each owner still sees
// its own link.
func (c *Context) claim(res rdf.Term) *rdf.Graph {
	sg := rdf.NewGraph()
	key := rdf.TermKey(res)
	if c.done[key] {
		return sg
	}
	c.done[key] = true
	sg.AddAll(c.remaining.RemoveMatches(res, nil, nil))
	return sg
}

func (c *Context) converted(res rdf.Term) bool { return c.done[rdf.TermKey(res)] }

func (c *Context) count(name string) { c.stats[name]++ }

func (c *Context) mint() rdf.IRI { return c.Minter.Mint() }

func (c *Context) note(msg, iri string) {
	if c.noted != nil && !c.noted.first(msg+" "+iri) {
		return
	}
	c.Logger.Info(msg, "iri", iri)
}

// Stats counts converted resources by converter name.
type Stats map[string]int

// Add merges other into s.
func (s Stats) Add(other Stats) {
	for k, v := range other {
		s[k] += v
	}
}
