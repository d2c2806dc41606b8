// Package convert rewrites Bibframe 1.0 graphs into LD4L.
//
// Each Bibframe type has a converter made of restructuring steps and a rule
// table. A Driver runs the converters over a graph in a fixed order, hands
// each resource its subject graph, and sends the statements nobody claimed
// through the default rules.
package convert

import (
	"log/slog"

	"github.com/geoknoesis/bib2lod/internal/logging"
	"github.com/geoknoesis/bib2lod/internal/uri"
	"github.com/geoknoesis/bib2lod/rdf"
)

// Driver converts whole graphs. It is safe for concurrent use when its
// Minter is.
type Driver struct {
	converters []Converter
	minter     uri.Minter
	logger     *slog.Logger
	noted      *noteSet
}

// NewDriver returns a driver minting new resources with minter. A nil
// logger discards log output.
func NewDriver(minter uri.Minter, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Driver{
		converters: Converters(),
		minter:     minter,
		logger:     logger.With("component", "convert"),
		noted:      newNoteSet(),
	}
}

// Convert returns the LD4L rendering of g and the number of resources
// converted per converter. g is not modified.
func (d *Driver) Convert(g *rdf.Graph) (*rdf.Graph, Stats) {
	c := newContext(g, d.minter, d.logger, d.noted)
	out := rdf.NewGraph()
	for _, conv := range d.converters {
		for _, typ := range conv.Types() {
			for _, res := range g.SubjectsOfType(typ) {
				if c.converted(res) {
					continue
				}
				out.AddGraph(conv.Convert(c, res, c.extract(res)))
				c.count(conv.Name())
			}
		}
	}
	out.AddGraph(defaultRules.Apply(c, c.remaining))
	return out, c.stats
}
