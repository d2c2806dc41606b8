// Package uri mints IRIs for resources created during conversion and turns
// blank node labels into stable IRIs.
package uri

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/geoknoesis/bib2lod/rdf"
)

// Minter hands out fresh IRIs in a local namespace.
type Minter interface {
	Mint() rdf.IRI
}

// UUIDMinter mints localNamespace + "n" + 32 hex digits of a random UUID.
type UUIDMinter struct {
	Namespace string
}

// NewUUIDMinter returns a minter for namespace.
func NewUUIDMinter(namespace string) *UUIDMinter {
	return &UUIDMinter{Namespace: namespace}
}

// Mint returns a new IRI.
func (m *UUIDMinter) Mint() rdf.IRI {
	id := uuid.New()
	return rdf.NewIRI(m.Namespace + "n" + strings.ReplaceAll(id.String(), "-", ""))
}

// SequentialMinter mints namespace + prefix + counter. Its output is
// reproducible, which makes it suitable for tests and golden files.
type SequentialMinter struct {
	Namespace string
	Prefix    string

	mu   sync.Mutex
	next int
}

// NewSequentialMinter returns a minter producing namespace+"n1", "n2", ...
func NewSequentialMinter(namespace string) *SequentialMinter {
	return &SequentialMinter{Namespace: namespace, Prefix: "n"}
}

// Mint returns the next IRI in sequence.
func (m *SequentialMinter) Mint() rdf.IRI {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return rdf.NewIRI(m.Namespace + m.Prefix + strconv.Itoa(m.next))
}

var nonWord = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Sanitize removes every character outside [A-Za-z0-9_].
func Sanitize(s string) string {
	return nonWord.ReplaceAllString(s, "")
}

// BnodeIRI returns the IRI replacing blank node id found in the file at
// position fileIndex of the input listing.
func BnodeIRI(namespace string, fileIndex int, id string) rdf.IRI {
	return rdf.NewIRI(namespace + Sanitize(fmt.Sprintf("%d_%s", fileIndex, id)))
}

// IsLocal reports whether iri lives in namespace.
func IsLocal(namespace, iri string) bool {
	return namespace != "" && strings.HasPrefix(iri, namespace)
}
