// Package vocab holds the static ontology data used by the converters:
// namespaces, Bibframe 1.0 and LD4L terms, and the property tables that map
// one onto the other.
package vocab

import (
	"strings"

	"github.com/geoknoesis/bib2lod/rdf"
)

// Namespaces
const (
	BF         = "http://bibframe.org/vocab/"
	LD4L       = "http://bib.ld4l.org/ontology/"
	LD4LLegacy = "http://bib.ld4l.org/ontology/legacy/"
	MADSRDF    = "http://www.loc.gov/mads/rdf/v1#"
	Relators   = "http://id.loc.gov/vocabulary/relators/"
	FOAF       = "http://xmlns.com/foaf/0.1/"
	Schema     = "http://schema.org/"
	OWL        = "http://www.w3.org/2002/07/owl#"
	RDF        = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS       = "http://www.w3.org/2000/01/rdf-schema#"
	XSD        = "http://www.w3.org/2001/XMLSchema#"
	PROV       = "http://www.w3.org/ns/prov#"
	OA         = "http://www.w3.org/ns/oa#"
	DCTerms    = "http://purl.org/dc/terms/"
	SKOS       = "http://www.w3.org/2004/02/skos/core#"

	WorldCat      = "http://www.worldcat.org/oclc/"
	LCLanguages   = "http://id.loc.gov/vocabulary/languages/"
	LCIdentifiers = "http://id.loc.gov/vocabulary/identifiers/"
)

// Prefixes returns the prefix map used by the Turtle and JSON-LD writers.
// Each call returns a fresh map.
func Prefixes() map[string]string {
	return map[string]string{
		"bf":         BF,
		"ld4l":       LD4L,
		"ld4llegacy": LD4LLegacy,
		"madsrdf":    MADSRDF,
		"relators":   Relators,
		"foaf":       FOAF,
		"schema":     Schema,
		"owl":        OWL,
		"rdf":        RDF,
		"rdfs":       RDFS,
		"xsd":        XSD,
		"prov":       PROV,
		"oa":         OA,
		"dcterms":    DCTerms,
		"skos":       SKOS,
	}
}

// Common terms from the W3C vocabularies.
const (
	RDFType          = RDF + "type"
	RDFValue         = RDF + "value"
	RDFSLabel        = RDFS + "label"
	OWLSameAs        = OWL + "sameAs"
	XSDBoolean       = XSD + "boolean"
	XSDString        = XSD + "string"
	FOAFName         = FOAF + "name"
	FOAFPerson       = FOAF + "Person"
	FOAFOrganization = FOAF + "Organization"
	SchemaBirthDate  = Schema + "birthDate"
	SchemaDeathDate  = Schema + "deathDate"
	ProvLocation     = PROV + "Location"

	MadsIsIdentifiedByAuthority = MADSRDF + "isIdentifiedByAuthority"
	MadsAuthoritativeLabel      = MADSRDF + "authoritativeLabel"
	MadsIsMemberOfMADSScheme    = MADSRDF + "isMemberOfMADSScheme"
	MadsAuthority               = MADSRDF + "Authority"

	OAAnnotation  = OA + "Annotation"
	OAHasTarget   = OA + "hasTarget"
	OAHasBody     = OA + "hasBody"
	OAAnnotatedBy = OA + "annotatedBy"
	OAAnnotatedAt = OA + "annotatedAt"
)

// IsBibframe reports whether iri is in the Bibframe namespace.
func IsBibframe(iri string) bool { return strings.HasPrefix(iri, BF) }

// IsLegacy reports whether iri is in the LD4L legacy namespace.
func IsLegacy(iri string) bool { return strings.HasPrefix(iri, LD4LLegacy) }

// ToLD4L moves a Bibframe IRI into the LD4L namespace, keeping its local
// name. Other IRIs are returned unchanged.
func ToLD4L(iri string) string {
	if !IsBibframe(iri) {
		return iri
	}
	return LD4L + strings.TrimPrefix(iri, BF)
}

// LocalName returns the part of iri after the last '#' or '/'.
func LocalName(iri string) string { return rdf.LocalName(iri) }

// Namespace returns the part of iri up to and including the last '#' or '/'.
func Namespace(iri string) string { return rdf.Namespace(iri) }
