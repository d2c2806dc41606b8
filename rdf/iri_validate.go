package rdf

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateIRI checks that iri is an absolute IRI with a scheme and no raw
// characters that N-Triples forbids inside <...>.
//
// This is a pragmatic check, not full RFC 3987 validation: it is used for
// configured namespaces and, when OptStrictIRIValidation is set, for parsed IRIs.
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("empty IRI")
	}
	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("invalid IRI syntax: %w", err)
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("IRI has no scheme: %s", iri)
	}
	first := parsed.Scheme[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return fmt.Errorf("scheme must start with a letter: %s", iri)
	}
	for i, r := range iri {
		if r <= 0x20 {
			return fmt.Errorf("invalid character %U at position %d in IRI: %s", r, i, iri)
		}
		if strings.ContainsRune(`<>"{}|^`+"`"+`\`, r) {
			return fmt.Errorf("invalid character '%c' at position %d in IRI: %s", r, i, iri)
		}
	}
	return nil
}

// ValidateNamespace checks that ns is a valid IRI ending in '/' or '#', so
// that local names can be appended to it.
func ValidateNamespace(ns string) error {
	if err := ValidateIRI(ns); err != nil {
		return err
	}
	if !strings.HasSuffix(ns, "/") && !strings.HasSuffix(ns, "#") {
		return fmt.Errorf("namespace must end with '/' or '#': %s", ns)
	}
	return nil
}
