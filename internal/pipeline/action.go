// Package pipeline runs bib2lod actions over a directory of RDF files.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned for a label that names no action.
var ErrUnknownAction = errors.New("unknown action")

// Action is a processing stage.
type Action string

// Actions, in execution order.
const (
	Bnodes  Action = "bnodes"
	Dedupe  Action = "dedupe"
	Convert Action = "convert"
)

var ordered = []Action{Bnodes, Dedupe, Convert}

// Labels returns the valid action labels in execution order.
func Labels() []string {
	out := make([]string, len(ordered))
	for i, a := range ordered {
		out[i] = string(a)
	}
	return out
}

// Lookup resolves a label.
func Lookup(label string) (Action, error) {
	for _, a := range ordered {
		if string(a) == label {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w %q: valid actions are %s", ErrUnknownAction, label, strings.Join(Labels(), ", "))
}

// LookupAll resolves labels and sorts them into execution order. Duplicates
// are dropped.
func LookupAll(labels []string) ([]Action, error) {
	want := make(map[Action]bool, len(labels))
	for _, l := range labels {
		a, err := Lookup(l)
		if err != nil {
			return nil, err
		}
		want[a] = true
	}
	var out []Action
	for _, a := range ordered {
		if want[a] {
			out = append(out, a)
		}
	}
	return out, nil
}
