// Package workflow holds the status machines of claims and supplements.
//
// Transitions are declared once as adjacency tables; anything not listed is illegal.
package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

var (
	// ErrIllegalTransition is matched by every *TransitionError.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrUnknownStatus indicates a status outside the machine's closed set.
	ErrUnknownStatus = errors.New("unknown status")
)

// TransitionError describes a rejected transition together with the legal alternatives.
type TransitionError struct {
	From    string
	To      string
	Allowed []string
}

func (e *TransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("cannot transition from %s to %s: %s is a terminal state, no valid next states", e.From, e.To, e.From)
	}
	return fmt.Sprintf("cannot transition from %s to %s: valid next states are %s", e.From, e.To, strings.Join(e.Allowed, ", "))
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

// Machine is a finite set of states with a directed adjacency table.
type Machine[S ~string] struct {
	name  string
	edges map[S][]S
}

// NewMachine builds a machine. Every state must appear as a key, terminal states with no targets.
func NewMachine[S ~string](name string, edges map[S][]S) *Machine[S] {
	return &Machine[S]{name: name, edges: edges}
}

// Known reports whether s belongs to the machine.
func (m *Machine[S]) Known(s S) bool {
	_, ok := m.edges[s]
	return ok
}

// Next returns the legal targets of s. The slice is a copy.
func (m *Machine[S]) Next(s S) []S {
	targets := m.edges[s]
	out := make([]S, len(targets))
	copy(out, targets)
	return out
}

// IsTerminal reports whether s is known and has no outbound transitions.
func (m *Machine[S]) IsTerminal(s S) bool {
	targets, ok := m.edges[s]
	return ok && len(targets) == 0
}

// States lists every state of the machine in no particular order.
func (m *Machine[S]) States() []S {
	out := make([]S, 0, len(m.edges))
	for s := range m.edges {
		out = append(out, s)
	}
	return out
}

// Validate returns nil when from -> to is declared, ErrUnknownStatus for states outside the set,
// and a *TransitionError otherwise.
func (m *Machine[S]) Validate(from, to S) error {
	if !m.Known(from) {
		return eris.Wrapf(ErrUnknownStatus, "%s status %q", m.name, from)
	}
	if !m.Known(to) {
		return eris.Wrapf(ErrUnknownStatus, "%s status %q", m.name, to)
	}
	for _, t := range m.edges[from] {
		if t == to {
			return nil
		}
	}
	allowed := make([]string, 0, len(m.edges[from]))
	for _, t := range m.edges[from] {
		allowed = append(allowed, string(t))
	}
	return &TransitionError{From: string(from), To: string(to), Allowed: allowed}
}
