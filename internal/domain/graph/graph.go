// Package graph implements the molecular graph aggregate: an ordered sequence
// of atoms and an ordered sequence of bonds with dense 0-based indices.  All
// mutations validate first and mutate second, so a rejected operation leaves
// the graph exactly as it was.  The package also contains fragment merging,
// property estimation, and the SMILES serializer.
package graph

import (
	"fmt"

	"github.com/turtacn/MolCanvas/internal/domain/element"
	"github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// ─────────────────────────────────────────────────────────────────────────────
// Atom / Bond
// ─────────────────────────────────────────────────────────────────────────────

// Atom is one vertex of the molecular graph.  Its identity is its position in
// the graph's atom sequence; removing an earlier atom shifts every later atom
// down by one.
type Atom struct {
	Element  element.Element
	Position chem.Point
}

// Bond is one edge of the molecular graph.  A and B are dense atom indices,
// stored exactly as submitted (no normalization of endpoint order).
type Bond struct {
	A    int
	B    int
	Type chem.BondType
}

// Other returns the endpoint opposite to idx, and whether idx is an endpoint
// of the bond at all.
func (b Bond) Other(idx int) (int, bool) {
	switch idx {
	case b.A:
		return b.B, true
	case b.B:
		return b.A, true
	}
	return 0, false
}

// Touches reports whether idx is one of the bond's endpoints.
func (b Bond) Touches(idx int) bool {
	return b.A == idx || b.B == idx
}

// ─────────────────────────────────────────────────────────────────────────────
// Change events
// ─────────────────────────────────────────────────────────────────────────────

// EventKind classifies a graph mutation for observers.
type EventKind string

const (
	EventAtomAdded      EventKind = "atom_added"
	EventBondAdded      EventKind = "bond_added"
	EventBondUpdated    EventKind = "bond_updated"
	EventAtomRemoved    EventKind = "atom_removed"
	EventCleared        EventKind = "cleared"
	EventFragmentMerged EventKind = "fragment_merged"
)

// Event describes one successful mutation.  Index carries the affected atom
// index for atom events and the merge base index for fragment events; Bond is
// populated for bond events.
type Event struct {
	Kind  EventKind
	Index int
	Bond  Bond
}

// Observer receives an Event after each successful mutation.  Observers run
// synchronously on the mutating goroutine and must not mutate the graph.
type Observer func(Event)

// ─────────────────────────────────────────────────────────────────────────────
// Graph
// ─────────────────────────────────────────────────────────────────────────────

// Graph is the molecular graph aggregate.  It is not safe for concurrent use;
// callers that share a Graph across goroutines must serialize access (the
// editor session layer does this with a per-session mutex).
type Graph struct {
	registry  *element.Registry
	atoms     []Atom
	bonds     []Bond
	observers []Observer
}

// New constructs an empty Graph bound to the given element registry.
func New(registry *element.Registry) *Graph {
	return &Graph{registry: registry}
}

// Subscribe registers an observer for subsequent mutations.
func (g *Graph) Subscribe(obs Observer) {
	if obs != nil {
		g.observers = append(g.observers, obs)
	}
}

func (g *Graph) notify(ev Event) {
	for _, obs := range g.observers {
		obs(ev)
	}
}

// AtomCount returns the length of the atom sequence.
func (g *Graph) AtomCount() int { return len(g.atoms) }

// BondCount returns the length of the bond sequence.
func (g *Graph) BondCount() int { return len(g.bonds) }

// AtomAt returns the atom at the given dense index.
func (g *Graph) AtomAt(idx int) (Atom, error) {
	if err := g.checkIndex(idx); err != nil {
		return Atom{}, err
	}
	return g.atoms[idx], nil
}

// Atoms returns a copy of the atom sequence in insertion order.
func (g *Graph) Atoms() []Atom {
	out := make([]Atom, len(g.atoms))
	copy(out, g.atoms)
	return out
}

// Bonds returns a copy of the bond sequence in insertion order.
func (g *Graph) Bonds() []Bond {
	out := make([]Bond, len(g.bonds))
	copy(out, g.bonds)
	return out
}

// checkIndex validates a dense atom index against the current sequence.
func (g *Graph) checkIndex(idx int) error {
	if idx < 0 || idx >= len(g.atoms) {
		return errors.New(errors.CodeIndexOutOfRange, "atom index out of range").
			WithDetail(fmt.Sprintf("index=%d size=%d", idx, len(g.atoms)))
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutations
// ─────────────────────────────────────────────────────────────────────────────

// AddAtom appends an atom with the given element symbol and canvas position,
// returning its dense index.  Tool markers (atomic number 0) are rejected and
// unknown symbols fail the registry lookup; in both cases the graph is
// unchanged.
func (g *Graph) AddAtom(symbol string, pos chem.Point) (int, error) {
	elem, err := g.registry.LookupPlaceable(symbol)
	if err != nil {
		return 0, err
	}
	g.atoms = append(g.atoms, Atom{Element: elem, Position: pos})
	idx := len(g.atoms) - 1
	g.notify(Event{Kind: EventAtomAdded, Index: idx})
	return idx, nil
}

// AddOrUpdateBond creates a bond between atoms a and b, or retypes the
// existing bond between them.  Endpoint order is irrelevant for matching: a
// bond (1,2) is the same bond as (2,1).  Retyping preserves the bond's
// position in the sequence and its stored endpoint order.
func (g *Graph) AddOrUpdateBond(a, b int, t chem.BondType) error {
	if err := g.checkIndex(a); err != nil {
		return err
	}
	if err := g.checkIndex(b); err != nil {
		return err
	}
	if a == b {
		return errors.New(errors.CodeSelfBond, "bond endpoints must differ").
			WithDetail(fmt.Sprintf("index=%d", a))
	}
	if !t.IsValid() {
		return errors.New(errors.ErrCodeGraphInvalidBondType, "invalid bond type").
			WithDetail("type=" + string(t))
	}
	if existing := g.bondBetween(a, b); existing != nil {
		existing.Type = t
		g.notify(Event{Kind: EventBondUpdated, Bond: *existing})
		return nil
	}
	bond := Bond{A: a, B: b, Type: t}
	g.bonds = append(g.bonds, bond)
	g.notify(Event{Kind: EventBondAdded, Bond: bond})
	return nil
}

// bondBetween returns the bond connecting a and b regardless of endpoint
// order, or nil when none exists.
func (g *Graph) bondBetween(a, b int) *Bond {
	for i := range g.bonds {
		if (g.bonds[i].A == a && g.bonds[i].B == b) || (g.bonds[i].A == b && g.bonds[i].B == a) {
			return &g.bonds[i]
		}
	}
	return nil
}

// RemoveAtom deletes the atom at idx, cascades removal to every bond touching
// it, and shifts every atom index greater than idx down by one in both the
// atom sequence and the surviving bonds.  Relative order of survivors is
// preserved.
func (g *Graph) RemoveAtom(idx int) error {
	if err := g.checkIndex(idx); err != nil {
		return err
	}

	g.atoms = append(g.atoms[:idx], g.atoms[idx+1:]...)

	kept := g.bonds[:0]
	for _, b := range g.bonds {
		if b.Touches(idx) {
			continue
		}
		if b.A > idx {
			b.A--
		}
		if b.B > idx {
			b.B--
		}
		kept = append(kept, b)
	}
	g.bonds = kept

	g.notify(Event{Kind: EventAtomRemoved, Index: idx})
	return nil
}

// Clear empties both sequences, returning the graph to its initial state.
func (g *Graph) Clear() {
	g.atoms = g.atoms[:0]
	g.bonds = g.bonds[:0]
	g.notify(Event{Kind: EventCleared})
}

// ─────────────────────────────────────────────────────────────────────────────
// DTO conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToDTO renders the graph in its wire representation.
func (g *Graph) ToDTO() chem.GraphDTO {
	dto := chem.GraphDTO{
		Atoms: make([]chem.AtomDTO, 0, len(g.atoms)),
		Bonds: make([]chem.BondDTO, 0, len(g.bonds)),
	}
	for i, a := range g.atoms {
		dto.Atoms = append(dto.Atoms, chem.AtomDTO{
			Index:    i,
			Symbol:   a.Element.Symbol,
			Position: a.Position,
		})
	}
	for _, b := range g.bonds {
		dto.Bonds = append(dto.Bonds, chem.BondDTO{AtomA: b.A, AtomB: b.B, Type: b.Type})
	}
	return dto
}

// FromDTO builds a Graph from its wire representation, running every atom and
// bond through the normal mutation paths so the usual validation applies.
// On any error the returned graph is nil and no partial state escapes.
func FromDTO(registry *element.Registry, dto chem.GraphDTO) (*Graph, error) {
	g := New(registry)
	for _, a := range dto.Atoms {
		if _, err := g.AddAtom(a.Symbol, a.Position); err != nil {
			return nil, err
		}
	}
	for _, b := range dto.Bonds {
		if err := g.AddOrUpdateBond(b.AtomA, b.AtomB, b.Type); err != nil {
			return nil, err
		}
	}
	return g, nil
}

//Personal.AI order the ending
