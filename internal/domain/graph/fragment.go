package graph

import (
	"fmt"

	"github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fragment — a reusable multi-atom template
// ─────────────────────────────────────────────────────────────────────────────

// FragmentAtom is one template atom.  Position is relative to the fragment's
// own origin; MergeFragment translates it by the merge offset.
type FragmentAtom struct {
	Symbol   string
	Position chem.Point
}

// FragmentBond connects two template atoms by their local 0-based indices.
type FragmentBond struct {
	A    int
	B    int
	Type chem.BondType
}

// Fragment is a self-contained multi-atom template that can be stamped into a
// graph in one operation.  Bond indices are local to the fragment and get
// rebased onto the target graph during a merge.
type Fragment struct {
	Atoms []FragmentAtom
	Bonds []FragmentBond
}

// ToDTO renders the fragment's template graph in wire form.
func (f Fragment) ToDTO() chem.GraphDTO {
	dto := chem.GraphDTO{
		Atoms: make([]chem.AtomDTO, 0, len(f.Atoms)),
		Bonds: make([]chem.BondDTO, 0, len(f.Bonds)),
	}
	for i, a := range f.Atoms {
		dto.Atoms = append(dto.Atoms, chem.AtomDTO{Index: i, Symbol: a.Symbol, Position: a.Position})
	}
	for _, b := range f.Bonds {
		dto.Bonds = append(dto.Bonds, chem.BondDTO{AtomA: b.A, AtomB: b.B, Type: b.Type})
	}
	return dto
}

// validate checks the template without touching any graph: every symbol must
// be a placeable element, every bond must reference local indices inside the
// template, and no bond may be a self bond.
func (f Fragment) validate(g *Graph) error {
	for _, a := range f.Atoms {
		if _, err := g.registry.LookupPlaceable(a.Symbol); err != nil {
			return err
		}
	}
	n := len(f.Atoms)
	for _, b := range f.Bonds {
		if b.A < 0 || b.A >= n || b.B < 0 || b.B >= n {
			return errors.New(errors.CodeIndexOutOfRange, "fragment bond index out of range").
				WithDetail(fmt.Sprintf("a=%d b=%d size=%d", b.A, b.B, n))
		}
		if b.A == b.B {
			return errors.New(errors.CodeSelfBond, "fragment bond endpoints must differ").
				WithDetail(fmt.Sprintf("index=%d", b.A))
		}
		if !b.Type.IsValid() {
			return errors.New(errors.ErrCodeGraphInvalidBondType, "invalid fragment bond type").
				WithDetail("type=" + string(b.Type))
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// MergeFragment
// ─────────────────────────────────────────────────────────────────────────────

// MergeFragment stamps the fragment into the graph: every template atom is
// appended with its position translated by offset, and every template bond is
// rebased by the index the first new atom received.  The whole template is
// validated up front, so a failed merge leaves the graph unchanged.
//
// Example: a graph with 2 atoms merging a 3-atom fragment whose bond is
// (0, 1, aromatic) gains atoms 2, 3, 4 and the bond (2, 3, aromatic).
//
// Returns the base index (the index of the fragment's local atom 0 in the
// target graph).
func (g *Graph) MergeFragment(f Fragment, offset chem.Point) (int, error) {
	if err := f.validate(g); err != nil {
		return 0, err
	}

	base := len(g.atoms)
	for _, a := range f.Atoms {
		elem, _ := g.registry.LookupPlaceable(a.Symbol) // validated above
		g.atoms = append(g.atoms, Atom{
			Element:  elem,
			Position: chem.Point{X: a.Position.X + offset.X, Y: a.Position.Y + offset.Y},
		})
	}
	for _, b := range f.Bonds {
		// Same unordered-pair rule as AddOrUpdateBond: a template carrying
		// both (0,1) and (1,0) retypes instead of duplicating.
		if existing := g.bondBetween(base+b.A, base+b.B); existing != nil {
			existing.Type = b.Type
			continue
		}
		g.bonds = append(g.bonds, Bond{A: base + b.A, B: base + b.B, Type: b.Type})
	}

	g.notify(Event{Kind: EventFragmentMerged, Index: base})
	return base, nil
}

//Personal.AI order the ending
