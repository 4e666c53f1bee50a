// Package fragmentlib holds the built-in library of named molecular fragments
// the canvas exposes as one-click templates.  Entries are immutable; lookups
// return copies so callers can never corrupt the library.
package fragmentlib

import (
	"sort"

	"github.com/turtacn/MolCanvas/internal/domain/graph"
	"github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// Entry is one library fragment with its catalog metadata.
type Entry struct {
	Name        string
	Category    string
	Description string
	Fragment    graph.Fragment
}

// Library is an immutable name → fragment catalog.
type Library struct {
	byName map[string]Entry
	names  []string
}

// hexRing returns six atoms of the given symbol arranged on a unit hexagon
// with ring bonds of the given type.
func hexRing(symbol string, bondType chem.BondType) graph.Fragment {
	// Precomputed unit-hexagon coordinates, 60 degree steps.
	coords := []chem.Point{
		{X: 1.0, Y: 0.0},
		{X: 0.5, Y: 0.866},
		{X: -0.5, Y: 0.866},
		{X: -1.0, Y: 0.0},
		{X: -0.5, Y: -0.866},
		{X: 0.5, Y: -0.866},
	}
	f := graph.Fragment{}
	for _, p := range coords {
		f.Atoms = append(f.Atoms, graph.FragmentAtom{Symbol: symbol, Position: p})
	}
	for i := 0; i < 6; i++ {
		f.Bonds = append(f.Bonds, graph.FragmentBond{A: i, B: (i + 1) % 6, Type: bondType})
	}
	return f
}

func defaultEntries() []Entry {
	return []Entry{
		{
			Name:        "benzene",
			Category:    "ring",
			Description: "aromatic six-membered carbon ring",
			Fragment:    hexRing("C", chem.BondAromatic),
		},
		{
			Name:        "cyclohexane",
			Category:    "ring",
			Description: "saturated six-membered carbon ring",
			Fragment:    hexRing("C", chem.BondSingle),
		},
		{
			Name:        "carboxyl",
			Category:    "functional group",
			Description: "carboxylic acid group -C(=O)O",
			Fragment: graph.Fragment{
				Atoms: []graph.FragmentAtom{
					{Symbol: "C", Position: chem.Point{X: 0, Y: 0}},
					{Symbol: "O", Position: chem.Point{X: 0.8, Y: 0.6}},
					{Symbol: "O", Position: chem.Point{X: 0.8, Y: -0.6}},
				},
				Bonds: []graph.FragmentBond{
					{A: 0, B: 1, Type: chem.BondDouble},
					{A: 0, B: 2, Type: chem.BondSingle},
				},
			},
		},
		{
			Name:        "amide",
			Category:    "functional group",
			Description: "amide group -C(=O)N",
			Fragment: graph.Fragment{
				Atoms: []graph.FragmentAtom{
					{Symbol: "C", Position: chem.Point{X: 0, Y: 0}},
					{Symbol: "O", Position: chem.Point{X: 0.8, Y: 0.6}},
					{Symbol: "N", Position: chem.Point{X: 0.8, Y: -0.6}},
				},
				Bonds: []graph.FragmentBond{
					{A: 0, B: 1, Type: chem.BondDouble},
					{A: 0, B: 2, Type: chem.BondSingle},
				},
			},
		},
		{
			Name:        "amino",
			Category:    "functional group",
			Description: "primary amine -N",
			Fragment: graph.Fragment{
				Atoms: []graph.FragmentAtom{{Symbol: "N"}},
			},
		},
		{
			Name:        "hydroxyl",
			Category:    "functional group",
			Description: "hydroxyl group -O",
			Fragment: graph.Fragment{
				Atoms: []graph.FragmentAtom{{Symbol: "O"}},
			},
		},
		{
			Name:        "methyl",
			Category:    "alkyl",
			Description: "methyl group -C",
			Fragment: graph.Fragment{
				Atoms: []graph.FragmentAtom{{Symbol: "C"}},
			},
		},
		{
			Name:        "nitro",
			Category:    "functional group",
			Description: "nitro group -N(=O)O",
			Fragment: graph.Fragment{
				Atoms: []graph.FragmentAtom{
					{Symbol: "N", Position: chem.Point{X: 0, Y: 0}},
					{Symbol: "O", Position: chem.Point{X: 0.8, Y: 0.6}},
					{Symbol: "O", Position: chem.Point{X: 0.8, Y: -0.6}},
				},
				Bonds: []graph.FragmentBond{
					{A: 0, B: 1, Type: chem.BondDouble},
					{A: 0, B: 2, Type: chem.BondSingle},
				},
			},
		},
		{
			Name:        "phosphate",
			Category:    "functional group",
			Description: "phosphate group -P(=O)(O)O",
			Fragment: graph.Fragment{
				Atoms: []graph.FragmentAtom{
					{Symbol: "P", Position: chem.Point{X: 0, Y: 0}},
					{Symbol: "O", Position: chem.Point{X: 1.0, Y: 0}},
					{Symbol: "O", Position: chem.Point{X: -0.5, Y: 0.866}},
					{Symbol: "O", Position: chem.Point{X: -0.5, Y: -0.866}},
				},
				Bonds: []graph.FragmentBond{
					{A: 0, B: 1, Type: chem.BondDouble},
					{A: 0, B: 2, Type: chem.BondSingle},
					{A: 0, B: 3, Type: chem.BondSingle},
				},
			},
		},
		{
			Name:        "thiol",
			Category:    "functional group",
			Description: "thiol group -S",
			Fragment: graph.Fragment{
				Atoms: []graph.FragmentAtom{{Symbol: "S"}},
			},
		},
	}
}

// NewLibrary constructs a Library preloaded with the built-in fragments.
func NewLibrary() *Library {
	entries := defaultEntries()
	l := &Library{byName: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		l.byName[e.Name] = e
		l.names = append(l.names, e.Name)
	}
	sort.Strings(l.names)
	return l
}

// Get returns the entry registered under name.
func (l *Library) Get(name string) (Entry, error) {
	e, ok := l.byName[name]
	if !ok {
		return Entry{}, errors.New(errors.CodeFragmentNotFound, "fragment not found").
			WithDetail("name=" + name)
	}
	return e, nil
}

// List returns all entries in name order.
func (l *Library) List() []Entry {
	out := make([]Entry, 0, len(l.names))
	for _, name := range l.names {
		out = append(out, l.byName[name])
	}
	return out
}

// ToDTO renders an entry in its wire representation.
func (e Entry) ToDTO() chem.FragmentDTO {
	return chem.FragmentDTO{
		Name:        e.Name,
		Category:    e.Category,
		Description: e.Description,
		Graph:       e.Fragment.ToDTO(),
	}
}

//Personal.AI order the ending
