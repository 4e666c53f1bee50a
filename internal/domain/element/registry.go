// Package element provides the immutable element registry: the lookup table
// that maps chemical symbols to their physical properties.  The registry also
// carries non-physical tool markers (atomic number 0) used by canvas front
// ends to tag editing gestures; markers can be looked up but never placed in
// a molecular graph.
package element

import (
	"sort"

	"github.com/turtacn/MolCanvas/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Element — one registry entry
// ─────────────────────────────────────────────────────────────────────────────

// Element describes one entry of the registry.  Entries are immutable; the
// registry hands out copies, never pointers into its table.
type Element struct {
	// Symbol is the case-sensitive chemical symbol ("C", "Cl", "Na").
	Symbol string

	// AtomicNumber is the proton count.  Zero marks a non-physical editing
	// tool rather than a real element.
	AtomicNumber int

	// AtomicWeight is the standard atomic weight in g/mol.  Zero for markers.
	AtomicWeight float64

	// Electronegativity is the Pauling electronegativity.  Zero for markers
	// and for elements without an established value.
	Electronegativity float64
}

// IsMarker reports whether the entry is a non-physical editing tool.
// Markers are excluded from graphs, weights, and serialization.
func (e Element) IsMarker() bool {
	return e.AtomicNumber == 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Registry
// ─────────────────────────────────────────────────────────────────────────────

// Registry is an immutable symbol → Element lookup table.  The zero value is
// unusable; construct with NewRegistry.
type Registry struct {
	bySymbol map[string]Element
}

// defaultTable lists the elements the canvas palette exposes plus the two
// editing markers.  Weights are CIAAW 2021 standard atomic weights rounded to
// three decimals; electronegativities are Pauling values.
var defaultTable = []Element{
	{Symbol: "H", AtomicNumber: 1, AtomicWeight: 1.008, Electronegativity: 2.20},
	{Symbol: "B", AtomicNumber: 5, AtomicWeight: 10.811, Electronegativity: 2.04},
	{Symbol: "C", AtomicNumber: 6, AtomicWeight: 12.011, Electronegativity: 2.55},
	{Symbol: "N", AtomicNumber: 7, AtomicWeight: 14.007, Electronegativity: 3.04},
	{Symbol: "O", AtomicNumber: 8, AtomicWeight: 15.999, Electronegativity: 3.44},
	{Symbol: "F", AtomicNumber: 9, AtomicWeight: 18.998, Electronegativity: 3.98},
	{Symbol: "Na", AtomicNumber: 11, AtomicWeight: 22.990, Electronegativity: 0.93},
	{Symbol: "Mg", AtomicNumber: 12, AtomicWeight: 24.305, Electronegativity: 1.31},
	{Symbol: "Si", AtomicNumber: 14, AtomicWeight: 28.086, Electronegativity: 1.90},
	{Symbol: "P", AtomicNumber: 15, AtomicWeight: 30.974, Electronegativity: 2.19},
	{Symbol: "S", AtomicNumber: 16, AtomicWeight: 32.065, Electronegativity: 2.58},
	{Symbol: "Cl", AtomicNumber: 17, AtomicWeight: 35.453, Electronegativity: 3.16},
	{Symbol: "K", AtomicNumber: 19, AtomicWeight: 39.098, Electronegativity: 0.82},
	{Symbol: "Ca", AtomicNumber: 20, AtomicWeight: 40.078, Electronegativity: 1.00},
	{Symbol: "Fe", AtomicNumber: 26, AtomicWeight: 55.845, Electronegativity: 1.83},
	{Symbol: "Cu", AtomicNumber: 29, AtomicWeight: 63.546, Electronegativity: 1.90},
	{Symbol: "Zn", AtomicNumber: 30, AtomicWeight: 65.380, Electronegativity: 1.65},
	{Symbol: "Br", AtomicNumber: 35, AtomicWeight: 79.904, Electronegativity: 2.96},
	{Symbol: "I", AtomicNumber: 53, AtomicWeight: 126.904, Electronegativity: 2.66},

	// Editing tool markers.  AtomicNumber 0 keeps them out of graphs.
	{Symbol: "delete", AtomicNumber: 0},
	{Symbol: "move", AtomicNumber: 0},
}

// NewRegistry constructs a Registry preloaded with the default element table.
func NewRegistry() *Registry {
	r := &Registry{bySymbol: make(map[string]Element, len(defaultTable))}
	for _, e := range defaultTable {
		r.bySymbol[e.Symbol] = e
	}
	return r
}

// Lookup returns the Element registered under symbol.  Symbols are matched
// case-sensitively: "CL" is not chlorine.
func (r *Registry) Lookup(symbol string) (Element, error) {
	e, ok := r.bySymbol[symbol]
	if !ok {
		return Element{}, errors.New(errors.ErrCodeGraphUnknownElement, "unknown element symbol").
			WithDetail("symbol=" + symbol)
	}
	return e, nil
}

// LookupPlaceable returns the Element registered under symbol, rejecting
// markers.  This is the lookup graph mutation paths must use.
func (r *Registry) LookupPlaceable(symbol string) (Element, error) {
	e, err := r.Lookup(symbol)
	if err != nil {
		return Element{}, err
	}
	if e.IsMarker() {
		return Element{}, errors.New(errors.CodeInvalidElement, "element is a non-physical tool marker").
			WithDetail("symbol=" + symbol)
	}
	return e, nil
}

// Contains reports whether symbol is registered, marker or not.
func (r *Registry) Contains(symbol string) bool {
	_, ok := r.bySymbol[symbol]
	return ok
}

// Elements returns all physical elements ordered by atomic number.  Markers
// are excluded; this is the list served to palette clients.
func (r *Registry) Elements() []Element {
	out := make([]Element, 0, len(r.bySymbol))
	for _, e := range r.bySymbol {
		if !e.IsMarker() {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AtomicNumber < out[j].AtomicNumber })
	return out
}

//Personal.AI order the ending
