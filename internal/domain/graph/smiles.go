package graph

import (
	"strings"

	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// ─────────────────────────────────────────────────────────────────────────────
// SMILES serialization
// ─────────────────────────────────────────────────────────────────────────────
//
// The serializer walks the graph depth-first and emits a simplified SMILES
// string: element symbols as stored, "=" before double bonds, "#" before
// triple bonds, nothing before single and aromatic bonds.  At each atom the
// first unvisited neighbor continues the current chain inline and every later
// unvisited neighbor opens a parenthesized branch.  Atoms are marked visited
// before descent (pre-order), and neighbors already visited at iteration time
// are skipped outright, so rings are cut silently — no ring-closure digits
// are emitted.  Disconnected components are joined with "." in atom index
// order, the first component starting at the lowest-index carbon when the
// graph has one.

// Serialize renders the whole graph as a SMILES string.  The empty graph
// serializes to "".
func (g *Graph) Serialize() string {
	n := len(g.atoms)
	if n == 0 {
		return ""
	}

	visited := make([]bool, n)
	var sb strings.Builder

	// Primary walk starts at the first carbon, falling back to atom 0.
	start := 0
	for i, a := range g.atoms {
		if a.Element.Symbol == "C" {
			start = i
			break
		}
	}
	g.serializeComponent(&sb, start, visited)

	// Remaining components in index order.
	for i := 0; i < n; i++ {
		if !visited[i] {
			sb.WriteByte('.')
			g.serializeComponent(&sb, i, visited)
		}
	}

	out := sb.String()
	if out == "" {
		// Non-empty graph must never render empty; fall back to a bare carbon.
		return "C"
	}
	return out
}

func (g *Graph) serializeComponent(sb *strings.Builder, start int, visited []bool) {
	visited[start] = true
	sb.WriteString(g.atoms[start].Element.Symbol)
	g.serializeChildren(sb, start, visited)
}

// serializeChildren walks the unvisited neighbors of idx in bond insertion
// order.  Visited checks happen at iteration time, not as a snapshot, so a
// neighbor consumed by an earlier sibling's subtree is not revisited.
func (g *Graph) serializeChildren(sb *strings.Builder, idx int, visited []bool) {
	emitted := false
	for _, b := range g.bonds {
		next, ok := b.Other(idx)
		if !ok || visited[next] {
			continue
		}
		visited[next] = true

		if emitted {
			sb.WriteByte('(')
		}
		sb.WriteString(bondPrefix(b.Type))
		sb.WriteString(g.atoms[next].Element.Symbol)
		g.serializeChildren(sb, next, visited)
		if emitted {
			sb.WriteByte(')')
		}
		emitted = true
	}
}

// bondPrefix returns the SMILES bond symbol preceding an atom.
func bondPrefix(t chem.BondType) string {
	switch t {
	case chem.BondDouble:
		return "="
	case chem.BondTriple:
		return "#"
	default:
		return ""
	}
}

//Personal.AI order the ending
