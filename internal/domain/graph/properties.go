package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// ─────────────────────────────────────────────────────────────────────────────
// Property estimation
// ─────────────────────────────────────────────────────────────────────────────

// Saturation thresholds for hydrogen-bond donor counting: an N or O atom with
// fewer incident bonds than its threshold is assumed to carry at least one
// implicit hydrogen and therefore counts as a donor.
const (
	donorThresholdN = 3
	donorThresholdO = 2
)

// EstimateProperties computes cheap structural estimates from the current
// graph state: total molecular weight, Hill-ordered formula, sequence sizes,
// and hydrogen-bond donor/acceptor counts.
//
// The donor and acceptor rules are intentionally asymmetric: donors require
// an under-saturated N or O (incident bonds below the element threshold),
// while every N and O counts as exactly one acceptor regardless of bonding.
func (g *Graph) EstimateProperties() chem.MolecularProperties {
	props := chem.MolecularProperties{
		AtomCount: len(g.atoms),
		BondCount: len(g.bonds),
	}

	// Incident bond counts per atom.  Bond multiplicity does not matter for
	// donor counting, only the number of explicit bonds.
	incident := make([]int, len(g.atoms))
	for _, b := range g.bonds {
		incident[b.A]++
		incident[b.B]++
	}

	for i, a := range g.atoms {
		props.MolecularWeight += a.Element.AtomicWeight

		switch a.Element.Symbol {
		case "N":
			props.HBondAcceptors++
			if incident[i] < donorThresholdN {
				props.HBondDonors++
			}
		case "O":
			props.HBondAcceptors++
			if incident[i] < donorThresholdO {
				props.HBondDonors++
			}
		}
	}

	props.Formula = g.formula()
	return props
}

// formula renders the Hill-ordered molecular formula of the explicit atoms:
// carbon first, hydrogen second, remaining elements alphabetically.  Implicit
// hydrogens are not modeled, so H appears only when placed explicitly.
func (g *Graph) formula() string {
	if len(g.atoms) == 0 {
		return ""
	}

	counts := make(map[string]int)
	for _, a := range g.atoms {
		counts[a.Element.Symbol]++
	}

	var sb strings.Builder
	write := func(sym string) {
		n, ok := counts[sym]
		if !ok {
			return
		}
		sb.WriteString(sym)
		if n > 1 {
			fmt.Fprintf(&sb, "%d", n)
		}
		delete(counts, sym)
	}

	write("C")
	write("H")

	rest := make([]string, 0, len(counts))
	for sym := range counts {
		rest = append(rest, sym)
	}
	sort.Strings(rest)
	for _, sym := range rest {
		write(sym)
	}
	return sb.String()
}

//Personal.AI order the ending
