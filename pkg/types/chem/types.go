// Package chem defines all chemistry-domain Data Transfer Objects, enumerations,
// and request/response structures used across every layer of the MolCanvas
// service.  No domain logic lives here — only plain data types that are safe to
// import from any layer without creating circular dependencies.
package chem

import (
	"github.com/turtacn/MolCanvas/pkg/types/common"
)

// ─────────────────────────────────────────────────────────────────────────────
// BondType — covalent bond multiplicity
// ─────────────────────────────────────────────────────────────────────────────

// BondType identifies the multiplicity of a covalent bond between two atoms.
type BondType string

const (
	// BondSingle is a single covalent bond.  In SMILES output it carries no prefix.
	BondSingle BondType = "single"

	// BondDouble is a double covalent bond, rendered as "=" in SMILES.
	BondDouble BondType = "double"

	// BondTriple is a triple covalent bond, rendered as "#" in SMILES.
	BondTriple BondType = "triple"

	// BondAromatic marks a bond within an aromatic ring system.  SMILES output
	// treats aromatic bonds the same as single bonds (no prefix).
	BondAromatic BondType = "aromatic"
)

// IsValid reports whether the BondType is one of the four supported values.
func (bt BondType) IsValid() bool {
	switch bt {
	case BondSingle, BondDouble, BondTriple, BondAromatic:
		return true
	}
	return false
}

// Order returns the integer bond order (aromatic counts as 1 for valence math).
func (bt BondType) Order() int {
	switch bt {
	case BondDouble:
		return 2
	case BondTriple:
		return 3
	default:
		return 1
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Geometry
// ─────────────────────────────────────────────────────────────────────────────

// Point is a 2D canvas coordinate attached to an atom for display purposes.
// Coordinates never participate in serialization or property estimation.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Graph DTOs
// ─────────────────────────────────────────────────────────────────────────────

// ElementDTO describes one entry of the element registry.
type ElementDTO struct {
	Symbol            string  `json:"symbol"`
	AtomicNumber      int     `json:"atomic_number"`
	AtomicWeight      float64 `json:"atomic_weight"`
	Electronegativity float64 `json:"electronegativity"`
}

// AtomDTO is the wire representation of one atom in a molecular graph.
// Index is the dense 0-based position of the atom in the graph's atom sequence.
type AtomDTO struct {
	Index    int    `json:"index"`
	Symbol   string `json:"symbol"`
	Position Point  `json:"position"`
}

// BondDTO is the wire representation of one bond.  AtomA and AtomB are dense
// atom indices; by convention AtomA < AtomB is not required, endpoints are
// stored exactly as submitted.
type BondDTO struct {
	AtomA int      `json:"atom_a"`
	AtomB int      `json:"atom_b"`
	Type  BondType `json:"type"`
}

// GraphDTO is the full wire representation of a molecular graph: the ordered
// atom sequence and the ordered bond sequence.
type GraphDTO struct {
	Atoms []AtomDTO `json:"atoms"`
	Bonds []BondDTO `json:"bonds"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Estimated properties
// ─────────────────────────────────────────────────────────────────────────────

// MolecularProperties carries the cheap structural estimates computed from a
// graph without any quantum-chemical modeling.
type MolecularProperties struct {
	// MolecularWeight is the sum of the atomic weights of every atom, in g/mol.
	MolecularWeight float64 `json:"molecular_weight"`

	// Formula is the Hill-ordered molecular formula (C first, H second, rest
	// alphabetical), heavy atoms only.
	Formula string `json:"formula"`

	// AtomCount and BondCount are the current sequence lengths.
	AtomCount int `json:"atom_count"`
	BondCount int `json:"bond_count"`

	// HBondDonors counts N/O atoms with fewer incident bonds than their
	// saturation threshold (3 for N, 2 for O).
	HBondDonors int `json:"h_bond_donors"`

	// HBondAcceptors counts every N and O atom regardless of bonding.
	HBondAcceptors int `json:"h_bond_acceptors"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Saved molecule DTOs
// ─────────────────────────────────────────────────────────────────────────────

// MoleculeDocumentDTO is a persisted molecule record: a named snapshot of a
// graph together with its SMILES rendering and estimated properties.
type MoleculeDocumentDTO struct {
	common.BaseEntity
	Name       string              `json:"name"`
	SMILES     string              `json:"smiles"`
	Graph      GraphDTO            `json:"graph"`
	Properties MolecularProperties `json:"properties"`
}

// FragmentDTO describes one entry of the fragment library: a named multi-atom
// template that can be merged into a graph in a single operation.
type FragmentDTO struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Graph       GraphDTO `json:"graph"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Edit command requests
// ─────────────────────────────────────────────────────────────────────────────

// AddAtomRequest places one atom on the canvas.
type AddAtomRequest struct {
	Symbol   string `json:"symbol"`
	Position Point  `json:"position"`
}

// AddBondRequest creates or retypes the bond between two atoms.
type AddBondRequest struct {
	AtomA int      `json:"atom_a"`
	AtomB int      `json:"atom_b"`
	Type  BondType `json:"type"`
}

// RemoveAtomRequest deletes one atom and every bond touching it.
type RemoveAtomRequest struct {
	Index int `json:"index"`
}

// MergeFragmentRequest stamps a named library fragment into the session graph.
type MergeFragmentRequest struct {
	Fragment string `json:"fragment"`
	Offset   Point  `json:"offset"`
}

// SaveMoleculeRequest persists the current session graph under a name.
type SaveMoleculeRequest struct {
	Name string `json:"name"`
}

// SerializeRequest asks for a SMILES rendering of an ad-hoc graph without an
// editing session.
type SerializeRequest struct {
	Graph GraphDTO `json:"graph"`
}

// SerializeResponse carries the SMILES string produced for a graph.
type SerializeResponse struct {
	SMILES string `json:"smiles"`
}

// ExportResponse describes an export artifact stored in object storage.
type ExportResponse struct {
	ObjectKey string `json:"object_key"`
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in_seconds"`
}

//Personal.AI order the ending
