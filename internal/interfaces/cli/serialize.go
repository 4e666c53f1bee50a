package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/turtacn/MolCanvas/internal/domain/element"
	"github.com/turtacn/MolCanvas/internal/domain/graph"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// serializeResult is the stdout payload of the serialize command.
type serializeResult struct {
	SMILES     string                   `json:"smiles"`
	Properties chem.MolecularProperties `json:"properties"`
}

func (r serializeResult) TableHeaders() []string {
	return []string{"SMILES", "FORMULA", "WEIGHT", "ATOMS", "BONDS", "DONORS", "ACCEPTORS"}
}

func (r serializeResult) TableRows() [][]string {
	return [][]string{{
		r.SMILES,
		r.Properties.Formula,
		strconv.FormatFloat(r.Properties.MolecularWeight, 'f', 3, 64),
		strconv.Itoa(r.Properties.AtomCount),
		strconv.Itoa(r.Properties.BondCount),
		strconv.Itoa(r.Properties.HBondDonors),
		strconv.Itoa(r.Properties.HBondAcceptors),
	}}
}

func (r serializeResult) String() string {
	return fmt.Sprintf("SMILES: %s\nFormula: %s\nWeight: %.3f g/mol\nAtoms: %d  Bonds: %d\nH-bond donors: %d  acceptors: %d",
		r.SMILES, r.Properties.Formula, r.Properties.MolecularWeight,
		r.Properties.AtomCount, r.Properties.BondCount,
		r.Properties.HBondDonors, r.Properties.HBondAcceptors)
}

// NewSerializeCmd creates the serialize command: it reads a molecule JSON
// file and prints its SMILES rendering and estimated properties without
// contacting a server.
func NewSerializeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serialize <file>",
		Short: "Serialize a molecule JSON file to SMILES",
		Long:  "Reads a molecular graph from a JSON file (either a bare graph with\natoms and bonds, or a saved molecule document wrapping one) and prints\nthe SMILES string and estimated properties.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading molecule file: %w", err)
			}

			dto, err := decodeGraphFile(raw)
			if err != nil {
				return fmt.Errorf("parsing molecule file %s: %w", args[0], err)
			}

			g, err := graph.FromDTO(element.NewRegistry(), dto)
			if err != nil {
				return err
			}

			return PrintResult(cmd, serializeResult{
				SMILES:     g.Serialize(),
				Properties: g.EstimateProperties(),
			})
		},
	}
}

// decodeGraphFile accepts either a bare chem.GraphDTO or a saved molecule
// document that wraps one under "graph".
func decodeGraphFile(raw []byte) (chem.GraphDTO, error) {
	var doc struct {
		Graph *chem.GraphDTO `json:"graph"`
	}
	if err := json.Unmarshal(raw, &doc); err == nil && doc.Graph != nil {
		return *doc.Graph, nil
	}

	var dto chem.GraphDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return chem.GraphDTO{}, err
	}
	return dto, nil
}

//Personal.AI order the ending
