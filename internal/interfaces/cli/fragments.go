package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/MolCanvas/internal/domain/fragmentlib"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// fragmentList wraps library entries for output formatting.
type fragmentList struct {
	Items []chem.FragmentDTO `json:"items"`
}

func (l fragmentList) TableHeaders() []string {
	return []string{"NAME", "CATEGORY", "ATOMS", "BONDS", "DESCRIPTION"}
}

func (l fragmentList) TableRows() [][]string {
	rows := make([][]string, 0, len(l.Items))
	for _, f := range l.Items {
		rows = append(rows, []string{
			f.Name,
			f.Category,
			strconv.Itoa(len(f.Graph.Atoms)),
			strconv.Itoa(len(f.Graph.Bonds)),
			f.Description,
		})
	}
	return rows
}

func (l fragmentList) String() string {
	var sb strings.Builder
	for _, f := range l.Items {
		fmt.Fprintf(&sb, "%s (%s): %s\n", f.Name, f.Category, f.Description)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// NewFragmentsCmd creates the fragments command, which lists the built-in
// fragment library.
func NewFragmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fragments",
		Short: "List the built-in fragment library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := fragmentlib.NewLibrary().List()

			list := fragmentList{Items: make([]chem.FragmentDTO, 0, len(entries))}
			for _, e := range entries {
				list.Items = append(list.Items, e.ToDTO())
			}

			return PrintResult(cmd, list)
		},
	}
}

//Personal.AI order the ending
