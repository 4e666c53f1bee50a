package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/MolCanvas/pkg/client"
	"github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// moleculeTable wraps saved molecule records for output formatting.
type moleculeTable struct {
	Items []chem.MoleculeDocumentDTO `json:"items"`
	Total int64                      `json:"total"`
}

func (t moleculeTable) TableHeaders() []string {
	return []string{"ID", "NAME", "SMILES", "FORMULA", "WEIGHT", "CREATED"}
}

func (t moleculeTable) TableRows() [][]string {
	rows := make([][]string, 0, len(t.Items))
	for _, m := range t.Items {
		rows = append(rows, []string{
			string(m.ID),
			m.Name,
			m.SMILES,
			m.Properties.Formula,
			strconv.FormatFloat(m.Properties.MolecularWeight, 'f', 3, 64),
			m.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return rows
}

func (t moleculeTable) String() string {
	var sb strings.Builder
	for _, m := range t.Items {
		fmt.Fprintf(&sb, "%s  %s  %s\n", m.ID, m.Name, m.SMILES)
	}
	fmt.Fprintf(&sb, "total: %d", t.Total)
	return sb.String()
}

// NewMoleculesCmd creates the molecules command group, operating on saved
// molecules through the API server.
func NewMoleculesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "molecules",
		Short: "Manage saved molecules on the server",
	}

	cmd.AddCommand(
		newMoleculesListCmd(),
		newMoleculesGetCmd(),
		newMoleculesDeleteCmd(),
	)

	return cmd
}

func newMoleculesListCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved molecules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if cliCtx.Client == nil {
				return errors.InvalidParam("no API client configured, check --server")
			}

			list, err := cliCtx.Client.Molecules().List(cmd.Context(), client.ListOptions{
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}

			return PrintResult(cmd, moleculeTable{
				Items: list.Items,
				Total: list.Pagination.Total,
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "results per page")

	return cmd
}

func newMoleculesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one saved molecule by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if cliCtx.Client == nil {
				return errors.InvalidParam("no API client configured, check --server")
			}

			doc, err := cliCtx.Client.Molecules().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return PrintResult(cmd, doc)
		},
	}
}

func newMoleculesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one saved molecule by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if cliCtx.Client == nil {
				return errors.InvalidParam("no API client configured, check --server")
			}

			if err := cliCtx.Client.Molecules().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

//Personal.AI order the ending
