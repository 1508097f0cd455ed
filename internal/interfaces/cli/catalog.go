package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCatalogCmd creates the catalog command group.
func NewCatalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the built-in molecule catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog molecules",
		RunE:  runCatalogList,
	}

	getCmd := &cobra.Command{
		Use:   "get <name-or-descriptor>",
		Short: "Show one catalog molecule by name or descriptor",
		Args:  cobra.ExactArgs(1),
		RunE:  runCatalogGet,
	}

	catalogCmd.AddCommand(listCmd, getCmd)
	return catalogCmd
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cliCtx, err := cliContextFrom(cmd)
	if err != nil {
		return err
	}

	molecules := cliCtx.Service.ListMolecules(cmd.Context())

	out := cmd.OutOrStdout()
	switch cliCtx.OutputFormat {
	case "json":
		return printJSON(out, molecules)
	case "csv":
		records := make([][]string, 0, len(molecules))
		for _, m := range molecules {
			records = append(records, []string{m.Name, m.Formula, m.Descriptor})
		}
		return printCSV(out, []string{"name", "formula", "descriptor"}, records)
	}

	table := tablewriter.NewWriter(out)
	table.Header([]string{"Name", "Formula", "Descriptor"})
	for _, m := range molecules {
		table.Append([]string{m.Name, m.Formula, m.Descriptor})
	}
	table.Render()
	fmt.Fprintf(out, "\nTotal molecules: %d\n", len(molecules))
	return nil
}

func runCatalogGet(cmd *cobra.Command, args []string) error {
	cliCtx, err := cliContextFrom(cmd)
	if err != nil {
		return err
	}

	molecule, err := cliCtx.Service.GetMolecule(cmd.Context(), args[0])
	if err != nil {
		// The argument may be a descriptor rather than a name.
		byDesc, descErr := cliCtx.Service.GetMoleculeByDescriptor(cmd.Context(), args[0])
		if descErr != nil {
			return err
		}
		molecule = byDesc
	}

	out := cmd.OutOrStdout()
	if cliCtx.OutputFormat == "json" {
		return printJSON(out, molecule)
	}

	fmt.Fprintf(out, "Name:       %s\n", molecule.Name)
	fmt.Fprintf(out, "Formula:    %s\n", molecule.Formula)
	fmt.Fprintf(out, "Descriptor: %s\n", molecule.Descriptor)
	return nil
}
