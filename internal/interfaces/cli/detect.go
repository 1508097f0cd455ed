package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var detectDescriptor string

// NewDetectCmd creates the detect command.
func NewDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect functional-group features in a structure descriptor",
		RunE:  runDetect,
	}

	cmd.Flags().StringVarP(&detectDescriptor, "descriptor", "d", "", "structure descriptor (required)")
	cmd.MarkFlagRequired("descriptor")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string) error {
	cliCtx, err := cliContextFrom(cmd)
	if err != nil {
		return err
	}

	flags, err := cliCtx.Service.Detect(cmd.Context(), detectDescriptor)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cliCtx.OutputFormat {
	case "json":
		return printJSON(out, flags)
	case "csv":
		records := [][]string{}
		for _, name := range flagNames(flags) {
			records = append(records, []string{detectDescriptor, name})
		}
		return printCSV(out, []string{"descriptor", "feature"}, records)
	}

	fmt.Fprintf(out, "Descriptor: %s\n", detectDescriptor)
	fmt.Fprintf(out, "Features:   %s\n", formatFlags(flags))
	return nil
}
