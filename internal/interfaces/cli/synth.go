package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

var (
	synthDescriptor string
	synthModality   string
	synthNucleus    string
	synthSeed       int64
	synthPeaksOnly  bool
)

// NewSynthCmd creates the synth command.
func NewSynthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize a spectrum from a structure descriptor",
		Long:  "Generate a synthetic IR, UV-Vis or NMR spectrum for a SMILES-like structure descriptor.",
		RunE:  runSynth,
	}

	cmd.Flags().StringVarP(&synthDescriptor, "descriptor", "d", "", "structure descriptor (required)")
	cmd.Flags().StringVarP(&synthModality, "modality", "m", "", "spectrum modality: IR|UV-VIS|NMR (required)")
	cmd.Flags().StringVarP(&synthNucleus, "nucleus", "n", "1H", "NMR nucleus: 1H|13C")
	cmd.Flags().Int64Var(&synthSeed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().BoolVar(&synthPeaksOnly, "peaks-only", false, "omit the curve, print only assigned peaks")
	cmd.MarkFlagRequired("descriptor")
	cmd.MarkFlagRequired("modality")

	return cmd
}

func runSynth(cmd *cobra.Command, args []string) error {
	cliCtx, err := cliContextFrom(cmd)
	if err != nil {
		return err
	}

	modality, err := stypes.ParseModality(synthModality)
	if err != nil {
		return err
	}

	req := stypes.SynthesisRequest{
		Descriptor: synthDescriptor,
		Modality:   modality,
	}
	if modality == stypes.ModalityNMR {
		nucleus, err := stypes.ParseNucleus(synthNucleus)
		if err != nil {
			return err
		}
		req.Nucleus = nucleus
	}
	if cmd.Flags().Changed("seed") {
		seed := synthSeed
		req.Seed = &seed
	}

	result, err := cliCtx.Service.Synthesize(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cliCtx.OutputFormat {
	case "json":
		if synthPeaksOnly {
			result.Curve = nil
		}
		return printJSON(out, result)
	case "csv":
		return printSynthesisCSV(out, result, synthPeaksOnly)
	default:
		return printSynthesisText(out, result, synthPeaksOnly)
	}
}

// printSynthesisCSV emits curve points by default (ready for plotting) or the
// assigned peak list with --peaks-only.  NMR has no curve, so it always emits
// peaks.
func printSynthesisCSV(w io.Writer, res stypes.SynthesisResult, peaksOnly bool) error {
	if res.Modality == stypes.ModalityNMR {
		records := make([][]string, 0, len(res.NMRPeaks))
		for _, p := range res.NMRPeaks {
			records = append(records, []string{
				fmt.Sprintf("%.2f", p.Shift),
				fmt.Sprintf("%.2f", p.Intensity),
				string(p.Multiplicity),
				fmt.Sprintf("%.1f", p.CouplingHz),
				p.Label,
			})
		}
		return printCSV(w, []string{"shift_ppm", "intensity", "multiplicity", "coupling_hz", "label"}, records)
	}

	if peaksOnly {
		records := make([][]string, 0, len(res.Peaks))
		for _, p := range res.Peaks {
			records = append(records, []string{
				fmt.Sprintf("%.0f", p.X),
				fmt.Sprintf("%.4f", p.Y),
				p.Label,
			})
		}
		return printCSV(w, []string{"x", "y", "label"}, records)
	}

	records := make([][]string, 0, len(res.Curve))
	for _, p := range res.Curve {
		records = append(records, []string{
			fmt.Sprintf("%g", p.X),
			fmt.Sprintf("%.4f", p.Y),
		})
	}
	return printCSV(w, []string{"x", "y"}, records)
}

func printSynthesisText(w io.Writer, res stypes.SynthesisResult, peaksOnly bool) error {
	fmt.Fprintf(w, "Modality: %s\n", res.Modality)
	if res.Modality == stypes.ModalityNMR {
		fmt.Fprintf(w, "Nucleus:  %s\n", res.Nucleus)
	}
	fmt.Fprintf(w, "Features: %s\n\n", formatFlags(res.Flags))

	if res.Modality == stypes.ModalityNMR {
		if len(res.NMRPeaks) == 0 {
			fmt.Fprintln(w, "No peaks assigned.")
			return nil
		}
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Shift (ppm)", "Intensity", "Mult", "J (Hz)", "Assignment"})
		for _, p := range res.NMRPeaks {
			jStr := "-"
			if p.CouplingHz > 0 {
				jStr = fmt.Sprintf("%.1f", p.CouplingHz)
			}
			table.Append([]string{
				fmt.Sprintf("%.2f", p.Shift),
				fmt.Sprintf("%.2f", p.Intensity),
				string(p.Multiplicity),
				jStr,
				p.Label,
			})
		}
		table.Render()
		fmt.Fprintf(w, "\nTotal peaks: %d\n", len(res.NMRPeaks))
		return nil
	}

	if !peaksOnly {
		fmt.Fprintf(w, "Curve points: %d\n\n", len(res.Curve))
	}
	if len(res.Peaks) == 0 {
		fmt.Fprintln(w, "No peaks detected.")
		return nil
	}
	xLabel := "Wavenumber (cm-1)"
	yLabel := "%T"
	if res.Modality == stypes.ModalityUVVis {
		xLabel = "Wavelength (nm)"
		yLabel = "Absorbance"
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{xLabel, yLabel, "Assignment"})
	for _, p := range res.Peaks {
		table.Append([]string{
			fmt.Sprintf("%.0f", p.X),
			fmt.Sprintf("%.3f", p.Y),
			p.Label,
		})
	}
	table.Render()
	fmt.Fprintf(w, "\nTotal peaks: %d\n", len(res.Peaks))
	return nil
}

// formatFlags renders the set feature flags as a comma-separated list.
func formatFlags(f stypes.FeatureFlags) string {
	names := flagNames(f)
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

// flagNames returns the set feature flags as hyphenated names in a stable
// order.
func flagNames(f stypes.FeatureFlags) []string {
	names := []string{}
	for _, entry := range []struct {
		name string
		set  bool
	}{
		{"hydroxyl", f.Hydroxyl},
		{"carboxylic-acid", f.CarboxylicAcid},
		{"amine", f.Amine},
		{"primary-amine", f.PrimaryAmine},
		{"amide", f.Amide},
		{"ketone", f.Ketone},
		{"aldehyde", f.Aldehyde},
		{"ester", f.Ester},
		{"ether", f.Ether},
		{"alkene", f.Alkene},
		{"alkyne", f.Alkyne},
		{"nitrile", f.Nitrile},
		{"aromatic-ring", f.AromaticRing},
		{"alkyl-ch", f.AlkylCH},
		{"vinyl-ch", f.VinylCH},
	} {
		if entry.set {
			names = append(names, entry.name)
		}
	}
	return names
}
