package spectrum

import stypes "github.com/synthspec/synthspec/pkg/types/spectrum"

// ─────────────────────────────────────────────────────────────────────────────
// Reference overrides — curated spectra for well-characterised molecules
// ─────────────────────────────────────────────────────────────────────────────

// Override pins the characteristic peaks for one molecule to curated
// reference values instead of the flag-derived heuristics.  A nil slice
// means "no override for that modality": synthesis falls through to the
// generic path.  Overridden IR specs still get rendering noise and the
// fingerprint scatter, so repeated acquisitions stay distinguishable.
type Override struct {
	IR     []stypes.CharacteristicPeak
	Proton []stypes.NMRPeak
	Carbon []stypes.NMRPeak
}

// OverrideTable maps a (trimmed, verbatim) descriptor to its curated data.
type OverrideTable map[string]Override

// DefaultOverrides returns the built-in reference table.  Entries use
// literature band positions; the only molecule curated so far is acetone,
// which doubles as the calibration fixture for the whole engine.
func DefaultOverrides() OverrideTable {
	return OverrideTable{
		// Acetone. IR band positions from condensed-phase reference
		// spectra; NMR shifts are the CDCl3 values.
		"CC(=O)C": {
			IR: []stypes.CharacteristicPeak{
				{Center: 2970, TargetAmplitude: 62, Width: 35, Label: "C-H stretch (sp3)"},
				{Center: 1715, TargetAmplitude: 8, Width: 14, Label: "C=O stretch (ketone)"},
				{Center: 1422, TargetAmplitude: 55, Width: 24, Label: "C-H bend (asymmetric)"},
				{Center: 1363, TargetAmplitude: 42, Width: 20, Label: "C-H bend (symmetric)"},
				{Center: 1222, TargetAmplitude: 48, Width: 26, Label: "C-C-C stretch"},
				{Center: 1092, TargetAmplitude: 72, Width: 22, Label: "CH3 rock"},
			},
			Proton: []stypes.NMRPeak{
				{
					Shift:        2.16,
					Intensity:    6,
					Multiplicity: stypes.MultSinglet,
					Label:        "CH3",
					AtomIDs:      []int{0, 2},
				},
			},
			Carbon: []stypes.NMRPeak{
				{Shift: 206.3, Intensity: 0.4, Multiplicity: stypes.MultSinglet, Label: "C=O", AtomIDs: []int{1}},
				{Shift: 30.9, Intensity: 1.0, Multiplicity: stypes.MultSinglet, Label: "CH3", AtomIDs: []int{0, 2}},
			},
		},
	}
}
