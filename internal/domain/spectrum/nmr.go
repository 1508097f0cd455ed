package spectrum

import (
	"math/rand"
	"sort"

	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

// ─────────────────────────────────────────────────────────────────────────────
// NMR synthesis — discrete stick spectra for ¹H and ¹³C
// ─────────────────────────────────────────────────────────────────────────────

// SynthesizeNMR produces a stick spectrum for the requested nucleus.  Peaks
// are sorted high-field last (descending chemical shift), matching how the
// spectra are conventionally read.
func SynthesizeNMR(rng *rand.Rand, f stypes.FeatureFlags, nucleus stypes.Nucleus) []stypes.NMRPeak {
	var peaks []stypes.NMRPeak
	switch nucleus {
	case stypes.NucleusProton:
		peaks = protonPeaksForFlags(rng, f)
	case stypes.NucleusCarbon:
		peaks = carbonPeaksForFlags(rng, f)
	}
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Shift > peaks[j].Shift })
	return peaks
}

func protonPeaksForFlags(rng *rand.Rand, f stypes.FeatureFlags) []stypes.NMRPeak {
	var peaks []stypes.NMRPeak
	atomID := 0

	add := func(loShift, hiShift, intensity float64, mult stypes.Multiplicity, loJ, hiJ float64, label string) {
		var j float64
		if hiJ > 0 {
			j = jitter(rng, loJ, hiJ)
		}
		p := stypes.NMRPeak{
			Shift:        jitter(rng, loShift, hiShift),
			Intensity:    intensity,
			Multiplicity: mult,
			CouplingHz:   j,
			Label:        label,
			AtomIDs:      []int{atomID},
		}
		atomID++
		peaks = append(peaks, p)
	}

	if f.CarboxylicAcid {
		add(10.5, 12.5, 1, stypes.MultBroadSinglet, 0, 0, "COOH")
	}
	if f.Aldehyde {
		add(9.4, 10.1, 1, stypes.MultSinglet, 0, 0, "CHO")
	}
	if f.AromaticRing {
		add(6.5, 8.5, 4, stypes.MultMultiplet, 7.0, 8.0, "aromatic H")
	}
	if f.Amide {
		add(5.5, 8.0, 1, stypes.MultBroadSinglet, 0, 0, "amide NH")
	}
	if f.Alkene {
		add(5.0, 6.5, 2, stypes.MultMultiplet, 10.0, 17.0, "vinyl H")
	}
	if f.Hydroxyl {
		add(1.0, 5.5, 1, stypes.MultBroadSinglet, 0, 0, "OH")
	}
	if f.Ester {
		add(3.6, 4.3, 3, stypes.MultSinglet, 0, 0, "ester OCH")
	} else if f.Ether {
		add(3.2, 3.9, 2, stypes.MultMultiplet, 6.0, 7.5, "ether OCH")
	}
	if f.Alkyne {
		add(1.8, 3.1, 1, stypes.MultSinglet, 0, 0, "alkyne CH")
	}
	if f.Amine {
		intensity := 1.0
		if f.PrimaryAmine {
			intensity = 2.0
		}
		add(1.0, 3.0, intensity, stypes.MultBroadSinglet, 0, 0, "amine NH")
	}
	if f.Ketone {
		add(2.0, 2.6, 3, stypes.MultSinglet, 0, 0, "alpha CH")
	}
	if f.AlkylCH {
		add(0.8, 1.4, 3, stypes.MultTriplet, 6.5, 7.5, "alkyl CH3")
		add(1.2, 1.8, 2, stypes.MultMultiplet, 6.5, 7.5, "alkyl CH2")
	}

	return peaks
}

// carbonPeaksForFlags emits proton-decoupled ¹³C peaks: every line is a
// singlet with no coupling, and intensities are arbitrary because ¹³C peak
// heights are not quantitative.
func carbonPeaksForFlags(rng *rand.Rand, f stypes.FeatureFlags) []stypes.NMRPeak {
	var peaks []stypes.NMRPeak
	atomID := 0

	add := func(loShift, hiShift float64, label string) {
		p := stypes.NMRPeak{
			Shift:        jitter(rng, loShift, hiShift),
			Intensity:    jitter(rng, 0.3, 1.0),
			Multiplicity: stypes.MultSinglet,
			Label:        label,
			AtomIDs:      []int{atomID},
		}
		atomID++
		peaks = append(peaks, p)
	}

	if f.Ketone {
		add(195, 210, "C=O (ketone)")
	}
	if f.Aldehyde {
		add(190, 204, "C=O (aldehyde)")
	}
	if f.CarboxylicAcid {
		add(168, 183, "C=O (acid)")
	}
	if f.Ester {
		add(165, 175, "C=O (ester)")
	}
	if f.Amide {
		add(164, 176, "C=O (amide)")
	}
	if f.AromaticRing {
		add(126, 132, "aromatic CH")
		add(134, 142, "aromatic C (quaternary)")
	}
	if f.Alkene {
		add(118, 135, "alkene C")
	}
	if f.Nitrile {
		add(115, 120, "nitrile C")
	}
	if f.Alkyne {
		add(68, 85, "alkyne C")
	}
	if f.Hydroxyl || f.Ether || f.Ester {
		add(55, 75, "C-O")
	}
	if f.Amine || f.Amide {
		add(36, 50, "C-N")
	}
	if f.AlkylCH {
		add(12, 32, "alkyl C")
		add(12, 32, "alkyl C")
	}

	return peaks
}
