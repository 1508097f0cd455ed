package spectrum

import (
	"math"
	"math/rand"
	"sort"

	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

// ─────────────────────────────────────────────────────────────────────────────
// IR synthesis — transmittance curve over 400–4000 cm⁻¹
// ─────────────────────────────────────────────────────────────────────────────

const (
	irMin  = 400.0
	irMax  = 4000.0
	irStep = 2.0

	// Transmittance baseline and its perturbations, in %T.
	irBaseline    = 98.0
	irNoiseAmp    = 0.4
	irDriftAmp    = 0.35
	irDriftPeriod = 220.0

	irClampMin = 0.1
	irClampMax = 100.0

	// Same-label peaks closer than this are merged during extraction.
	irDedupeWindow = 15.0
)

// irPeaksForFlags maps detected features to characteristic absorption bands.
// Centers, depths (target %T at the band minimum) and widths are jittered
// inside literature-informed windows so repeated syntheses of the same
// molecule look like repeated acquisitions, not copies.
func irPeaksForFlags(rng *rand.Rand, f stypes.FeatureFlags) []stypes.CharacteristicPeak {
	var peaks []stypes.CharacteristicPeak

	add := func(loCenter, hiCenter, loT, hiT, loW, hiW float64, label string) {
		peaks = append(peaks, stypes.CharacteristicPeak{
			Center:          jitter(rng, loCenter, hiCenter),
			TargetAmplitude: jitter(rng, loT, hiT),
			Width:           jitter(rng, loW, hiW),
			Label:           label,
		})
	}

	if f.Hydroxyl {
		add(3200, 3550, 20, 35, 150, 250, "O-H stretch (hydroxyl)")
	}

	// Carbonyl-bearing groups are mutually exclusive for the C=O band:
	// the most specific detected group claims it.
	switch {
	case f.CarboxylicAcid:
		add(2800, 3100, 30, 45, 300, 450, "O-H stretch (carboxylic acid)")
		add(1700, 1725, 5, 12, 10, 18, "C=O stretch (carboxylic acid)")
	case f.Ester:
		add(1735, 1750, 6, 14, 10, 16, "C=O stretch (ester)")
		add(1160, 1250, 25, 40, 30, 60, "C-O stretch (ester)")
	case f.Amide:
		add(1630, 1695, 10, 20, 14, 24, "C=O stretch (amide)")
		add(3160, 3360, 25, 40, 80, 140, "N-H stretch (amide)")
	case f.Aldehyde:
		add(1720, 1740, 6, 13, 10, 16, "C=O stretch (aldehyde)")
		add(2700, 2850, 45, 60, 20, 40, "C-H stretch (aldehyde)")
	case f.Ketone:
		add(1705, 1725, 5, 13, 10, 16, "C=O stretch (ketone)")
	}

	if f.Amine {
		c := jitter(rng, 3300, 3420)
		peaks = append(peaks, stypes.CharacteristicPeak{
			Center:          c,
			TargetAmplitude: jitter(rng, 30, 45),
			Width:           jitter(rng, 60, 110),
			Label:           "N-H stretch (amine)",
		})
		if f.PrimaryAmine {
			// Primary amines show a symmetric/asymmetric doublet.
			peaks = append(peaks, stypes.CharacteristicPeak{
				Center:          c + jitter(rng, 60, 90),
				TargetAmplitude: jitter(rng, 30, 45),
				Width:           jitter(rng, 60, 110),
				Label:           "N-H stretch (amine)",
			})
		}
	}

	if f.AlkylCH {
		add(2850, 2960, 35, 55, 30, 60, "C-H stretch (sp3)")
		add(1370, 1465, 50, 70, 20, 40, "C-H bend (alkyl)")
	}
	if f.VinylCH {
		add(3010, 3090, 55, 75, 20, 40, "C-H stretch (sp2)")
	}
	if f.Alkyne {
		add(2100, 2250, 55, 75, 15, 30, "C#C stretch (alkyne)")
		add(3260, 3320, 35, 50, 30, 60, "C-H stretch (terminal alkyne)")
	}
	if f.Nitrile {
		add(2210, 2260, 30, 45, 12, 20, "C#N stretch (nitrile)")
	}
	if f.Alkene {
		add(1620, 1680, 45, 65, 15, 30, "C=C stretch (alkene)")
		add(880, 990, 35, 55, 20, 40, "C-H bend (vinyl out-of-plane)")
	}
	if f.AromaticRing {
		add(1585, 1615, 35, 55, 12, 24, "aromatic ring stretch")
		add(1480, 1510, 45, 60, 12, 24, "aromatic ring stretch")
		add(690, 840, 15, 35, 20, 40, "aromatic C-H bend (out-of-plane)")
	}

	return peaks
}

// addFingerprintPeaks scatters a handful of unassigned medium bands through
// the fingerprint region.  A candidate is rejected when it would land inside
// a strong characteristic band or on top of a previous fingerprint band, so
// the diagnostic region stays readable.
func addFingerprintPeaks(rng *rand.Rand, peaks []stypes.CharacteristicPeak) []stypes.CharacteristicPeak {
	n := 3 + rng.Intn(5)
	for i := 0; i < n; i++ {
		for attempt := 0; attempt < 8; attempt++ {
			c := jitter(rng, 600, 1350)
			if irFingerprintCollides(peaks, c) {
				continue
			}
			peaks = append(peaks, stypes.CharacteristicPeak{
				Center:          c,
				TargetAmplitude: jitter(rng, 55, 85),
				Width:           jitter(rng, 15, 45),
				Label:           "fingerprint band",
			})
			break
		}
	}
	return peaks
}

func irFingerprintCollides(peaks []stypes.CharacteristicPeak, c float64) bool {
	for _, p := range peaks {
		if p.Label == "fingerprint band" {
			if math.Abs(p.Center-c) < 16 {
				return true
			}
			continue
		}
		// Keep clear of strong assigned bands.
		if p.TargetAmplitude < 50 && math.Abs(p.Center-c) < 40 {
			return true
		}
	}
	return false
}

// SynthesizeIR renders a transmittance spectrum for the detected features.
// Every absorption is a Lorentzian dip subtracted from the baseline; noise
// and a slow sinusoidal drift are layered on before clamping to the
// physically plausible transmittance range.
func SynthesizeIR(rng *rand.Rand, f stypes.FeatureFlags, descriptor string) (stypes.Curve, []stypes.CharacteristicPeak) {
	peaks := irPeaksForFlags(rng, f)
	if len(peaks) == 0 && descriptor != "" {
		// Unrecognised but non-empty input still gets the near-universal
		// aliphatic stretch so the curve is not a flat baseline.
		peaks = append(peaks, stypes.CharacteristicPeak{
			Center:          jitter(rng, 2850, 2960),
			TargetAmplitude: jitter(rng, 45, 65),
			Width:           jitter(rng, 30, 60),
			Label:           "C-H stretch (sp3)",
		})
	}
	peaks = addFingerprintPeaks(rng, peaks)
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Center < peaks[j].Center })
	return renderIRCurve(rng, peaks), peaks
}

// renderIRCurve rasterises absorption bands into the transmittance curve:
// baseline, slow drift, uniform noise, then each band subtracted as a
// Lorentzian dip, clamped to the plausible range.
func renderIRCurve(rng *rand.Rand, peaks []stypes.CharacteristicPeak) stypes.Curve {
	n := int((irMax-irMin)/irStep) + 1
	curve := make(stypes.Curve, 0, n)
	for i := 0; i < n; i++ {
		x := irMin + float64(i)*irStep
		y := irBaseline
		y += irDriftAmp * math.Sin(x/irDriftPeriod)
		y += irNoiseAmp * (2*rng.Float64() - 1)
		for _, p := range peaks {
			depth := irBaseline - p.TargetAmplitude
			y -= Lorentzian(x, p.Center, depth, p.Width)
		}
		if y < irClampMin {
			y = irClampMin
		}
		if y > irClampMax {
			y = irClampMax
		}
		curve = append(curve, stypes.Point{X: x, Y: y})
	}
	return curve
}

// jitter draws uniformly from [lo, hi).
func jitter(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
