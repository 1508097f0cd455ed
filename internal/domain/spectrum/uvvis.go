package spectrum

import (
	"math/rand"
	"sort"

	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

// ─────────────────────────────────────────────────────────────────────────────
// UV-Vis synthesis — absorbance curve over 200–800 nm
// ─────────────────────────────────────────────────────────────────────────────

const (
	uvMin  = 200.0
	uvMax  = 800.0
	uvStep = 1.0

	// Absorbance baseline and noise, in AU.
	uvBaseline = 0.03
	uvNoiseAmp = 0.004

	// Same-region peaks closer than this are merged during extraction.
	uvDedupeWindow = 10.0
)

// uvPeaksForFlags maps chromophore-bearing features to electronic
// transitions.  Saturated molecules legitimately produce no bands at all;
// the caller gets a near-flat baseline in that case.
func uvPeaksForFlags(rng *rand.Rand, f stypes.FeatureFlags) []stypes.CharacteristicPeak {
	var peaks []stypes.CharacteristicPeak

	add := func(loCenter, hiCenter, loA, hiA, loW, hiW float64, label string) {
		peaks = append(peaks, stypes.CharacteristicPeak{
			Center:          jitter(rng, loCenter, hiCenter),
			TargetAmplitude: jitter(rng, loA, hiA),
			Width:           jitter(rng, loW, hiW),
			Label:           label,
		})
	}

	if f.AromaticRing {
		add(200, 225, 0.8, 1.3, 10, 18, "aromatic pi->pi* (E band)")
		add(245, 270, 0.10, 0.25, 12, 22, "aromatic pi->pi* (B band)")
	}
	if f.Ketone || f.Aldehyde {
		add(270, 300, 0.015, 0.05, 12, 20, "n->pi* (carbonyl)")
	}
	if f.Ester || f.Amide || f.CarboxylicAcid {
		add(200, 230, 0.3, 0.6, 10, 16, "pi->pi* (ester/amide)")
	}
	if f.Alkene {
		add(200, 215, 0.4, 0.8, 8, 14, "pi->pi* (alkene)")
	}

	return peaks
}

// SynthesizeUVVis renders an absorbance spectrum.  Electronic bands are
// broad, so each is a Gaussian added onto a shallow baseline; absorbance
// is clamped to be non-negative.
func SynthesizeUVVis(rng *rand.Rand, f stypes.FeatureFlags) (stypes.Curve, []stypes.CharacteristicPeak) {
	peaks := uvPeaksForFlags(rng, f)
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Center < peaks[j].Center })

	n := int((uvMax-uvMin)/uvStep) + 1
	curve := make(stypes.Curve, 0, n)
	for i := 0; i < n; i++ {
		x := uvMin + float64(i)*uvStep
		y := uvBaseline
		y += uvNoiseAmp * (2*rng.Float64() - 1)
		for _, p := range peaks {
			y += Gaussian(x, p.Center, p.TargetAmplitude, p.Width)
		}
		if y < 0 {
			y = 0
		}
		curve = append(curve, stypes.Point{X: x, Y: y})
	}
	return curve, peaks
}
