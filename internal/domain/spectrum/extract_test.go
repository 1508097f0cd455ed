package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

func TestExtractIRPeaks_RecoversSynthesizedBands(t *testing.T) {
	d := NewPatternDetector()
	for seed := int64(0); seed < 5; seed++ {
		curve, specs := SynthesizeIR(testRNG(seed), d.Detect("CC(=O)C"), "CC(=O)C")
		peaks := ExtractIRPeaks(curve, specs)

		require.NotEmptyf(t, peaks, "seed %d", seed)

		var co *stypes.LabeledPeak
		for i := range peaks {
			if peaks[i].Label == "C=O stretch (ketone)" {
				co = &peaks[i]
			}
		}
		require.NotNilf(t, co, "seed %d", seed)
		assert.GreaterOrEqualf(t, co.X, 1695.0, "seed %d", seed)
		assert.LessOrEqualf(t, co.X, 1735.0, "seed %d", seed)
		assert.Lessf(t, co.Y, 15.0, "seed %d", seed)
	}
}

func TestExtractIRPeaks_SortedAndBelowThreshold(t *testing.T) {
	d := NewPatternDetector()
	curve, specs := SynthesizeIR(testRNG(8), d.Detect("c1ccccc1O"), "c1ccccc1O")
	peaks := ExtractIRPeaks(curve, specs)

	for i, p := range peaks {
		assert.Less(t, p.Y, irDetectThreshold)
		if i > 0 {
			assert.Greater(t, p.X, peaks[i-1].X)
		}
	}
}

func TestExtractIRPeaks_MergesSameLabelWithinWindow(t *testing.T) {
	// Two spec entries for the same physical band must yield one peak.
	curve := make(stypes.Curve, 0, 200)
	for x := 1600.0; x <= 1800; x += 2 {
		y := irBaseline - Lorentzian(x, 1715, 90, 14)
		curve = append(curve, stypes.Point{X: x, Y: y})
	}
	specs := []stypes.CharacteristicPeak{
		{Center: 1712, TargetAmplitude: 8, Width: 14, Label: "C=O stretch (ketone)"},
		{Center: 1718, TargetAmplitude: 8, Width: 14, Label: "C=O stretch (ketone)"},
	}
	peaks := ExtractIRPeaks(curve, specs)
	require.Len(t, peaks, 1)
	assert.InDelta(t, 1715, peaks[0].X, 3)
}

func TestExtractIRPeaks_ShallowDipIgnored(t *testing.T) {
	curve := make(stypes.Curve, 0, 100)
	for x := 2000.0; x <= 2200; x += 2 {
		// Dip of 0.5 %T: inside the noise band, should not register.
		y := irBaseline - Lorentzian(x, 2100, 0.5, 20)
		curve = append(curve, stypes.Point{X: x, Y: y})
	}
	specs := []stypes.CharacteristicPeak{
		{Center: 2100, TargetAmplitude: 97.5, Width: 20, Label: "C#C stretch (alkyne)"},
	}
	assert.Empty(t, ExtractIRPeaks(curve, specs))
}

func TestExtractIRPeaks_EmptyCurve(t *testing.T) {
	assert.Nil(t, ExtractIRPeaks(nil, []stypes.CharacteristicPeak{{Center: 1715}}))
}

func TestExtractUVVisPeaks_RecoversAromaticBands(t *testing.T) {
	d := NewPatternDetector()
	for seed := int64(0); seed < 5; seed++ {
		curve, specs := SynthesizeUVVis(testRNG(seed), d.Detect("c1ccccc1"))
		peaks := ExtractUVVisPeaks(curve, specs)

		require.NotEmptyf(t, peaks, "seed %d", seed)
		labels := map[string]int{}
		for _, p := range peaks {
			labels[p.Label]++
			assert.Greaterf(t, p.Y, uvDetectThreshold, "seed %d", seed)
		}
		// Each assigned band appears at most once.
		assert.LessOrEqual(t, labels["aromatic pi->pi* (E band)"], 1)
		assert.LessOrEqual(t, labels["aromatic pi->pi* (B band)"], 1)
		assert.GreaterOrEqual(t, labels["aromatic pi->pi* (E band)"]+labels["aromatic pi->pi* (B band)"], 1)
	}
}

func TestExtractUVVisPeaks_UnassignedMaximumGetsGenericLabel(t *testing.T) {
	curve := make(stypes.Curve, 0, 601)
	for x := 200.0; x <= 800; x++ {
		y := uvBaseline + Gaussian(x, 500, 0.4, 12)
		curve = append(curve, stypes.Point{X: x, Y: y})
	}
	peaks := ExtractUVVisPeaks(curve, nil)
	require.Len(t, peaks, 1)
	assert.Equal(t, "electronic transition", peaks[0].Label)
	assert.InDelta(t, 500, peaks[0].X, 2)
}

func TestExtractUVVisPeaks_FlatCurveYieldsNothing(t *testing.T) {
	d := NewPatternDetector()
	curve, specs := SynthesizeUVVis(testRNG(3), d.Detect("CCC"))
	assert.Empty(t, ExtractUVVisPeaks(curve, specs))
}

func TestExtractUVVisPeaks_MergeWindow(t *testing.T) {
	curve := make(stypes.Curve, 0, 601)
	for x := 200.0; x <= 800; x++ {
		y := uvBaseline + Gaussian(x, 300, 0.5, 8) + Gaussian(x, 306, 0.3, 8)
		curve = append(curve, stypes.Point{X: x, Y: y})
	}
	peaks := ExtractUVVisPeaks(curve, nil)
	// Shoulders inside the merge window collapse onto the stronger maximum.
	require.Len(t, peaks, 1)
	assert.Less(t, math.Abs(peaks[0].X-300), 4.0)
}
