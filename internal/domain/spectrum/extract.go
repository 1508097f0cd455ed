package spectrum

import (
	"math"
	"sort"

	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

// ─────────────────────────────────────────────────────────────────────────────
// Peak extraction — recover labeled peaks back out of the rendered curves
// ─────────────────────────────────────────────────────────────────────────────

// Detection thresholds derived from the synthesis noise floor: a feature has
// to clear the baseline by several noise amplitudes before it counts.
const (
	irDetectThreshold = irBaseline - 2.5*irNoiseAmp
	uvDetectThreshold = uvBaseline + 3*uvNoiseAmp
)

// ExtractIRPeaks locates the transmittance minima corresponding to the
// characteristic bands.  For each expected band it scans a window around the
// band center sized to the band width, keeps the deepest point, and discards
// it if noise could explain the dip.  Duplicate same-label hits inside the
// merge window collapse to the deeper one.  Results come back sorted by
// wavenumber.
func ExtractIRPeaks(curve stypes.Curve, specs []stypes.CharacteristicPeak) []stypes.LabeledPeak {
	if len(curve) == 0 {
		return nil
	}

	var found []stypes.LabeledPeak
	for _, spec := range specs {
		half := math.Max(5, spec.Width/3)
		bestX, bestY := 0.0, math.Inf(1)
		for _, pt := range curve {
			if pt.X < spec.Center-half || pt.X > spec.Center+half {
				continue
			}
			if pt.Y < bestY {
				bestX, bestY = pt.X, pt.Y
			}
		}
		if math.IsInf(bestY, 1) || bestY >= irDetectThreshold {
			continue
		}
		found = append(found, stypes.LabeledPeak{X: bestX, Y: bestY, Label: spec.Label})
	}

	// Merge same-label detections that landed on the same physical band.
	var merged []stypes.LabeledPeak
	for _, p := range found {
		replaced := false
		for i := range merged {
			if merged[i].Label == p.Label && math.Abs(merged[i].X-p.X) < irDedupeWindow {
				if p.Y < merged[i].Y {
					merged[i] = p
				}
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, p)
		}
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].X < merged[j].X })
	return merged
}

// ExtractUVVisPeaks locates absorbance maxima.  Local maxima above the
// detection threshold are labeled with the nearest expected band when one
// sits within twice its width, and "electronic transition" otherwise.
// Maxima within the merge window keep only the strongest, and repeated hits
// on the same expected band collapse to one.
func ExtractUVVisPeaks(curve stypes.Curve, specs []stypes.CharacteristicPeak) []stypes.LabeledPeak {
	var candidates []stypes.LabeledPeak
	for i := 1; i < len(curve)-1; i++ {
		pt := curve[i]
		if pt.Y <= uvDetectThreshold {
			continue
		}
		if pt.Y < curve[i-1].Y || pt.Y < curve[i+1].Y {
			continue
		}
		candidates = append(candidates, stypes.LabeledPeak{
			X:     pt.X,
			Y:     pt.Y,
			Label: uvNearestLabel(specs, pt.X),
		})
	}

	// Strongest-first greedy pass: a candidate survives only when no kept
	// peak is within the merge window, and each assigned band label is
	// claimed at most once.
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Y > candidates[j].Y })
	claimed := map[string]bool{}
	var kept []stypes.LabeledPeak
	for _, c := range candidates {
		if c.Label != "electronic transition" && claimed[c.Label] {
			continue
		}
		tooClose := false
		for _, k := range kept {
			if math.Abs(k.X-c.X) < uvDedupeWindow {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		kept = append(kept, c)
		if c.Label != "electronic transition" {
			claimed[c.Label] = true
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].X < kept[j].X })
	return kept
}

func uvNearestLabel(specs []stypes.CharacteristicPeak, x float64) string {
	label := "electronic transition"
	best := math.Inf(1)
	for _, s := range specs {
		d := math.Abs(s.Center - x)
		if d <= 2*s.Width && d < best {
			best = d
			label = s.Label
		}
	}
	return label
}
