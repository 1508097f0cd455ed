package spectrum

import (
	"math/rand"
	"strings"
	"time"

	"github.com/synthspec/synthspec/pkg/errors"
	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

// ─────────────────────────────────────────────────────────────────────────────
// Synthesizer — modality dispatch
// ─────────────────────────────────────────────────────────────────────────────

// Synthesizer ties feature detection, curated overrides and the per-modality
// strategies together.  It holds no mutable state, so a single instance is
// safe for concurrent use.
type Synthesizer struct {
	detector  Detector
	overrides OverrideTable
}

// Option customises a Synthesizer.
type Option func(*Synthesizer)

// WithDetector swaps in an alternative feature detector.
func WithDetector(d Detector) Option {
	return func(s *Synthesizer) { s.detector = d }
}

// WithOverrides replaces the curated reference table.  Pass an empty table
// to disable overrides entirely.
func WithOverrides(t OverrideTable) Option {
	return func(s *Synthesizer) { s.overrides = t }
}

// NewSynthesizer builds a Synthesizer with the pattern detector and the
// built-in override table unless options say otherwise.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		detector:  NewPatternDetector(),
		overrides: DefaultOverrides(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Detect exposes the configured detector.
func (s *Synthesizer) Detect(descriptor string) stypes.FeatureFlags {
	return s.detector.Detect(descriptor)
}

// Synthesize produces a complete result for one descriptor and modality.
// A nil rng gets a time-seeded source, which is the unseeded
// acquisition-to-acquisition variability path.  An empty descriptor is not
// an error: it yields an empty result, mirroring an empty cuvette.
func (s *Synthesizer) Synthesize(rng *rand.Rand, descriptor string, modality stypes.Modality, nucleus stypes.Nucleus) (stypes.SynthesisResult, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	descriptor = strings.TrimSpace(descriptor)

	res := stypes.SynthesisResult{Modality: modality}
	if !modality.IsValid() {
		return res, errors.New(errors.CodeModalityUnsupported,
			"unsupported modality").WithDetail(string(modality))
	}
	if modality == stypes.ModalityNMR {
		if !nucleus.IsValid() {
			return res, errors.New(errors.CodeNucleusUnsupported,
				"unsupported nucleus").WithDetail(string(nucleus))
		}
		res.Nucleus = nucleus
	}
	if descriptor == "" {
		return res, nil
	}

	flags := s.detector.Detect(descriptor)
	res.Flags = flags
	ov, hasOverride := s.overrides[descriptor]

	switch modality {
	case stypes.ModalityIR:
		if hasOverride && ov.IR != nil {
			res.Curve, res.Peaks = s.renderCuratedIR(rng, ov.IR)
		} else {
			curve, specs := SynthesizeIR(rng, flags, descriptor)
			res.Curve = curve
			res.Peaks = ExtractIRPeaks(curve, specs)
		}

	case stypes.ModalityUVVis:
		curve, specs := SynthesizeUVVis(rng, flags)
		res.Curve = curve
		res.Peaks = ExtractUVVisPeaks(curve, specs)

	case stypes.ModalityNMR:
		switch {
		case nucleus == stypes.NucleusProton && hasOverride && ov.Proton != nil:
			res.NMRPeaks = cloneNMRPeaks(ov.Proton)
		case nucleus == stypes.NucleusCarbon && hasOverride && ov.Carbon != nil:
			res.NMRPeaks = cloneNMRPeaks(ov.Carbon)
		default:
			res.NMRPeaks = SynthesizeNMR(rng, flags, nucleus)
		}
	}

	return res, nil
}

// renderCuratedIR renders curated band specs through the same noise, drift
// and fingerprint pipeline as the heuristic path, then extracts peaks.
func (s *Synthesizer) renderCuratedIR(rng *rand.Rand, specs []stypes.CharacteristicPeak) (stypes.Curve, []stypes.LabeledPeak) {
	bands := make([]stypes.CharacteristicPeak, len(specs))
	copy(bands, specs)
	bands = addFingerprintPeaks(rng, bands)
	curve := renderIRCurve(rng, bands)
	return curve, ExtractIRPeaks(curve, bands)
}

func cloneNMRPeaks(in []stypes.NMRPeak) []stypes.NMRPeak {
	out := make([]stypes.NMRPeak, len(in))
	copy(out, in)
	for i := range out {
		if len(in[i].AtomIDs) > 0 {
			out[i].AtomIDs = append([]int(nil), in[i].AtomIDs...)
		}
	}
	return out
}
