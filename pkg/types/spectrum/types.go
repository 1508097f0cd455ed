// Package spectrum defines the spectroscopy Data Transfer Objects,
// enumerations, and request/response structures used across every layer of
// synthspec.  No synthesis logic lives here — only plain data types that are
// safe to import from any layer without creating circular dependencies.
package spectrum

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Modality — spectroscopy technique identifier
// ─────────────────────────────────────────────────────────────────────────────

// Modality identifies which spectroscopy technique a synthesis call targets.
type Modality string

const (
	// ModalityIR is infrared absorption spectroscopy (400–4000 cm⁻¹,
	// transmittance response).
	ModalityIR Modality = "IR"

	// ModalityUVVis is ultraviolet-visible absorption spectroscopy
	// (200–800 nm, absorbance response).
	ModalityUVVis Modality = "UV-VIS"

	// ModalityNMR is nuclear magnetic resonance spectroscopy (chemical shift
	// in ppm, discrete peak list only).  Requires a Nucleus.
	ModalityNMR Modality = "NMR"
)

// IsValid reports whether the modality is one of the supported values.
func (m Modality) IsValid() bool {
	switch m {
	case ModalityIR, ModalityUVVis, ModalityNMR:
		return true
	}
	return false
}

func (m Modality) String() string {
	return string(m)
}

// ParseModality converts a user-supplied string into a Modality.  Matching is
// case-insensitive and tolerant of the common short spellings ("uv",
// "uvvis", "uv-vis").
func ParseModality(s string) (Modality, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "IR":
		return ModalityIR, nil
	case "UV", "UVVIS", "UV-VIS", "UV_VIS":
		return ModalityUVVis, nil
	case "NMR":
		return ModalityNMR, nil
	}
	return "", fmt.Errorf("unsupported modality %q", s)
}

// ─────────────────────────────────────────────────────────────────────────────
// Nucleus — NMR nucleus selector
// ─────────────────────────────────────────────────────────────────────────────

// Nucleus selects which NMR experiment to synthesize.
type Nucleus string

const (
	// NucleusProton is ¹H NMR (0–13 ppm window in practice).
	NucleusProton Nucleus = "1H"

	// NucleusCarbon is ¹³C NMR (0–220 ppm window in practice).
	NucleusCarbon Nucleus = "13C"
)

// IsValid reports whether the nucleus is one of the supported values.
func (n Nucleus) IsValid() bool {
	return n == NucleusProton || n == NucleusCarbon
}

func (n Nucleus) String() string {
	return string(n)
}

// ParseNucleus converts a user-supplied string into a Nucleus.
func ParseNucleus(s string) (Nucleus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1H", "H", "H1", "PROTON":
		return NucleusProton, nil
	case "13C", "C", "C13", "CARBON":
		return NucleusCarbon, nil
	}
	return "", fmt.Errorf("unsupported nucleus %q", s)
}

// ─────────────────────────────────────────────────────────────────────────────
// FeatureFlags — functional-group detection snapshot
// ─────────────────────────────────────────────────────────────────────────────

// FeatureFlags is the fixed-shape record of functional groups detected in a
// molecule descriptor.  One snapshot is created per synthesis call and never
// mutated afterwards.
type FeatureFlags struct {
	Hydroxyl       bool `json:"hydroxyl"`
	CarboxylicAcid bool `json:"carboxylic_acid"`
	Amine          bool `json:"amine"`
	PrimaryAmine   bool `json:"primary_amine"`
	Amide          bool `json:"amide"`
	Ketone         bool `json:"ketone"`
	Aldehyde       bool `json:"aldehyde"`
	Ester          bool `json:"ester"`
	Ether          bool `json:"ether"`
	Alkene         bool `json:"alkene"`
	Alkyne         bool `json:"alkyne"`
	Nitrile        bool `json:"nitrile"`
	AromaticRing   bool `json:"aromatic_ring"`
	AlkylCH        bool `json:"alkyl_ch"`
	VinylCH        bool `json:"vinyl_ch"`
}

// Any reports whether at least one flag is set.
func (f FeatureFlags) Any() bool {
	return f != FeatureFlags{}
}

// ─────────────────────────────────────────────────────────────────────────────
// Peak and curve types
// ─────────────────────────────────────────────────────────────────────────────

// CharacteristicPeak is a synthesizer-proposed spectral feature before it is
// rendered into or extracted from a curve.  Axis units depend on modality:
// wavenumber (cm⁻¹) for IR, wavelength (nm) for UV-Vis, chemical shift (ppm)
// for NMR.
type CharacteristicPeak struct {
	// Center is the axis coordinate of the feature.
	Center float64 `json:"center"`

	// TargetAmplitude is the response value the feature should reach at its
	// center: target transmittance for IR, added absorbance for UV-Vis.
	TargetAmplitude float64 `json:"target_amplitude"`

	// Width is the full width at half maximum (IR) or Gaussian spread
	// (UV-Vis) of the feature.
	Width float64 `json:"width"`

	// Label names the chemical assignment, e.g. "C=O stretch (ketone)".
	Label string `json:"label"`
}

// Point is a single sample of a rendered curve.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is an ordered, fixed-step sequence of points spanning the modality's
// fixed axis window.
type Curve []Point

// LabeledPeak is an extracted, display-ready peak.
type LabeledPeak struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// Multiplicity is the NMR splitting-pattern code.
type Multiplicity string

const (
	MultSinglet      Multiplicity = "s"
	MultDoublet      Multiplicity = "d"
	MultTriplet      Multiplicity = "t"
	MultQuartet      Multiplicity = "q"
	MultMultiplet    Multiplicity = "m"
	MultBroadSinglet Multiplicity = "bs"
)

// NMRPeak is a discrete NMR resonance.  The engine does not render dense NMR
// curves; consumers that need a visual trace render Lorentzian envelopes from
// these peaks themselves.
type NMRPeak struct {
	// Shift is the chemical shift in ppm.
	Shift float64 `json:"shift"`

	// Intensity is the relative intensity (proportional to proton count for
	// ¹H; arbitrary units for ¹³C).
	Intensity float64 `json:"intensity"`

	// Multiplicity is the splitting-pattern code.
	Multiplicity Multiplicity `json:"multiplicity"`

	// CouplingHz is the scalar coupling constant in Hz; zero when not
	// applicable (singlets, broad signals).
	CouplingHz float64 `json:"coupling_hz,omitempty"`

	// Label names the resonance assignment, e.g. "aromatic H".
	Label string `json:"label"`

	// AtomIDs lists simulated atom-index tags for consumers that highlight
	// atoms in a structure view.  Purely cosmetic.
	AtomIDs []int `json:"atom_ids,omitempty"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Request / response DTOs
// ─────────────────────────────────────────────────────────────────────────────

// SynthesisRequest is the input DTO for a spectrum synthesis call.
type SynthesisRequest struct {
	// Descriptor is the line-notation molecule encoding.  Any string is
	// accepted, including empty or chemically invalid notation.
	Descriptor string `json:"descriptor"`

	// Modality selects the spectroscopy technique.
	Modality Modality `json:"modality"`

	// Nucleus selects the NMR experiment; required when Modality is NMR and
	// ignored otherwise.
	Nucleus Nucleus `json:"nucleus,omitempty"`

	// Seed, when non-nil, makes the synthesis deterministic.  Unseeded calls
	// produce intentional spectrum-to-spectrum variability.
	Seed *int64 `json:"seed,omitempty"`
}

// SynthesisResult is the output DTO for a spectrum synthesis call.  For IR
// and UV-Vis, Curve and Peaks are populated; for NMR only NMRPeaks is.
type SynthesisResult struct {
	Modality Modality `json:"modality"`
	Nucleus  Nucleus  `json:"nucleus,omitempty"`

	// Flags is the functional-group snapshot the synthesis was driven by.
	Flags FeatureFlags `json:"flags"`

	// Curve is the dense rendered spectrum (IR, UV-Vis only).
	Curve Curve `json:"curve,omitempty"`

	// Peaks is the extracted labeled peak list, ascending by axis coordinate
	// (IR, UV-Vis only).
	Peaks []LabeledPeak `json:"peaks,omitempty"`

	// NMRPeaks is the discrete resonance list, descending by chemical shift
	// (NMR only).
	NMRPeaks []NMRPeak `json:"nmr_peaks,omitempty"`
}

// Empty reports whether the result carries nothing to display.
func (r SynthesisResult) Empty() bool {
	return len(r.Curve) == 0 && len(r.Peaks) == 0 && len(r.NMRPeaks) == 0
}

// Molecule is a catalog entry: a named molecule with its descriptor.
type Molecule struct {
	Name       string `json:"name"`
	Formula    string `json:"formula"`
	Descriptor string `json:"descriptor"`
}
