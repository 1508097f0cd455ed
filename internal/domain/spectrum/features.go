// Package spectrum implements the synthetic spectroscopy engine: shallow
// functional-group detection over a line-notation molecule descriptor,
// per-modality characteristic-peak synthesis, dense curve rendering for IR
// and UV-Vis, and labeled peak extraction.
//
// The engine is stateless: every synthesis call is a pure computation over
// its inputs plus an injected pseudo-random source.  Nothing here performs
// I/O or holds cross-call state, so concurrent calls need no coordination.
package spectrum

import (
	"regexp"
	"strings"

	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

// Detector is the functional-group detection capability.  The pattern
// implementation below works on raw substrings; a real chemical parser can be
// substituted without touching the synthesis strategies.
type Detector interface {
	Detect(descriptor string) stypes.FeatureFlags
}

// ─────────────────────────────────────────────────────────────────────────────
// PatternDetector — substring/regexp heuristics
// ─────────────────────────────────────────────────────────────────────────────

// PatternDetector flags functional groups by substring containment and small
// regular expressions over the unparsed descriptor.  The checks are
// deliberately approximate: they do not build a molecular graph, they can
// overlap (the ether check matches the C–O–C motif inside an ester), and they
// degrade to "feature absent" on any input they do not recognise.
type PatternDetector struct{}

// NewPatternDetector returns the default substring-heuristic detector.
func NewPatternDetector() *PatternDetector {
	return &PatternDetector{}
}

var (
	// Carboxylic acid: C(=O)O terminating the chain, closing a branch, or
	// with an explicit H.
	reAcid = regexp.MustCompile(`C\(=O\)O(H|\)|$)`)

	// Ester: C(=O)O followed by another atom, or the alkoxy-carbonyl
	// spelling with the ester oxygen written first.
	reEster = regexp.MustCompile(`C\(=O\)O[A-Za-z\[]|[A-Za-z0-9]OC\(=O\)`)

	// Amide: carbonyl bound to nitrogen, either spelling direction.
	reAmide = regexp.MustCompile(`C\(=O\)N|NC\(=O\)|C\(N\)=O`)

	// Ketone: carbonyl flanked by carbon on the branch side.
	reKetone = regexp.MustCompile(`C\(=O\)[Cc]`)

	// Aldehyde: terminal C=O or an explicit CHO group.
	reAldehyde = regexp.MustCompile(`C=O$|C\(=O\)$|\[CH\]=O|CHO`)

	// Hydroxyl: an oxygen carrying an implicit or explicit hydrogen — an
	// explicit OH, a terminal O not double-bonded, or a bare O branch.
	reHydroxyl = regexp.MustCompile(`OH|\[OH?\]|[^=]O$|\(O\)`)

	// Ether: the C–O–C motif.  Also matches the alkoxy oxygen of an ester;
	// that overlap is a documented property of the heuristic, not a defect
	// to fix.
	reEther = regexp.MustCompile(`[A-Za-z0-9\)]O[A-Za-z\(]`)

	// Primary amine: explicit NH2, or a terminal/leading nitrogen (which
	// in a hydrogen-implicit descriptor carries two hydrogens).
	rePrimaryAmine = regexp.MustCompile(`NH2|\[NH2?\]|N$|^N|\(N\)`)

	// Aromatic ring: lowercase aromatic ring-opening atoms, or the Kekulé
	// benzene spelling with uppercase atoms and alternating double bonds.
	reAromatic = regexp.MustCompile(`[cnos][0-9]|C[0-9]=CC=CC=C[0-9]`)

	// sp³ carbon: an uppercase C neither preceded nor followed (across ring
	// digits) by a multiple-bond symbol.
	reAlkylC = regexp.MustCompile(`(^|[^=#])C[0-9]*($|[^=#0-9])`)
)

// Detect applies every pattern check to the descriptor and then resolves the
// mutually-adjusting cases: a carboxylic acid suppresses the generic
// hydroxyl flag, an amide suppresses the amine flags, and an aromatic ring
// suppresses the generic alkene flag, because the same textual motif would
// otherwise double-count.  An empty descriptor yields all-false flags.
func (d *PatternDetector) Detect(descriptor string) stypes.FeatureFlags {
	s := strings.TrimSpace(descriptor)
	if s == "" {
		return stypes.FeatureFlags{}
	}

	var f stypes.FeatureFlags

	f.CarboxylicAcid = reAcid.MatchString(s)
	f.Ester = reEster.MatchString(s)
	f.Amide = reAmide.MatchString(s)
	f.Ketone = reKetone.MatchString(s)
	f.Aldehyde = reAldehyde.MatchString(s)
	f.Hydroxyl = reHydroxyl.MatchString(s)
	f.Ether = reEther.MatchString(s)
	f.Nitrile = strings.Contains(s, "C#N") || strings.Contains(s, "N#C")
	f.Alkyne = strings.Contains(s, "C#C")
	f.Alkene = strings.Contains(s, "C=C") || strings.Contains(s, "c=c")
	f.AromaticRing = reAromatic.MatchString(s)

	// Nitrogen checks: strip the nitrile motif first so its N does not
	// register as an amine.
	nStripped := strings.ReplaceAll(strings.ReplaceAll(s, "C#N", ""), "N#C", "")
	f.Amine = strings.Contains(nStripped, "N")
	f.PrimaryAmine = f.Amine && rePrimaryAmine.MatchString(nStripped)

	f.AlkylCH = reAlkylC.MatchString(s)

	// Mutual adjustments.
	if f.CarboxylicAcid {
		f.Hydroxyl = false
	}
	if f.Amide {
		f.Amine = false
		f.PrimaryAmine = false
	}
	if f.AromaticRing {
		f.Alkene = false
	}
	f.VinylCH = f.Alkene || f.AromaticRing

	return f
}
