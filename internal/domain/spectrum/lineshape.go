package spectrum

import "math"

// ─────────────────────────────────────────────────────────────────────────────
// Lineshapes
// ─────────────────────────────────────────────────────────────────────────────

// Lorentzian evaluates a Lorentzian profile at x.  The curve peaks at exactly
// amplitude when x == center and decays with the half-width gamma = fwhm/2.
// A non-positive fwhm yields zero everywhere.
func Lorentzian(x, center, amplitude, fwhm float64) float64 {
	if fwhm <= 0 {
		return 0
	}
	gamma := fwhm / 2
	dx := x - center
	return amplitude * (gamma * gamma) / (dx*dx + gamma*gamma)
}

// Gaussian evaluates a Gaussian profile at x with standard deviation width.
// The curve peaks at exactly amplitude when x == center.  A non-positive
// width yields zero everywhere.
func Gaussian(x, center, amplitude, width float64) float64 {
	if width <= 0 {
		return 0
	}
	dx := x - center
	return amplitude * math.Exp(-(dx*dx)/(2*width*width))
}
