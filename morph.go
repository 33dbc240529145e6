package arix

import "math"

// MorphState is the interpolation progress of one particle group between the
// scattered (0) and assembled (1) arrangements.
//
// Target is written only by the toggle path; Current is written only by Step.
type MorphState struct {
	Current float64
	Target  float64
}

// Step damps Current toward Target over dt seconds with the given time
// constant. The exponential form depends only on elapsed time, so one step of
// d equals two steps of d/2, and it saturates at Target for any dt without
// overshooting. Negative or NaN dt is treated as zero; a non-positive time
// constant snaps to Target.
func (m *MorphState) Step(dt, timeConstant float64) {
	if !(dt > 0) {
		return
	}
	if !(timeConstant > 0) {
		m.Current = m.Target
		return
	}
	alpha := -math.Expm1(-dt / timeConstant)
	m.Current += (m.Target - m.Current) * alpha
	m.Current = clamp01(m.Current)
}

// SetTarget sets the target to 1 when assembled is true, otherwise 0.
func (m *MorphState) SetTarget(assembled bool) {
	if assembled {
		m.Target = 1
	} else {
		m.Target = 0
	}
}

// Settled reports whether Current is within eps of Target.
func (m *MorphState) Settled(eps float64) bool {
	return math.Abs(m.Target-m.Current) <= eps
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
