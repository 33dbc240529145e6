package arix

import (
	"math"
	"testing"
)

func TestMorphStepConvergesMonotonically(t *testing.T) {
	for _, tc := range []float64{0.1, 1.5, 10} {
		m := MorphState{Target: 1}
		prev := m.Current
		steps := 0
		for m.Current <= 0.999 {
			m.Step(1.0/60, tc)
			if m.Current <= prev {
				t.Fatalf("tc=%v step %d: %v did not increase from %v", tc, steps, m.Current, prev)
			}
			prev = m.Current
			steps++
			// ln(1000) * tc * 60 frames, with headroom.
			if steps > int(8*tc*60)+10 {
				t.Fatalf("tc=%v: not converged after %d steps (current %v)", tc, steps, m.Current)
			}
		}
	}
}

func TestMorphStepFrameRateIndependent(t *testing.T) {
	for _, d := range []float64{1.0 / 144, 1.0 / 60, 0.1, 0.75, 3} {
		one := MorphState{Current: 0.2, Target: 1}
		two := one
		one.Step(d, 1.5)
		two.Step(d/2, 1.5)
		two.Step(d/2, 1.5)
		if !approxEqual(one.Current, two.Current, 1e-12) {
			t.Errorf("d=%v: one step %v, two half steps %v", d, one.Current, two.Current)
		}
	}
}

func TestMorphStepLargeDeltaSaturates(t *testing.T) {
	m := MorphState{Current: 0, Target: 1}
	m.Step(1e9, 1.5)
	assertNear(t, "current", m.Current, 1)

	m.Target = 0
	m.Step(math.Inf(1), 1.5)
	assertNear(t, "current", m.Current, 0)
}

func TestMorphStepZeroOrNegativeDelta(t *testing.T) {
	for _, dt := range []float64{0, -1, -1e9, math.NaN()} {
		m := MorphState{Current: 0.4, Target: 1}
		m.Step(dt, 1.5)
		if m.Current != 0.4 {
			t.Errorf("Step(%v) moved current to %v, want 0.4", dt, m.Current)
		}
	}
}

func TestMorphStepNonPositiveTimeConstantSnaps(t *testing.T) {
	m := MorphState{Current: 0.4, Target: 1}
	m.Step(0.016, 0)
	assertNear(t, "current", m.Current, 1)
}

func TestMorphStepMatchesClosedForm(t *testing.T) {
	m := MorphState{Target: 1}
	total := 0.0
	for i := 0; i < 90; i++ {
		m.Step(1.0/60, 1.5)
		total += 1.0 / 60
	}
	want := 1 - math.Exp(-total/1.5)
	if !approxEqual(m.Current, want, 1e-9) {
		t.Errorf("current = %v, want %v", m.Current, want)
	}
}

func TestMorphSetTargetAndSettled(t *testing.T) {
	var m MorphState
	m.SetTarget(true)
	if m.Target != 1 {
		t.Errorf("Target = %v, want 1", m.Target)
	}
	if m.Settled(0.01) {
		t.Error("should not be settled at 0 with target 1")
	}
	m.SetTarget(false)
	if m.Target != 0 || !m.Settled(0) {
		t.Errorf("Target = %v, settled = %v; want 0, true", m.Target, m.Settled(0))
	}
}
