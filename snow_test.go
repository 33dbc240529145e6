package arix

import (
	"math"
	"testing"
)

func TestSnowFieldCount(t *testing.T) {
	if n := NewSnowField(seeded(1), 300).Len(); n != 300 {
		t.Errorf("Len = %d, want 300", n)
	}
	if n := NewSnowField(seeded(1), -4).Len(); n != 0 {
		t.Errorf("Len = %d, want 0 for negative count", n)
	}
}

func TestSnowStaysInVolume(t *testing.T) {
	s := NewSnowField(seeded(2), 200)
	elapsed := 0.0
	for _, dt := range []float64{1.0 / 60, 0.5, 3, 1000, 1.0 / 144} {
		elapsed += dt
		s.Update(Tick{Delta: dt, Elapsed: elapsed})
		for i, tr := range s.Transforms() {
			if y := tr.Position.Y(); y < -snowHeight/2 || y > snowHeight/2 {
				t.Fatalf("dt=%v flake %d y = %v, outside volume", dt, i, y)
			}
			lim := snowWidth/2 + snowSwirl
			if math.Abs(tr.Position.X()) > lim || math.Abs(tr.Position.Z()) > lim {
				t.Fatalf("flake %d drifted to %v", i, tr.Position)
			}
		}
	}
}

func TestSnowFallsFrameRateIndependent(t *testing.T) {
	a := NewSnowField(seeded(3), 20)
	b := NewSnowField(seeded(3), 20)
	a.Update(Tick{Delta: 0.1, Elapsed: 0.1})
	b.Update(Tick{Delta: 0.05, Elapsed: 0.05})
	b.Update(Tick{Delta: 0.05, Elapsed: 0.1})
	for i := range a.Transforms() {
		assertNear(t, "y", a.Transforms()[i].Position.Y(), b.Transforms()[i].Position.Y())
	}
}

func TestSnowScaleTracksSpeed(t *testing.T) {
	s := NewSnowField(seeded(4), 100)
	for i, tr := range s.Transforms() {
		want := 0.05 + s.flakes[i].speed
		assertNear(t, "scale", tr.Scale, want)
		if tr.Scale < 0.1 || tr.Scale >= 0.2 {
			t.Fatalf("flake %d scale = %v, outside [0.1, 0.2)", i, tr.Scale)
		}
	}
}
