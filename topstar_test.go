package arix

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTopStarStartsScattered(t *testing.T) {
	cfg := DefaultConfig()
	s := NewTopStar(&cfg)
	tr := s.Transform()
	if tr.Position != topStarScatter || tr.Scale != 1 {
		t.Errorf("transform = %+v, want scatter position at scale 1", tr)
	}
	d := s.Descriptor()
	want := mgl64.Vec3{0, cfg.Geometry.Height/2 + topStarLift, 0}
	if d.TreePosition != want || d.Color != GoldMetallic {
		t.Errorf("descriptor = %+v", d)
	}
}

func TestTopStarAssembles(t *testing.T) {
	cfg := DefaultConfig()
	s := NewTopStar(&cfg)
	s.SetTarget(1)
	elapsed := 0.0
	for elapsed < 10*cfg.TransitionTime {
		elapsed += 1.0 / 60
		s.Update(Tick{Delta: 1.0 / 60, Elapsed: elapsed})
	}
	tr := s.Transform()
	if d := tr.Position.Sub(s.Descriptor().TreePosition).Len(); d > 0.01 {
		t.Errorf("star is %v from apex", d)
	}
	if tr.Scale < 1-topStarPulse-1e-9 || tr.Scale > 1+topStarPulse+1e-9 {
		t.Errorf("scale = %v, want within pulse range", tr.Scale)
	}
	if tr.Rotation.Y() < 0 || tr.Rotation.Y() >= 2*math.Pi {
		t.Errorf("spin = %v, want within [0, 2π)", tr.Rotation.Y())
	}
}

func TestTopStarSpinSpeedsUp(t *testing.T) {
	cfg := DefaultConfig()
	s := NewTopStar(&cfg)
	s.Update(Tick{Delta: 0.1, Elapsed: 0.1})
	assertNear(t, "scattered spin", s.Transform().Rotation.Y(), 0.1*topStarBaseSpin)

	cfg.TransitionTime = 0.001
	s = NewTopStar(&cfg)
	s.SetTarget(1)
	s.Update(Tick{Delta: 0.1, Elapsed: 0.1})
	assertNear(t, "assembled spin", s.Transform().Rotation.Y(), 0.1*(topStarBaseSpin+topStarSpinGain))
}

func TestTopStarNoPulseWhenScattered(t *testing.T) {
	cfg := DefaultConfig()
	s := NewTopStar(&cfg)
	s.Update(Tick{Delta: 1.0 / 60, Elapsed: 0.8})
	tr := s.Transform()
	if tr.Scale != 1 || tr.Rotation.Z() != 0 {
		t.Errorf("scale = %v, roll = %v; want 1, 0", tr.Scale, tr.Rotation.Z())
	}
}
