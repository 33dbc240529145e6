package arix

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// topStarScatter is where the crowning star waits while the tree is scattered.
var topStarScatter = mgl64.Vec3{15, 15, -10}

const (
	topStarLift     = 0.5 // gap between the cone apex and the star
	topStarBaseSpin = 0.5 // rad/s when scattered
	topStarSpinGain = 1.5 // extra rad/s at full morph
	topStarRoll     = 0.1
	topStarPulse    = 0.1
)

// TopStar is the single crowning ornament. It follows the same damping law as
// the instanced groups but moves as one object with a pulsing scale and a
// spin that speeds up as the tree assembles.
type TopStar struct {
	tree    mgl64.Vec3
	scatter mgl64.Vec3
	morph   MorphState
	spin    float64

	timeConstant float64
	transform    Transform
}

// NewTopStar places the star just above the apex of the configured tree.
func NewTopStar(cfg *Config) *TopStar {
	s := &TopStar{
		tree:         mgl64.Vec3{0, cfg.Geometry.Height/2 + topStarLift, 0},
		scatter:      topStarScatter,
		timeConstant: cfg.TransitionTime,
	}
	s.transform = Transform{Position: s.scatter, Scale: 1}
	return s
}

// Descriptor returns the star's fixed record. It has no scale or color variety.
func (s *TopStar) Descriptor() Descriptor {
	return Descriptor{
		TreePosition:    s.tree,
		ScatterPosition: s.scatter,
		Scale:           1,
		Color:           GoldMetallic,
	}
}

// Morph returns the current morph state.
func (s *TopStar) Morph() MorphState { return s.morph }

// SetTarget sets the morph target.
func (s *TopStar) SetTarget(target float64) { s.morph.Target = target }

// Transform returns the transform computed by the last Update.
func (s *TopStar) Transform() Transform { return s.transform }

// Update damps the morph and recomputes the star's transform.
func (s *TopStar) Update(tick Tick) {
	s.morph.Step(tick.Delta, s.timeConstant)
	m := s.morph.Current

	if tick.Delta > 0 {
		s.spin = math.Mod(s.spin+tick.Delta*(topStarBaseSpin+m*topStarSpinGain), 2*math.Pi)
	}

	s.transform = Transform{
		Position: lerpVec(s.scatter, s.tree, m),
		Rotation: mgl64.Vec3{0, s.spin, math.Sin(tick.Elapsed) * topStarRoll * m},
		Scale:    1 + math.Sin(tick.Elapsed*2)*topStarPulse*m,
	}
}
