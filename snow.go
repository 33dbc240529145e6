package arix

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Snow volume: flakes live in a 50 x 40 x 50 box centered on the origin and
// wrap from the floor back to the ceiling.
const (
	snowWidth   = 50.0
	snowHeight  = 40.0
	snowSwirl   = 0.5
	snowBaseFPS = 60.0 // flake speeds are tuned in units per 60 Hz frame
)

var (
	snowSpeed  = Range{0.05, 0.15}
	snowFactor = Range{0.2, 1.0}
)

type flake struct {
	x, y, z float64
	speed   float64
	factor  float64
}

// SnowField is ambient falling snow. It is independent of the tree state.
type SnowField struct {
	flakes     []flake
	transforms []Transform
}

// NewSnowField scatters count flakes through the snow volume.
func NewSnowField(rng *rand.Rand, count int) *SnowField {
	if count < 0 {
		count = 0
	}
	if rng == nil {
		rng = NewRand()
	}
	s := &SnowField{
		flakes:     make([]flake, count),
		transforms: make([]Transform, count),
	}
	for i := range s.flakes {
		s.flakes[i] = flake{
			x:      (rng.Float64() - 0.5) * snowWidth,
			y:      (rng.Float64() - 0.5) * snowHeight,
			z:      (rng.Float64() - 0.5) * snowWidth,
			speed:  snowSpeed.Random(rng),
			factor: snowFactor.Random(rng),
		}
	}
	s.compute(0)
	return s
}

// Len returns the number of flakes.
func (s *SnowField) Len() int { return len(s.flakes) }

// Transforms returns the flake transforms from the last Update.
func (s *SnowField) Transforms() []Transform { return s.transforms }

// Update drops every flake by its speed and recomputes the swirl.
func (s *SnowField) Update(tick Tick) {
	if len(s.flakes) == 0 {
		return
	}
	if tick.Delta > 0 {
		for i := range s.flakes {
			f := &s.flakes[i]
			f.y -= f.speed * snowBaseFPS * tick.Delta
			if f.y < -snowHeight/2 {
				f.y = snowHeight/2 - math.Mod(-snowHeight/2-f.y, snowHeight)
			}
		}
	}
	s.compute(tick.Elapsed)
}

func (s *SnowField) compute(t float64) {
	for i := range s.flakes {
		f := &s.flakes[i]
		fi := float64(i)
		s.transforms[i] = Transform{
			Position: mgl64.Vec3{
				f.x + math.Sin(t*f.factor+fi)*snowSwirl,
				f.y,
				f.z + math.Cos(t*f.factor+fi)*snowSwirl,
			},
			Rotation: mgl64.Vec3{t, t, t},
			// Faster flakes read as slightly larger.
			Scale: 0.05 + f.speed,
		}
	}
}
