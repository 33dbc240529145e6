package arix

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Star shell: points between skyRadius and skyRadius+skyDepth from the
// origin, each sized up to skyFactor and twinkling at skySpeed.
const (
	skyRadius = 100.0
	skyDepth  = 50.0
	skyFactor = 4.0
	skySpeed  = 1.0
)

// skyColor is the unsaturated near-white of every background star.
var skyColor = Color{0.9, 0.9, 0.9, 1}

// SkyField is the static starfield behind the scene. Stars never move; only
// their size pulses. It ignores the tree state and the scene offset.
type SkyField struct {
	size       []float64
	phase      []float64
	transforms []Transform
}

// NewSkyField places count stars uniformly over directions, each one stepped
// slightly inward from the outer edge of the shell.
func NewSkyField(rng *rand.Rand, count int) *SkyField {
	if count < 0 {
		count = 0
	}
	if rng == nil {
		rng = NewRand()
	}
	s := &SkyField{
		size:       make([]float64, count),
		phase:      make([]float64, count),
		transforms: make([]Transform, count),
	}
	r := skyRadius + skyDepth
	for i := 0; i < count; i++ {
		r -= skyDepth / float64(count) * rng.Float64()
		phi := math.Acos(1 - 2*rng.Float64())
		theta := rng.Float64() * 2 * math.Pi
		sp, cp := math.Sincos(phi)
		st, ct := math.Sincos(theta)
		s.transforms[i].Position = mgl64.Vec3{r * sp * ct, r * cp, r * sp * st}
		s.size[i] = (0.5 + 0.5*rng.Float64()) * skyFactor
		s.phase[i] = rng.Float64() * 2 * math.Pi
	}
	s.compute(0)
	return s
}

// Len returns the number of stars.
func (s *SkyField) Len() int { return len(s.size) }

// Transforms returns the star transforms from the last Update.
func (s *SkyField) Transforms() []Transform { return s.transforms }

// Update recomputes the twinkle for the scene clock.
func (s *SkyField) Update(tick Tick) {
	s.compute(tick.Elapsed)
}

// compute scales each star by (3+sin)/4, between half and full size.
func (s *SkyField) compute(t float64) {
	for i := range s.transforms {
		s.transforms[i].Scale = s.size[i] * (3 + math.Sin(t*skySpeed+s.phase[i])) / 4
	}
}
