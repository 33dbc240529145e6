package arix

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// floatCutoff is the morph value above which the idle bob is switched off.
	floatCutoff = 0.95
	// floatAmplitude is the bob amplitude at zero morph, before the 2x factor.
	floatAmplitude = 0.02
	// spinCutoff is the morph value above which the tree yaw starts.
	spinCutoff = 0.1
	// decorSpin is the constant yaw rate of ornaments and stars in rad/s.
	decorSpin = 0.5
)

// Transform is the effective placement of one particle for one frame.
type Transform struct {
	Position mgl64.Vec3
	// Rotation is an Euler orientation (XYZ order, radians).
	Rotation mgl64.Vec3
	Scale    float64
}

// Matrix composes Translate * Rotate * Scale.
func (t Transform) Matrix() mgl64.Mat4 {
	rot := mgl64.AnglesToQuat(t.Rotation[0], t.Rotation[1], t.Rotation[2], mgl64.XYZ).Mat4()
	m := mgl64.Translate3D(t.Position[0], t.Position[1], t.Position[2]).Mul4(rot)
	return m.Mul4(mgl64.Scale3D(t.Scale, t.Scale, t.Scale))
}

// Group is one instanced particle category: its fixed descriptors, its morph
// state, and the transform buffer recomputed every frame.
type Group struct {
	category    Category
	descriptors []Descriptor
	transforms  []Transform
	morph       MorphState

	timeConstant  float64
	rotationSpeed float64
}

// NewGroup generates count descriptors for cat and returns a group starting
// fully scattered.
func NewGroup(rng *rand.Rand, cat Category, count int, cfg *Config) *Group {
	return newGroup(cat, GenerateParticles(rng, count, cat, cfg.Geometry), cfg)
}

func newGroup(cat Category, descriptors []Descriptor, cfg *Config) *Group {
	g := &Group{
		category:      cat,
		descriptors:   descriptors,
		transforms:    make([]Transform, len(descriptors)),
		timeConstant:  cfg.TransitionTime,
		rotationSpeed: cfg.RotationSpeed,
	}
	g.compute(0)
	return g
}

// Category returns the group's category tag.
func (g *Group) Category() Category { return g.category }

// Len returns the number of particles in the group.
func (g *Group) Len() int { return len(g.descriptors) }

// Descriptor returns a copy of descriptor i.
func (g *Group) Descriptor(i int) Descriptor { return g.descriptors[i] }

// Colors returns the per-particle colors in index order.
func (g *Group) Colors() []Color {
	out := make([]Color, len(g.descriptors))
	for i := range g.descriptors {
		out[i] = g.descriptors[i].Color
	}
	return out
}

// Morph returns the current morph state.
func (g *Group) Morph() MorphState { return g.morph }

// SetTarget sets the morph target. Only the controller path calls this.
func (g *Group) SetTarget(target float64) { g.morph.Target = target }

// Transforms returns the transforms computed by the last Update. The slice is
// reused between frames and MUST NOT be retained or mutated by callers.
func (g *Group) Transforms() []Transform { return g.transforms }

// Update damps the morph toward its target and recomputes every transform.
// An empty group does nothing.
func (g *Group) Update(tick Tick) {
	if len(g.descriptors) == 0 {
		return
	}
	g.morph.Step(tick.Delta, g.timeConstant)
	g.compute(tick.Elapsed)
}

// Yaw returns the assembling yaw applied at elapsed time t for the current
// morph. Zero while the morph is at or below the spin cutoff.
func (g *Group) Yaw(t float64) float64 {
	m := g.morph.Current
	if m <= spinCutoff {
		return 0
	}
	return t * g.rotationSpeed * m
}

// compute fills the transform buffer for elapsed time t.
func (g *Group) compute(t float64) {
	m := g.morph.Current
	yaw := g.Yaw(t)
	sinYaw, cosYaw := math.Sincos(yaw)
	decor := g.category == CategoryOrnament || g.category == CategoryStar

	for i := range g.descriptors {
		d := &g.descriptors[i]
		p := lerpVec(d.ScatterPosition, d.TreePosition, m)

		// Idle bob, fading out as the particle locks into place.
		if m < floatCutoff {
			f := (1 - m) * 2
			fi := float64(i)
			p[1] += math.Sin(t+fi) * floatAmplitude * f
			p[0] += math.Cos(t*0.5+fi) * floatAmplitude * f
		}

		if yaw != 0 {
			x, z := p[0], p[2]
			p[0] = x*cosYaw - z*sinYaw
			p[2] = x*sinYaw + z*cosYaw
		}

		rot := d.Rotation
		if decor {
			rot[1] += t * decorSpin
		}

		g.transforms[i] = Transform{Position: p, Rotation: rot, Scale: d.Scale}
	}
}

// lerpVec interpolates from a to b by t.
func lerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		lerp(a[0], b[0], t),
		lerp(a[1], b[1], t),
		lerp(a[2], b[2], t),
	}
}
